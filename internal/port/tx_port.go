package port

import "context"

// TxRepositories are bound to one transaction.
type TxRepositories interface {
	Carts() CartRepository
	Orders() OrderRepository
	Products() ProductRepository
}

type TxManager interface {
	// WithinTx commits if fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(repos TxRepositories) error) error
}
