package httpapi

import (
	"context"

	"github.com/google/uuid"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	Authenticate(token string) (domain.Principal, error)
	Profile(ctx context.Context, principal domain.Principal) (domain.User, error)
	UpdateProfile(ctx context.Context, principal domain.Principal, update domain.ProfileUpdate) (domain.User, error)
}

type CatalogService interface {
	List(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error)
	Get(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, productID uuid.UUID, update domain.ProductUpdate) (domain.Product, error)
	Deactivate(ctx context.Context, productID uuid.UUID) error
}

type CartService interface {
	GetCart(ctx context.Context, principal domain.Principal) (service.CartView, error)
	AddLine(ctx context.Context, principal domain.Principal, productID uuid.UUID, qty int) (domain.CartLine, error)
	UpdateLine(ctx context.Context, principal domain.Principal, lineID uuid.UUID, qty int) (domain.CartLine, error)
	RemoveLine(ctx context.Context, principal domain.Principal, lineID uuid.UUID) error
	Clear(ctx context.Context, principal domain.Principal) error
}

type OrderService interface {
	Checkout(ctx context.Context, principal domain.Principal, req service.CheckoutRequest) (domain.Order, error)
	GetOrder(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context, principal domain.Principal, page domain.Page) (domain.OrderPage, error)
	Cancel(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error)
	UpdateStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, update domain.OrderUpdate) (domain.Order, error)
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}
