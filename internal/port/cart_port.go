package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
)

type CartRepository interface {
	// GetCart returns the owner's active lines.
	GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error)
	// LockCart is GetCart that also locks the returned lines.
	LockCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error)

	GetLine(ctx context.Context, lineID uuid.UUID) (domain.CartLine, error)
	GetActiveLineByProduct(ctx context.Context, ownerID, productID uuid.UUID) (domain.CartLine, error)

	AddLine(ctx context.Context, line domain.CartLine) (domain.CartLine, error)
	UpdateLineQuantity(ctx context.Context, ownerID, lineID uuid.UUID, quantity int) error

	// RemoveLine transitions a single active line to removed.
	RemoveLine(ctx context.Context, ownerID, lineID uuid.UUID) error
	// SetActiveLinesStatus transitions every active line of the owner and returns how many changed.
	SetActiveLinesStatus(ctx context.Context, ownerID uuid.UUID, status domain.CartLineStatus) (int, error)
}
