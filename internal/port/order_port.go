package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
)

type OrderRepository interface {
	// GetOrder returns the order with all of its items.
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	// GetOrderForUpdate locks the order row until the surrounding transaction ends.
	GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (domain.Order, error)

	SearchOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderPage, error)

	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
}
