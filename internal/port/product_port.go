package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
)

type ProductRepository interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error)

	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeactivateProduct(ctx context.Context, productID uuid.UUID) error
}
