package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type CatalogService struct {
	products port.ProductRepository
	currency currency.Unit
	log      *logrus.Logger
}

func NewCatalogService(products port.ProductRepository, cur currency.Unit, log *logrus.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		currency: cur,
		log:      log,
	}
}

// List returns active products only, newest first.
func (s *CatalogService) List(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	page, err := s.products.ListProducts(ctx, filter)
	if err != nil {
		return page, fmt.Errorf("products.ListProducts: %w", err)
	}

	return page, nil
}

func (s *CatalogService) Get(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return product, fmt.Errorf("products.GetProduct: %w", err)
	}

	if !product.Active {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrNotFound)
	}

	return product, nil
}

func (s *CatalogService) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.Price.Currency = s.currency

	if err := product.Validate(); err != nil {
		return product, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	created, err := s.products.InsertProduct(ctx, product)
	if err != nil {
		return product, fmt.Errorf("products.InsertProduct: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"product_id": created.ID,
		"sku":        created.SKU,
	}).Info("product created")

	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, productID uuid.UUID, update domain.ProductUpdate) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return product, fmt.Errorf("products.GetProduct: %w", err)
	}

	updated := update.Apply(product)

	if err := updated.Validate(); err != nil {
		return product, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	updated, err = s.products.UpdateProduct(ctx, updated)
	if err != nil {
		return product, fmt.Errorf("products.UpdateProduct: %w", err)
	}

	s.log.WithFields(logrus.Fields{"product_id": productID}).Info("product updated")

	return updated, nil
}

// Deactivate hides the product; existing cart lines and orders keep referencing it.
func (s *CatalogService) Deactivate(ctx context.Context, productID uuid.UUID) error {
	if err := s.products.DeactivateProduct(ctx, productID); err != nil {
		return fmt.Errorf("products.DeactivateProduct: %w", err)
	}

	s.log.WithFields(logrus.Fields{"product_id": productID}).Info("product deactivated")

	return nil
}
