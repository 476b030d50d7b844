package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/nikolayk812/jewelshop/internal/db"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", mapDBError(err))
	}

	product, err := mapDBProductToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	page := domain.NewPage(filter.Page.Number, filter.Page.Size)
	result := domain.ProductPage{Page: page}

	var category, metal *string
	if filter.Category != nil {
		category = lo.ToPtr(string(*filter.Category))
	}
	if filter.Metal != nil {
		metal = lo.ToPtr(string(*filter.Metal))
	}
	search := nilIfEmpty(filter.Search)

	count, err := r.q.CountProducts(ctx, db.CountProductsParams{
		Category: category,
		Metal:    metal,
		Search:   search,
	})
	if err != nil {
		return result, fmt.Errorf("q.CountProducts: %w", err)
	}

	rows, err := r.q.ListProducts(ctx, db.ListProductsParams{
		Category:  category,
		Metal:     metal,
		Search:    search,
		// NewPage keeps both within int32
		RowLimit:  int32(page.Size),
		RowOffset: int32(page.Offset()),
	})
	if err != nil {
		return result, fmt.Errorf("q.ListProducts: %w", err)
	}

	for _, row := range rows {
		product, err := mapDBProductToDomain(row)
		if err != nil {
			return result, fmt.Errorf("mapDBProductToDomain: %w", err)
		}
		result.Products = append(result.Products, product)
	}

	result.Total = int(count)

	return result, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := product.Validate(); err != nil {
		return product, fmt.Errorf("product.Validate: %w", err)
	}

	quantity, err := toInt32("quantity", product.Quantity)
	if err != nil {
		return product, err
	}

	row, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Sku:           product.SKU,
		Name:          product.Name,
		Description:   product.Description,
		Category:      string(product.Category),
		Metal:         string(product.Metal),
		Weight:        product.Weight,
		Purity:        product.Purity,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Quantity:      quantity,
		ImageUrl:      product.ImageURL,
		ImageUrls:     emptySliceIfNil(product.ImageURLs),
	})
	if err != nil {
		return product, fmt.Errorf("q.InsertProduct: %w", mapDBError(err))
	}

	product.ID = row.ID
	product.Active = row.IsActive
	product.Rating = row.Rating
	product.Reviews = int(row.Reviews)
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID == uuid.Nil {
		return product, fmt.Errorf("productID is empty")
	}

	if err := product.Validate(); err != nil {
		return product, fmt.Errorf("product.Validate: %w", err)
	}

	quantity, err := toInt32("quantity", product.Quantity)
	if err != nil {
		return product, err
	}

	updatedAt, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		Name:          product.Name,
		Description:   product.Description,
		Category:      string(product.Category),
		Metal:         string(product.Metal),
		Weight:        product.Weight,
		Purity:        product.Purity,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Quantity:      quantity,
		ImageUrl:      product.ImageURL,
		ImageUrls:     emptySliceIfNil(product.ImageURLs),
		IsActive:      product.Active,
		ID:            product.ID,
	})
	if err != nil {
		return product, fmt.Errorf("q.UpdateProduct: %w", mapDBError(err))
	}

	product.UpdatedAt = updatedAt

	return product, nil
}

func (r *productRepository) DeactivateProduct(ctx context.Context, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	rowsAffected, err := r.q.DeactivateProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("q.DeactivateProduct: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeactivateProduct: %w", domain.ErrNotFound)
	}

	return nil
}

func mapDBProductToDomain(row db.Product) (domain.Product, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapMoney: %w", err)
	}

	category, err := domain.ToCategory(row.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ToCategory[%s]: %w", row.Category, err)
	}

	metal, err := domain.ToMetal(row.Metal)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ToMetal[%s]: %w", row.Metal, err)
	}

	return domain.Product{
		ID:          row.ID,
		SKU:         row.Sku,
		Name:        row.Name,
		Description: row.Description,
		Category:    category,
		Metal:       metal,
		Weight:      row.Weight,
		Purity:      row.Purity,
		Price:       price,
		Quantity:    int(row.Quantity),
		ImageURL:    row.ImageUrl,
		ImageURLs:   row.ImageUrls,
		Active:      row.IsActive,
		Rating:      row.Rating,
		Reviews:     int(row.Reviews),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
