package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

type createProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Metal       string          `json:"metal"`
	Weight      decimal.Decimal `json:"weight"`
	Purity      string          `json:"purity"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"imageUrl"`
	ImageURLs   []string        `json:"imageUrls"`
}

type updateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Metal       *string          `json:"metal"`
	Weight      *decimal.Decimal `json:"weight"`
	Purity      *string          `json:"purity"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	ImageURL    *string          `json:"imageUrl"`
	ImageURLs   []string         `json:"imageUrls"`
	IsActive    *bool            `json:"isActive"`
}

func (r updateProductRequest) toDomain() domain.ProductUpdate {
	u := domain.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Weight:      r.Weight,
		Purity:      r.Purity,
		Price:       r.Price,
		Quantity:    r.Quantity,
		ImageURL:    r.ImageURL,
		ImageURLs:   r.ImageURLs,
		Active:      r.IsActive,
	}

	// enum membership is checked by Product.Validate
	if r.Category != nil {
		u.Category = lo.ToPtr(domain.Category(*r.Category))
	}
	if r.Metal != nil {
		u.Metal = lo.ToPtr(domain.Metal(*r.Metal))
	}

	return u
}

func (h *Handler) ListProducts(c *gin.Context) {
	page, err := pageQuery(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	filter := domain.ProductFilter{
		Search: c.Query("search"),
		Page:   page,
	}

	if v := c.Query("category"); v != "" {
		category, err := domain.ToCategory(v)
		if err != nil {
			respondError(c, h.log, fmt.Errorf("%w: category[%s]: %w", domain.ErrValidation, v, err))
			return
		}
		filter.Category = &category
	}

	if v := c.Query("metal"); v != "" {
		metal, err := domain.ToMetal(v)
		if err != nil {
			respondError(c, h.log, fmt.Errorf("%w: metal[%s]: %w", domain.ErrValidation, v, err))
			return
		}
		filter.Metal = &metal
	}

	result, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("catalog.List: %w", err))
		return
	}

	c.JSON(http.StatusOK, productPageResponse{
		Total: result.Total,
		Page:  result.Page.Number,
		Pages: result.Page.Pages(result.Total),
		Products: lo.Map(result.Products, func(p domain.Product, _ int) productResponse {
			return toProductResponse(p)
		}),
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("catalog.Get: %w", err))
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), domain.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Metal:       domain.Metal(req.Metal),
		Weight:      req.Weight,
		Purity:      req.Purity,
		Price:       domain.Money{Amount: req.Price},
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		respondError(c, h.log, fmt.Errorf("catalog.Create: %w", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": toProductResponse(product),
	})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respondError(c, h.log, fmt.Errorf("catalog.Update: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": toProductResponse(product),
	})
}

// DeleteProduct deactivates, products are never removed.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := uuidParam(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.catalog.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, h.log, fmt.Errorf("catalog.Deactivate: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
