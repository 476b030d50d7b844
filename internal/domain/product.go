package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryRings     Category = "rings"
	CategoryNecklaces Category = "necklaces"
	CategoryBracelets Category = "bracelets"
	CategoryEarrings  Category = "earrings"
	CategorySets      Category = "sets"
	CategoryAnklets   Category = "anklets"
)

var validCategories = map[Category]struct{}{
	CategoryRings:     {},
	CategoryNecklaces: {},
	CategoryBracelets: {},
	CategoryEarrings:  {},
	CategorySets:      {},
	CategoryAnklets:   {},
}

func ToCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := validCategories[c]; ok {
		return c, nil
	}

	return "", errors.New("invalid category")
}

// MaxQuantity is the largest stock or line quantity the store accepts.
const MaxQuantity = math.MaxInt32

type Metal string

const (
	MetalGold     Metal = "gold"
	MetalSilver   Metal = "silver"
	MetalPlatinum Metal = "platinum"
	MetalMixed    Metal = "mixed"
)

var validMetals = map[Metal]struct{}{
	MetalGold:     {},
	MetalSilver:   {},
	MetalPlatinum: {},
	MetalMixed:    {},
}

func ToMetal(s string) (Metal, error) {
	m := Metal(s)
	if _, ok := validMetals[m]; ok {
		return m, nil
	}

	return "", errors.New("invalid metal")
}

type Product struct {
	ID          uuid.UUID
	SKU         string
	Name        string
	Description string
	Category    Category
	Metal       Metal
	Weight      decimal.Decimal // grams
	Purity      string          // 18K, 22K, 24K
	Price       Money
	Quantity    int
	ImageURL    string
	ImageURLs   []string
	Active      bool
	Rating      decimal.Decimal
	Reviews     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Product) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" || len(name) > 255 {
		return errors.New("name must be 1..255 characters")
	}

	if strings.TrimSpace(p.SKU) == "" {
		return errors.New("sku is empty")
	}

	if _, err := ToCategory(string(p.Category)); err != nil {
		return fmt.Errorf("category[%s]: %w", p.Category, err)
	}

	if _, err := ToMetal(string(p.Metal)); err != nil {
		return fmt.Errorf("metal[%s]: %w", p.Metal, err)
	}

	if p.Price.IsNegative() {
		return errors.New("price is negative")
	}

	if p.Quantity < 0 {
		return errors.New("quantity is negative")
	}

	if p.Quantity > MaxQuantity {
		return fmt.Errorf("quantity exceeds %d", MaxQuantity)
	}

	if p.Weight.IsNegative() {
		return errors.New("weight is negative")
	}

	return nil
}

// Purchasable reports whether qty units can be put into a cart.
func (p Product) Purchasable(qty int) error {
	if !p.Active {
		return ErrNotFound
	}

	if qty > p.Quantity {
		return ErrInsufficientStock
	}

	return nil
}

// ProductFilter has AND semantics across the set fields.
type ProductFilter struct {
	Category *Category
	Metal    *Metal
	Search   string
	Page     Page
}

type ProductPage struct {
	Products []Product
	Total    int
	Page     Page
}

// ProductUpdate carries the optional fields of a catalog update.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *Category
	Metal       *Metal
	Weight      *decimal.Decimal
	Purity      *string
	Price       *decimal.Decimal
	Quantity    *int
	ImageURL    *string
	ImageURLs   []string
	Active      *bool
}

// Apply returns a copy of p with the set fields overwritten.
func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Metal != nil {
		p.Metal = *u.Metal
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.Purity != nil {
		p.Purity = *u.Purity
	}
	if u.Price != nil {
		p.Price.Amount = *u.Price
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.ImageURLs != nil {
		p.ImageURLs = u.ImageURLs
	}
	if u.Active != nil {
		p.Active = *u.Active
	}

	return p
}
