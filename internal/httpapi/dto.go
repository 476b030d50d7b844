package httpapi

import (
	"time"

	"github.com/samber/lo"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

// Amounts are rendered as fixed two-decimal strings.

type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		City:      u.City,
		State:     u.State,
		ZipCode:   u.ZipCode,
		Country:   u.Country,
		Role:      string(u.Role),
		IsActive:  u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type sessionResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
	Token   string       `json:"token"`
}

func toSessionResponse(msg string, s service.Session) sessionResponse {
	return sessionResponse{
		Message: msg,
		User:    toUserResponse(s.User),
		Token:   s.Token,
	}
}

type productResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Metal       string    `json:"metal"`
	Weight      string    `json:"weight"`
	Purity      string    `json:"purity"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Quantity    int       `json:"quantity"`
	ImageURL    string    `json:"imageUrl"`
	ImageURLs   []string  `json:"imageUrls"`
	IsActive    bool      `json:"isActive"`
	Rating      string    `json:"rating"`
	Reviews     int       `json:"reviews"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Metal:       string(p.Metal),
		Weight:      p.Weight.StringFixed(2),
		Purity:      p.Purity,
		Price:       p.Price.Amount.StringFixed(2),
		Currency:    p.Price.Currency.String(),
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		ImageURLs:   lo.Ternary(p.ImageURLs == nil, []string{}, p.ImageURLs),
		IsActive:    p.Active,
		Rating:      p.Rating.StringFixed(2),
		Reviews:     p.Reviews,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type productPageResponse struct {
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	Products []productResponse `json:"products"`
}

type cartLineResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductImageURL string    `json:"productImageUrl"`
	Quantity        int       `json:"quantity"`
	PriceAtAddTime  string    `json:"priceAtAddTime"`
	LineTotal       string    `json:"lineTotal"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toCartLineResponse(l domain.CartLine) cartLineResponse {
	return cartLineResponse{
		ID:              l.ID.String(),
		ProductID:       l.ProductID.String(),
		ProductName:     l.ProductName,
		ProductImageURL: l.ProductImageURL,
		Quantity:        l.Quantity,
		PriceAtAddTime:  l.PriceAtAdd.Amount.StringFixed(2),
		LineTotal:       l.Total().Amount.StringFixed(2),
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

type cartResponse struct {
	Items     []cartLineResponse `json:"items"`
	Total     string             `json:"total"`
	Currency  string             `json:"currency"`
	ItemCount int                `json:"itemCount"`
}

func toCartResponse(v service.CartView) cartResponse {
	return cartResponse{
		Items: lo.Map(v.Lines, func(l domain.CartLine, _ int) cartLineResponse {
			return toCartLineResponse(l)
		}),
		Total:     v.Total.Amount.StringFixed(2),
		Currency:  v.Total.Currency.String(),
		ItemCount: v.ItemCount(),
	}
}

type orderItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	TotalPrice  string `json:"totalPrice"`
}

func toOrderItemResponse(i domain.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:          i.ID.String(),
		ProductID:   i.ProductID.String(),
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.Amount.StringFixed(2),
		TotalPrice:  i.TotalPrice.Amount.StringFixed(2),
	}
}

func toOrderItemResponses(items []domain.OrderItem) []orderItemResponse {
	return lo.Map(items, func(i domain.OrderItem, _ int) orderItemResponse {
		return toOrderItemResponse(i)
	})
}

type orderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	UserID            string              `json:"userId"`
	TotalAmount       string              `json:"totalAmount"`
	Currency          string              `json:"currency"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"paymentStatus"`
	PaymentMethod     string              `json:"paymentMethod"`
	ShippingAddress   domain.Address      `json:"shippingAddress"`
	BillingAddress    domain.Address      `json:"billingAddress"`
	Notes             string              `json:"notes"`
	TrackingNumber    string              `json:"trackingNumber"`
	EstimatedDelivery *time.Time          `json:"estimatedDelivery"`
	Items             []orderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:                o.ID.String(),
		OrderNumber:       o.Number,
		UserID:            o.OwnerID.String(),
		TotalAmount:       o.Total.Amount.StringFixed(2),
		Currency:          o.Total.Currency.String(),
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		PaymentMethod:     string(o.PaymentMethod),
		ShippingAddress:   o.ShippingAddress,
		BillingAddress:    o.BillingAddress,
		Notes:             o.Notes,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		Items:             toOrderItemResponses(o.Items),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

type orderPageResponse struct {
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
	Orders []orderResponse `json:"orders"`
}
