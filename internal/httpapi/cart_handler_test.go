package httpapi

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

func sampleLine(productID uuid.UUID, qty int, price string) domain.CartLine {
	return domain.CartLine{
		ID:          uuid.New(),
		OwnerID:     customerID,
		ProductID:   productID,
		Quantity:    qty,
		PriceAtAdd:  domain.NewMoney(decimal.RequireFromString(price), currency.INR),
		Status:      domain.CartLineStatusActive,
		ProductName: "Pearl studs",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestGetCart(t *testing.T) {
	lines := []domain.CartLine{
		sampleLine(uuid.New(), 2, "100"),
		sampleLine(uuid.New(), 1, "50.25"),
	}

	carts := &fakeCarts{
		getCart: func(p domain.Principal) (service.CartView, error) {
			require.Equal(t, customerID, p.UserID)
			return service.CartView{
				Cart:  domain.Cart{OwnerID: p.UserID, Lines: lines},
				Total: domain.NewMoney(decimal.RequireFromString("250.25"), currency.INR),
			}, nil
		},
	}
	r := newTestRouter(Services{Auth: &fakeAuth{}, Carts: carts})

	status, body := serve(t, r, http.MethodGet, "/api/cart", customerToken, nil)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "250.25", body["total"])
	assert.Equal(t, "INR", body["currency"])
	assert.EqualValues(t, 2, body["itemCount"])

	items := body["items"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "100.00", first["priceAtAddTime"])
	assert.Equal(t, "200.00", first["lineTotal"])
	assert.Equal(t, "active", first["status"])
}

func TestAddToCart(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name       string
		body       any
		addErr     error
		wantStatus int
		wantError  string
	}{
		{
			name:       "added",
			body:       map[string]any{"productId": productID.String(), "quantity": 2},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid product id",
			body:       map[string]any{"productId": "ring-1", "quantity": 2},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed: productId is not a valid id",
		},
		{
			name:       "malformed body",
			body:       `{"productId":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "insufficient stock",
			body:       map[string]any{"productId": productID.String(), "quantity": 9},
			addErr:     fmt.Errorf("product.Purchasable: %w", domain.ErrInsufficientStock),
			wantStatus: http.StatusBadRequest,
			wantError:  "insufficient stock",
		},
		{
			name:       "inactive product",
			body:       map[string]any{"productId": productID.String(), "quantity": 1},
			addErr:     fmt.Errorf("product.Purchasable: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "not found",
		},
		{
			name:       "zero quantity",
			body:       map[string]any{"productId": productID.String(), "quantity": 0},
			addErr:     fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed: quantity must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := &fakeCarts{
				addLine: func(p domain.Principal, id uuid.UUID, qty int) (domain.CartLine, error) {
					if tt.addErr != nil {
						return domain.CartLine{}, tt.addErr
					}
					return sampleLine(id, qty, "100"), nil
				},
			}
			r := newTestRouter(Services{Auth: &fakeAuth{}, Carts: carts})

			status, body := serve(t, r, http.MethodPost, "/api/cart/add", customerToken, tt.body)
			require.Equal(t, tt.wantStatus, status)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			assert.Equal(t, "Product added to cart", body["message"])
			item := body["cartItem"].(map[string]any)
			assert.Equal(t, productID.String(), item["productId"])
			assert.EqualValues(t, 2, item["quantity"])
			assert.Equal(t, "200.00", item["lineTotal"])
		})
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	line := sampleLine(uuid.New(), 1, "80")

	carts := &fakeCarts{
		updateLine: func(p domain.Principal, id uuid.UUID, qty int) (domain.CartLine, error) {
			if id != line.ID {
				return domain.CartLine{}, fmt.Errorf("ownedActiveLine: %w", domain.ErrNotFound)
			}
			updated := line
			updated.Quantity = qty
			return updated, nil
		},
		removeLine: func(p domain.Principal, id uuid.UUID) error {
			if id != line.ID {
				return fmt.Errorf("ownedActiveLine: %w", domain.ErrNotFound)
			}
			return nil
		},
		clear: func(p domain.Principal) error {
			return nil
		},
	}
	r := newTestRouter(Services{Auth: &fakeAuth{}, Carts: carts})

	status, body := serve(t, r, http.MethodPut, "/api/cart/"+line.ID.String(), customerToken, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart item updated", body["message"])
	assert.Equal(t, "240.00", body["cartItem"].(map[string]any)["lineTotal"])

	status, _ = serve(t, r, http.MethodPut, "/api/cart/"+uuid.NewString(), customerToken, map[string]any{"quantity": 3})
	require.Equal(t, http.StatusNotFound, status)

	status, body = serve(t, r, http.MethodDelete, "/api/cart/"+line.ID.String(), customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Item removed from cart", body["message"])

	status, _ = serve(t, r, http.MethodDelete, "/api/cart/"+uuid.NewString(), customerToken, nil)
	require.Equal(t, http.StatusNotFound, status)

	status, body = serve(t, r, http.MethodDelete, "/api/cart", customerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart cleared", body["message"])
}
