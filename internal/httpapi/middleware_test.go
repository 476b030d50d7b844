package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/service"
)

func TestAuthenticate(t *testing.T) {
	carts := &fakeCarts{
		getCart: func(p domain.Principal) (service.CartView, error) {
			return service.CartView{
				Cart:  domain.Cart{OwnerID: p.UserID},
				Total: domain.ZeroMoney(currency.INR),
			}, nil
		},
	}
	r := newTestRouter(Services{Auth: &fakeAuth{}, Carts: carts})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized: authorization header required",
		},
		{
			name:       "basic scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized: invalid authorization header format",
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized: invalid authorization header format",
		},
		{
			name:       "unknown token",
			header:     "Bearer forged",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			header:     "Bearer " + customerToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "lower case scheme",
			header:     "bearer " + customerToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.wantError), rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	var deactivated []uuid.UUID
	catalog := &fakeCatalog{
		deactivate: func(id uuid.UUID) error {
			deactivated = append(deactivated, id)
			return nil
		},
	}
	r := newTestRouter(Services{Auth: &fakeAuth{}, Catalog: catalog})

	productID := uuid.New()
	path := "/api/products/" + productID.String()

	status, body := serve(t, r, http.MethodDelete, path, customerToken, nil)
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden: admin role required", body["error"])
	assert.Empty(t, deactivated)

	status, body = serve(t, r, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product deleted successfully", body["message"])
	assert.Equal(t, []uuid.UUID{productID}, deactivated)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation keeps detail",
			err:         fmt.Errorf("catalog.Create: %w: sku is empty", domain.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation failed: sku is empty",
		},
		{
			name:        "empty cart",
			err:         fmt.Errorf("orders.Checkout: s.txm.WithinTx: %w", domain.ErrEmptyCart),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "cart is empty",
		},
		{
			name:        "insufficient stock",
			err:         fmt.Errorf("carts.AddLine: product.Purchasable: %w", domain.ErrInsufficientStock),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "insufficient stock",
		},
		{
			name:        "invalid state",
			err:         fmt.Errorf("orders.Cancel: %w: order is shipped", domain.ErrInvalidState),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid state: order is shipped",
		},
		{
			name:        "conflict",
			err:         fmt.Errorf("auth.Register: %w", domain.ErrConflict),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "conflict",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("orders.GetOrder: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "not found",
		},
		{
			name:        "unauthorized",
			err:         fmt.Errorf("%w: token is expired", domain.ErrUnauthorized),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized: token is expired",
		},
		{
			name:        "forbidden",
			err:         fmt.Errorf("orders.UpdateStatus: %w", domain.ErrForbidden),
			wantStatus:  http.StatusForbidden,
			wantMessage: "forbidden",
		},
		{
			name:        "internal error is hidden",
			err:         fmt.Errorf("q.InsertOrder: %w", errors.New("connection reset by peer")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	listed := corsConfig([]string{"https://shop.example.com"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"https://shop.example.com"}, listed.AllowOrigins)
	assert.True(t, listed.AllowCredentials)
}
