package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var (
	currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	// NUMERIC(12,2) normalizes the scale, so 12.3 comes back as 12.30
	decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
)

func randomMoney(min, max float64) domain.Money {
	return domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(min, max)), currency.INR)
}

func randomProduct() domain.Product {
	return domain.Product{
		SKU:         gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Category:    domain.Category(gofakeit.RandomString([]string{"rings", "necklaces", "bracelets", "earrings"})),
		Metal:       domain.Metal(gofakeit.RandomString([]string{"gold", "silver", "platinum"})),
		Weight:      decimal.NewFromFloat(gofakeit.Price(1, 50)),
		Purity:      gofakeit.RandomString([]string{"18K", "22K", "24K", "925"}),
		Price:       randomMoney(100, 10000),
		Quantity:    gofakeit.Number(5, 100),
		ImageURL:    gofakeit.URL(),
		ImageURLs:   []string{gofakeit.URL(), gofakeit.URL()},
	}
}

func randomAddress() domain.Address {
	return domain.Address{
		FullName:   gofakeit.Name(),
		Line1:      gofakeit.Street(),
		City:       gofakeit.City(),
		State:      gofakeit.State(),
		PostalCode: gofakeit.Zip(),
		Country:    gofakeit.Country(),
		Phone:      gofakeit.Phone(),
	}
}

func randomOrder() domain.Order {
	total := domain.ZeroMoney(currency.INR)

	var items []domain.OrderItem
	for i := 0; i < gofakeit.Number(1, 5); i++ {
		item := randomOrderItem()
		total, _ = total.Add(item.TotalPrice)
		items = append(items, item)
	}

	address := randomAddress()

	return domain.Order{
		Number:          "ORD-" + gofakeit.UUID(),
		OwnerID:         uuid.New(),
		Total:           total,
		PaymentMethod:   domain.PaymentMethodUPI,
		ShippingAddress: address,
		BillingAddress:  address,
		Notes:           gofakeit.Sentence(5),
		Items:           items,
	}
}

func randomOrderItem() domain.OrderItem {
	unitPrice := randomMoney(1, 1000)
	qty := gofakeit.Number(1, 3)

	return domain.OrderItem{
		ProductID:   uuid.New(),
		ProductName: gofakeit.ProductName(),
		Quantity:    qty,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(qty),
	}
}

func insertProduct(t *testing.T, ctx context.Context, repo port.ProductRepository, mutate func(p *domain.Product)) domain.Product {
	t.Helper()

	p := randomProduct()
	if mutate != nil {
		mutate(&p)
	}

	inserted, err := repo.InsertProduct(ctx, p)
	require.NoError(t, err)

	return inserted
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartLine{}, "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.OrderItem{}, "ID", "CreatedAt"),
		// items of one order share a created_at
		cmpopts.SortSlices(func(x, y domain.OrderItem) bool {
			return x.ProductID.String() < y.ProductID.String()
		}),
		cmpopts.IgnoreFields(domain.Order{}, "ID", "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.NotEqual(t, uuid.Nil, actual.ID)
	assert.False(t, actual.CreatedAt.IsZero())
	assert.False(t, actual.UpdatedAt.IsZero())
}
