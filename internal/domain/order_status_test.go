package domain_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

func TestOrderStatus_Cancellable(t *testing.T) {
	tests := []struct {
		status domain.OrderStatus
		want   bool
	}{
		{domain.OrderStatusPending, true},
		{domain.OrderStatusConfirmed, true},
		{domain.OrderStatusProcessing, false},
		{domain.OrderStatusShipped, false},
		{domain.OrderStatusDelivered, false},
		{domain.OrderStatusCancelled, false},
	}

	require.Len(t, tests, len(domain.OrderStatuses()))

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Cancellable())
		})
	}
}

func TestToEnums(t *testing.T) {
	_, err := domain.ToOrderStatus("returned")
	require.EqualError(t, err, "invalid order status")

	status, err := domain.ToOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, status)

	_, err = domain.ToPaymentStatus("chargeback")
	require.EqualError(t, err, "invalid payment status")

	method, err := domain.ToPaymentMethod("cod")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodCOD, method)

	_, err = domain.ToPaymentMethod("cash")
	require.EqualError(t, err, "invalid payment method")

	_, err = domain.ToCartLineStatus("saved")
	require.EqualError(t, err, "invalid cart line status")

	_, err = domain.ToRole("superuser")
	require.EqualError(t, err, "invalid role")
}

func TestOrderUpdate_Apply(t *testing.T) {
	order := domain.Order{
		Status:         domain.OrderStatusConfirmed,
		PaymentStatus:  domain.PaymentStatusPending,
		TrackingNumber: "",
	}

	assert.True(t, domain.OrderUpdate{}.IsEmpty())

	update := domain.OrderUpdate{
		Status:         lo.ToPtr(domain.OrderStatusShipped),
		TrackingNumber: lo.ToPtr("DTDC-991"),
	}
	assert.False(t, update.IsEmpty())

	got := update.Apply(order)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
	assert.Equal(t, domain.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, "DTDC-991", got.TrackingNumber)

	// the input is a value, it stays untouched
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
}
