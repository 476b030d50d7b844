package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID
	Number          string
	OwnerID         uuid.UUID
	Total           Money
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentMethod   PaymentMethod
	ShippingAddress Address
	BillingAddress  Address
	Notes           string
	TrackingNumber  string
	Items           []OrderItem

	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is a snapshot of a cart line taken at checkout.
// It does not follow later catalog changes.
type OrderItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   Money
	TotalPrice  Money

	CreatedAt time.Time
}

// ItemsTotal sums the line totals, the order total must always equal it.
func (o Order) ItemsTotal() (Money, error) {
	total := ZeroMoney(o.Total.Currency)

	for _, item := range o.Items {
		var err error
		total, err = total.Add(item.TotalPrice)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// OrderUpdate carries the optional fields of an administrative update.
// Nil fields are left untouched.
type OrderUpdate struct {
	Status         *OrderStatus
	PaymentStatus  *PaymentStatus
	TrackingNumber *string
}

func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.TrackingNumber == nil
}

type OrderPage struct {
	Orders []Order
	Total  int
	Page   Page
}

// Apply returns a copy of o with the set fields overwritten.
func (u OrderUpdate) Apply(o Order) Order {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}
	if u.TrackingNumber != nil {
		o.TrackingNumber = *u.TrackingNumber
	}

	return o
}
