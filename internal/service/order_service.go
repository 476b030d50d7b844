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

type OrderService struct {
	orders    port.OrderRepository
	txm       port.TxManager
	currency  currency.Unit
	newNumber func() string
	log       *logrus.Logger
}

func NewOrderService(orders port.OrderRepository, txm port.TxManager, cur currency.Unit, log *logrus.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		txm:       txm,
		currency:  cur,
		newNumber: NewOrderNumber,
		log:       log,
	}
}

type CheckoutRequest struct {
	ShippingAddress domain.Address
	// BillingAddress defaults to the shipping address when empty.
	BillingAddress domain.Address
	PaymentMethod  string
	Notes          string
}

func (r CheckoutRequest) validate() (domain.PaymentMethod, error) {
	if err := r.ShippingAddress.Validate(); err != nil {
		return "", fmt.Errorf("%w: shippingAddress: %w", domain.ErrValidation, err)
	}

	if r.BillingAddress != (domain.Address{}) {
		if err := r.BillingAddress.Validate(); err != nil {
			return "", fmt.Errorf("%w: billingAddress: %w", domain.ErrValidation, err)
		}
	}

	method, err := domain.ToPaymentMethod(r.PaymentMethod)
	if err != nil {
		return "", fmt.Errorf("%w: paymentMethod[%s]: %w", domain.ErrValidation, r.PaymentMethod, err)
	}

	return method, nil
}

// Checkout converts the caller's active cart lines into a pending order.
// Either the order with all of its items exists and every converted line is
// checked out, or nothing changed.
func (s *OrderService) Checkout(ctx context.Context, principal domain.Principal, req CheckoutRequest) (domain.Order, error) {
	var order domain.Order

	method, err := req.validate()
	if err != nil {
		return order, err
	}

	billing := req.BillingAddress
	if billing == (domain.Address{}) {
		billing = req.ShippingAddress
	}

	err = s.txm.WithinTx(ctx, func(repos port.TxRepositories) error {
		// concurrent checkouts of the same owner serialize here
		cart, err := repos.Carts().LockCart(ctx, principal.UserID)
		if err != nil {
			return fmt.Errorf("carts.LockCart: %w", err)
		}

		if cart.IsEmpty() {
			return domain.ErrEmptyCart
		}

		draft, err := s.draftOrder(principal, cart)
		if err != nil {
			return fmt.Errorf("draftOrder: %w", err)
		}

		draft.PaymentMethod = method
		draft.ShippingAddress = req.ShippingAddress
		draft.BillingAddress = billing
		draft.Notes = req.Notes

		order, err = repos.Orders().InsertOrder(ctx, draft)
		if err != nil {
			return fmt.Errorf("orders.InsertOrder: %w", err)
		}

		converted, err := repos.Carts().SetActiveLinesStatus(ctx, principal.UserID, domain.CartLineStatusCheckedOut)
		if err != nil {
			return fmt.Errorf("carts.SetActiveLinesStatus: %w", err)
		}

		if converted != len(cart.Lines) {
			return fmt.Errorf("%w: checked out %d cart lines, expected %d", domain.ErrConflict, converted, len(cart.Lines))
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("txm.WithinTx: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":      principal.UserID,
		"order_id":     order.ID,
		"order_number": order.Number,
		"items":        len(order.Items),
		"total":        order.Total.String(),
	}).Info("order placed")

	return order, nil
}

func (s *OrderService) draftOrder(principal domain.Principal, cart domain.Cart) (domain.Order, error) {
	order := domain.Order{
		Number:  s.newNumber(),
		OwnerID: principal.UserID,
		Total:   domain.ZeroMoney(s.currency),
		Items:   make([]domain.OrderItem, 0, len(cart.Lines)),
	}

	for _, line := range cart.Lines {
		item := domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.PriceAtAdd,
			TotalPrice:  line.Total(),
		}

		var err error
		order.Total, err = order.Total.Add(item.TotalPrice)
		if err != nil {
			return order, fmt.Errorf("line[%s]: %w", line.ID, err)
		}

		order.Items = append(order.Items, item)
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("orders.GetOrder: %w", err)
	}

	if order.OwnerID != principal.UserID {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", orderID, domain.ErrNotFound)
	}

	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, principal domain.Principal, page domain.Page) (domain.OrderPage, error) {
	result, err := s.orders.SearchOrders(ctx, domain.OrderFilter{
		OwnerIDs: []uuid.UUID{principal.UserID},
		Page:     page,
	})
	if err != nil {
		return result, fmt.Errorf("orders.SearchOrders: %w", err)
	}

	return result, nil
}

// Cancel is allowed for the owner while the order is pending or confirmed.
// Stock is not returned to the catalog.
func (s *OrderService) Cancel(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error) {
	var order domain.Order

	err := s.txm.WithinTx(ctx, func(repos port.TxRepositories) error {
		var err error

		order, err = repos.Orders().GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("orders.GetOrderForUpdate: %w", err)
		}

		if order.OwnerID != principal.UserID {
			return fmt.Errorf("order[%s]: %w", orderID, domain.ErrNotFound)
		}

		if !order.Status.Cancellable() {
			return fmt.Errorf("%w: order in status %s can not be cancelled", domain.ErrInvalidState, order.Status)
		}

		order.Status = domain.OrderStatusCancelled

		order, err = repos.Orders().UpdateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("orders.UpdateOrder: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("txm.WithinTx: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  principal.UserID,
		"order_id": orderID,
	}).Info("order cancelled")

	return order, nil
}

// UpdateStatus applies an administrative update. Any transition between known
// statuses is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, update domain.OrderUpdate) (domain.Order, error) {
	var order domain.Order

	if !principal.IsAdmin() {
		return order, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}

	if update.IsEmpty() {
		return order, fmt.Errorf("%w: nothing to update", domain.ErrValidation)
	}

	if update.Status != nil {
		if _, err := domain.ToOrderStatus(string(*update.Status)); err != nil {
			return order, fmt.Errorf("%w: status[%s]: %w", domain.ErrValidation, *update.Status, err)
		}
	}

	if update.PaymentStatus != nil {
		if _, err := domain.ToPaymentStatus(string(*update.PaymentStatus)); err != nil {
			return order, fmt.Errorf("%w: paymentStatus[%s]: %w", domain.ErrValidation, *update.PaymentStatus, err)
		}
	}

	err := s.txm.WithinTx(ctx, func(repos port.TxRepositories) error {
		var err error

		order, err = repos.Orders().GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("orders.GetOrderForUpdate: %w", err)
		}

		order = update.Apply(order)

		order, err = repos.Orders().UpdateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("orders.UpdateOrder: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("txm.WithinTx: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"admin_id":       principal.UserID,
		"order_id":       orderID,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
	}).Info("order updated")

	return order, nil
}
