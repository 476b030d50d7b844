package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/nikolayk812/jewelshop/internal/db"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	order, err := r.withTxOrder(ctx, func(q *db.Queries) (domain.Order, error) {
		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			return o, fmt.Errorf("q.GetOrder: %w", mapDBError(err))
		}

		dbOrderItems, err := q.GetOrderItems(ctx, orderID)
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		domainOrder, err := mapDBOrderToDomain(dbOrder, dbOrderItems)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		return domainOrder, nil
	})
	if err != nil {
		return o, fmt.Errorf("r.withTxOrder: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	if r.pool != nil {
		return o, errors.New("GetOrderForUpdate requires a transaction")
	}

	dbOrder, err := r.q.GetOrderForUpdate(ctx, orderID)
	if err != nil {
		return o, fmt.Errorf("q.GetOrderForUpdate: %w", mapDBError(err))
	}

	dbOrderItems, err := r.q.GetOrderItems(ctx, orderID)
	if err != nil {
		return o, fmt.Errorf("q.GetOrderItems: %w", err)
	}

	order, err := mapDBOrderToDomain(dbOrder, dbOrderItems)
	if err != nil {
		return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
	}

	return order, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return order, errors.New("no items in order")
	}

	if order.OwnerID == uuid.Nil {
		return order, errors.New("ownerID is empty")
	}

	inserted, err := r.withTxOrder(ctx, func(q *db.Queries) (domain.Order, error) {
		// Insert the order and get the generated order ID
		row, err := q.InsertOrder(ctx, db.InsertOrderParams{
			OrderNumber:     order.Number,
			OwnerID:         order.OwnerID,
			TotalAmount:     order.Total.Amount,
			TotalCurrency:   order.Total.Currency.String(),
			PaymentMethod:   string(order.PaymentMethod),
			ShippingAddress: order.ShippingAddress,
			BillingAddress:  order.BillingAddress,
			Notes:           order.Notes,
		})
		if err != nil {
			return order, fmt.Errorf("q.InsertOrder: %w", mapDBError(err))
		}

		result := order
		result.ID = row.ID
		result.CreatedAt = row.CreatedAt
		result.UpdatedAt = row.UpdatedAt
		result.Items = make([]domain.OrderItem, 0, len(order.Items))

		if result.Status, err = domain.ToOrderStatus(row.Status); err != nil {
			return order, fmt.Errorf("domain.ToOrderStatus[%s]: %w", row.Status, err)
		}

		if result.PaymentStatus, err = domain.ToPaymentStatus(row.PaymentStatus); err != nil {
			return order, fmt.Errorf("domain.ToPaymentStatus[%s]: %w", row.PaymentStatus, err)
		}

		for _, item := range order.Items {
			quantity, err := toInt32("quantity", item.Quantity)
			if err != nil {
				return order, err
			}

			itemRow, err := q.InsertOrderItem(ctx, db.InsertOrderItemParams{
				OrderID:          row.ID,
				ProductID:        item.ProductID,
				ProductName:      item.ProductName,
				Quantity:         quantity,
				UnitPriceAmount:  item.UnitPrice.Amount,
				TotalPriceAmount: item.TotalPrice.Amount,
				PriceCurrency:    item.UnitPrice.Currency.String(),
			})
			if err != nil {
				return order, fmt.Errorf("q.InsertOrderItem: %w", err)
			}

			item.ID = itemRow.ID
			item.CreatedAt = itemRow.CreatedAt
			result.Items = append(result.Items, item)
		}

		return result, nil
	})
	if err != nil {
		return order, fmt.Errorf("r.withTxOrder: %w", err)
	}

	return inserted, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.ID == uuid.Nil {
		return order, errors.New("orderID is empty")
	}

	if order.Status == "" {
		return order, errors.New("status is empty")
	}

	updatedAt, err := r.q.UpdateOrder(ctx, db.UpdateOrderParams{
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		TrackingNumber: order.TrackingNumber,
		ID:             order.ID,
	})
	if err != nil {
		return order, fmt.Errorf("q.UpdateOrder: %w", mapDBError(err))
	}

	order.UpdatedAt = updatedAt

	return order, nil
}

func mapDomainOrderFilterToDBFilter(filter domain.OrderFilter) db.CountOrdersParams {
	statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string {
		return string(s)
	})

	paymentStatuses := lo.Map(filter.PaymentStatuses, func(s domain.PaymentStatus, _ int) string {
		return string(s)
	})

	params := db.CountOrdersParams{
		OwnerIds:        nilSliceIfEmpty(filter.OwnerIDs),
		Statuses:        nilSliceIfEmpty(statuses),
		PaymentStatuses: nilSliceIfEmpty(paymentStatuses),
	}

	if filter.CreatedAt != nil {
		params.CreatedAfter = filter.CreatedAt.After
		params.CreatedBefore = filter.CreatedAt.Before
	}

	return params
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderPage, error) {
	page := domain.NewPage(filter.Page.Number, filter.Page.Size)
	result := domain.OrderPage{Page: page}

	if err := filter.Validate(); err != nil {
		return result, fmt.Errorf("filter.Validate: %w", err)
	}

	dbFilter := mapDomainOrderFilterToDBFilter(filter)

	count, err := r.q.CountOrders(ctx, dbFilter)
	if err != nil {
		return result, fmt.Errorf("q.CountOrders: %w", err)
	}

	dbOrders, err := r.q.SearchOrders(ctx, db.SearchOrdersParams{
		OwnerIds:        dbFilter.OwnerIds,
		Statuses:        dbFilter.Statuses,
		PaymentStatuses: dbFilter.PaymentStatuses,
		CreatedAfter:    dbFilter.CreatedAfter,
		CreatedBefore:   dbFilter.CreatedBefore,
		// NewPage keeps both within int32
		RowLimit:        int32(page.Size),
		RowOffset:       int32(page.Offset()),
	})
	if err != nil {
		return result, fmt.Errorf("q.SearchOrders: %w", err)
	}

	result.Total = int(count)

	if len(dbOrders) == 0 {
		return result, nil
	}

	orderIDs := lo.Map(dbOrders, func(o db.Order, _ int) uuid.UUID {
		return o.ID
	})

	dbItems, err := r.q.GetOrderItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return result, fmt.Errorf("q.GetOrderItemsByOrderIDs: %w", err)
	}

	itemsByOrder := lo.GroupBy(dbItems, func(item db.OrderItem) uuid.UUID {
		return item.OrderID
	})

	for _, dbOrder := range dbOrders {
		order, err := mapDBOrderToDomain(dbOrder, itemsByOrder[dbOrder.ID])
		if err != nil {
			return result, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		result.Orders = append(result.Orders, order)
	}

	return result, nil
}

func (r *orderRepository) withTxOrder(ctx context.Context, fn func(q *db.Queries) (domain.Order, error)) (domain.Order, error) {
	return withTx(ctx, r.pool, r.q, fn)
}

func mapDBOrderItemToDomain(row db.OrderItem) (domain.OrderItem, error) {
	unitPrice, err := mapMoney(row.UnitPriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("mapMoney: %w", err)
	}

	return domain.OrderItem{
		ID:          row.ID,
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Quantity:    int(row.Quantity),
		UnitPrice:   unitPrice,
		TotalPrice:  domain.NewMoney(row.TotalPriceAmount, unitPrice.Currency),
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapDBOrderItemsToDomain(rows []db.OrderItem) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	for _, row := range rows {
		item, err := mapDBOrderItemToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapDBOrderItemToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func mapDBOrderToDomain(dbOrder db.Order, dbOrderItems []db.OrderItem) (domain.Order, error) {
	var o domain.Order

	items, err := mapDBOrderItemsToDomain(dbOrderItems)
	if err != nil {
		return o, fmt.Errorf("mapDBOrderItemsToDomain: %w", err)
	}

	total, err := mapMoney(dbOrder.TotalAmount, dbOrder.TotalCurrency)
	if err != nil {
		return o, fmt.Errorf("mapMoney: %w", err)
	}

	status, err := domain.ToOrderStatus(dbOrder.Status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
	}

	paymentStatus, err := domain.ToPaymentStatus(dbOrder.PaymentStatus)
	if err != nil {
		return o, fmt.Errorf("domain.ToPaymentStatus[%s]: %w", dbOrder.PaymentStatus, err)
	}

	paymentMethod, err := domain.ToPaymentMethod(dbOrder.PaymentMethod)
	if err != nil {
		return o, fmt.Errorf("domain.ToPaymentMethod[%s]: %w", dbOrder.PaymentMethod, err)
	}

	return domain.Order{
		ID:                dbOrder.ID,
		Number:            dbOrder.OrderNumber,
		OwnerID:           dbOrder.OwnerID,
		Total:             total,
		Status:            status,
		PaymentStatus:     paymentStatus,
		PaymentMethod:     paymentMethod,
		ShippingAddress:   dbOrder.ShippingAddress,
		BillingAddress:    dbOrder.BillingAddress,
		Notes:             dbOrder.Notes,
		TrackingNumber:    dbOrder.TrackingNumber,
		Items:             items,
		EstimatedDelivery: dbOrder.EstimatedDelivery,
		CreatedAt:         dbOrder.CreatedAt,
		UpdatedAt:         dbOrder.UpdatedAt,
	}, nil
}
