package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/jewelshop/internal/db"
	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	var c domain.Cart

	dbCartLines, err := r.q.GetActiveCartLines(ctx, ownerID)
	if err != nil {
		return c, fmt.Errorf("q.GetActiveCartLines: %w", err)
	}

	lines, err := mapCartRowsToDomain(dbCartLines)
	if err != nil {
		return c, fmt.Errorf("mapCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Lines:   lines,
	}, nil
}

func (r *cartRepository) LockCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	var c domain.Cart

	if r.pool != nil {
		return c, fmt.Errorf("LockCart requires a transaction")
	}

	dbCartLines, err := r.q.LockActiveCartLines(ctx, ownerID)
	if err != nil {
		return c, fmt.Errorf("q.LockActiveCartLines: %w", err)
	}

	rows := make([]db.GetActiveCartLinesRow, 0, len(dbCartLines))
	for _, row := range dbCartLines {
		rows = append(rows, db.GetActiveCartLinesRow(row))
	}

	lines, err := mapCartRowsToDomain(rows)
	if err != nil {
		return c, fmt.Errorf("mapCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Lines:   lines,
	}, nil
}

func (r *cartRepository) GetLine(ctx context.Context, lineID uuid.UUID) (domain.CartLine, error) {
	row, err := r.q.GetCartLine(ctx, lineID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("q.GetCartLine: %w", mapDBError(err))
	}

	line, err := mapCartRowToDomain(db.GetActiveCartLinesRow(row))
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("mapCartRowToDomain: %w", err)
	}

	return line, nil
}

func (r *cartRepository) GetActiveLineByProduct(ctx context.Context, ownerID, productID uuid.UUID) (domain.CartLine, error) {
	row, err := r.q.GetActiveCartLineByProduct(ctx, db.GetActiveCartLineByProductParams{
		OwnerID:   ownerID,
		ProductID: productID,
	})
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("q.GetActiveCartLineByProduct: %w", mapDBError(err))
	}

	line, err := mapCartRowToDomain(db.GetActiveCartLinesRow(row))
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("mapCartRowToDomain: %w", err)
	}

	return line, nil
}

func (r *cartRepository) AddLine(ctx context.Context, line domain.CartLine) (domain.CartLine, error) {
	if line.OwnerID == uuid.Nil {
		return line, fmt.Errorf("ownerID is empty")
	}

	if line.Quantity < 1 {
		return line, fmt.Errorf("quantity must be positive")
	}

	quantity, err := toInt32("quantity", line.Quantity)
	if err != nil {
		return line, err
	}

	arg := db.InsertCartLineParams{
		OwnerID:       line.OwnerID,
		ProductID:     line.ProductID,
		Quantity:      quantity,
		PriceAmount:   line.PriceAtAdd.Amount,
		PriceCurrency: line.PriceAtAdd.Currency.String(),
	}

	row, err := r.q.InsertCartLine(ctx, arg)
	if err != nil {
		return line, fmt.Errorf("q.InsertCartLine: %w", mapDBError(err))
	}

	status, err := domain.ToCartLineStatus(row.Status)
	if err != nil {
		return line, fmt.Errorf("domain.ToCartLineStatus[%s]: %w", row.Status, err)
	}

	line.ID = row.ID
	line.Status = status
	line.CreatedAt = row.CreatedAt
	line.UpdatedAt = row.UpdatedAt

	return line, nil
}

func (r *cartRepository) UpdateLineQuantity(ctx context.Context, ownerID, lineID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive")
	}

	narrowed, err := toInt32("quantity", quantity)
	if err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateCartLineQuantity(ctx, db.UpdateCartLineQuantityParams{
		Quantity: narrowed,
		ID:       lineID,
		OwnerID:  ownerID,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateCartLineQuantity: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateCartLineQuantity: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) RemoveLine(ctx context.Context, ownerID, lineID uuid.UUID) error {
	rowsAffected, err := r.q.SetCartLineStatus(ctx, db.SetCartLineStatusParams{
		NewStatus: string(domain.CartLineStatusRemoved),
		ID:        lineID,
		OwnerID:   ownerID,
	})
	if err != nil {
		return fmt.Errorf("q.SetCartLineStatus: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.SetCartLineStatus: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) SetActiveLinesStatus(ctx context.Context, ownerID uuid.UUID, status domain.CartLineStatus) (int, error) {
	if status == domain.CartLineStatusActive {
		return 0, fmt.Errorf("status must not be active")
	}

	if _, err := domain.ToCartLineStatus(string(status)); err != nil {
		return 0, fmt.Errorf("domain.ToCartLineStatus[%s]: %w", status, err)
	}

	rowsAffected, err := r.q.SetActiveCartLinesStatus(ctx, db.SetActiveCartLinesStatusParams{
		NewStatus: string(status),
		OwnerID:   ownerID,
	})
	if err != nil {
		return 0, fmt.Errorf("q.SetActiveCartLinesStatus: %w", err)
	}

	return int(rowsAffected), nil
}

func mapCartRowToDomain(row db.GetActiveCartLinesRow) (domain.CartLine, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("mapMoney: %w", err)
	}

	status, err := domain.ToCartLineStatus(row.Status)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("domain.ToCartLineStatus[%s]: %w", row.Status, err)
	}

	return domain.CartLine{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		ProductID:       row.ProductID,
		Quantity:        int(row.Quantity),
		PriceAtAdd:      price,
		Status:          status,
		ProductName:     row.ProductName,
		ProductImageURL: row.ProductImageUrl,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func mapCartRowsToDomain(rows []db.GetActiveCartLinesRow) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, row := range rows {
		line, err := mapCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
