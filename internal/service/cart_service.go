package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/jewelshop/internal/domain"
	"github.com/nikolayk812/jewelshop/internal/port"
)

type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
	txm      port.TxManager
	currency currency.Unit
	log      *logrus.Logger
}

func NewCartService(
	carts port.CartRepository,
	products port.ProductRepository,
	txm port.TxManager,
	cur currency.Unit,
	log *logrus.Logger,
) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		txm:      txm,
		currency: cur,
		log:      log,
	}
}

type CartView struct {
	domain.Cart
	Total domain.Money
}

func (s *CartService) GetCart(ctx context.Context, principal domain.Principal) (CartView, error) {
	var v CartView

	cart, err := s.carts.GetCart(ctx, principal.UserID)
	if err != nil {
		return v, fmt.Errorf("carts.GetCart: %w", err)
	}

	total, err := cart.Total(s.currency)
	if err != nil {
		return v, fmt.Errorf("cart.Total: %w", err)
	}

	return CartView{Cart: cart, Total: total}, nil
}

// maxAddLineAttempts bounds retries after losing the race to create a product's active line.
const maxAddLineAttempts = 3

func validateLineQuantity(qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	if qty > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity exceeds %d", domain.ErrValidation, domain.MaxQuantity)
	}

	return nil
}

// AddLine puts qty units of a product into the cart. An existing active line for the
// same product is incremented and keeps its original price snapshot.
func (s *CartService) AddLine(ctx context.Context, principal domain.Principal, productID uuid.UUID, qty int) (domain.CartLine, error) {
	var line domain.CartLine

	if err := validateLineQuantity(qty); err != nil {
		return line, err
	}

	if productID == uuid.Nil {
		return line, fmt.Errorf("%w: productId is required", domain.ErrValidation)
	}

	var err error
	for attempt := 1; ; attempt++ {
		line, err = s.addLine(ctx, principal, productID, qty)
		// a concurrent add created the active line first, the next attempt merges into it
		if errors.Is(err, domain.ErrConflict) && attempt < maxAddLineAttempts {
			s.log.WithFields(logrus.Fields{
				"user_id":    principal.UserID,
				"product_id": productID,
				"attempt":    attempt,
			}).Debug("cart line insert conflicted, retrying as merge")
			continue
		}
		break
	}
	if err != nil {
		return line, fmt.Errorf("txm.WithinTx: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":    principal.UserID,
		"product_id": productID,
		"line_id":    line.ID,
		"quantity":   line.Quantity,
	}).Info("cart line added")

	return line, nil
}

func (s *CartService) addLine(ctx context.Context, principal domain.Principal, productID uuid.UUID, qty int) (domain.CartLine, error) {
	var line domain.CartLine

	err := s.txm.WithinTx(ctx, func(repos port.TxRepositories) error {
		product, err := repos.Products().GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("products.GetProduct: %w", err)
		}

		if err := product.Purchasable(qty); err != nil {
			return fmt.Errorf("product[%s]: %w", productID, err)
		}

		existing, err := repos.Carts().GetActiveLineByProduct(ctx, principal.UserID, productID)
		switch {
		case err == nil:
			merged := existing.Quantity + qty
			if err := product.Purchasable(merged); err != nil {
				return fmt.Errorf("product[%s]: %w", productID, err)
			}

			if err := repos.Carts().UpdateLineQuantity(ctx, principal.UserID, existing.ID, merged); err != nil {
				return fmt.Errorf("carts.UpdateLineQuantity: %w", err)
			}

			existing.Quantity = merged
			line = existing

			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("carts.GetActiveLineByProduct: %w", err)
		}

		line, err = repos.Carts().AddLine(ctx, domain.CartLine{
			OwnerID:         principal.UserID,
			ProductID:       productID,
			Quantity:        qty,
			PriceAtAdd:      product.Price,
			ProductName:     product.Name,
			ProductImageURL: product.ImageURL,
		})
		if err != nil {
			return fmt.Errorf("carts.AddLine: %w", err)
		}

		return nil
	})

	return line, err
}

func (s *CartService) UpdateLine(ctx context.Context, principal domain.Principal, lineID uuid.UUID, qty int) (domain.CartLine, error) {
	var line domain.CartLine

	if err := validateLineQuantity(qty); err != nil {
		return line, err
	}

	err := s.txm.WithinTx(ctx, func(repos port.TxRepositories) error {
		var err error

		line, err = ownedActiveLine(ctx, repos.Carts(), principal, lineID)
		if err != nil {
			return err
		}

		product, err := repos.Products().GetProduct(ctx, line.ProductID)
		if err != nil {
			return fmt.Errorf("products.GetProduct: %w", err)
		}

		if err := product.Purchasable(qty); err != nil {
			return fmt.Errorf("product[%s]: %w", product.ID, err)
		}

		if err := repos.Carts().UpdateLineQuantity(ctx, principal.UserID, lineID, qty); err != nil {
			return fmt.Errorf("carts.UpdateLineQuantity: %w", err)
		}

		line.Quantity = qty

		return nil
	})
	if err != nil {
		return line, fmt.Errorf("txm.WithinTx: %w", err)
	}

	return line, nil
}

// RemoveLine marks a line removed; it never deletes the row.
func (s *CartService) RemoveLine(ctx context.Context, principal domain.Principal, lineID uuid.UUID) error {
	if err := s.carts.RemoveLine(ctx, principal.UserID, lineID); err != nil {
		return fmt.Errorf("carts.RemoveLine: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": principal.UserID,
		"line_id": lineID,
	}).Info("cart line removed")

	return nil
}

func (s *CartService) Clear(ctx context.Context, principal domain.Principal) error {
	n, err := s.carts.SetActiveLinesStatus(ctx, principal.UserID, domain.CartLineStatusRemoved)
	if err != nil {
		return fmt.Errorf("carts.SetActiveLinesStatus: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": principal.UserID,
		"lines":   n,
	}).Info("cart cleared")

	return nil
}

// ownedActiveLine hides lines of other owners behind ErrNotFound.
func ownedActiveLine(ctx context.Context, carts port.CartRepository, principal domain.Principal, lineID uuid.UUID) (domain.CartLine, error) {
	line, err := carts.GetLine(ctx, lineID)
	if err != nil {
		return line, fmt.Errorf("carts.GetLine: %w", err)
	}

	if line.OwnerID != principal.UserID || line.Status != domain.CartLineStatusActive {
		return domain.CartLine{}, fmt.Errorf("cart line[%s]: %w", lineID, domain.ErrNotFound)
	}

	return line, nil
}
