package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type CartLineStatus string

const (
	CartLineStatusActive     CartLineStatus = "active"
	CartLineStatusRemoved    CartLineStatus = "removed"
	CartLineStatusCheckedOut CartLineStatus = "checked_out"
)

var validCartLineStatuses = map[CartLineStatus]struct{}{
	CartLineStatusActive:     {},
	CartLineStatusRemoved:    {},
	CartLineStatusCheckedOut: {},
}

func ToCartLineStatus(s string) (CartLineStatus, error) {
	status := CartLineStatus(s)
	if _, ok := validCartLineStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid cart line status")
}

type Cart struct {
	OwnerID uuid.UUID
	Lines   []CartLine
}

type CartLine struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	PriceAtAdd Money
	Status     CartLineStatus

	// read side only, joined from the catalog
	ProductName     string
	ProductImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l CartLine) Total() Money {
	return l.PriceAtAdd.Mul(l.Quantity)
}

// Total sums price snapshots, never the current catalog prices.
func (c Cart) Total(cur currency.Unit) (Money, error) {
	total := ZeroMoney(cur)

	for _, line := range c.Lines {
		var err error
		total, err = total.Add(line.Total())
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func (c Cart) ItemCount() int {
	return len(c.Lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
