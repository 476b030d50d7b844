package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

func mapMoney(amount decimal.Decimal, currencyCode string) (domain.Money, error) {
	// CHAR(3) columns come back space padded
	code := strings.TrimSpace(currencyCode)

	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: parsedCurrency}, nil
}

func emptySliceIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// toInt32 narrows v for an INTEGER column, out of range values are rejected instead of wrapped.
func toInt32(name string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s[%d] is out of range", domain.ErrValidation, name, v)
	}
	return int32(v), nil
}
