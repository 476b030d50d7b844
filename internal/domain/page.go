package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPageNumber keeps Offset within an INTEGER OFFSET.
	MaxPageNumber = math.MaxInt32/MaxPageSize + 1
)

// Page is 1-based.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPageNumber {
		number = MaxPageNumber
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Pages is the number of pages needed for total rows.
func (p Page) Pages(total int) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}
