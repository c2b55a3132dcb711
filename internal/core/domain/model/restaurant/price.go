package restaurant

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Price is a non-negative amount of money stored as integer cents.
// Using cents avoids floating point drift in menu prices; formatting back to
// a decimal string is a display concern.
type Price struct {
	cents int64
}

// NewPrice creates a Price from an amount in cents. Negative amounts are rejected.
func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Price{cents: cents}, nil
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// String renders the price as a decimal amount, e.g. "12.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual reports whether two prices are the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}
