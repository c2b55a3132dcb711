package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the lifecycle state of an order, derived from its three boolean
// flags rather than stored. The flags remain the single source of truth; the
// derivation is:
//
//	cancelled            -> Cancelled
//	delivered            -> Delivered
//	accepted             -> Accepted
//	none of the above    -> Placed
//
// Cancelled and Delivered are terminal: no further transitions are permitted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status: the customer has placed the order and the
	// merchant has not yet accepted or cancelled it.
	Placed

	// Accepted indicates the merchant accepted the order and committed to a
	// delivery-time estimate. Accepted orders can no longer be cancelled.
	Accepted

	// Cancelled is a terminal status reached from Placed only, by either the
	// customer or the merchant.
	Cancelled

	// Delivered is a terminal status: the customer confirmed delivery of an
	// accepted order.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Accepted:  "Accepted",
		Cancelled: "Cancelled",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "Placed",
		Accepted:  "Accepted",
		Cancelled: "Cancelled",
		Delivered: "Delivered",
	}
}

// StatusFromFlags derives the Status from the lifecycle flags.
func StatusFromFlags(accepted, cancelled, delivered bool) Status {
	switch {
	case cancelled:
		return Cancelled
	case delivered:
		return Delivered
	case accepted:
		return Accepted
	default:
		return Placed
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Delivered
}
