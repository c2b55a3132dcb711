package queries

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// StatusFilter narrows order listings by lifecycle state. Active means
// neither cancelled nor delivered, covering both placed and accepted orders.
type StatusFilter int

const (
	// FilterUnknown represents an invalid or undefined filter.
	FilterUnknown StatusFilter = iota

	// FilterAll lists every order regardless of state.
	FilterAll

	// FilterActive lists orders still in flight: placed or accepted.
	FilterActive

	// FilterCancelled lists cancelled orders.
	FilterCancelled

	// FilterDelivered lists delivered orders.
	FilterDelivered
)

func getFilterStrings() map[StatusFilter]string {
	return map[StatusFilter]string{
		FilterAll:       "all",
		FilterActive:    "active",
		FilterCancelled: "cancelled",
		FilterDelivered: "delivered",
	}
}

// StatusFilterFromString parses a filter name as it appears in request paths.
func StatusFilterFromString(s string) (StatusFilter, error) {
	for filter, name := range getFilterStrings() {
		if name == s {
			return filter, nil
		}
	}
	return FilterUnknown, errs.NewValueIsInvalidErrorWithCause("filter",
		fmt.Errorf("%q is not a valid status filter", s))
}

// Validate checks that the filter is one of the defined values.
func (f StatusFilter) Validate() error {
	if _, ok := getFilterStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("filter",
			fmt.Errorf("%d is not a valid status filter", f))
	}
	return nil
}

// String returns the filter's request-path name.
func (f StatusFilter) String() string {
	if s, ok := getFilterStrings()[f]; ok {
		return s
	}
	return "unknown"
}

// condition returns the SQL predicate over the lifecycle flags.
func (f StatusFilter) condition() string {
	switch f {
	case FilterActive:
		return "NOT cancelled AND NOT delivered"
	case FilterCancelled:
		return "cancelled"
	case FilterDelivered:
		return "delivered"
	default:
		return "TRUE"
	}
}
