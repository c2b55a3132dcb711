// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregates; they never modify state.
package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves the restaurant catalog for browsing.
// An empty city returns all restaurants; a non-empty city filters to it.
type GetRestaurantsQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query to list restaurants, optionally
// filtered by city.
func NewGetRestaurantsQuery(city string) GetRestaurantsQuery {
	return GetRestaurantsQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// City returns the city filter, empty for no filter.
func (q GetRestaurantsQuery) City() string {
	return q.city
}

// GetRestaurantsQueryResponse is one catalog row.
type GetRestaurantsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	FoodType string
	City     string
	Address  string
}
