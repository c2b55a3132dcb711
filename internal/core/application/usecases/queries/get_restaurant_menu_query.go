package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves the foods on one restaurant's menu.
type GetRestaurantMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a query for a restaurant's menu.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the menu's restaurant.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// GetRestaurantMenuQueryResponse is one menu row. PriceCents is the price in
// cents; presentation layers format it.
type GetRestaurantMenuQueryResponse struct {
	ID         kernel.UUID
	Name       string
	PriceCents int64
}
