package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for the catalog:
// restaurants and the foods on their menus.
type RestaurantRepository interface {
	// Add persists a new restaurant.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetByMerchant retrieves the merchant's restaurant. The merchant relation
	// is one-to-one; returns errs.ObjectNotFoundError when the merchant has
	// not created one yet.
	GetByMerchant(ctx context.Context, merchantID kernel.UUID) (*restaurant.Restaurant, error)

	// AddFood persists a new food on a restaurant's menu.
	AddFood(ctx context.Context, food *restaurant.Food) error

	// UpdateFood persists changes to an existing food.
	UpdateFood(ctx context.Context, food *restaurant.Food) error

	// GetFood retrieves a single food by its unique identifier.
	GetFood(ctx context.Context, id kernel.UUID) (*restaurant.Food, error)

	// GetFoods retrieves the foods with the given identifiers. Every id must
	// resolve; a missing id yields errs.ObjectNotFoundError.
	GetFoods(ctx context.Context, ids []kernel.UUID) ([]*restaurant.Food, error)
}
