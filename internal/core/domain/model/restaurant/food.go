package restaurant

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrFoodIsNotConstructed is returned when a Food instance was not created
// through the NewFood factory method.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is a menu item belonging to exactly one restaurant. Orders reference
// foods by id; the restaurant of an order is derived from its food items, so
// the RestaurantID here is the single source of truth for that association.
type Food struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        Price

	isConstructed bool
}

// NewFood creates a validated menu item for the given restaurant.
func NewFood(id kernel.UUID, restaurantID kernel.UUID, name string, price Price) (*Food, error) {
	f := &Food{
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setRestaurantID(restaurantID),
		f.setName(name),
	); err != nil {
		return nil, err
	}

	f.price = price
	return f, nil
}

// Validate ensures the Food was constructed via NewFood.
func (f *Food) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// IsEqual compares two foods by identifier.
func (f *Food) IsEqual(other *Food) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the food's unique identifier.
func (f *Food) ID() kernel.UUID {
	return f.id
}

// RestaurantID returns the id of the restaurant this food belongs to.
func (f *Food) RestaurantID() kernel.UUID {
	return f.restaurantID
}

// Name returns the menu item's name.
func (f *Food) Name() string {
	return f.name
}

// Price returns the menu item's price.
func (f *Food) Price() Price {
	return f.price
}

// Rename updates the menu item's name. Only the owning merchant may reach
// this through the update-food use case.
func (f *Food) Rename(name string) error {
	return f.setName(name)
}

// Reprice updates the menu item's price.
func (f *Food) Reprice(price Price) {
	f.price = price
}

func (f *Food) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	f.restaurantID = restaurantID
	return nil
}

func (f *Food) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

// RestoreFood reconstructs a Food from persistence.
func RestoreFood(id kernel.UUID, restaurantID kernel.UUID, name string, price Price) (*Food, error) {
	return NewFood(id, restaurantID, name, price)
}
