package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a merchant's request to register their
// restaurant. A merchant owns at most one restaurant; the handler rejects a
// second registration.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	actor        account.Actor
	name         string
	foodType     string
	city         string
	address      string
	geo          *restaurant.Geo
	hours        *restaurant.Hours

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// geo and hours are optional; detailed field validation happens in the
// restaurant constructor inside the handler.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	actor account.Actor,
	name, foodType, city, address string,
	geo *restaurant.Geo,
	hours *restaurant.Hours,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		geo:   geo,
		hours: hours,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setFoodType(foodType),
		cmd.setCity(city),
		cmd.setAddress(address),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Actor returns the merchant registering the restaurant.
func (c CreateRestaurantCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// FoodType returns the restaurant's food category.
func (c CreateRestaurantCommand) FoodType() string {
	return c.foodType
}

// City returns the city the restaurant operates in.
func (c CreateRestaurantCommand) City() string {
	return c.city
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Geo returns the optional coordinates, or nil.
func (c CreateRestaurantCommand) Geo() *restaurant.Geo {
	return c.geo
}

// Hours returns the optional opening window, or nil.
func (c CreateRestaurantCommand) Hours() *restaurant.Hours {
	return c.hours
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setFoodType(foodType string) error {
	if foodType == "" {
		return errs.NewValueIsRequiredError("foodType")
	}

	c.foodType = foodType
	return nil
}

func (c *CreateRestaurantCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
