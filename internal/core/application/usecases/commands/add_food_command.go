package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddFoodCommandIsNotConstructed = errors.New(
	"AddFoodCommand must be created via NewAddFoodCommand constructor",
)

// AddFoodCommand represents a merchant's request to add a food to their
// restaurant's menu.
type AddFoodCommand struct { //nolint:recvcheck //using for validation
	foodID       kernel.UUID
	restaurantID kernel.UUID
	actor        account.Actor
	name         string
	priceCents   int64

	guard guard.ConstructorGuard
}

// NewAddFoodCommand creates a command to add a menu item.
// The price is given in cents and must not be negative.
func NewAddFoodCommand(
	foodID kernel.UUID,
	restaurantID kernel.UUID,
	actor account.Actor,
	name string,
	priceCents int64,
) (AddFoodCommand, error) {
	cmd := AddFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodID(foodID),
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setPriceCents(priceCents),
	); err != nil {
		return AddFoodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFoodCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodCommandIsNotConstructed)
}

// FoodID returns the unique identifier for the new food.
func (c AddFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

// RestaurantID returns the menu's restaurant.
func (c AddFoodCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Actor returns the merchant adding the food.
func (c AddFoodCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the food's display name.
func (c AddFoodCommand) Name() string {
	return c.name
}

// PriceCents returns the food's price in cents.
func (c AddFoodCommand) PriceCents() int64 {
	return c.priceCents
}

func (c *AddFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddFoodCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddFoodCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddFoodCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *AddFoodCommand) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.priceCents = priceCents
	return nil
}
