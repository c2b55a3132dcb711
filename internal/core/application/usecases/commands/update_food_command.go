package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateFoodCommandIsNotConstructed = errors.New(
	"UpdateFoodCommand must be created via NewUpdateFoodCommand constructor",
)

// UpdateFoodCommand represents a merchant's request to rename or reprice a
// food on their menu.
type UpdateFoodCommand struct { //nolint:recvcheck //using for validation
	foodID     kernel.UUID
	actor      account.Actor
	name       string
	priceCents int64

	guard guard.ConstructorGuard
}

// NewUpdateFoodCommand creates a command to update a menu item.
func NewUpdateFoodCommand(
	foodID kernel.UUID,
	actor account.Actor,
	name string,
	priceCents int64,
) (UpdateFoodCommand, error) {
	cmd := UpdateFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodID(foodID),
		cmd.setActor(actor),
		cmd.setName(name),
		cmd.setPriceCents(priceCents),
	); err != nil {
		return UpdateFoodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodCommandIsNotConstructed)
}

// FoodID returns the identifier of the food to update.
func (c UpdateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Actor returns the merchant updating the food.
func (c UpdateFoodCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the new display name.
func (c UpdateFoodCommand) Name() string {
	return c.name
}

// PriceCents returns the new price in cents.
func (c UpdateFoodCommand) PriceCents() int64 {
	return c.priceCents
}

func (c *UpdateFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *UpdateFoodCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateFoodCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateFoodCommand) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.priceCents = priceCents
	return nil
}
