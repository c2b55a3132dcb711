package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to place a new order for
// a set of foods from one restaurant.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, actor, foodIDs, "no onions")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor
	foodIDs []kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order id, actor and food id list are well formed; the
// one-restaurant rule is checked by the handler against the loaded foods.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	actor account.Actor,
	foodIDs []kernel.UUID,
	note string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setFoodIDs(foodIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the customer placing the order.
func (c PlaceOrderCommand) Actor() account.Actor {
	return c.actor
}

// FoodIDs returns the ids of the requested foods.
func (c PlaceOrderCommand) FoodIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.foodIDs))
	copy(ids, c.foodIDs)
	return ids
}

// Note returns the customer's free-text note.
func (c PlaceOrderCommand) Note() string {
	return c.note
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setFoodIDs(foodIDs []kernel.UUID) error {
	if len(foodIDs) == 0 {
		return errs.NewValueIsRequiredError("foods")
	}
	for _, id := range foodIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.foodIDs = make([]kernel.UUID, len(foodIDs))
	copy(c.foodIDs, foodIDs)
	return nil
}
