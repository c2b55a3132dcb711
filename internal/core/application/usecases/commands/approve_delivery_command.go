package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrApproveDeliveryCommandIsNotConstructed = errors.New(
	"ApproveDeliveryCommand must be created via NewApproveDeliveryCommand constructor",
)

// ApproveDeliveryCommand represents the customer's confirmation that an
// accepted order has arrived.
type ApproveDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewApproveDeliveryCommand creates a command to confirm delivery of an order.
func NewApproveDeliveryCommand(orderID kernel.UUID, actor account.Actor) (ApproveDeliveryCommand, error) {
	cmd := ApproveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ApproveDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (c ApproveDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the customer confirming the delivery.
func (c ApproveDeliveryCommand) Actor() account.Actor {
	return c.actor
}

func (c *ApproveDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveDeliveryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
