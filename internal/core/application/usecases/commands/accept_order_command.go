package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a merchant's request to accept a placed order
// with a committed delivery-time estimate in minutes.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         account.Actor
	timeToDeliver int

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
// The estimate must be at least order.MinTimeToDeliver minutes.
func NewAcceptOrderCommand(orderID kernel.UUID, actor account.Actor, timeToDeliver int) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTimeToDeliver(timeToDeliver),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the merchant accepting the order.
func (c AcceptOrderCommand) Actor() account.Actor {
	return c.actor
}

// TimeToDeliver returns the delivery estimate in minutes.
func (c AcceptOrderCommand) TimeToDeliver() int {
	return c.timeToDeliver
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AcceptOrderCommand) setTimeToDeliver(timeToDeliver int) error {
	if timeToDeliver < order.MinTimeToDeliver {
		return errs.NewValueIsInvalidErrorWithCause("timeToDeliver",
			fmt.Errorf("%d is less than %d minute", timeToDeliver, order.MinTimeToDeliver))
	}

	c.timeToDeliver = timeToDeliver
	return nil
}
