package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Loads the requested foods, enforces the one-restaurant rule and creates the
// order in Placed status.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when event publishing is disabled.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the place-order command.
// The food set is loaded inside the transaction so the derived restaurant and
// the stored food references cannot drift apart.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foods, err := uow.RestaurantRepository().GetFoods(ctx, cmd.FoodIDs())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), foods, cmd.Note())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishChanged(ctx, h.publisher, newOrder)
	return nil
}
