package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// AcceptOrderCommandHandler handles the merchant-side acceptance transition.
// Only the merchant owning the order's restaurant may accept, and only while
// the order is still placed.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the accept-order command.
// Authorization is checked before the state rule: a non-owning actor gets a
// forbidden error even when the transition itself would also conflict.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	acceptedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restaurantOfOrder, err := orderRestaurant(ctx, uow.RestaurantRepository(), acceptedOrder)
	if err != nil {
		return err
	}

	if err = services.AuthorizeOrderMerchant("accept order", cmd.Actor(), restaurantOfOrder); err != nil {
		return err
	}

	if err = acceptedOrder.Accept(cmd.TimeToDeliver()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, acceptedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishChanged(ctx, h.publisher, acceptedOrder)
	return nil
}
