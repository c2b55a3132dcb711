package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// CancelOrderCommandHandler handles cancellation for both parties.
// The placing customer and the owning merchant follow the same state rule:
// cancellation is only possible while the order is unaccepted.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancel-order command.
// The actor must be the placing customer or the merchant owning the order's
// restaurant; anyone else is forbidden regardless of the order's state.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !services.IsOrderCustomer(cmd.Actor(), cancelledOrder) {
		restaurantOfOrder, restErr := orderRestaurant(ctx, uow.RestaurantRepository(), cancelledOrder)
		if restErr != nil {
			return restErr
		}
		if !services.IsOrderMerchant(cmd.Actor(), restaurantOfOrder) {
			return errs.NewForbiddenError("cancel order", cmd.Actor().ID().String())
		}
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishChanged(ctx, h.publisher, cancelledOrder)
	return nil
}
