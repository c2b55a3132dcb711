package commands

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// ApproveDeliveryCommandHandler handles the customer's delivery confirmation.
// Only the placing customer may confirm, and only for an accepted order.
type ApproveDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewApproveDeliveryCommandHandler creates a handler for delivery confirmation.
func NewApproveDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ApproveDeliveryCommandHandler {
	return ApproveDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the approve-delivery command.
func (h *ApproveDeliveryCommandHandler) Handle(ctx context.Context, cmd ApproveDeliveryCommand) error {
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

	deliveredOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = services.AuthorizeOrderCustomer("approve delivery", cmd.Actor(), deliveredOrder); err != nil {
		return err
	}

	if err = deliveredOrder.ApproveDelivered(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishChanged(ctx, h.publisher, deliveredOrder)
	return nil
}
