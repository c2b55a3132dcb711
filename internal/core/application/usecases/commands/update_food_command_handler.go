package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// UpdateFoodCommandHandler handles renaming and repricing menu items.
// The actor must own the restaurant the food belongs to.
type UpdateFoodCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateFoodCommandHandler creates a handler for menu updates.
func NewUpdateFoodCommandHandler(uowFactory RestaurantUoWFactory) UpdateFoodCommandHandler {
	return UpdateFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-food command.
func (h *UpdateFoodCommandHandler) Handle(ctx context.Context, cmd UpdateFoodCommand) error {
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

	repo := uow.RestaurantRepository()

	food, err := repo.GetFood(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	menuRestaurant, err := repo.Get(ctx, food.RestaurantID())
	if err != nil {
		return err
	}

	if !services.OwnsFood(cmd.Actor(), menuRestaurant, food) {
		return errs.NewForbiddenError("update food", cmd.Actor().ID().String())
	}

	price, err := restaurant.NewPrice(cmd.PriceCents())
	if err != nil {
		return err
	}

	if err = food.Rename(cmd.Name()); err != nil {
		return err
	}
	food.Reprice(price)

	if err = repo.UpdateFood(ctx, food); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
