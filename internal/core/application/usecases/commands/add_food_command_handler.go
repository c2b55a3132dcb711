package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
)

// AddFoodCommandHandler handles adding a food to a restaurant's menu.
// The actor must be the merchant owning the restaurant.
type AddFoodCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddFoodCommandHandler creates a handler for menu additions.
func NewAddFoodCommandHandler(uowFactory RestaurantUoWFactory) AddFoodCommandHandler {
	return AddFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-food command.
func (h *AddFoodCommandHandler) Handle(ctx context.Context, cmd AddFoodCommand) error {
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

	menuRestaurant, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = services.AuthorizeRestaurantOwner("add food", cmd.Actor(), menuRestaurant); err != nil {
		return err
	}

	price, err := restaurant.NewPrice(cmd.PriceCents())
	if err != nil {
		return err
	}

	food, err := restaurant.NewFood(cmd.FoodID(), menuRestaurant.ID(), cmd.Name(), price)
	if err != nil {
		return err
	}

	if err = repo.AddFood(ctx, food); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
