package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// CreateRestaurantCommandHandler handles restaurant registration.
// Only merchants may register, and each merchant may own at most one
// restaurant.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create-restaurant command.
// The one-restaurant-per-merchant check runs inside the transaction so two
// concurrent registrations cannot both pass it.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.AuthorizeMerchant("create restaurant", cmd.Actor()); err != nil {
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

	_, err := repo.GetByMerchant(ctx, cmd.Actor().ID())
	if err == nil {
		return errs.NewConflictError("create restaurant", "merchant already has a restaurant")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.Actor().ID(),
		cmd.Name(), cmd.FoodType(), cmd.City(), cmd.Address(),
		cmd.Geo(), cmd.Hours(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
