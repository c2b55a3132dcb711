package commands_test

import (
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	foods := []*restaurant.Food{
		newTestFood(t, restaurantID, "Margherita"),
		newTestFood(t, restaurantID, "Tiramisu"),
	}
	actor := newTestActor(t, kernel.NewUUID(), false)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, foodIDsOf(foods), "ring twice")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFoods", mock.Anything, mock.Anything).Return(foods, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("order.ChangedEvent")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_MixedRestaurants(t *testing.T) {
	ctx := t.Context()
	foods := []*restaurant.Food{
		newTestFood(t, kernel.NewUUID(), "Margherita"),
		newTestFood(t, kernel.NewUUID(), "Pad Thai"),
	}
	actor := newTestActor(t, kernel.NewUUID(), false)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, foodIDsOf(foods), "")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFoods", mock.Anything, mock.Anything).Return(foods, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_UnknownFood(t *testing.T) {
	ctx := t.Context()
	actor := newTestActor(t, kernel.NewUUID(), false)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor,
		[]kernel.UUID{kernel.NewUUID()}, "")
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFoods", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("foodID", kernel.NewUUID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	foods := []*restaurant.Food{newTestFood(t, restaurantID, "Margherita")}
	actor := newTestActor(t, kernel.NewUUID(), false)
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, foodIDsOf(foods), "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFoods", mock.Anything, mock.Anything).Return(foods, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
