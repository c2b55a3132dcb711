package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddFoodCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	r := newTestRestaurant(t, merchantID)
	actor := newTestActor(t, merchantID, true)
	cmd, err := commands.NewAddFoodCommand(kernel.NewUUID(), r.ID(), actor, "Margherita", 1250)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		restaurantRepo.On("AddFood", mock.Anything, mock.AnythingOfType("*restaurant.Food")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddFoodCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	r := newTestRestaurant(t, kernel.NewUUID())
	foreign := newTestActor(t, kernel.NewUUID(), true)
	cmd, err := commands.NewAddFoodCommand(kernel.NewUUID(), r.ID(), foreign, "Margherita", 1250)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	restaurantRepo.AssertNotCalled(t, "AddFood", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewAddFoodCommand_NegativePrice(t *testing.T) {
	actor := newTestActor(t, kernel.NewUUID(), true)

	_, err := commands.NewAddFoodCommand(kernel.NewUUID(), kernel.NewUUID(), actor, "Margherita", -1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateFoodCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	merchantID := kernel.NewUUID()
	r := newTestRestaurant(t, merchantID)
	food := newTestFood(t, r.ID(), "Margherita")
	actor := newTestActor(t, merchantID, true)
	cmd, err := commands.NewUpdateFoodCommand(food.ID(), actor, "Margherita Grande", 1450)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFood", mock.Anything, food.ID()).Return(food, nil).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		restaurantRepo.On("UpdateFood", mock.Anything, food).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Margherita Grande", food.Name())
	assert.Equal(t, int64(1450), food.Price().Cents())
	uow.AssertExpectations(t)
}

func TestUpdateFoodCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	r := newTestRestaurant(t, kernel.NewUUID())
	food := newTestFood(t, r.ID(), "Margherita")
	foreign := newTestActor(t, kernel.NewUUID(), true)
	cmd, err := commands.NewUpdateFoodCommand(food.ID(), foreign, "Hijacked", 1)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetFood", mock.Anything, food.ID()).Return(food, nil).Once(),
		restaurantRepo.On("Get", mock.Anything, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateFoodCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "Margherita", food.Name())
	uow.AssertExpectations(t)
}
