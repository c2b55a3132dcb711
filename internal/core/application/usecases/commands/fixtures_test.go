package commands_test

import (
	"testing"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/require"
)

func newTestActor(t *testing.T, id kernel.UUID, isMerchant bool) account.Actor {
	t.Helper()
	actor, err := account.NewActor(id, false, isMerchant)
	require.NoError(t, err)
	return actor
}

func newTestRestaurant(t *testing.T, merchantID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), merchantID,
		"Trattoria", "Italian", "Berlin", "Hauptstrasse 1", nil, nil)
	require.NoError(t, err)
	return r
}

func newTestFood(t *testing.T, restaurantID kernel.UUID, name string) *restaurant.Food {
	t.Helper()
	price, err := restaurant.NewPrice(1250)
	require.NoError(t, err)
	f, err := restaurant.NewFood(kernel.NewUUID(), restaurantID, name, price)
	require.NoError(t, err)
	return f
}

func newTestOrder(t *testing.T, customerID kernel.UUID, foods []*restaurant.Food) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, foods, "")
	require.NoError(t, err)
	return o
}

func foodIDsOf(foods []*restaurant.Food) []kernel.UUID {
	ids := make([]kernel.UUID, len(foods))
	for i, f := range foods {
		ids[i] = f.ID()
	}
	return ids
}
