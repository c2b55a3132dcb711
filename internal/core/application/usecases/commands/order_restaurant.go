package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/core/ports"
)

// orderRestaurant resolves the restaurant an order was placed against by
// loading its food set and deriving the uniform restaurant id. The restaurant
// is never stored on the order, so merchant-side authorization recomputes it
// on every transition.
func orderRestaurant(ctx context.Context, repo ports.RestaurantRepository, o *order.Order) (*restaurant.Restaurant, error) {
	foods, err := repo.GetFoods(ctx, o.FoodIDs())
	if err != nil {
		return nil, err
	}

	restaurantID, err := order.DeriveRestaurantID(foods)
	if err != nil {
		return nil, err
	}

	return repo.Get(ctx, restaurantID)
}

// publishChanged emits a lifecycle event after the owning transaction has
// committed. Best effort: a failed publish is logged and swallowed so the
// already-committed transition is still reported as successful.
func publishChanged(ctx context.Context, publisher ports.OrderEventPublisher, o *order.Order) {
	if publisher == nil {
		return
	}

	event := order.NewChangedEvent(o)
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish order changed event",
			"orderID", event.OrderID.String(),
			"status", event.Status.String(),
			"error", err)
	}
}
