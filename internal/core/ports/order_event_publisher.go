package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Publishing happens after the owning transaction commits and is best effort:
// a failed publish is logged, never rolled back into the transition.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event order.ChangedEvent) error
}
