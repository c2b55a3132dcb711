package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// ChangedEvent describes a completed lifecycle transition, published to the
// order-changed topic after the owning transaction commits.
type ChangedEvent struct {
	OrderID    kernel.UUID
	Status     Status
	OccurredAt time.Time
}

// NewChangedEvent captures the order's current status as a ChangedEvent.
func NewChangedEvent(o *Order) ChangedEvent {
	return ChangedEvent{
		OrderID:    o.ID(),
		Status:     o.Status(),
		OccurredAt: time.Now().UTC(),
	}
}
