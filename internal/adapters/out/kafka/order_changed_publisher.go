// Package kafka publishes order lifecycle events to the message broker.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedMessage is the wire format of an order lifecycle event.
type orderChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderChangedPublisher writes ChangedEvents to the order-changed topic,
// keyed by order id so one order's events stay in one partition.
type OrderChangedPublisher struct {
	writer *kafka.Writer
}

// NewOrderChangedPublisher creates a publisher for the given brokers and topic.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish writes one lifecycle event to the topic.
func (p *OrderChangedPublisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	payload, err := json.Marshal(orderChangedMessage{
		OrderID:    event.OrderID.String(),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
	})
}

// Close flushes pending messages and releases the writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
