// Package kafka announces order lifecycle changes to other systems over
// the message bus.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of the kafka client the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderChangedEvent is the wire format of an order lifecycle announcement.
// Consumers key on OrderID, so all events for one order land in one
// partition and arrive in publish order.
type OrderChangedEvent struct {
	OrderID          string    `json:"order_id"`
	OrderNumber      int64     `json:"order_number"`
	CustomerID       string    `json:"customer_id"`
	Status           string    `json:"status"`
	CancelledByAdmin bool      `json:"cancelled_by_admin"`
	TotalPrice       int64     `json:"total_price"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// OrderEventPublisher emits order changed events to a Kafka topic.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
// Brokers is a comma separated host:port list.
func NewOrderEventPublisher(brokers, topic string) (*OrderEventPublisher, error) {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &OrderEventPublisher{writer: writer}, nil
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// PublishOrderChanged emits an event describing the order's current state.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderChangedEvent{
		OrderID:          aggregate.ID().String(),
		OrderNumber:      aggregate.OrderNumber(),
		CustomerID:       aggregate.CustomerID().String(),
		Status:           aggregate.Status().String(),
		CancelledByAdmin: aggregate.CancelledByAdmin(),
		TotalPrice:       aggregate.TotalPrice(),
		OccurredAt:       time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish order changed event for %s: %w", event.OrderID, err)
	}

	return nil
}

// Close releases the underlying writer's resources.
func (p *OrderEventPublisher) Close() error {
	if closer, ok := p.writer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func splitBrokers(brokers string) []string {
	addrs := make([]string, 0)
	for _, b := range strings.Split(brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			addrs = append(addrs, b)
		}
	}
	return addrs
}
