package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"phonemechanic-system/internal/pos"
)

const (
	EventOrderCreated = "order.created"

	channelPrefix = "pos:events:"
	channelAll    = "pos:events:all"
)

type OrderEvent struct {
	EventType    string    `json:"event_type"`
	OrderID      string    `json:"order_id"`
	OrderType    string    `json:"order_type"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  string    `json:"total_amount"`
	BalanceDue   string    `json:"balance_due"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher fans order lifecycle events out over redis pub/sub, on both the
// per-type channel and the firehose channel. A nil Publisher is a no-op so
// the server runs without a broker.
type Publisher struct {
	redis *redis.Client
}

func NewPublisher(redisClient *redis.Client) *Publisher {
	return &Publisher{redis: redisClient}
}

func (p *Publisher) OrderCreated(ctx context.Context, order pos.Order) error {
	if p == nil {
		return nil
	}
	return p.publish(ctx, OrderEvent{
		EventType:    EventOrderCreated,
		OrderID:      order.ID,
		OrderType:    string(order.Type),
		CustomerName: order.Customer.Name,
		TotalAmount:  order.TotalAmount.StringFixed(2),
		BalanceDue:   order.BalanceDue.StringFixed(2),
		Status:       string(order.Status),
		Location:     order.Location,
		Timestamp:    time.Now(),
	})
}

func (p *Publisher) publish(ctx context.Context, event OrderEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := channelPrefix + event.EventType
	if err := p.redis.Publish(ctx, channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := p.redis.Publish(ctx, channelAll, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to all channel: %w", err)
	}

	return nil
}
