// Package redisnotifier publishes dispatch notification events to a Redis
// pub/sub channel. The customer-facing notification service consumes the
// channel; this side never waits for a subscriber.
package redisnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pharmacy/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const defaultChannel = "pharmacy:dispatch:events"

// Publisher implements NotificationPublisher over a Redis channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher creates a publisher and verifies the connection once.
func NewPublisher(client *redis.Client, channel string) (*Publisher, error) {
	if channel == "" {
		channel = defaultChannel
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Publisher{client: client, channel: channel}, nil
}

// Publish sends the event as JSON on the configured channel.
func (p *Publisher) Publish(ctx context.Context, event ports.NotificationEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish notification event: %w", err)
	}

	return nil
}
