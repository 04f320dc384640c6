package redisnotifier_test

import (
	"encoding/json"
	"testing"
	"time"

	"pharmacy/internal/adapters/out/redisnotifier"
	"pharmacy/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish_DeliversEventToSubscribers(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher, err := redisnotifier.NewPublisher(client, "test:events")
	require.NoError(t, err)

	sub := client.Subscribe(t.Context(), "test:events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(t.Context())
	require.NoError(t, err)

	event := ports.NotificationEvent{
		Kind:         ports.NotificationAssignmentClaimed,
		OrderID:      "6f1c2a34-9e2b-4c1d-8a5e-2f3b4c5d6e7f",
		AssignmentID: "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9",
		AgentID:      "11112222-3333-4444-5555-666677778888",
		OccurredAt:   time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(t.Context(), event))

	msg, err := sub.ReceiveMessage(t.Context())
	require.NoError(t, err)

	var received ports.NotificationEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
	assert.Equal(t, event, received)
}

func TestPublisher_Publish_StampsMissingTimestamp(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher, err := redisnotifier.NewPublisher(client, "test:events")
	require.NoError(t, err)

	sub := client.Subscribe(t.Context(), "test:events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(t.Context())
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context(), ports.NotificationEvent{
		Kind:    ports.NotificationDeliveryCompleted,
		OrderID: "6f1c2a34-9e2b-4c1d-8a5e-2f3b4c5d6e7f",
	}))

	msg, err := sub.ReceiveMessage(t.Context())
	require.NoError(t, err)

	var received ports.NotificationEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &received))
	assert.False(t, received.OccurredAt.IsZero())
}

func TestNewPublisher_UnreachableServer_Fails(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	_, err := redisnotifier.NewPublisher(client, "")
	require.Error(t, err)
}

func TestNewPublisher_DefaultsChannel(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher, err := redisnotifier.NewPublisher(client, "")
	require.NoError(t, err)

	sub := client.Subscribe(t.Context(), "pharmacy:dispatch:events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err = sub.Receive(t.Context())
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(t.Context(), ports.NotificationEvent{
		Kind:    ports.NotificationAssignmentCreated,
		OrderID: "6f1c2a34-9e2b-4c1d-8a5e-2f3b4c5d6e7f",
	}))

	_, err = sub.ReceiveMessage(t.Context())
	require.NoError(t, err)
}
