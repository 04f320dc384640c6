package ports

import (
	"context"
	"time"
)

// Notification event kinds published by the dispatch workflow.
const (
	NotificationAssignmentCreated = "assignment_created"
	NotificationAssignmentClaimed = "assignment_claimed"
	NotificationHandover          = "assignment_handover"
	NotificationDeliveryCompleted = "delivery_completed"
	NotificationDeliveryFailed    = "delivery_failed"
)

// NotificationEvent is the fire-and-forget payload handed to the notification
// sink after a dispatch state change.
type NotificationEvent struct {
	Kind         string    `json:"kind"`
	OrderID      string    `json:"order_id"`
	AssignmentID string    `json:"assignment_id,omitempty"`
	AgentID      string    `json:"agent_id,omitempty"`
	Detail       string    `json:"detail,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NotificationPublisher is the external notification sink. Publishing is
// strictly fire-and-forget: a publish failure is logged by the caller and
// never rolls back the state change that triggered it.
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}
