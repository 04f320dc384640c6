package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The agent pointer is the order's only contended field; the claim and
// release operations below write it with a single conditional update keyed on
// the current pointer value, which is what keeps two agents from both
// claiming a freshly dispatchable order.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order record. Callers guard deletability through
	// the aggregate before invoking this.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllDispatchable retrieves orders in out_for_delivery status that
	// have no delivery assignment yet. Used by the assignment sweep.
	GetAllDispatchable(ctx context.Context) ([]*order.Order, error)

	// ClaimAgent atomically writes the agent pointer iff the order is in a
	// dispatchable-or-assigned status and the pointer is nil or already the
	// claiming agent. Losing the race yields Conflict; a non-claimable
	// status yields InvalidTransition.
	ClaimAgent(ctx context.Context, orderID kernel.UUID, agentID kernel.UUID) error

	// ReassignAgent atomically moves the agent pointer from one holder to
	// another; the precondition is the current holder. Used by handover.
	ReassignAgent(ctx context.Context, orderID kernel.UUID, fromAgentID, toAgentID kernel.UUID) error

	// ReleaseAgent atomically clears the agent pointer held by fromAgentID
	// and returns the order to out_for_delivery.
	ReleaseAgent(ctx context.Context, orderID kernel.UUID, fromAgentID kernel.UUID) error
}
