package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignments.
//
// The table carries a uniqueness constraint on the order reference, which is
// what enforces "at most one assignment per order" under concurrent creation:
// CreateOrGet inserts optimistically and falls back to the surviving row on a
// unique violation instead of check-then-create. Every mutating write is
// preconditioned on the status the caller observed, so a stale write loses
// cleanly with Conflict instead of clobbering a concurrent transition.
type AssignmentRepository interface {
	// CreateOrGet inserts the assignment, or returns the existing record for
	// the same order when the uniqueness constraint fires. The created flag
	// reports which of the two happened.
	CreateOrGet(ctx context.Context, aggregate *dispatch.Assignment) (*dispatch.Assignment, bool, error)

	// Get retrieves an assignment by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.Assignment, error)

	// GetByOrder retrieves the assignment attached to an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*dispatch.Assignment, error)

	// Update persists the aggregate's state iff the stored status still
	// equals expectedStatus. A failed precondition yields Conflict.
	Update(ctx context.Context, aggregate *dispatch.Assignment, expectedStatus dispatch.Status) error

	// Delete removes the record iff the stored status still equals
	// expectedStatus. A failed precondition yields Conflict.
	Delete(ctx context.Context, id kernel.UUID, expectedStatus dispatch.Status) error

	// GetAllAvailable retrieves assignments claimable from the pool
	// (available or handed_over), oldest first.
	GetAllAvailable(ctx context.Context) ([]*dispatch.Assignment, error)

	// GetAllByAgent retrieves the assignments currently or previously held
	// by an agent.
	GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*dispatch.Assignment, error)
}
