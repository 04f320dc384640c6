package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetAvailableAssignmentsQueryIsNotConstructed = errors.New(
	"GetAvailableAssignmentsQuery must be created via NewGetAvailableAssignmentsQuery constructor",
)

// GetAvailableAssignmentsQuery retrieves the delivery assignments an agent
// can claim right now: the open pool plus parked handovers.
type GetAvailableAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableAssignmentsQuery creates a query for claimable assignments.
func NewGetAvailableAssignmentsQuery() GetAvailableAssignmentsQuery {
	return GetAvailableAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableAssignmentsQueryIsNotConstructed)
}

// GetAvailableAssignmentsQueryResponse is the read model of one claimable
// assignment. HandoverReason is set only for parked handovers.
type GetAvailableAssignmentsQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Status         string
	IsHandover     bool
	HandoverReason string
	CreatedAt      time.Time
}
