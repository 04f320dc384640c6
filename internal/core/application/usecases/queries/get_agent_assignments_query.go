package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetAgentAssignmentsQueryIsNotConstructed = errors.New(
	"GetAgentAssignmentsQuery must be created via NewGetAgentAssignmentsQuery constructor",
)

// GetAgentAssignmentsQuery retrieves the assignments held by one delivery
// agent, optionally restricted to finished deliveries.
type GetAgentAssignmentsQuery struct { //nolint:recvcheck //using for validation
	agentID       kernel.UUID
	completedOnly bool

	guard guard.ConstructorGuard
}

// NewGetAgentAssignmentsQuery creates a query for one agent's workload.
// With completedOnly the result is restricted to delivered and failed jobs.
func NewGetAgentAssignmentsQuery(agentID kernel.UUID, completedOnly bool) (GetAgentAssignmentsQuery, error) {
	q := GetAgentAssignmentsQuery{
		completedOnly: completedOnly,
		guard:         guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentAssignmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentAssignmentsQueryIsNotConstructed)
}

// AgentID returns the agent whose assignments are requested.
func (q GetAgentAssignmentsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// CompletedOnly reports whether the result is restricted to finished jobs.
func (q GetAgentAssignmentsQuery) CompletedOnly() bool {
	return q.completedOnly
}

func (q *GetAgentAssignmentsQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}

// GetAgentAssignmentsQueryResponse is the read model of one assignment in an
// agent's list.
type GetAgentAssignmentsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Status      string
	Notes       string
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	FailedAt    *time.Time
}
