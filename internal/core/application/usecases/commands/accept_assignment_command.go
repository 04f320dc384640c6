package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand claims an available delivery assignment for an
// agent. At most one agent can win the claim.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	agentID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates a command for an agent to claim an assignment.
func NewAcceptAssignmentCommand(assignmentID, agentID kernel.UUID) (AcceptAssignmentCommand, error) {
	cmd := AcceptAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment being claimed.
func (c AcceptAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// AgentID returns the claiming agent.
func (c AcceptAssignmentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AcceptAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *AcceptAssignmentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
