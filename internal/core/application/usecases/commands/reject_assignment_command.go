package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrRejectAssignmentCommandIsNotConstructed = errors.New(
	"RejectAssignmentCommand must be created via NewRejectAssignmentCommand constructor",
)

// RejectAssignmentCommand lets the holding agent decline an assignment they
// claimed but have not yet picked up. The order returns to the available pool.
type RejectAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	agentID      kernel.UUID
	notes        string

	guard guard.ConstructorGuard
}

// NewRejectAssignmentCommand creates a command for an agent to decline an
// assignment. Notes are optional.
func NewRejectAssignmentCommand(assignmentID, agentID kernel.UUID, notes string) (RejectAssignmentCommand, error) {
	cmd := RejectAssignmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAgentID(agentID),
	); err != nil {
		return RejectAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment being declined.
func (c RejectAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// AgentID returns the declining agent.
func (c RejectAssignmentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Notes returns the optional free-form reason.
func (c RejectAssignmentCommand) Notes() string {
	return c.notes
}

func (c *RejectAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *RejectAssignmentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
