package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrHandoverAssignmentCommandIsNotConstructed = errors.New(
	"HandoverAssignmentCommand must be created via NewHandoverAssignmentCommand constructor",
)

// HandoverAssignmentCommand transfers an in-progress assignment away from its
// holding agent, either directly to a named colleague or back into an open
// pool any agent can claim. A reason is always required for the audit trail.
type HandoverAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	fromAgentID  kernel.UUID
	toAgentID    *kernel.UUID
	reason       string
	details      string

	guard guard.ConstructorGuard
}

// NewHandoverAssignmentCommand creates a command to hand an assignment over.
// A nil toAgentID parks the assignment in the open pool.
func NewHandoverAssignmentCommand(
	assignmentID kernel.UUID,
	fromAgentID kernel.UUID,
	toAgentID *kernel.UUID,
	reason string,
	details string,
) (HandoverAssignmentCommand, error) {
	cmd := HandoverAssignmentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setFromAgentID(fromAgentID),
		cmd.setToAgentID(toAgentID),
		cmd.setReason(reason),
	); err != nil {
		return HandoverAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandoverAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrHandoverAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment being handed over.
func (c HandoverAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// FromAgentID returns the current holder.
func (c HandoverAssignmentCommand) FromAgentID() kernel.UUID {
	return c.fromAgentID
}

// ToAgentID returns the receiving agent, or nil for an open-pool handover.
func (c HandoverAssignmentCommand) ToAgentID() *kernel.UUID {
	return c.toAgentID
}

// Reason returns the mandatory handover reason.
func (c HandoverAssignmentCommand) Reason() string {
	return c.reason
}

// Details returns optional free-form handover details.
func (c HandoverAssignmentCommand) Details() string {
	return c.details
}

func (c *HandoverAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *HandoverAssignmentCommand) setFromAgentID(fromAgentID kernel.UUID) error {
	if err := fromAgentID.Validate(); err != nil {
		return err
	}
	c.fromAgentID = fromAgentID
	return nil
}

func (c *HandoverAssignmentCommand) setToAgentID(toAgentID *kernel.UUID) error {
	if toAgentID == nil {
		return nil
	}
	if err := toAgentID.Validate(); err != nil {
		return err
	}
	c.toAgentID = toAgentID
	return nil
}

func (c *HandoverAssignmentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
