package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrUpdateAssignmentStatusCommandIsNotConstructed = errors.New(
	"UpdateAssignmentStatusCommand must be created via NewUpdateAssignmentStatusCommand constructor",
)

// UpdateAssignmentStatusCommand advances a claimed assignment along the
// delivery progression: accepted, picked_up, delivered, or failed. Only the
// holding agent may report progress.
type UpdateAssignmentStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	agentID      kernel.UUID
	target       dispatch.Status
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateAssignmentStatusCommand creates a command to report delivery
// progress. The target must be one of the agent-reportable statuses; notes
// are required when reporting a failure.
func NewUpdateAssignmentStatusCommand(
	assignmentID kernel.UUID,
	agentID kernel.UUID,
	target dispatch.Status,
	notes string,
) (UpdateAssignmentStatusCommand, error) {
	cmd := UpdateAssignmentStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setAgentID(agentID),
		cmd.setTarget(target, notes),
	); err != nil {
		return UpdateAssignmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAssignmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssignmentStatusCommandIsNotConstructed)
}

// AssignmentID returns the assignment being progressed.
func (c UpdateAssignmentStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// AgentID returns the reporting agent.
func (c UpdateAssignmentStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Target returns the reported status.
func (c UpdateAssignmentStatusCommand) Target() dispatch.Status {
	return c.target
}

// Notes returns the free-form progress notes.
func (c UpdateAssignmentStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateAssignmentStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *UpdateAssignmentStatusCommand) setTarget(target dispatch.Status, notes string) error {
	switch target {
	case dispatch.Accepted, dispatch.PickedUp, dispatch.Delivered:
	case dispatch.Failed:
		if notes == "" {
			return errs.NewValueIsRequiredError("notes")
		}
	default:
		return errs.NewValueIsInvalidError("target status")
	}
	c.target = target
	return nil
}
