package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrDeleteAssignmentCommandIsNotConstructed = errors.New(
	"DeleteAssignmentCommand must be created via NewDeleteAssignmentCommand constructor",
)

// DeleteAssignmentCommand withdraws a delivery assignment that has not
// progressed past pickup, returning the order to plain out_for_delivery.
type DeleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAssignmentCommand creates a command to withdraw an assignment.
func NewDeleteAssignmentCommand(assignmentID kernel.UUID) (DeleteAssignmentCommand, error) {
	cmd := DeleteAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return DeleteAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to withdraw.
func (c DeleteAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *DeleteAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}
