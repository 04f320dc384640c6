package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand opens a delivery assignment for an order that is
// out for delivery, making it visible to agents in the available pool.
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	orderID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to open a delivery assignment.
func NewCreateAssignmentCommand(assignmentID, orderID kernel.UUID) (CreateAssignmentCommand, error) {
	cmd := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the identifier a fresh assignment would be created under.
func (c CreateAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the order to dispatch.
func (c CreateAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateAssignmentCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *CreateAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
