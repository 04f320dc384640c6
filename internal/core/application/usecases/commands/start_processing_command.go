package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrStartProcessingCommandIsNotConstructed = errors.New(
	"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
)

// StartProcessingCommand moves an approved order into the processing stage,
// meaning pharmacy staff have begun preparing it.
type StartProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingCommand creates a command to begin preparing an order.
func NewStartProcessingCommand(orderID kernel.UUID) (StartProcessingCommand, error) {
	cmd := StartProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

// OrderID returns the order to start preparing.
func (c StartProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartProcessingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
