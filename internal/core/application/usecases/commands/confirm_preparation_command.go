package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrConfirmPreparationCommandIsNotConstructed = errors.New(
	"ConfirmPreparationCommand must be created via NewConfirmPreparationCommand constructor",
)

// ConfirmPreparationCommand finalizes the preparation of a processing order:
// reserved stock is committed out of the warehouse and the order moves to its
// post-preparation stage (ready for pickup, or out for delivery).
type ConfirmPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPreparationCommand creates a command to finalize preparation.
func NewConfirmPreparationCommand(orderID kernel.UUID) (ConfirmPreparationCommand, error) {
	cmd := ConfirmPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmPreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPreparationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPreparationCommandIsNotConstructed)
}

// OrderID returns the order whose preparation is being confirmed.
func (c ConfirmPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmPreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
