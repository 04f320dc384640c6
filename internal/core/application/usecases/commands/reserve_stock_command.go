package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrReserveStockCommandIsNotConstructed = errors.New(
	"ReserveStockCommand must be created via NewReserveStockCommand constructor",
)

// ReserveStockCommand earmarks stock units for a cart or pending order.
// Reservation happens at add-to-cart time, before any order exists; the later
// checkout only validates that reservations are in place.
//
// Example:
//
//	cmd, err := NewReserveStockCommand(productID, 2)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrInsufficientStock) {
//	    // show current availability to the shopper
//	}
type ReserveStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewReserveStockCommand creates a command to reserve qty units of a product.
// Quantity must be positive.
func NewReserveStockCommand(productID kernel.UUID, qty int) (ReserveStockCommand, error) {
	cmd := ReserveStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return ReserveStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveStockCommand) Validate() error {
	return c.guard.Validate(ErrReserveStockCommandIsNotConstructed)
}

// ProductID returns the product whose stock is being reserved.
func (c ReserveStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the number of units to reserve.
func (c ReserveStockCommand) Qty() int {
	return c.qty
}

func (c *ReserveStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *ReserveStockCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}
	c.qty = qty
	return nil
}
