package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrReleaseStockCommandIsNotConstructed = errors.New(
	"ReleaseStockCommand must be created via NewReleaseStockCommand constructor",
)

// ReleaseStockCommand returns earmarked stock units to the available pool,
// typically when a shopper removes an item from the cart.
type ReleaseStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	qty       int

	guard guard.ConstructorGuard
}

// NewReleaseStockCommand creates a command to release qty reserved units.
// Quantity must be positive.
func NewReleaseStockCommand(productID kernel.UUID, qty int) (ReleaseStockCommand, error) {
	cmd := ReleaseStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQty(qty),
	); err != nil {
		return ReleaseStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStockCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStockCommandIsNotConstructed)
}

// ProductID returns the product whose reservation is being released.
func (c ReleaseStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Qty returns the number of units to release.
func (c ReleaseStockCommand) Qty() int {
	return c.qty
}

func (c *ReleaseStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *ReleaseStockCommand) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}
	c.qty = qty
	return nil
}
