package order

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem
// or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a line item embedded in an order. Name and unit price are snapshots
// taken at checkout and never re-priced; the referenced product may be deleted
// independently later, leaving a dangling reference that readers tolerate.
//
// The committed flag records that the item's stock was already committed by
// the inventory ledger, which is what makes ConfirmPreparation idempotent:
// re-running it never double-decrements stock.
type Item struct { //nolint:recvcheck //mutated through order transitions
	productID  kernel.UUID
	name       string
	unitPrice  int64
	quantity   int
	lineTotal  int64
	outOfStock bool
	committed  bool

	guard guard.ConstructorGuard
}

// NewItem creates a line item with its total computed from the snapshots.
func NewItem(productID kernel.UUID, name string, unitPrice int64, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidError("unitPrice")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidError("quantity")
	}

	item.productID = productID
	item.name = name
	item.unitPrice = unitPrice
	item.quantity = quantity
	item.lineTotal = unitPrice * int64(quantity)
	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// out-of-stock and committed flags.
func RestoreItem(
	productID kernel.UUID, name string, unitPrice int64, quantity int, outOfStock bool, committed bool,
) (Item, error) {
	item, err := NewItem(productID, name, unitPrice, quantity)
	if err != nil {
		return Item{}, err
	}

	item.outOfStock = outOfStock
	item.committed = committed
	return item, nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot taken at checkout.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price snapshot in cents.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns quantity times the unit price snapshot, in cents.
func (i Item) LineTotal() int64 {
	return i.lineTotal
}

// IsOutOfStock reports whether the item was flagged unavailable.
func (i Item) IsOutOfStock() bool {
	return i.outOfStock
}

// IsCommitted reports whether the item's stock was already committed.
func (i Item) IsCommitted() bool {
	return i.committed
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) markCommitted() {
	i.committed = true
}

func (i *Item) markOutOfStock() {
	i.outOfStock = true
}
