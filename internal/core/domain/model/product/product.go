package product

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is the inventory ledger aggregate. It owns the per-product stock
// counters and is the only place the reservation invariant is expressed:
//
//	0 <= reservedStock <= stock
//
// stock is the total number of units physically owned; reservedStock is the
// number of units earmarked by open carts and pending orders. The quantity
// gating every new reservation is AvailableStock = stock - reservedStock.
//
// The aggregate encodes the ledger rules; the persistence adapter mirrors the
// same rules as single conditional UPDATE statements so that concurrent
// Reserve/Release/Commit calls on one product stay linearizable. Catalog
// fields (name, price) are snapshots managed elsewhere and never re-priced
// by this component.
type Product struct {
	id            kernel.UUID
	name          string
	price         int64 // unit price in cents
	stock         int
	reservedStock int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with zero reservations.
// Price must be non-negative and stock must be non-negative.
func NewProduct(id kernel.UUID, name string, price int64, stock int) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// current reservation counter. The reservation invariant is re-checked so a
// corrupted row cannot produce an invalid aggregate.
func RestoreProduct(id kernel.UUID, name string, price int64, stock int, reservedStock int) (*Product, error) {
	product, err := NewProduct(id, name, price, stock)
	if err != nil {
		return nil, err
	}

	if reservedStock < 0 || reservedStock > stock {
		return nil, errs.NewValueIsOutOfRangeError("reservedStock", reservedStock, 0, stock)
	}

	product.reservedStock = reservedStock
	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price in cents.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the total number of owned units.
func (p *Product) Stock() int {
	return p.stock
}

// ReservedStock returns the number of units earmarked by carts and orders.
func (p *Product) ReservedStock() int {
	return p.reservedStock
}

// AvailableStock returns the number of units open for new reservations.
// This is the only quantity ever checked before allowing a reservation.
func (p *Product) AvailableStock() int {
	return p.stock - p.reservedStock
}

// Reserve earmarks qty units for a cart or pending order. It succeeds only if
// AvailableStock covers the quantity; otherwise it returns an
// InsufficientStockError carrying the availability observed at denial time.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	if p.AvailableStock() < qty {
		return errs.NewInsufficientStockError(p.id.String(), qty, p.AvailableStock())
	}

	p.reservedStock += qty
	return nil
}

// Release returns qty earmarked units to the available pool, floored at zero.
// The returned flag reports whether flooring occurred, which means a
// double-release happened upstream; callers log that as anomalous but the
// operation itself stays idempotent.
func (p *Product) Release(qty int) (floored bool, err error) {
	if qty <= 0 {
		return false, errs.NewValueIsInvalidError("qty")
	}

	if qty > p.reservedStock {
		p.reservedStock = 0
		return true, nil
	}

	p.reservedStock -= qty
	return false, nil
}

// Commit records qty units physically leaving the warehouse: both stock and
// reservedStock decrease, each floored at zero. Used only when an order enters
// preparation, never on cart actions.
func (p *Product) Commit(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	p.stock -= qty
	if p.stock < 0 {
		p.stock = 0
	}

	p.reservedStock -= qty
	if p.reservedStock < 0 {
		p.reservedStock = 0
	}

	// Flooring stock independently can momentarily break the invariant; clamp.
	if p.reservedStock > p.stock {
		p.reservedStock = p.stock
	}

	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	p.stock = stock
	return nil
}
