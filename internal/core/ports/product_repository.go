package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the inventory ledger.
//
// The three ledger operations are not read-modify-write cycles: each one is a
// single conditional update executed at the storage layer, keyed on the
// operation's precondition, so concurrent calls on the same product stay
// linearizable without locks.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists catalog changes to an existing product. The stock
	// counters are owned by the ledger operations below and must not be
	// written through this method.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Reserve atomically earmarks qty units iff availableStock >= qty.
	// A denial returns an InsufficientStockError carrying the availability
	// observed at denial time; an unknown product returns NotFound.
	Reserve(ctx context.Context, id kernel.UUID, qty int) error

	// Release atomically returns qty earmarked units, floored at zero.
	// The returned flag reports whether flooring occurred (an anomalous
	// double-release that callers log but tolerate).
	Release(ctx context.Context, id kernel.UUID, qty int) (floored bool, err error)

	// CommitStock atomically decrements both stock and reservedStock by qty,
	// each floored at zero: units physically leaving the warehouse.
	CommitStock(ctx context.Context, id kernel.UUID, qty int) error
}
