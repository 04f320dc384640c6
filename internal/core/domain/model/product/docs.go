// Package product contains the inventory ledger aggregate.
//
// The aggregate owns the per-product available/reserved stock counters and the
// three ledger operations that mutate them: Reserve (earmark units for a cart
// or pending order), Release (return earmarked units), and Commit (record
// units physically leaving the warehouse). The reservation invariant
// 0 <= reservedStock <= stock holds after every operation.
//
// Each operation is independent per product; no cross-product transaction
// exists because orders commit items one at a time and a partial commit on a
// multi-item order is an accepted, reported failure mode rather than a
// rollback requirement.
package product
