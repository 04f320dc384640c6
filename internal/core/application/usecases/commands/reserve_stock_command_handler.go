package commands

import (
	"context"
)

// ReserveStockCommandHandler executes stock reservations against the
// inventory ledger. The reservation itself is a single conditional update at
// the storage layer, so two carts racing for the last units cannot both win.
type ReserveStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewReserveStockCommandHandler creates a handler for stock reservations.
func NewReserveStockCommandHandler(uowFactory ProductUoWFactory) ReserveStockCommandHandler {
	return ReserveStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation. A denial surfaces as an
// InsufficientStockError carrying current availability for client display.
func (h ReserveStockCommandHandler) Handle(ctx context.Context, cmd ReserveStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Reserve(ctx, cmd.ProductID(), cmd.Qty()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
