package commands

import (
	"context"
	"log/slog"
)

// ReleaseStockCommandHandler returns reserved units to the available pool.
type ReleaseStockCommandHandler struct {
	uowFactory ProductUoWFactory
	logger     *slog.Logger
}

// NewReleaseStockCommandHandler creates a handler for stock releases.
func NewReleaseStockCommandHandler(uowFactory ProductUoWFactory, logger *slog.Logger) ReleaseStockCommandHandler {
	return ReleaseStockCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the release. Releasing more than is currently reserved
// floors the counter at zero and is logged as an anomaly rather than failed,
// so a double-release from a retried cart update stays harmless.
func (h ReleaseStockCommandHandler) Handle(ctx context.Context, cmd ReleaseStockCommand) error {
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

	floored, err := uow.ProductRepository().Release(ctx, cmd.ProductID(), cmd.Qty())
	if err != nil {
		return err
	}

	if floored {
		h.logger.Warn("release exceeded reserved stock, floored at zero",
			slog.String("product_id", cmd.ProductID().String()),
			slog.Int("qty", cmd.Qty()),
		)
	}

	return uow.Commit(ctx)
}
