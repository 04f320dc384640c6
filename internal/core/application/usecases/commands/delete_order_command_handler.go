package commands

import (
	"context"
	"errors"
	"log/slog"

	"pharmacy/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes a pending order and releases the stock
// its items had reserved.
type DeleteOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the deletion. An order past the pending stage yields an
// InvalidTransitionError and nothing is removed.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureDeletable(); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range o.Items() {
		floored, releaseErr := productRepo.Release(ctx, item.ProductID(), item.Quantity())
		if errors.Is(releaseErr, errs.ErrObjectNotFound) {
			continue
		}
		if releaseErr != nil {
			return releaseErr
		}

		if floored {
			h.logger.Warn("release exceeded reserved stock, floored at zero",
				slog.String("order_id", o.ID().String()),
				slog.String("product_id", item.ProductID().String()),
				slog.Int("qty", item.Quantity()),
			)
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
