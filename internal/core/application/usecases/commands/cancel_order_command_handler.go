package commands

import (
	"context"
	"errors"
	"log/slog"

	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels a pending order. The reservations its
// items hold are returned to the available pool in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the cancellation. Only pending orders may be canceled; an
// item whose product no longer exists simply has nothing to release.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = h.releaseItems(ctx, uow, o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelOrderCommandHandler) releaseItems(ctx context.Context, uow FulfillmentUoW, o *order.Order) error {
	productRepo := uow.ProductRepository()
	for _, item := range o.Items() {
		if item.IsCommitted() {
			continue
		}

		floored, err := productRepo.Release(ctx, item.ProductID(), item.Quantity())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		if floored {
			h.logger.Warn("release exceeded reserved stock, floored at zero",
				slog.String("order_id", o.ID().String()),
				slog.String("product_id", item.ProductID().String()),
				slog.Int("qty", item.Quantity()),
			)
		}
	}
	return nil
}
