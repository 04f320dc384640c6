package commands

import (
	"context"
	"errors"
	"log/slog"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ItemCommitFailure reports one item line whose stock could not be committed
// during preparation.
type ItemCommitFailure struct {
	ProductID kernel.UUID
	Reason    string
}

// ConfirmPreparationResult reports the outcome of a preparation confirmation,
// including items that were flagged out of stock instead of committed.
type ConfirmPreparationResult struct {
	ItemFailures []ItemCommitFailure
}

// ConfirmPreparationCommandHandler commits reserved stock for every item of a
// processing order and advances the order past preparation.
//
// An item whose product has disappeared from the catalog is flagged out of
// stock and reported rather than blocking the whole order; items already
// committed by an earlier attempt are skipped, which makes retried
// confirmations idempotent.
type ConfirmPreparationCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	logger     *slog.Logger
}

// NewConfirmPreparationCommandHandler creates a handler for preparation confirmation.
func NewConfirmPreparationCommandHandler(
	uowFactory FulfillmentUoWFactory,
	logger *slog.Logger,
) ConfirmPreparationCommandHandler {
	return ConfirmPreparationCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the confirmation. Infrastructure failures roll the whole
// confirmation back and leave the order in processing.
func (h ConfirmPreparationCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmPreparationCommand,
) (ConfirmPreparationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPreparationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPreparationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmPreparationResult{}, err
	}

	var result ConfirmPreparationResult
	productRepo := uow.ProductRepository()
	for _, item := range o.ItemsPendingCommit() {
		commitErr := productRepo.CommitStock(ctx, item.ProductID(), item.Quantity())
		switch {
		case commitErr == nil:
			if err = o.CommitItem(item.ProductID()); err != nil {
				return ConfirmPreparationResult{}, err
			}
		case errors.Is(commitErr, errs.ErrObjectNotFound):
			// Product vanished from the catalog between checkout and
			// preparation. Flag the line, report it, keep going.
			h.logger.Warn("product missing at preparation time, item flagged out of stock",
				slog.String("order_id", o.ID().String()),
				slog.String("product_id", item.ProductID().String()),
			)
			if err = o.MarkItemOutOfStock(item.ProductID()); err != nil {
				return ConfirmPreparationResult{}, err
			}
			result.ItemFailures = append(result.ItemFailures, ItemCommitFailure{
				ProductID: item.ProductID(),
				Reason:    commitErr.Error(),
			})
		default:
			return ConfirmPreparationResult{}, commitErr
		}
	}

	if err = o.FinishPreparation(); err != nil {
		return ConfirmPreparationResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ConfirmPreparationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPreparationResult{}, err
	}

	return result, nil
}
