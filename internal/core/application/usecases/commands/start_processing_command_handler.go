package commands

import (
	"context"
)

// StartProcessingCommandHandler moves an approved order into preparation.
type StartProcessingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartProcessingCommandHandler creates a handler for starting preparation.
func NewStartProcessingCommandHandler(uowFactory OrderUoWFactory) StartProcessingCommandHandler {
	return StartProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition. Only approved orders may enter processing.
func (h StartProcessingCommandHandler) Handle(ctx context.Context, cmd StartProcessingCommand) error {
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

	if err = o.StartProcessing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
