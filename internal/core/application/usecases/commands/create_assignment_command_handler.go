package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// CreateAssignmentCommandHandler opens a delivery assignment for a
// dispatchable order.
//
// Creation is idempotent under concurrency: the assignment table's
// uniqueness constraint on the order makes CreateOrGet converge on a single
// record, and a previously rejected record is reopened into the available
// pool instead of being replaced.
type CreateAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

// NewCreateAssignmentCommandHandler creates a handler for opening assignments.
func NewCreateAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the dispatch request and returns the identifier of the
// assignment now covering the order, which may predate this call.
func (h CreateAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAssignmentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if !o.Status().IsDispatchable() {
		return kernel.UUID{}, errs.NewInvalidTransitionError("order", o.Status().String(), "dispatched")
	}

	fresh, err := dispatch.NewAssignment(cmd.AssignmentID(), cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	assignment, created, err := uow.AssignmentRepository().CreateOrGet(ctx, fresh)
	if err != nil {
		return kernel.UUID{}, err
	}

	opened := created
	if !created && assignment.Status() == dispatch.Rejected {
		if err = assignment.Reopen(); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.AssignmentRepository().Update(ctx, assignment, dispatch.Rejected); err != nil {
			return kernel.UUID{}, err
		}
		opened = true
	}

	if err = o.SetAssignment(assignment.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if opened {
		h.publish(ctx, ports.NotificationEvent{
			Kind:         ports.NotificationAssignmentCreated,
			OrderID:      cmd.OrderID().String(),
			AssignmentID: assignment.ID().String(),
			OccurredAt:   time.Now().UTC(),
		})
	}

	return assignment.ID(), nil
}

func (h CreateAssignmentCommandHandler) publish(ctx context.Context, event ports.NotificationEvent) {
	if err := h.notifier.Publish(ctx, event); err != nil {
		h.logger.Warn("notification publish failed",
			slog.String("kind", event.Kind),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
