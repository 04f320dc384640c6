package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/ports"
)

// UpdateAssignmentStatusCommandHandler records delivery progress reported by
// the holding agent. Every transition is written with the status the handler
// observed as precondition, and terminal transitions are mirrored onto the
// order in the same transaction.
type UpdateAssignmentStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

// NewUpdateAssignmentStatusCommandHandler creates a handler for delivery
// progress reports.
func NewUpdateAssignmentStatusCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) UpdateAssignmentStatusCommandHandler {
	return UpdateAssignmentStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the progress report.
func (h UpdateAssignmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAssignmentStatusCommand,
) error {
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

	assignmentRepo := uow.AssignmentRepository()
	assignment, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	observedStatus := assignment.Status()
	if err = h.applyToAssignment(assignment, cmd); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment, observedStatus); err != nil {
		return err
	}

	if err = h.mirrorOntoOrder(ctx, uow, assignment, cmd); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyTerminal(ctx, assignment, cmd)
	return nil
}

func (h UpdateAssignmentStatusCommandHandler) applyToAssignment(
	assignment *dispatch.Assignment,
	cmd UpdateAssignmentStatusCommand,
) error {
	switch cmd.Target() {
	case dispatch.Accepted:
		return assignment.Acknowledge(cmd.AgentID())
	case dispatch.PickedUp:
		return assignment.MarkPickedUp(cmd.AgentID(), cmd.Notes())
	case dispatch.Delivered:
		return assignment.MarkDelivered(cmd.AgentID(), cmd.Notes())
	default:
		return assignment.MarkFailed(cmd.AgentID(), cmd.Notes())
	}
}

// mirrorOntoOrder keeps the order's status in lockstep with the assignment
// for the transitions a customer can see.
func (h UpdateAssignmentStatusCommandHandler) mirrorOntoOrder(
	ctx context.Context,
	uow DispatchUoW,
	assignment *dispatch.Assignment,
	cmd UpdateAssignmentStatusCommand,
) error {
	if cmd.Target() == dispatch.Accepted {
		return nil
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case dispatch.PickedUp:
		err = o.MarkPickedUp()
	case dispatch.Delivered:
		err = o.MarkDelivered()
	default:
		err = o.MarkFailed(cmd.Notes())
	}
	if err != nil {
		return err
	}

	return orderRepo.Update(ctx, o)
}

func (h UpdateAssignmentStatusCommandHandler) notifyTerminal(
	ctx context.Context,
	assignment *dispatch.Assignment,
	cmd UpdateAssignmentStatusCommand,
) {
	var kind string
	switch cmd.Target() {
	case dispatch.Delivered:
		kind = ports.NotificationDeliveryCompleted
	case dispatch.Failed:
		kind = ports.NotificationDeliveryFailed
	default:
		return
	}

	event := ports.NotificationEvent{
		Kind:         kind,
		OrderID:      assignment.OrderID().String(),
		AssignmentID: assignment.ID().String(),
		AgentID:      cmd.AgentID().String(),
		Detail:       cmd.Notes(),
		OccurredAt:   time.Now().UTC(),
	}
	if err := h.notifier.Publish(ctx, event); err != nil {
		h.logger.Warn("notification publish failed",
			slog.String("kind", event.Kind),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
