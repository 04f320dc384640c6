package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/core/ports"
)

// HandoverAssignmentCommandHandler transfers an assignment between agents.
//
// A targeted handover moves the record straight to the named colleague after
// verifying them against the user directory; an open handover parks the
// record in handed_over and releases the order back to the pool. Either way
// the same record keeps its handover audit fields, so the transfer never
// erases history.
type HandoverAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	directory  ports.AgentDirectory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

// NewHandoverAssignmentCommandHandler creates a handler for assignment handovers.
func NewHandoverAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	directory ports.AgentDirectory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) HandoverAssignmentCommandHandler {
	return HandoverAssignmentCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the handover.
func (h HandoverAssignmentCommandHandler) Handle(ctx context.Context, cmd HandoverAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if target := cmd.ToAgentID(); target != nil {
		agent, err := h.directory.GetDeliveryAgent(ctx, *target)
		if err != nil {
			return err
		}
		if !agent.Active {
			return ErrAgentIsNotActive
		}
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
	orderRepo := uow.OrderRepository()
	if target := cmd.ToAgentID(); target != nil {
		if err = assignment.HandOverTo(cmd.FromAgentID(), *target, cmd.Reason(), cmd.Details()); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, assignment, observedStatus); err != nil {
			return err
		}
		if err = orderRepo.ReassignAgent(ctx, assignment.OrderID(), cmd.FromAgentID(), *target); err != nil {
			return err
		}
	} else {
		if err = assignment.HandOverToPool(cmd.FromAgentID(), cmd.Reason(), cmd.Details()); err != nil {
			return err
		}
		if err = assignmentRepo.Update(ctx, assignment, observedStatus); err != nil {
			return err
		}
		if err = orderRepo.ReleaseAgent(ctx, assignment.OrderID(), cmd.FromAgentID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.NotificationEvent{
		Kind:         ports.NotificationHandover,
		OrderID:      assignment.OrderID().String(),
		AssignmentID: assignment.ID().String(),
		AgentID:      cmd.FromAgentID().String(),
		Detail:       cmd.Reason(),
		OccurredAt:   time.Now().UTC(),
	}
	if err = h.notifier.Publish(ctx, event); err != nil {
		h.logger.Warn("notification publish failed",
			slog.String("kind", event.Kind),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}

	return nil
}
