package commands

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/ports"
)

// AcceptHandoverCommandHandler lets an agent claim an assignment parked in
// the open handover pool. The claim is preconditioned on the handed_over
// status, so two racing claimants converge on a single winner.
type AcceptHandoverCommandHandler struct {
	uowFactory DispatchUoWFactory
	directory  ports.AgentDirectory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

// NewAcceptHandoverCommandHandler creates a handler for claiming pooled handovers.
func NewAcceptHandoverCommandHandler(
	uowFactory DispatchUoWFactory,
	directory ports.AgentDirectory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) AcceptHandoverCommandHandler {
	return AcceptHandoverCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the claim.
func (h AcceptHandoverCommandHandler) Handle(ctx context.Context, cmd AcceptHandoverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	agent, err := h.directory.GetDeliveryAgent(ctx, cmd.AgentID())
	if err != nil {
		return err
	}
	if !agent.Active {
		return ErrAgentIsNotActive
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	assignment, err := assignmentRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assignment.AcceptHandover(cmd.AgentID()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment, dispatch.HandedOver); err != nil {
		return err
	}

	if err = uow.OrderRepository().ClaimAgent(ctx, assignment.OrderID(), cmd.AgentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ports.NotificationEvent{
		Kind:         ports.NotificationAssignmentClaimed,
		OrderID:      assignment.OrderID().String(),
		AssignmentID: assignment.ID().String(),
		AgentID:      cmd.AgentID().String(),
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
