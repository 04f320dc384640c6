package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// ErrAgentIsNotActive rejects dispatch operations addressed to an agent the
// user directory reports as inactive. It unwraps to the conflict sentinel so
// transports can classify it instead of treating it as an internal failure.
var ErrAgentIsNotActive = fmt.Errorf("delivery agent is not active: %w", errs.ErrConflict)

// AcceptAssignmentCommandHandler lets an agent claim an available assignment.
//
// Two writes are preconditioned: the assignment update requires the status
// the handler read, and the order claim is a conditional update on a nil (or
// already owned) agent pointer. Either precondition failing aborts the
// transaction with Conflict, so two racing agents cannot both win.
type AcceptAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	directory  ports.AgentDirectory
	notifier   ports.NotificationPublisher
	logger     *slog.Logger
}

// NewAcceptAssignmentCommandHandler creates a handler for assignment claims.
func NewAcceptAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	directory ports.AgentDirectory,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the claim.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) error {
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
	assignment, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	observedStatus := assignment.Status()
	if err = assignment.Accept(cmd.AgentID()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment, observedStatus); err != nil {
		return err
	}

	if err = uow.OrderRepository().ClaimAgent(ctx, assignment.OrderID(), cmd.AgentID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ports.NotificationEvent{
		Kind:         ports.NotificationAssignmentClaimed,
		OrderID:      assignment.OrderID().String(),
		AssignmentID: assignment.ID().String(),
		AgentID:      cmd.AgentID().String(),
		OccurredAt:   time.Now().UTC(),
	})

	return nil
}

func (h AcceptAssignmentCommandHandler) publish(ctx context.Context, event ports.NotificationEvent) {
	if err := h.notifier.Publish(ctx, event); err != nil {
		h.logger.Warn("notification publish failed",
			slog.String("kind", event.Kind),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
