package commands

import (
	"context"
)

// RejectAssignmentCommandHandler processes an agent declining an assignment
// they hold. The assignment lands on rejected and the order returns to the
// available pool with its agent pointer cleared.
type RejectAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewRejectAssignmentCommandHandler creates a handler for assignment rejection.
func NewRejectAssignmentCommandHandler(uowFactory DispatchUoWFactory) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. Only the holding agent may reject, and only
// before pickup. The order drops its agent and assignment pointers so the
// sweep can reopen the rejected record for other agents.
func (h RejectAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectAssignmentCommand) error {
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
	if err = assignment.Reject(cmd.AgentID(), cmd.Notes()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, assignment, observedStatus); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	o.ClearAssignment()
	if o.Agent() != nil {
		if err = o.ReleaseAgent(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
