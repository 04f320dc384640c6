package commands

import (
	"context"
)

// DeleteAssignmentCommandHandler withdraws an assignment that has not
// reached pickup. The delete is preconditioned on the status the handler
// observed, so it cannot race a pickup happening at the same moment.
type DeleteAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewDeleteAssignmentCommandHandler creates a handler for assignment withdrawal.
func NewDeleteAssignmentCommandHandler(uowFactory DispatchUoWFactory) DeleteAssignmentCommandHandler {
	return DeleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal. The order drops its assignment pointer
// and, if an agent held the job, returns to the available pool.
func (h DeleteAssignmentCommandHandler) Handle(ctx context.Context, cmd DeleteAssignmentCommand) error {
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

	if err = assignment.EnsureDeletable(); err != nil {
		return err
	}

	if err = assignmentRepo.Delete(ctx, assignment.ID(), assignment.Status()); err != nil {
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
