package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteAssignmentCommandHandler_Handle_ClaimedAssignment(t *testing.T) {
	ctx := t.Context()
	assignment, agentID := newAcceptedAssignment(t)
	o := newOrderWithAgent(t, order.AgentAssigned, agentID)
	cmd, err := commands.NewDeleteAssignmentCommand(assignment.ID())
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		assignmentRepo.On("Delete", mock.Anything, assignment.ID(), dispatch.Assigned).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assignment.OrderID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAssignmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The order returns to the pool with no agent and no assignment pointer.
	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Nil(t, o.Agent())
	assert.Nil(t, o.Assignment())
}

func TestDeleteAssignmentCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := t.Context()
	assignment, agentID := newAcceptedAssignment(t)
	require.NoError(t, assignment.MarkPickedUp(agentID, ""))
	cmd, err := commands.NewDeleteAssignmentCommand(assignment.ID())
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAssignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assignmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteAssignmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignmentID).
			Return(nil, errs.NewObjectNotFoundError("assignmentID", assignmentID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteAssignmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
