package commands_test

import (
	"log/slog"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandoverAssignmentCommandHandler_Handle_Targeted(t *testing.T) {
	ctx := t.Context()
	assignment, fromAgent := newAcceptedAssignment(t)
	toAgent := kernel.NewUUID()
	cmd, err := commands.NewHandoverAssignmentCommand(
		assignment.ID(), fromAgent, &toAgent, "shift ended", "keys in locker 4",
	)
	require.NoError(t, err)

	directory := new(MockAgentDirectory)
	directory.On("GetDeliveryAgent", mock.Anything, toAgent).
		Return(ports.DeliveryAgent{ID: toAgent, Name: "Riley Okafor", Active: true}, nil).Once()

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		assignmentRepo.On("Update", mock.Anything, assignment, dispatch.Assigned).Return(nil).Once(),
		orderRepo.On("ReassignAgent", mock.Anything, assignment.OrderID(), fromAgent, toAgent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationPublisher)
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.NotificationEvent) bool {
		return e.Kind == ports.NotificationHandover && e.Detail == "shift ended"
	})).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHandoverAssignmentCommandHandler(factory, directory, notifier, slog.Default())
	require.NoError(t, h.Handle(ctx, cmd))

	// Same record, new holder, audit trail preserved.
	assert.Equal(t, dispatch.Assigned, assignment.Status())
	require.NotNil(t, assignment.Agent())
	assert.True(t, assignment.Agent().IsEqual(toAgent))
	assert.True(t, assignment.IsHandover())
	assert.Equal(t, "shift ended", assignment.HandoverReason())
	require.NotNil(t, assignment.HandoverBy())
	assert.True(t, assignment.HandoverBy().IsEqual(fromAgent))
}

func TestHandoverAssignmentCommandHandler_Handle_OpenPool(t *testing.T) {
	ctx := t.Context()
	assignment, fromAgent := newAcceptedAssignment(t)
	cmd, err := commands.NewHandoverAssignmentCommand(
		assignment.ID(), fromAgent, nil, "bike stolen", "",
	)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDispatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		assignmentRepo.On("Update", mock.Anything, assignment, dispatch.Assigned).Return(nil).Once(),
		orderRepo.On("ReleaseAgent", mock.Anything, assignment.OrderID(), fromAgent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationPublisher)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	directory := new(MockAgentDirectory)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHandoverAssignmentCommandHandler(factory, directory, notifier, slog.Default())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, dispatch.HandedOver, assignment.Status())
	assert.Nil(t, assignment.Agent())
	directory.AssertNotCalled(t, "GetDeliveryAgent", mock.Anything, mock.Anything)
}

func TestHandoverAssignmentCommandHandler_Handle_InactiveTarget(t *testing.T) {
	ctx := t.Context()
	assignment, fromAgent := newAcceptedAssignment(t)
	toAgent := kernel.NewUUID()
	cmd, err := commands.NewHandoverAssignmentCommand(
		assignment.ID(), fromAgent, &toAgent, "shift ended", "",
	)
	require.NoError(t, err)

	directory := new(MockAgentDirectory)
	directory.On("GetDeliveryAgent", mock.Anything, toAgent).
		Return(ports.DeliveryAgent{ID: toAgent, Active: false}, nil).Once()

	factory := new(MockDispatchUoWFactory)
	notifier := new(MockNotificationPublisher)

	h := commands.NewHandoverAssignmentCommandHandler(factory, directory, notifier, slog.Default())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAgentIsNotActive)
	factory.AssertNotCalled(t, "Create")
}

func TestNewHandoverAssignmentCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewHandoverAssignmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "", "details without a reason",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
