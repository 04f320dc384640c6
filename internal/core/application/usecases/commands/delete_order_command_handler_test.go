package commands_test

import (
	"log/slog"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrderInStatus(t, order.Pending)
	item := o.Items()[0]
	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Release", mock.Anything, item.ProductID(), item.Quantity()).Return(false, nil).Once(),
		orderRepo.On("Delete", mock.Anything, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, slog.Default())
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_PastPending(t *testing.T) {
	ctx := t.Context()
	o := newOrderInStatus(t, order.Approved)
	cmd, err := commands.NewDeleteOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockFulfillmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, slog.Default())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
