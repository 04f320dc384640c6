package commands_test

import (
	"errors"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewReserveStockCommand(productID, 3)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Reserve", mock.Anything, productID, 3).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReserveStockCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReserveStockCommand{} // not constructed properly
	factory := new(MockProductUoWFactory)
	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestReserveStockCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewReserveStockCommand(productID, 10)

	denial := errs.NewInsufficientStockError(productID.String(), 10, 2)
	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Reserve", mock.Anything, productID, 10).Return(denial).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReserveStockCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewReserveStockCommand(kernel.NewUUID(), 1)

	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
