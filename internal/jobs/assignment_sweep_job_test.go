package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepository struct {
	ports.OrderRepository
	dispatchable []*order.Order
}

func (s *stubOrderRepository) GetAllDispatchable(context.Context) ([]*order.Order, error) {
	return s.dispatchable, nil
}

type stubOrderUoW struct {
	commands.OrderUoW
	repo ports.OrderRepository
}

func (s *stubOrderUoW) Begin(context.Context) error    { return nil }
func (s *stubOrderUoW) Rollback(context.Context) error { return nil }
func (s *stubOrderUoW) OrderRepository() ports.OrderRepository {
	return s.repo
}

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW { return f() }

type failingDispatchUoW struct {
	commands.DispatchUoW
}

func (failingDispatchUoW) Begin(context.Context) error {
	return errors.New("connection refused")
}

type countingDispatchFactory struct {
	creates int
}

func (f *countingDispatchFactory) Create() commands.DispatchUoW {
	f.creates++
	return failingDispatchUoW{}
}

type stubNotifier struct{}

func (stubNotifier) Publish(context.Context, ports.NotificationEvent) error { return nil }

func newDispatchableOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "ibuprofen 400mg", 599, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeProduct,
		order.DeliveryTypeHome,
		[]order.Item{item},
		0,
		order.OutForDelivery,
		nil,
		nil,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

// A faulty first order must not keep later orders from being dispatched in
// the same sweep run.
func TestAssignmentSweepJob_Sweep_ContinuesPastFailingOrder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := &stubOrderRepository{
		dispatchable: []*order.Order{newDispatchableOrder(t), newDispatchableOrder(t)},
	}
	orderFactory := funcOrderUoWFactory(func() commands.OrderUoW {
		return &stubOrderUoW{repo: repo}
	})

	dispatchFactory := &countingDispatchFactory{}
	handler := commands.NewCreateAssignmentCommandHandler(dispatchFactory, stubNotifier{}, logger)

	job := NewAssignmentSweepJob(orderFactory, handler, logger)

	require.NoError(t, job.sweep(t.Context()))
	assert.Equal(t, 2, dispatchFactory.creates)
}
