package commands_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "ibuprofen 400mg", 599, 2)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeProduct,
		order.DeliveryTypeHome,
		[]order.Item{item},
		0,
		status,
		nil,
		nil,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func newOrderHeldBy(t *testing.T, agentID, assignmentID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "paracetamol 500mg", 349, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.TypeProduct,
		order.DeliveryTypeHome,
		[]order.Item{item},
		0,
		order.AgentAssigned,
		&agentID,
		&assignmentID,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func newAvailableAssignment(t *testing.T) *dispatch.Assignment {
	t.Helper()

	a, err := dispatch.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func newAcceptedAssignment(t *testing.T) (*dispatch.Assignment, kernel.UUID) {
	t.Helper()

	a := newAvailableAssignment(t)
	agentID := kernel.NewUUID()
	require.NoError(t, a.Accept(agentID))
	return a, agentID
}
