// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain layer and read projections straight from
// the database.
package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves every order that has not reached a
// terminal status, for the operations dashboard.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query for in-flight orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is the read model of one in-flight order.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       string
	DeliveryType string
	Total        int64
	AgentID      *kernel.UUID
}
