package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order projection straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its line items, or NotFound.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var agentID, assignmentID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_type,
			delivery_type,
			status,
			total,
			agent_id,
			assignment_id,
			failure_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id, &customerID, &resp.OrderType, &resp.DeliveryType,
		&resp.Status, &resp.Total, &agentID, &assignmentID, &resp.FailureReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.AgentID, err = optionalUUID(agentID); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.AssignmentID, err = optionalUUID(assignmentID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			unit_price,
			quantity,
			line_total,
			out_of_stock,
			committed
		FROM order_items
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var productID uuid.UUID

		err = rows.Scan(
			&productID, &item.Name, &item.UnitPrice, &item.Quantity,
			&item.LineTotal, &item.OutOfStock, &item.Committed,
		)
		if err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
