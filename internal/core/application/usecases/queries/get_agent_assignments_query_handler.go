package queries

import (
	"context"
	"database/sql"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentAssignmentsQueryHandler reads one agent's assignment list.
type GetAgentAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentAssignmentsQueryHandler creates a handler for agent workload queries.
func NewGetAgentAssignmentsQueryHandler(db *gorm.DB) GetAgentAssignmentsQueryHandler {
	return GetAgentAssignmentsQueryHandler{db: db}
}

// Handle returns the agent's assignments, most recently assigned first.
func (h GetAgentAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentAssignmentsQuery,
) ([]GetAgentAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			order_id,
			status,
			notes,
			assigned_at,
			picked_up_at,
			delivered_at,
			failed_at
		FROM assignments
		WHERE agent_id = ?
		ORDER BY assigned_at DESC
	`
	args := []any{query.AgentID().Bytes()}
	if query.CompletedOnly() {
		stmt = `
		SELECT
			id,
			order_id,
			status,
			notes,
			assigned_at,
			picked_up_at,
			delivered_at,
			failed_at
		FROM assignments
		WHERE agent_id = ? AND status IN (?, ?)
		ORDER BY assigned_at DESC
	`
		args = append(args, dispatch.Delivered.String(), dispatch.Failed.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]GetAgentAssignmentsQueryResponse, 0)
	for rows.Next() {
		var resp GetAgentAssignmentsQueryResponse
		var id, orderID uuid.UUID
		var notes sql.NullString

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Status,
			&notes,
			&resp.AssignedAt,
			&resp.PickedUpAt,
			&resp.DeliveredAt,
			&resp.FailedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.Notes = notes.String

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
