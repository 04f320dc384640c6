package queries

import (
	"context"
	"database/sql"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableAssignmentsQueryHandler reads the claimable assignment pool.
type GetAvailableAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableAssignmentsQueryHandler creates a handler for pool queries.
func NewGetAvailableAssignmentsQueryHandler(db *gorm.DB) GetAvailableAssignmentsQueryHandler {
	return GetAvailableAssignmentsQueryHandler{db: db}
}

// Handle returns available and handed_over assignments, oldest first, so the
// longest-waiting orders surface at the top of an agent's list.
func (h GetAvailableAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableAssignmentsQuery,
) ([]GetAvailableAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetAvailableAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			is_handover,
			handover_reason,
			created_at
		FROM assignments
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, dispatch.Available.String(), dispatch.HandedOver.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableAssignmentsQueryResponse
		var id, orderID uuid.UUID
		var reason sql.NullString

		if err = rows.Scan(&id, &orderID, &resp.Status, &resp.IsHandover, &reason, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		resp.HandoverReason = reason.String

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
