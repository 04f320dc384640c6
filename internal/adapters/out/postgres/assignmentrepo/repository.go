package assignmentrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// GormAssignmentRepository implements AssignmentRepository using GORM.
//
// CreateOrGet relies on the unique index over order_id instead of a
// check-then-create read, and every mutating write carries the status the
// caller observed in its WHERE clause. Stale writers lose with Conflict.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// CreateOrGet inserts the assignment optimistically. The insert carries ON
// CONFLICT DO NOTHING on the order_id index, so losing a concurrent race
// never raises a statement error; inside a transaction that would abort it
// and poison every later statement. A zero-row insert means the surviving
// record for the same order won, and it is returned with created false.
func (r *GormAssignmentRepository) CreateOrGet(
	ctx context.Context, aggregate *dispatch.Assignment,
) (*dispatch.Assignment, bool, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(&dto)
	if err := result.Error; err != nil {
		// Collisions on other constraints (the id primary key) still error.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, false, errs.NewConflictErrorWithCause("assignment", aggregate.ID().String(), err)
		}
		return nil, false, err
	}

	if result.RowsAffected == 0 {
		existing, getErr := r.GetByOrder(ctx, aggregate.OrderID())
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, true, nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the assignment attached to an order.
func (r *GormAssignmentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*dispatch.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the aggregate's state iff the stored status still equals
// expectedStatus. Zero affected rows is disambiguated by re-reading the row.
func (r *GormAssignmentRepository) Update(
	ctx context.Context, aggregate *dispatch.Assignment, expectedStatus dispatch.Status,
) error {
	if err := errors.Join(aggregate.Validate(), expectedStatus.Validate()); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(map[string]any{
			"agent_id":         dto.AgentID,
			"status":           dto.Status,
			"notes":            dto.Notes,
			"assigned_at":      dto.AssignedAt,
			"accepted_at":      dto.AcceptedAt,
			"picked_up_at":     dto.PickedUpAt,
			"delivered_at":     dto.DeliveredAt,
			"failed_at":        dto.FailedAt,
			"is_handover":      dto.IsHandover,
			"handover_reason":  dto.HandoverReason,
			"handover_details": dto.HandoverDetails,
			"handover_at":      dto.HandoverAt,
			"handover_by":      dto.HandoverBy,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainWriteFailure(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the record iff the stored status still equals expectedStatus.
func (r *GormAssignmentRepository) Delete(ctx context.Context, id kernel.UUID, expectedStatus dispatch.Status) error {
	if err := errors.Join(id.Validate(), expectedStatus.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id.Bytes(), expectedStatus.String()).
		Delete(&AssignmentDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainWriteFailure(ctx, id)
	}

	return nil
}

// GetAllAvailable retrieves pool-claimable assignments, oldest first.
func (r *GormAssignmentRepository) GetAllAvailable(ctx context.Context) ([]*dispatch.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("status IN (?, ?)", dispatch.Available.String(), dispatch.HandedOver.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByAgent retrieves the assignments held by an agent, newest first.
func (r *GormAssignmentRepository) GetAllByAgent(ctx context.Context, agentID kernel.UUID) ([]*dispatch.Assignment, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("agent_id = ?", agentID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*dispatch.Assignment, error) {
	assignments := make([]*dispatch.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *GormAssignmentRepository) explainWriteFailure(ctx context.Context, id kernel.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	return errs.NewConflictError("assignment", id.String())
}
