package orderrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The agent pointer is written through conditional single-row updates only.
// ClaimAgent, ReassignAgent and ReleaseAgent each carry their precondition in
// the WHERE clause, so a lost race surfaces as zero affected rows rather than
// a silent overwrite.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Nullable columns are
// written through a column map so that clearing the agent or assignment
// pointer actually reaches the row.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":         dto.Status,
		"agent_id":       dto.AgentID,
		"assignment_id":  dto.AssignmentID,
		"latitude":       dto.Latitude,
		"longitude":      dto.Longitude,
		"failure_reason": dto.FailureReason,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).Model(&ItemDTO{}).
			Where("order_id = ? AND product_id = ?", item.OrderID, item.ProductID).
			Updates(map[string]any{
				"out_of_stock": item.OutOfStock,
				"committed":    item.Committed,
			}).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order and its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetAllDispatchable retrieves out_for_delivery orders that have no delivery
// assignment yet, oldest first. The assignment sweep feeds on this.
func (r *GormOrderRepository) GetAllDispatchable(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = ? AND assignment_id IS NULL", order.OutForDelivery.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ClaimAgent writes the agent pointer with its precondition in the WHERE
// clause: the order must be claimable and the pointer nil or already held by
// the claiming agent. Zero affected rows is disambiguated by re-reading the
// row.
func (r *GormOrderRepository) ClaimAgent(ctx context.Context, orderID kernel.UUID, agentID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), agentID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where(
			"id = ? AND status IN (?, ?) AND (agent_id IS NULL OR agent_id = ?)",
			orderID.Bytes(), order.OutForDelivery.String(), order.AgentAssigned.String(), agentID.Bytes(),
		).
		Updates(map[string]any{
			"agent_id": agentID.Bytes(),
			"status":   order.AgentAssigned.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainClaimFailure(ctx, orderID)
	}

	return nil
}

// ReassignAgent moves the agent pointer from the current holder to another
// agent without leaving the assigned status.
func (r *GormOrderRepository) ReassignAgent(ctx context.Context, orderID kernel.UUID, fromAgentID, toAgentID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), fromAgentID.Validate(), toAgentID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND agent_id = ? AND status = ?", orderID.Bytes(), fromAgentID.Bytes(), order.AgentAssigned.String()).
		Update("agent_id", toAgentID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainPointerFailure(ctx, orderID)
	}

	return nil
}

// ReleaseAgent clears the agent pointer held by fromAgentID and returns the
// order to the dispatchable status.
func (r *GormOrderRepository) ReleaseAgent(ctx context.Context, orderID kernel.UUID, fromAgentID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), fromAgentID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND agent_id = ? AND status = ?", orderID.Bytes(), fromAgentID.Bytes(), order.AgentAssigned.String()).
		Updates(map[string]any{
			"agent_id": nil,
			"status":   order.OutForDelivery.String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainPointerFailure(ctx, orderID)
	}

	return nil
}

func (r *GormOrderRepository) explainClaimFailure(ctx context.Context, orderID kernel.UUID) error {
	current, err := r.Get(ctx, orderID)
	if err != nil {
		return err
	}

	status := current.Status()
	if status != order.OutForDelivery && status != order.AgentAssigned {
		return errs.NewInvalidTransitionError("order", status.String(), order.AgentAssigned.String())
	}

	return errs.NewConflictError("order", orderID.String())
}

func (r *GormOrderRepository) explainPointerFailure(ctx context.Context, orderID kernel.UUID) error {
	if _, err := r.Get(ctx, orderID); err != nil {
		return err
	}

	return errs.NewConflictError("order", orderID.String())
}
