package assignmentrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/dispatch"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments. The unique index on OrderID is what enforces the single
// assignment per order under concurrent creation.
type AssignmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"index"`
	Notes           string
	CreatedAt       time.Time
	AssignedAt      *time.Time
	AcceptedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	FailedAt        *time.Time
	IsHandover      bool
	HandoverReason  string
	HandoverDetails string
	HandoverAt      *time.Time
	HandoverBy      *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming convention.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(a *dispatch.Assignment) AssignmentDTO {
	var agentID, handoverBy *uuid.UUID
	if id := a.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}
	if id := a.HandoverBy(); id != nil {
		raw := id.Bytes()
		handoverBy = &raw
	}

	return AssignmentDTO{
		ID:              a.ID().Bytes(),
		OrderID:         a.OrderID().Bytes(),
		AgentID:         agentID,
		Status:          a.Status().String(),
		Notes:           a.Notes(),
		CreatedAt:       a.CreatedAt(),
		AssignedAt:      a.AssignedAt(),
		AcceptedAt:      a.AcceptedAt(),
		PickedUpAt:      a.PickedUpAt(),
		DeliveredAt:     a.DeliveredAt(),
		FailedAt:        a.FailedAt(),
		IsHandover:      a.IsHandover(),
		HandoverReason:  a.HandoverReason(),
		HandoverDetails: a.HandoverDetails(),
		HandoverAt:      a.HandoverAt(),
		HandoverBy:      handoverBy,
	}
}

func toDomain(dto AssignmentDTO) (*dispatch.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := dispatch.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID, handoverBy *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes(dto.AgentID[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}
	if dto.HandoverBy != nil {
		hID, handoverErr := kernel.UUIDFromBytes(dto.HandoverBy[:])
		if handoverErr != nil {
			return nil, handoverErr
		}
		handoverBy = &hID
	}

	return dispatch.RestoreAssignment(
		id,
		orderID,
		agentID,
		status,
		dto.Notes,
		dto.CreatedAt,
		dto.AssignedAt,
		dto.AcceptedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.FailedAt,
		dto.IsHandover,
		dto.HandoverReason,
		dto.HandoverDetails,
		dto.HandoverAt,
		handoverBy,
	)
}
