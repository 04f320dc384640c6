package agentrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const roleDeliveryAgent = "delivery_agent"

// AgentDTO represents the user-directory row dispatch reads. The table is
// owned by the identity service; this repository never writes to it.
type AgentDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string
	Active bool
}

// TableName overrides GORM's default naming convention.
func (AgentDTO) TableName() string {
	return "agents"
}

// GormAgentDirectory implements AgentDirectory against the shared agents
// table. Rows without the delivery agent role are reported as not found so
// callers cannot dispatch onto arbitrary users.
type GormAgentDirectory struct {
	db *gorm.DB
}

// NewGormAgentDirectory creates a new GORM-backed agent directory.
func NewGormAgentDirectory(db *gorm.DB) *GormAgentDirectory {
	return &GormAgentDirectory{db: db}
}

// GetDeliveryAgent returns the delivery agent read model for the given ID.
func (r *GormAgentDirectory) GetDeliveryAgent(ctx context.Context, id kernel.UUID) (ports.DeliveryAgent, error) {
	if err := id.Validate(); err != nil {
		return ports.DeliveryAgent{}, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.DeliveryAgent{}, errs.NewObjectNotFoundError("agent", id.String())
		}
		return ports.DeliveryAgent{}, err
	}

	if dto.Role != roleDeliveryAgent {
		return ports.DeliveryAgent{}, errs.NewObjectNotFoundError("agent", id.String())
	}

	agentID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.DeliveryAgent{}, err
	}

	return ports.DeliveryAgent{
		ID:     agentID,
		Name:   dto.Name,
		Active: dto.Active,
	}, nil
}
