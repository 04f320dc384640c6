package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
)

// DeliveryAgent is the read model the user directory exposes to dispatch:
// identity, display name, and whether the agent may take work right now.
type DeliveryAgent struct {
	ID     kernel.UUID
	Name   string
	Active bool
}

// AgentDirectory is the external user-directory collaborator. Dispatch
// consults it before writing an agent onto an order or assignment: the target
// must exist, carry the delivery_agent role, and be active.
type AgentDirectory interface {
	// GetDeliveryAgent returns the agent read model, or NotFound when the ID
	// is unknown or does not belong to a delivery agent.
	GetDeliveryAgent(ctx context.Context, id kernel.UUID) (DeliveryAgent, error)
}
