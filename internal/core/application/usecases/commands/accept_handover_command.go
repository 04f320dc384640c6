package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrAcceptHandoverCommandIsNotConstructed = errors.New(
	"AcceptHandoverCommand must be created via NewAcceptHandoverCommand constructor",
)

// AcceptHandoverCommand claims the open-pool handover covering an order for
// an agent.
type AcceptHandoverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptHandoverCommand creates a command to claim a pooled handover.
func NewAcceptHandoverCommand(orderID, agentID kernel.UUID) (AcceptHandoverCommand, error) {
	cmd := AcceptHandoverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AcceptHandoverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptHandoverCommand) Validate() error {
	return c.guard.Validate(ErrAcceptHandoverCommandIsNotConstructed)
}

// OrderID returns the order whose pooled handover is being claimed.
func (c AcceptHandoverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the claiming agent.
func (c AcceptHandoverCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AcceptHandoverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptHandoverCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
