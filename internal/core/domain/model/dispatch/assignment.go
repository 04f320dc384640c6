package dispatch

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment constructor")

// Assignment is the delivery-assignment aggregate of the dispatch manager.
// Exactly one assignment record exists per order (enforced by a storage
// uniqueness constraint on the order reference); the record is reused across
// rejections and handovers so the audit trail stays continuous and the
// "duplicate assignment for one order" violation cannot occur.
//
// Only the currently holding agent may reject, hand over, or progress the
// assignment; every guard violation is reported as a typed error naming the
// current and requested state.
type Assignment struct {
	id      kernel.UUID
	orderID kernel.UUID
	agentID *kernel.UUID
	status  Status
	notes   string

	createdAt   time.Time
	assignedAt  *time.Time
	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	failedAt    *time.Time

	isHandover      bool
	handoverReason  string
	handoverDetails string
	handoverAt      *time.Time
	handoverBy      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignment creates an assignment in the available pool for an order.
func NewAssignment(id kernel.UUID, orderID kernel.UUID) (*Assignment, error) {
	a := &Assignment{
		status:    Available,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID *kernel.UUID,
	status Status,
	notes string,
	createdAt time.Time,
	assignedAt, acceptedAt, pickedUpAt, deliveredAt, failedAt *time.Time,
	isHandover bool,
	handoverReason, handoverDetails string,
	handoverAt *time.Time,
	handoverBy *kernel.UUID,
) (*Assignment, error) {
	a, err := NewAssignment(id, orderID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	a.agentID = agentID
	a.status = status
	a.notes = notes
	a.createdAt = createdAt
	a.assignedAt = assignedAt
	a.acceptedAt = acceptedAt
	a.pickedUpAt = pickedUpAt
	a.deliveredAt = deliveredAt
	a.failedAt = failedAt
	a.isHandover = isHandover
	a.handoverReason = handoverReason
	a.handoverDetails = handoverDetails
	a.handoverAt = handoverAt
	a.handoverBy = handoverBy
	return a, nil
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by identity.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the order being delivered.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// Agent returns the currently responsible agent's ID, nil while pooled.
func (a *Assignment) Agent() *kernel.UUID {
	return a.agentID
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// Notes returns free-text notes recorded on the last status update.
func (a *Assignment) Notes() string {
	return a.notes
}

// CreatedAt returns when the assignment entered the pool.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// AssignedAt returns when the current agent claimed the assignment.
func (a *Assignment) AssignedAt() *time.Time {
	return a.assignedAt
}

// AcceptedAt returns when the current agent acknowledged the job.
func (a *Assignment) AcceptedAt() *time.Time {
	return a.acceptedAt
}

// PickedUpAt returns when the package left the pharmacy.
func (a *Assignment) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// DeliveredAt returns when the delivery was confirmed.
func (a *Assignment) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// FailedAt returns when the assignment was rejected or failed.
func (a *Assignment) FailedAt() *time.Time {
	return a.failedAt
}

// IsHandover reports whether the assignment changed hands at least once.
func (a *Assignment) IsHandover() bool {
	return a.isHandover
}

// HandoverReason returns the recorded reason of the last handover.
func (a *Assignment) HandoverReason() string {
	return a.handoverReason
}

// HandoverDetails returns free-text details of the last handover.
func (a *Assignment) HandoverDetails() string {
	return a.handoverDetails
}

// HandoverAt returns when the last handover happened.
func (a *Assignment) HandoverAt() *time.Time {
	return a.handoverAt
}

// HandoverBy returns the agent who initiated the last handover.
func (a *Assignment) HandoverBy() *kernel.UUID {
	return a.handoverBy
}

// Accept claims the assignment for an agent: available -> assigned, with
// assignedAt and acceptedAt stamped. The order-side agent pointer is claimed
// separately by the order aggregate under its own conditional update.
func (a *Assignment) Accept(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if a.agentID != nil && !a.agentID.IsEqual(agentID) {
		return errs.NewConflictError("assignment", a.id.String())
	}

	newStatus, err := a.status.Claim()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.agentID = &agentID
	a.assignedAt = &now
	a.acceptedAt = &now
	return nil
}

// Reject declines the job. Only the holding agent may reject; the status
// becomes rejected and failedAt is stamped. The order returns to the pool
// through the order aggregate, and the record itself is reopened by the next
// CreateOrGetAssignment.
func (a *Assignment) Reject(agentID kernel.UUID, notes string) error {
	if err := a.ensureHolder(agentID); err != nil {
		return err
	}

	newStatus, err := a.status.Reject()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.failedAt = &now
	a.setNotes(notes)
	return nil
}

// Acknowledge moves assigned -> accepted for the holding agent.
func (a *Assignment) Acknowledge(agentID kernel.UUID) error {
	if err := a.ensureHolder(agentID); err != nil {
		return err
	}

	newStatus, err := a.status.Acknowledge()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.acceptedAt = &now
	return nil
}

// MarkPickedUp records the package collection by the holding agent.
func (a *Assignment) MarkPickedUp(agentID kernel.UUID, notes string) error {
	if err := a.ensureHolder(agentID); err != nil {
		return err
	}

	newStatus, err := a.status.MarkPickedUp()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.pickedUpAt = &now
	a.setNotes(notes)
	return nil
}

// MarkDelivered records the delivery confirmation by the holding agent.
func (a *Assignment) MarkDelivered(agentID kernel.UUID, notes string) error {
	if err := a.ensureHolder(agentID); err != nil {
		return err
	}

	newStatus, err := a.status.MarkDelivered()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.deliveredAt = &now
	a.setNotes(notes)
	return nil
}

// MarkFailed records a delivery failure by the holding agent.
func (a *Assignment) MarkFailed(agentID kernel.UUID, notes string) error {
	if err := a.ensureHolder(agentID); err != nil {
		return err
	}

	newStatus, err := a.status.MarkFailed()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.failedAt = &now
	a.setNotes(notes)
	return nil
}

// HandOverTo transfers the assignment from its current holder directly to a
// target agent. The same record is reassigned; handover metadata and the
// isHandover flag preserve the audit trail.
func (a *Assignment) HandOverTo(fromAgentID, toAgentID kernel.UUID, reason, details string) error {
	if err := toAgentID.Validate(); err != nil {
		return err
	}
	if err := a.ensureHolder(fromAgentID); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := a.status.Reassign()
	if err != nil {
		return err
	}

	a.recordHandover(fromAgentID, reason, details)
	now := time.Now().UTC()
	a.status = newStatus
	a.agentID = &toAgentID
	a.assignedAt = &now
	a.acceptedAt = nil
	return nil
}

// HandOverToPool parks the assignment in handed_over with no holder, leaving
// it open for any agent to claim via AcceptHandover.
func (a *Assignment) HandOverToPool(fromAgentID kernel.UUID, reason, details string) error {
	if err := a.ensureHolder(fromAgentID); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := a.status.HandOver()
	if err != nil {
		return err
	}

	a.recordHandover(fromAgentID, reason, details)
	a.status = newStatus
	a.agentID = nil
	a.acceptedAt = nil
	return nil
}

// AcceptHandover claims a pooled handed_over assignment for an agent.
func (a *Assignment) AcceptHandover(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if a.status != HandedOver {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), Assigned.String())
	}

	newStatus, err := a.status.Reassign()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	a.status = newStatus
	a.agentID = &agentID
	a.assignedAt = &now
	return nil
}

// Reopen returns a rejected record to the available pool under no agent.
func (a *Assignment) Reopen() error {
	newStatus, err := a.status.Reopen()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.agentID = nil
	a.assignedAt = nil
	a.acceptedAt = nil
	a.failedAt = nil
	return nil
}

// EnsureDeletable reports whether the record may be discarded. Deletion is
// rejected once the package was picked up.
func (a *Assignment) EnsureDeletable() error {
	if !a.status.IsPrePickup() && a.status != Rejected {
		return errs.NewInvalidTransitionError("assignment", a.status.String(), "deleted")
	}
	return nil
}

func (a *Assignment) ensureHolder(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if a.agentID == nil || !a.agentID.IsEqual(agentID) {
		return errs.NewConflictError("assignment", a.id.String())
	}
	return nil
}

func (a *Assignment) recordHandover(fromAgentID kernel.UUID, reason, details string) {
	now := time.Now().UTC()
	a.isHandover = true
	a.handoverReason = reason
	a.handoverDetails = details
	a.handoverAt = &now
	a.handoverBy = &fromAgentID
}

func (a *Assignment) setNotes(notes string) {
	if notes != "" {
		a.notes = notes
	}
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}
