package dispatch

import (
	"pharmacy/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	available ──> assigned ──> accepted ──> picked_up ──> delivered | failed
//	    ^            │  ^          │
//	    │            │  └──────────┤ (handover re-entry)
//	    │            v             v
//	    │        rejected      handed_over ──> assigned
//	    └────────────┘ (record reopened for the pool)
//
// rejected, delivered, and failed are terminal for the holding agent; a
// rejected record is reopened to available rather than replaced, which keeps
// the one-record-per-order storage constraint and the audit trail intact.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the assignment is in the open pool, claimable by any
	// active delivery agent.
	Available

	// Assigned means an agent claimed the assignment.
	Assigned

	// Accepted means the assigned agent acknowledged the job.
	Accepted

	// PickedUp means the agent collected the package from the pharmacy.
	PickedUp

	// Delivered is the happy-path terminal status.
	Delivered

	// Failed is the terminal status for deliveries that could not complete.
	Failed

	// Rejected means the assigned agent declined the job before pickup.
	Rejected

	// HandedOver means the holder released the assignment to the open pool
	// mid-delivery; the next agent re-enters it at assigned.
	HandedOver
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Available:  "available",
		Assigned:   "assigned",
		Accepted:   "accepted",
		PickedUp:   "picked_up",
		Delivered:  "delivered",
		Failed:     "failed",
		Rejected:   "rejected",
		HandedOver: "handed_over",
	}
}

// StatusFromString resolves the persisted snake_case form back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// String returns the snake_case name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > HandedOver {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the assignment reached a final status.
// A rejected record is terminal for its agent but may be reopened to the pool.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Rejected
}

// IsPrePickup reports whether the package is still at the pharmacy. Handover
// and deletion are only allowed while this holds.
func (s Status) IsPrePickup() bool {
	return s == Available || s == Assigned || s == Accepted || s == HandedOver
}

func (s Status) transition(to Status, allowedFrom ...Status) (Status, error) {
	for _, from := range allowedFrom {
		if s == from {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("assignment", s.String(), to.String())
}

// Claim transitions available -> assigned.
func (s Status) Claim() (Status, error) {
	return s.transition(Assigned, Available)
}

// Acknowledge transitions assigned -> accepted.
func (s Status) Acknowledge() (Status, error) {
	return s.transition(Accepted, Assigned)
}

// MarkPickedUp transitions assigned|accepted -> picked_up.
func (s Status) MarkPickedUp() (Status, error) {
	return s.transition(PickedUp, Assigned, Accepted)
}

// MarkDelivered transitions picked_up -> delivered.
func (s Status) MarkDelivered() (Status, error) {
	return s.transition(Delivered, PickedUp)
}

// MarkFailed transitions picked_up -> failed.
func (s Status) MarkFailed() (Status, error) {
	return s.transition(Failed, PickedUp)
}

// Reject transitions assigned|accepted -> rejected.
func (s Status) Reject() (Status, error) {
	return s.transition(Rejected, Assigned, Accepted)
}

// HandOver transitions any pre-pickup held status -> handed_over (open pool).
func (s Status) HandOver() (Status, error) {
	return s.transition(HandedOver, Assigned, Accepted)
}

// Reassign transitions back to assigned under a new agent: directly from a
// held pre-pickup status (targeted handover) or from handed_over (pool pickup).
func (s Status) Reassign() (Status, error) {
	return s.transition(Assigned, Assigned, Accepted, HandedOver)
}

// Reopen transitions rejected -> available so the one record per order can
// re-enter the pool without violating the storage uniqueness constraint.
func (s Status) Reopen() (Status, error) {
	return s.transition(Available, Rejected)
}
