package order

import (
	"pharmacy/internal/pkg/errs"
)

// Status represents the lifecycle state of a pharmacy order.
//
// State transitions:
//
//	pending ──> approved ──> processing ──┬──> ready                    (pickup)
//	   │                                  └──> out_for_delivery         (home delivery)
//	   │                                            │
//	   └──> canceled                                v
//	                                            assigned <──┐
//	                                                │       │ (handover / re-accept)
//	                                                ├───────┘
//	                                                v
//	                                            picked_up ──> delivered/completed
//
// failed branches off any delivery-adjacent state (out_for_delivery,
// assigned, picked_up). delivered is recorded as completed, its terminal
// alias, so completed is the single happy-path terminal status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status set at checkout. Stock for every item is
	// already reserved; nothing is committed yet.
	Pending

	// Approved means a pharmacist accepted the order for fulfillment.
	Approved

	// Processing means the order is being prepared in the pharmacy.
	Processing

	// Ready means a pickup order is prepared and waiting for the customer.
	Ready

	// OutForDelivery means a home-delivery order is prepared and dispatchable:
	// a delivery assignment may be created for it.
	OutForDelivery

	// AgentAssigned means a delivery agent claimed the order.
	AgentAssigned

	// PickedUp means the assigned agent collected the package.
	PickedUp

	// Delivered is the delivery confirmation; orders are persisted as
	// Completed (the terminal alias) immediately after reaching it.
	Delivered

	// Completed is the happy-path terminal status.
	Completed

	// Canceled is the terminal status for orders canceled while pending.
	Canceled

	// Failed is the terminal status for deliveries that could not complete.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Approved:       "approved",
		Processing:     "processing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		AgentAssigned:  "assigned",
		PickedUp:       "picked_up",
		Delivered:      "delivered",
		Completed:      "completed",
		Canceled:       "canceled",
		Failed:         "failed",
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
	if s <= Unknown || s > Failed {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled || s == Failed
}

// IsDispatchable reports whether a delivery assignment may be created for an
// order in this status.
func (s Status) IsDispatchable() bool {
	return s == OutForDelivery
}

// isDeliveryAdjacent reports whether the status belongs to the delivery
// branch, from which a failure may be recorded.
func (s Status) isDeliveryAdjacent() bool {
	return s == OutForDelivery || s == AgentAssigned || s == PickedUp
}

func (s Status) transition(to Status, allowedFrom ...Status) (Status, error) {
	for _, from := range allowedFrom {
		if s == from {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("order", s.String(), to.String())
}

// Approve transitions pending -> approved.
func (s Status) Approve() (Status, error) {
	return s.transition(Approved, Pending)
}

// StartProcessing transitions approved -> processing.
func (s Status) StartProcessing() (Status, error) {
	return s.transition(Processing, Approved)
}

// MarkReady transitions processing -> ready (pickup branch).
func (s Status) MarkReady() (Status, error) {
	return s.transition(Ready, Processing)
}

// MarkOutForDelivery transitions processing -> out_for_delivery (delivery branch).
func (s Status) MarkOutForDelivery() (Status, error) {
	return s.transition(OutForDelivery, Processing)
}

// AssignAgent transitions to assigned. Allowed from out_for_delivery (first
// claim) and from assigned itself (handover or re-accept by the same agent).
func (s Status) AssignAgent() (Status, error) {
	return s.transition(AgentAssigned, OutForDelivery, AgentAssigned)
}

// ReleaseAgent transitions assigned -> out_for_delivery, returning the order
// to the available pool. Used on rejection, open-pool handover, and
// assignment deletion.
func (s Status) ReleaseAgent() (Status, error) {
	return s.transition(OutForDelivery, AgentAssigned)
}

// MarkPickedUp transitions assigned -> picked_up.
func (s Status) MarkPickedUp() (Status, error) {
	return s.transition(PickedUp, AgentAssigned)
}

// MarkDelivered transitions picked_up -> completed (through the delivered alias).
func (s Status) MarkDelivered() (Status, error) {
	return s.transition(Completed, PickedUp)
}

// Cancel transitions pending -> canceled. Canceling any later status must go
// through a pharmacist refund workflow, not this transition.
func (s Status) Cancel() (Status, error) {
	return s.transition(Canceled, Pending)
}

// MarkFailed transitions any delivery-adjacent status -> failed.
func (s Status) MarkFailed() (Status, error) {
	if !s.isDeliveryAdjacent() {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Failed.String())
	}
	return Failed, nil
}
