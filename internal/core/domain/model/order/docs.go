// Package order contains the order lifecycle aggregate.
//
// An order is created at checkout with price snapshots and pre-reserved
// stock, then driven through pending, approved, processing, and either ready
// (pickup) or the delivery branch (out_for_delivery, assigned, picked_up,
// delivered/completed). Cancellation is allowed only while pending; failure
// branches off any delivery-adjacent status.
//
// Every transition validates the current status before mutating anything, so
// an invalid transition is reported to the caller and no partial state change
// occurs. The dispatch manager writes the order's agent and assignment
// pointers exclusively through this aggregate's transition methods.
package order
