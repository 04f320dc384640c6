// Package dispatch contains the delivery-assignment aggregate.
//
// An assignment exposes a dispatchable order to the delivery-agent pool and
// tracks the claim, acknowledgement, pickup, and completion of the physical
// delivery, stamping a timestamp on every transition. Handover transfers the
// same record between agents (targeted or through the open pool) so each
// order keeps exactly one assignment with one continuous audit trail.
package dispatch
