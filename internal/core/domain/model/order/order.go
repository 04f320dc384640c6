package order

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the order lifecycle engine. It owns the
// status state machine, the line-item snapshots taken at checkout, and the
// delivery pointers (assigned agent, current assignment) that the dispatch
// manager is allowed to write only through this aggregate's transitions.
//
// Invariants:
//   - at least one line item, each with a positive quantity
//   - total equals the sum of line totals unless explicitly supplied
//   - an agent pointer exists only in delivery-branch statuses
//   - prices are never recomputed after construction
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	orderType    Type
	deliveryType DeliveryType
	items        []Item
	total        int64
	status       Status

	agentID       *kernel.UUID
	assignmentID  *kernel.UUID
	location      *kernel.Location
	failureReason string

	guard guard.ConstructorGuard
}

// NewOrder creates an order in pending status from checkout input. Every item
// is expected to have passed an inventory reservation at add-to-cart time;
// this constructor only validates shape. When total is zero it is computed
// from the item snapshots.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	deliveryType DeliveryType,
	items []Item,
	total int64,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setOrderType(orderType),
		o.setDeliveryType(deliveryType),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderType Type,
	deliveryType DeliveryType,
	items []Item,
	total int64,
	status Status,
	agentID *kernel.UUID,
	assignmentID *kernel.UUID,
	location *kernel.Location,
	failureReason string,
) (*Order, error) {
	o, err := NewOrder(id, customerID, orderType, deliveryType, items, total)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.agentID = agentID
	o.assignmentID = assignmentID
	o.location = location
	o.failureReason = failureReason
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// OrderType returns the payload variant (product or prescription).
func (o *Order) OrderType() Type {
	return o.orderType
}

// DeliveryType returns how the prepared order leaves the pharmacy.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total in cents.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned delivery agent's ID, nil when unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Assignment returns the current delivery assignment's ID, nil when none exists.
func (o *Order) Assignment() *kernel.UUID {
	return o.assignmentID
}

// Location returns the geocoded delivery coordinates, nil when geocoding
// failed or was never attempted.
func (o *Order) Location() *kernel.Location {
	return o.location
}

// FailureReason returns the recorded reason for a failed delivery.
func (o *Order) FailureReason() string {
	return o.failureReason
}

// SetLocation attaches geocoded delivery coordinates. Geocoding is
// best-effort: callers skip this entirely when the geocoder fails.
func (o *Order) SetLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = &location
	return nil
}

// Approve moves a pending order into the approved status.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// StartProcessing moves an approved order into preparation.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ItemsPendingCommit returns the line items whose stock still needs an
// inventory commit: not flagged out of stock and not already committed.
func (o *Order) ItemsPendingCommit() []Item {
	pending := make([]Item, 0, len(o.items))
	for _, item := range o.items {
		if !item.outOfStock && !item.committed {
			pending = append(pending, item)
		}
	}
	return pending
}

// CommitItem flags the given product's line item as committed so a repeated
// preparation run never re-commits its stock.
func (o *Order) CommitItem(productID kernel.UUID) error {
	return o.eachItem(productID, (*Item).markCommitted)
}

// MarkItemOutOfStock flags the given product's line item as unavailable, e.g.
// when the product was deleted between checkout and preparation.
func (o *Order) MarkItemOutOfStock(productID kernel.UUID) error {
	return o.eachItem(productID, (*Item).markOutOfStock)
}

// FinishPreparation completes the preparation phase: a pickup order becomes
// ready, a home-delivery order becomes out_for_delivery. Callers invoke this
// only after every pending item commit succeeded or was reported.
func (o *Order) FinishPreparation() error {
	var (
		newStatus Status
		err       error
	)

	if o.deliveryType == DeliveryTypePickup {
		newStatus, err = o.status.MarkReady()
	} else {
		newStatus, err = o.status.MarkOutForDelivery()
	}
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves a pending order into the canceled status. The caller releases
// the item reservations through the inventory ledger before persisting.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// EnsureDeletable reports whether the order record may be removed. Only
// pending orders qualify; anything later has lifecycle history to preserve.
func (o *Order) EnsureDeletable() error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError("order", o.status.String(), "deleted")
	}
	return nil
}

// AssignAgent claims the order for a delivery agent. A claim succeeds only if
// no other agent holds the order; a differing current holder yields a
// Conflict. The persistence adapter performs the same check-and-set as one
// conditional update so concurrent claims keep this linearizable.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.agentID != nil && !o.agentID.IsEqual(agentID) {
		return errs.NewConflictError("order", o.id.String())
	}

	newStatus, err := o.status.AssignAgent()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// ReassignAgent transfers the order to another agent during a handover
// without passing through the available pool.
func (o *Order) ReassignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignAgent()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	return nil
}

// ReleaseAgent clears the agent pointer and returns the order to the
// available pool (out_for_delivery).
func (o *Order) ReleaseAgent() error {
	newStatus, err := o.status.ReleaseAgent()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = nil
	return nil
}

// MarkPickedUp records that the assigned agent collected the package.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.MarkPickedUp()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered records the delivery confirmation. The order lands on
// completed, the terminal alias of delivered.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkFailed records a delivery failure with its reason.
func (o *Order) MarkFailed(reason string) error {
	newStatus, err := o.status.MarkFailed()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.failureReason = reason
	return nil
}

// SetAssignment links the order to its current delivery assignment record.
func (o *Order) SetAssignment(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	o.assignmentID = &assignmentID
	return nil
}

// ClearAssignment detaches the order from its delivery assignment record.
func (o *Order) ClearAssignment() {
	o.assignmentID = nil
}

func (o *Order) eachItem(productID kernel.UUID, apply func(*Item)) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	found := false
	for idx := range o.items {
		if o.items[idx].productID.IsEqual(productID) {
			apply(&o.items[idx])
			found = true
		}
	}

	if !found {
		return errs.NewObjectNotFoundError("orderItem", productID.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total int64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	if total == 0 {
		for _, item := range o.items {
			total += item.lineTotal
		}
	}

	o.total = total
	return nil
}
