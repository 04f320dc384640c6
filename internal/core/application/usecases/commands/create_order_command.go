package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order requires at least one item")
)

// ItemInput is one checkout line: the product and how many units. Name and
// price are not accepted from the client; they are snapshotted from the
// catalog at creation time.
type ItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a checkout request: the customer, the order
// and delivery kind, the item lines, and an optional free-form delivery
// address used for geocoding.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	orderType    order.Type
	deliveryType order.DeliveryType
	items        []ItemInput
	address      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// identifiers, the order and delivery kind, and that every item line names a
// product with a positive quantity. The address may be empty for pickup
// orders.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	orderType order.Type,
	deliveryType order.DeliveryType,
	items []ItemInput,
	address string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOrderType(orderType),
		cmd.setDeliveryType(deliveryType),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OrderType returns the order kind.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// DeliveryType returns the fulfillment channel.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Items returns the checkout lines.
func (c CreateOrderCommand) Items() []ItemInput {
	out := make([]ItemInput, len(c.items))
	copy(out, c.items)
	return out
}

// Address returns the free-form delivery address, possibly empty.
func (c CreateOrderCommand) Address() string {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}
	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}
