package order

import (
	"pharmacy/internal/pkg/errs"
)

// Type distinguishes the two order payload variants. The variant is resolved
// once at order construction; handlers never re-inspect field shapes.
type Type string

const (
	// TypeProduct is a regular over-the-counter product order.
	TypeProduct Type = "product"
	// TypePrescription is an order created from an approved prescription.
	TypePrescription Type = "prescription"
)

// Validate checks that the Type is one of the defined variants.
func (t Type) Validate() error {
	if t != TypeProduct && t != TypePrescription {
		return errs.NewValueIsInvalidError("orderType")
	}
	return nil
}

// String returns the persisted form of the order type.
func (t Type) String() string {
	return string(t)
}

// DeliveryType selects how the prepared order leaves the pharmacy.
type DeliveryType string

const (
	// DeliveryTypePickup means the customer collects the order; preparation
	// ends in the ready status.
	DeliveryTypePickup DeliveryType = "pickup"
	// DeliveryTypeHome means the order enters the delivery branch; preparation
	// ends in the out_for_delivery status.
	DeliveryTypeHome DeliveryType = "home_delivery"
)

// Validate checks that the DeliveryType is one of the defined variants.
func (d DeliveryType) Validate() error {
	if d != DeliveryTypePickup && d != DeliveryTypeHome {
		return errs.NewValueIsInvalidError("deliveryType")
	}
	return nil
}

// String returns the persisted form of the delivery type.
func (d DeliveryType) String() string {
	return string(d)
}
