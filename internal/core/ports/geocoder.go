package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
)

// Geocoder resolves a delivery address to coordinates at order-creation time.
// It is best-effort only: any error makes the caller fall back to an order
// without coordinates, never a failed order creation.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.Location, error)
}
