package kernel

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

const (
	// LocationMinLatitude is the minimum valid latitude in degrees.
	LocationMinLatitude float64 = -90
	// LocationMaxLatitude is the maximum valid latitude in degrees.
	LocationMaxLatitude float64 = 90
	// LocationMinLongitude is the minimum valid longitude in degrees.
	LocationMinLongitude float64 = -180
	// LocationMaxLongitude is the maximum valid longitude in degrees.
	LocationMaxLongitude float64 = 180
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object holding validated geographic
// coordinates of a delivery destination. Orders carry an optional Location:
// geocoding is best-effort and a missing location never blocks order creation.
//
// Example:
//
//	loc, err := kernel.NewLocation(52.52, 13.405)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: Location(52.520000,13.405000)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if latitude < LocationMinLatitude || latitude > LocationMaxLatitude {
		return Location{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, LocationMinLatitude, LocationMaxLatitude)
	}
	if longitude < LocationMinLongitude || longitude > LocationMaxLongitude {
		return Location{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, LocationMinLongitude, LocationMaxLongitude)
	}

	loc.latitude = latitude
	loc.longitude = longitude
	return loc, nil
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual reports whether two locations hold the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// Validate ensures the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}
