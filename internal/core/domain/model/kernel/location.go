package kernel

import (
	"errors"
	"fmt"
	"math"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
// Locations must be created using the NewLocation constructor to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via the NewLocation constructor")

// Location represents a point on the town's continuous plane, in world units.
// Location is an immutable value object: coordinates may be negative or
// fractional, but never NaN or infinite. The zero value of Location is
// invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(940, -260)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(940,-260)
type Location struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Both coordinates must be finite numbers; NaN and infinities are rejected.
//
// Parameters:
//   - x: The X coordinate in world units
//   - y: The Y coordinate in world units
//
// Returns:
//   - Location: A valid location instance
//   - error: Validation error if either coordinate is not a finite number
//
// Example:
//
//	loc, err := NewLocation(120.5, 87)
//	if err != nil {
//	    log.Fatal("Invalid coordinates:", err)
//	}
//	// loc is now ready to use
func NewLocation(x float64, y float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the constructor.
// The zero value of Location is invalid and will fail this validation.
//
// Returns:
//   - error: ErrLocationIsNotConstructed if the location was not properly initialized, nil otherwise
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location in world units.
func (l Location) X() float64 {
	return l.x
}

// Y returns the Y coordinate of the location in world units.
func (l Location) Y() float64 {
	return l.y
}

// String returns a human-readable string representation of the Location.
// The format is "Location(x,y)" which is useful for debugging and logging.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.x, l.y)
}

// IsEqual compares two locations for equality.
// Two locations are considered equal if they have the same X and Y coordinates.
// Both locations must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Location to compare with
//
// Returns:
//   - bool: true if locations are equal, false otherwise
//   - error: Validation error if either location is improperly constructed
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.x == other.x && l.y == other.y, nil
}

// Distance calculates the straight-line (Euclidean) distance between two
// locations in world units. Both locations must be properly constructed
// (pass validation) for the calculation to succeed.
//
// Parameters:
//   - other: The Location to calculate distance to
//
// Returns:
//   - float64: The Euclidean distance between the two locations
//   - error: Validation error if either location is improperly constructed
//
// Example:
//
//	loc1, _ := NewLocation(0, 0)
//	loc2, _ := NewLocation(300, 400)
//
//	distance, err := loc1.Distance(loc2)
//	// distance = 500, err = nil
//
//	// Distance is symmetric
//	distance2, _ := loc2.Distance(loc1)
//	// distance2 = 500 (same as distance)
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return math.Hypot(l.x-other.x, l.y-other.y), nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// during object construction.
func (l *Location) setX(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errs.NewValueIsInvalidError("x")
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// during object construction.
func (l *Location) setY(y float64) error {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return errs.NewValueIsInvalidError("y")
	}

	l.y = y
	return nil
}
