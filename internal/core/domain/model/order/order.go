package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// Number identifies a pizza order. Numbers are assigned sequentially by the
// order source and are unique among outstanding orders.
type Number int

// HouseNumber identifies a house in the town's location table.
type HouseNumber int

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents an outstanding pizza order: which house asked for a pizza,
// under which number. Order is an immutable value object; the house's
// location and remaining patience live in the world, keyed by the house
// number.
//
// Order follows these invariants:
//   - The order number must be non-negative
//   - The house number must be non-negative
//   - Can only be created through the NewOrder constructor
type Order struct {
	number Number
	house  HouseNumber
	guard  guard.ConstructorGuard
}

// NewOrder creates a new Order with validation.
//
// Parameters:
//   - number: Order number assigned by the order source (must be non-negative)
//   - house: Destination house number (must be non-negative)
//
// Returns:
//   - Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	ord, err := order.NewOrder(7, 3)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(number Number, house HouseNumber) (Order, error) {
	ord := Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(ord.setNumber(number), ord.setHouse(house)); err != nil {
		return Order{}, err
	}

	return ord, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Number returns the order number.
func (o Order) Number() Number {
	return o.number
}

// House returns the destination house number.
func (o Order) House() HouseNumber {
	return o.house
}

// IsEqual compares two orders by number and house.
func (o Order) IsEqual(other Order) bool {
	return o.number == other.number && o.house == other.house
}

// String returns a human-readable representation in the format
// "Order(7 -> house 3)". Implements fmt.Stringer.
func (o Order) String() string {
	return fmt.Sprintf("Order(%d -> house %d)", o.number, o.house)
}

// setNumber validates and sets the order number.
// This is a private method used only during construction.
func (o *Order) setNumber(number Number) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}
	o.number = number
	return nil
}

// setHouse validates and sets the destination house number.
// This is a private method used only during construction.
func (o *Order) setHouse(house HouseNumber) error {
	if house < 0 {
		return errs.NewValueIsInvalidErrorWithCause("house", fmt.Errorf("%d is negative", house))
	}
	o.house = house
	return nil
}
