package ports

import (
	"pizzeria/internal/core/domain/model/order"
)

// OrderIntake is the write side of the order source: it lets callers place
// new pizza orders into the world. Order numbers are assigned by the world,
// sequentially.
type OrderIntake interface {
	// PlaceOrder registers a pizza order for the given house. Reports the
	// assigned order number and whether the order was accepted; unknown
	// houses are refused.
	PlaceOrder(house order.HouseNumber) (order.Number, bool)
}
