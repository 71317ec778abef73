package ports

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// World is everything the dispatch logic may ask of, or do to, the
// environment the agent lives in: the outstanding orders, the town's house
// locations, distances from the agent, pizza handling and movement.
//
// The contract is deliberately error-free. Queries always answer with a
// value; actions that can fail answer with a bare boolean. A refusal is
// ordinary, not exceptional - the caller simply tries again on a later tick.
// Implementations must be safe for synchronous use within a tick: reads made
// after a write in the same tick observe that write.
type World interface {
	// PizzaOrders returns a snapshot of all outstanding orders.
	// The slice is owned by the caller; mutating it does not affect the world.
	PizzaOrders() []order.Order

	// HouseLocations returns a snapshot of the town's house location table.
	HouseLocations() map[order.HouseNumber]kernel.Location

	// HouseTimeLeft returns the seconds remaining before the given house
	// gives up on its pizza. Returns 0 for a house with no pending order.
	HouseTimeLeft(house order.HouseNumber) float64

	// DistanceTo returns the straight-line distance from the agent's current
	// position to the target, in world units.
	DistanceTo(target kernel.Location) float64

	// MaxSpeed returns the agent's maximum movement speed in units/second.
	MaxSpeed() float64

	// PizzaAmount returns how many pizzas the agent currently carries.
	PizzaAmount() int

	// TryGrabPizza attempts to pick up one pizza. Reports whether a pizza
	// changed hands.
	TryGrabPizza() bool

	// TryDeliverPizza attempts to hand over a pizza for the given order.
	// Reports whether the hand-over happened; on success the order is gone
	// from the world.
	TryDeliverPizza(number order.Number) bool

	// AwaitsPizzaDelivery reports whether the given house still waits for a
	// pizza.
	AwaitsPizzaDelivery(house order.HouseNumber) bool

	// SetMoveDestination points the agent's movement at the target. Movement
	// itself happens in the world between ticks.
	SetMoveDestination(target kernel.Location)
}
