// Package sim provides the in-memory town the delivery agent operates in:
// a bakery, a table of houses, pending pizza orders and the agent's own
// position. It stands in for the game engine the dispatch logic was written
// against, which is why its contract is error-free: queries always answer,
// actions report success with a bare boolean.
//
// The world is the single source of truth for outstanding orders. Orders
// enter through PlaceOrder, leave through a successful TryDeliverPizza or by
// spoiling, and the dispatch logic never removes them itself.
package sim

import (
	"fmt"
	"math"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Config describes the town layout and physics tunables.
type Config struct {
	// Bakery is the pickup point. The agent starts here.
	Bakery kernel.Location

	// Houses maps house numbers to their locations.
	Houses map[order.HouseNumber]kernel.Location

	// AgentSpeed is the agent's movement speed in world units per second.
	AgentSpeed float64

	// PickupRadius is how close to the bakery the agent must be for
	// TryGrabPizza to succeed.
	PickupRadius float64

	// DeliveryRadius is how close to a house the agent must be for
	// TryDeliverPizza to succeed. Keeping it tighter than the dispatch
	// logic's approach range means an in-range attempt can still be refused.
	DeliveryRadius float64

	// OrderTimeLimit is how many seconds a house waits before giving up on
	// its pizza.
	OrderTimeLimit float64
}

func (c Config) validate() error {
	if err := c.Bakery.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("bakery", err)
	}

	if len(c.Houses) == 0 {
		return errs.NewValueIsRequiredError("houses")
	}

	for house, loc := range c.Houses {
		if house < 0 {
			return errs.NewValueIsInvalidError(fmt.Sprintf("house number %d", house))
		}
		if err := loc.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("house %d location", house), err)
		}
	}

	if math.IsNaN(c.AgentSpeed) || math.IsInf(c.AgentSpeed, 0) || c.AgentSpeed < 0 {
		return errs.NewValueIsInvalidError("agent speed")
	}

	if math.IsNaN(c.PickupRadius) || math.IsInf(c.PickupRadius, 0) || c.PickupRadius < 0 {
		return errs.NewValueIsInvalidError("pickup radius")
	}

	if math.IsNaN(c.DeliveryRadius) || math.IsInf(c.DeliveryRadius, 0) || c.DeliveryRadius < 0 {
		return errs.NewValueIsInvalidError("delivery radius")
	}

	if math.IsNaN(c.OrderTimeLimit) || math.IsInf(c.OrderTimeLimit, 0) || c.OrderTimeLimit <= 0 {
		return errs.NewValueIsInvalidError("order time limit")
	}

	return nil
}

// pendingOrder is one outstanding order plus the seconds its house will
// still wait.
type pendingOrder struct {
	ord      order.Order
	timeLeft float64
}

// World is the live town state. It implements ports.World, ports.OrderIntake
// and the command layer's world clock.
//
// A single mutex guards everything: the tick job, the order generator and
// HTTP reads all touch the world concurrently, and within a tick every read
// made after a write must observe that write.
type World struct {
	mu  sync.Mutex
	cfg Config

	agentPos  kernel.Location
	target    kernel.Location
	hasTarget bool

	pizzas     int
	nextNumber order.Number
	pending    []pendingOrder
}

// NewWorld creates a town from the given configuration. The agent starts at
// the bakery with no pizzas and no move target; order numbers start at 1.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	houses := make(map[order.HouseNumber]kernel.Location, len(cfg.Houses))
	for house, loc := range cfg.Houses {
		houses[house] = loc
	}
	cfg.Houses = houses

	return &World{
		cfg:        cfg,
		agentPos:   cfg.Bakery,
		nextNumber: 1,
	}, nil
}

// Advance moves the world forward by the given number of seconds: the agent
// travels toward its move target and pending orders lose patience. Spoiled
// orders are removed. Non-positive durations are ignored.
func (w *World) Advance(seconds float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if math.IsNaN(seconds) || seconds <= 0 {
		return
	}

	w.moveAgent(seconds)
	w.decayOrders(seconds)
}

func (w *World) moveAgent(seconds float64) {
	if !w.hasTarget {
		return
	}

	dist, err := w.agentPos.Distance(w.target)
	if err != nil {
		return
	}

	step := w.cfg.AgentSpeed * seconds
	if step >= dist {
		w.agentPos = w.target
		w.hasTarget = false
		return
	}

	frac := step / dist
	next, err := kernel.NewLocation(
		w.agentPos.X()+(w.target.X()-w.agentPos.X())*frac,
		w.agentPos.Y()+(w.target.Y()-w.agentPos.Y())*frac,
	)
	if err != nil {
		return
	}
	w.agentPos = next
}

func (w *World) decayOrders(seconds float64) {
	kept := w.pending[:0]
	for _, p := range w.pending {
		p.timeLeft -= seconds
		if p.timeLeft > 0 {
			kept = append(kept, p)
		}
	}
	w.pending = kept
}

// PlaceOrder registers a pizza order for the given house and assigns it the
// next sequential number. Unknown houses and houses that already wait for a
// pizza are refused.
func (w *World) PlaceOrder(house order.HouseNumber) (order.Number, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.cfg.Houses[house]; !ok {
		return 0, false
	}
	if w.awaitsLocked(house) {
		return 0, false
	}

	ord, err := order.NewOrder(w.nextNumber, house)
	if err != nil {
		return 0, false
	}

	w.pending = append(w.pending, pendingOrder{ord: ord, timeLeft: w.cfg.OrderTimeLimit})
	w.nextNumber++
	return ord.Number(), true
}

// PizzaOrders returns a snapshot of all outstanding orders in placement order.
func (w *World) PizzaOrders() []order.Order {
	w.mu.Lock()
	defer w.mu.Unlock()

	orders := make([]order.Order, 0, len(w.pending))
	for _, p := range w.pending {
		orders = append(orders, p.ord)
	}
	return orders
}

// HouseLocations returns a snapshot of the town's house location table.
func (w *World) HouseLocations() map[order.HouseNumber]kernel.Location {
	w.mu.Lock()
	defer w.mu.Unlock()

	locations := make(map[order.HouseNumber]kernel.Location, len(w.cfg.Houses))
	for house, loc := range w.cfg.Houses {
		locations[house] = loc
	}
	return locations
}

// HouseTimeLeft returns the seconds the given house will still wait for its
// pizza, or 0 when it has no pending order.
func (w *World) HouseTimeLeft(house order.HouseNumber) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.pending {
		if p.ord.House() == house {
			return p.timeLeft
		}
	}
	return 0
}

// DistanceTo returns the straight-line distance from the agent to the target.
// An unconstructed target is unreachable.
func (w *World) DistanceTo(target kernel.Location) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	dist, err := w.agentPos.Distance(target)
	if err != nil {
		return math.Inf(1)
	}
	return dist
}

// MaxSpeed returns the agent's movement speed in world units per second.
func (w *World) MaxSpeed() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.cfg.AgentSpeed
}

// PizzaAmount returns how many pizzas the agent currently carries.
func (w *World) PizzaAmount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pizzas
}

// TryGrabPizza picks up one pizza when the agent stands within the pickup
// radius of the bakery.
func (w *World) TryGrabPizza() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	dist, err := w.agentPos.Distance(w.cfg.Bakery)
	if err != nil || dist > w.cfg.PickupRadius {
		return false
	}

	w.pizzas++
	return true
}

// TryDeliverPizza hands over a carried pizza for the given order. It succeeds
// only when the order is still pending, the agent carries a pizza and stands
// within the delivery radius of the order's house. On success the order
// leaves the world and the agent heads back to the bakery until a new move
// destination is issued.
func (w *World) TryDeliverPizza(number order.Number) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pizzas == 0 {
		return false
	}

	for i, p := range w.pending {
		if p.ord.Number() != number {
			continue
		}

		loc, ok := w.cfg.Houses[p.ord.House()]
		if !ok {
			return false
		}

		dist, err := w.agentPos.Distance(loc)
		if err != nil || dist > w.cfg.DeliveryRadius {
			return false
		}

		w.pending = append(w.pending[:i], w.pending[i+1:]...)
		w.pizzas--
		w.target = w.cfg.Bakery
		w.hasTarget = true
		return true
	}

	return false
}

// AwaitsPizzaDelivery reports whether the given house still waits for a pizza.
func (w *World) AwaitsPizzaDelivery(house order.HouseNumber) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.awaitsLocked(house)
}

func (w *World) awaitsLocked(house order.HouseNumber) bool {
	for _, p := range w.pending {
		if p.ord.House() == house {
			return true
		}
	}
	return false
}

// SetMoveDestination points the agent's movement at the target. Movement
// itself happens in Advance. Unconstructed targets are ignored.
func (w *World) SetMoveDestination(target kernel.Location) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := target.Validate(); err != nil {
		return
	}

	w.target = target
	w.hasTarget = true
}
