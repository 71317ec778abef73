package services

import (
	"math"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

const (
	// DeliveryRange is how close to the destination, in world units, the
	// agent must be before a hand-over is attempted. Strictly farther than
	// this the agent keeps moving; strictly closer advances a Selected
	// urgency to Arrived.
	DeliveryRange = 300.0

	// SpoilageMargin is the slack, in seconds, below which an order is
	// considered about to spoil: when the most pressed house's remaining
	// time minus the travel time to it drops under this margin, that order
	// preempts the closest one.
	SpoilageMargin = 5.0
)

// PizzaDispatcher is the domain service that advances the delivery agent by
// one step. Each step reads the world, decides, and issues at most one
// commitment or movement order.
//
// Key responsibilities:
//   - Driving the agent's idle/delivering state machine
//   - Selecting the closest deliverable order, with spoilage preemption
//   - Attempting hand-overs and clearing completed commitments
//
// Business rules:
//   - While delivering, the agent heads for the destination frozen at
//     commitment time and attempts the hand-over only within DeliveryRange
//   - While idle, the closest order wins unless another order is about to
//     spoil; ties keep the earlier order
//   - A hand-over or pickup refusal is absorbed: the step ends and the next
//     one retries
//   - Without a pizza in hand nothing is committed to
//
// Example usage:
//
//	dispatcher := services.NewPizzaDispatcher()
//	result, err := dispatcher.Step(agent, world)
//	if err != nil {
//	    // Programming error: invalid agent or missing world
//	    return
//	}
//	// result describes what the step did
type PizzaDispatcher struct{}

// NewPizzaDispatcher creates a new PizzaDispatcher instance.
//
// Returns:
//   - PizzaDispatcher: A new instance ready to advance the agent
func NewPizzaDispatcher() PizzaDispatcher {
	return PizzaDispatcher{}
}

// Step advances the agent by one dispatch step against the given world.
//
// Parameters:
//   - a: The delivery agent (must be properly constructed)
//   - world: The environment the agent acts in (must not be nil)
//
// Returns:
//   - StepResult: What the step did
//   - error: Only for programming mistakes - an unconstructed agent, a nil
//     world, or an urgency transition the step flow can never legally reach.
//     Refusals from the world are outcomes, not errors.
func (d PizzaDispatcher) Step(a *agent.Agent, world ports.World) (StepResult, error) {
	if err := a.Validate(); err != nil {
		return StepResult{}, err
	}
	if world == nil {
		return StepResult{}, errs.NewValueIsRequiredError("world")
	}

	if a.Delivering() {
		return d.stepDelivering(a, world)
	}
	return d.stepIdle(a, world)
}

// stepDelivering handles one step of an agent that holds a commitment:
// keep moving while out of range, otherwise attempt the hand-over.
func (d PizzaDispatcher) stepDelivering(a *agent.Agent, world ports.World) (StepResult, error) {
	ord := *a.CurrentOrder()
	distance := world.DistanceTo(a.Destination())

	if distance > DeliveryRange {
		world.SetMoveDestination(a.Destination())
		return StepResult{
			Outcome:     OutcomeEnRoute,
			OrderNumber: ord.Number(),
			House:       ord.House(),
			Distance:    distance,
			Urgency:     a.Urgency(),
			Attempts:    a.DeliveryAttempts(),
		}, nil
	}

	if a.Urgency() == agent.Selected && distance < DeliveryRange {
		if err := a.MarkArrived(); err != nil {
			return StepResult{}, err
		}
	}

	a.RecordDeliveryAttempt()
	if !world.TryDeliverPizza(ord.Number()) {
		world.SetMoveDestination(a.Destination())
		return StepResult{
			Outcome:     OutcomeDeliveryFailed,
			OrderNumber: ord.Number(),
			House:       ord.House(),
			Distance:    distance,
			Urgency:     a.Urgency(),
			Attempts:    a.DeliveryAttempts(),
		}, nil
	}

	urgency := a.Urgency()
	attempts := a.DeliveryAttempts()
	if err := a.CompleteDelivery(); err != nil {
		return StepResult{}, err
	}

	// A pressed house sitting at exactly the just-measured distance counts
	// as arrived at; the first match wins. The comparison is an exact
	// distance match, not a deadline check.
	locations := world.HouseLocations()
	for _, pending := range world.PizzaOrders() {
		if !world.AwaitsPizzaDelivery(pending.House()) {
			continue
		}
		loc, ok := locations[pending.House()]
		if !ok {
			continue
		}
		if world.DistanceTo(loc) == distance {
			if err := a.MarkArrived(); err != nil {
				return StepResult{}, err
			}
			break
		}
	}

	return StepResult{
		Outcome:     OutcomeDelivered,
		OrderNumber: ord.Number(),
		House:       ord.House(),
		Distance:    distance,
		Urgency:     urgency,
		Attempts:    attempts,
	}, nil
}

// stepIdle handles one step of an idle agent: pick an order, make sure a
// pizza is in hand, and commit.
func (d PizzaDispatcher) stepIdle(a *agent.Agent, world ports.World) (StepResult, error) {
	orders := world.PizzaOrders()
	if len(orders) == 0 {
		return StepResult{Outcome: OutcomeNoOrders}, nil
	}

	locations := world.HouseLocations()

	selected, closestDistance := d.findClosest(orders, locations, world)
	if selected < 0 {
		// Nothing deliverable: every outstanding order points at a house
		// missing from the location table.
		return StepResult{Outcome: OutcomeNoOrders}, nil
	}

	mostUrgent, shortestTime := d.findMostUrgent(orders, locations, world)

	distance := closestDistance
	preempted := false
	urgentDistance := world.DistanceTo(locations[orders[mostUrgent].House()])
	if shortestTime-urgentDistance/world.MaxSpeed() < SpoilageMargin && a.Urgency() != agent.Arrived {
		if err := a.MarkUrgent(); err != nil {
			return StepResult{}, err
		}
		selected = mostUrgent
		distance = urgentDistance
		preempted = true
	}

	chosen := orders[selected]

	// The urgency set above deliberately survives a failed pickup: the
	// pressure was real even though nothing was committed to this step.
	if world.PizzaAmount() == 0 && !world.TryGrabPizza() {
		return StepResult{
			Outcome:     OutcomePickupDeferred,
			OrderNumber: chosen.Number(),
			House:       chosen.House(),
			Distance:    distance,
			Urgency:     a.Urgency(),
			Preempted:   preempted,
		}, nil
	}

	destination := locations[chosen.House()]
	if err := a.TakeOrder(chosen, destination); err != nil {
		return StepResult{}, err
	}
	world.SetMoveDestination(destination)

	return StepResult{
		Outcome:     OutcomeOrderTaken,
		OrderNumber: chosen.Number(),
		House:       chosen.House(),
		Distance:    distance,
		Urgency:     a.Urgency(),
		Preempted:   preempted,
	}, nil
}

// findClosest returns the index of the outstanding order whose house is
// nearest to the agent, and that distance. Orders whose house is missing
// from the location table are skipped. Ties keep the earlier order.
// Returns -1 when no order has a located house.
func (d PizzaDispatcher) findClosest(
	orders []order.Order,
	locations map[order.HouseNumber]kernel.Location,
	world ports.World,
) (int, float64) {
	closest := -1
	closestDistance := math.MaxFloat64

	for i, ord := range orders {
		loc, ok := locations[ord.House()]
		if !ok {
			continue
		}
		if currentDistance := world.DistanceTo(loc); currentDistance < closestDistance {
			closestDistance = currentDistance
			closest = i
		}
	}

	return closest, closestDistance
}

// findMostUrgent returns the index of the outstanding order whose house has
// the least time left, and that time. Orders whose house is missing from the
// location table are skipped, mirroring findClosest. Ties keep the earlier
// order.
func (d PizzaDispatcher) findMostUrgent(
	orders []order.Order,
	locations map[order.HouseNumber]kernel.Location,
	world ports.World,
) (int, float64) {
	mostUrgent := -1
	shortestTime := math.MaxFloat64

	for i, ord := range orders {
		if _, ok := locations[ord.House()]; !ok {
			continue
		}
		if currentTime := world.HouseTimeLeft(ord.House()); currentTime < shortestTime {
			shortestTime = currentTime
			mostUrgent = i
		}
	}

	return mostUrgent, shortestTime
}
