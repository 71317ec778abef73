package services

import (
	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/order"
)

// StepOutcome classifies what a single dispatch step did.
type StepOutcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	// This value (0) helps catch uninitialized StepOutcome values.
	OutcomeUnknown StepOutcome = iota

	// OutcomeNoOrders means the agent was idle and no deliverable order existed.
	OutcomeNoOrders

	// OutcomeEnRoute means the agent is still out of hand-over range and the
	// move toward the committed destination was reissued.
	OutcomeEnRoute

	// OutcomeDeliveryFailed means a hand-over was attempted in range and
	// refused; the move was reissued and the commitment stands.
	OutcomeDeliveryFailed

	// OutcomeDelivered means a hand-over succeeded and the commitment was
	// cleared.
	OutcomeDelivered

	// OutcomePickupDeferred means an order was chosen but the agent carried
	// no pizza and could not grab one; no commitment was made.
	OutcomePickupDeferred

	// OutcomeOrderTaken means the agent committed to an order and the move
	// toward its house was issued.
	OutcomeOrderTaken
)

// getOutcomeStrings returns a map of StepOutcome values to their string
// representations.
func getOutcomeStrings() map[StepOutcome]string {
	return map[StepOutcome]string{
		OutcomeUnknown:        "Unknown",
		OutcomeNoOrders:       "NoOrders",
		OutcomeEnRoute:        "EnRoute",
		OutcomeDeliveryFailed: "DeliveryFailed",
		OutcomeDelivered:      "Delivered",
		OutcomePickupDeferred: "PickupDeferred",
		OutcomeOrderTaken:     "OrderTaken",
	}
}

// String returns the human-readable name of the outcome.
// Implements the fmt.Stringer interface; safe on any value.
func (o StepOutcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// StepResult describes what one dispatch step did, for logging, metrics and
// the delivery journal. It is purely informational: nothing in the dispatch
// logic reads it back.
type StepResult struct {
	// Outcome classifies the step.
	Outcome StepOutcome

	// OrderNumber and House identify the order the step worked on.
	// Zero values when Outcome is NoOrders.
	OrderNumber order.Number
	House       order.HouseNumber

	// Distance is the distance measured during the step, in world units:
	// to the committed destination for en-route outcomes, to the chosen
	// house at selection time for OrderTaken.
	Distance float64

	// Urgency is the agent's urgency observed by the step. For Delivered it
	// is the urgency at the moment of the hand-over, before the reset.
	Urgency agent.Urgency

	// Attempts counts hand-over attempts for the current commitment,
	// including this step's.
	Attempts int

	// Preempted reports that the step overrode the closest-order choice
	// because another order was about to spoil.
	Preempted bool
}
