package agent

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

// Domain errors for agent operations.
var (
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrAlreadyDelivering is returned when committing to an order while one is already held.
	ErrAlreadyDelivering = errors.New("agent is already delivering an order")
	// ErrNotDelivering is returned when completing a delivery with no order held.
	ErrNotDelivering = errors.New("agent is not delivering an order")
)

// Agent represents the single pizza-delivery agent.
// It is an aggregate root that holds the agent's commitment state: whether a
// delivery is underway, which order is held, where it is headed, and how
// pressed the agent currently is.
//
// Key invariants:
//   - A current order and destination exist exactly while a delivery is underway
//   - The destination is frozen when the order is taken and never re-read from
//     the world while en route
//   - The urgency flag changes only through its own transition rules
//
// The agent deliberately knows nothing about the world: it does not measure
// distances, move, or hand over pizzas. Those interactions belong to the
// dispatch service; the agent only guards the consistency of its own state.
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// delivering reports whether a delivery commitment is underway
	delivering bool
	// currentOrder is the held order (nil while idle)
	currentOrder *order.Order
	// destination is the committed target location (zero while idle)
	destination kernel.Location
	// urgency is the agent's time-pressure state
	urgency Urgency
	// attempts counts hand-over attempts for the current commitment
	attempts int
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewAgent creates a new idle Agent with the given identifier.
//
// Parameters:
//   - id: Unique identifier for the agent (must be a valid UUID)
//
// Returns:
//   - *Agent: An idle agent with Normal urgency
//   - error: Validation error if the identifier is invalid
//
// Example:
//
//	a, err := agent.NewAgent(kernel.NewUUID())
//	if err != nil {
//	    log.Fatal("Failed to create agent:", err)
//	}
func NewAgent(id kernel.UUID) (*Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Agent{
		id:      id,
		urgency: Normal,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Agent was properly constructed using the NewAgent constructor.
// The zero value of Agent is invalid and will fail this validation.
//
// Returns:
//   - error: ErrAgentIsNotConstructed if improperly initialized, nil if valid
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// ID returns the unique identifier of the agent.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Delivering reports whether the agent currently holds a delivery commitment.
func (a *Agent) Delivering() bool {
	return a.delivering
}

// CurrentOrder returns the held order, or nil while idle.
func (a *Agent) CurrentOrder() *order.Order {
	return a.currentOrder
}

// Destination returns the committed target location.
// It is meaningful only while Delivering() reports true.
func (a *Agent) Destination() kernel.Location {
	return a.destination
}

// Urgency returns the agent's current time-pressure state.
func (a *Agent) Urgency() Urgency {
	return a.urgency
}

// DeliveryAttempts returns how many hand-over attempts were made for the
// current commitment. The counter is informational and never gates behavior.
func (a *Agent) DeliveryAttempts() int {
	return a.attempts
}

// TakeOrder commits the agent to delivering the given order at the given
// destination. The destination is frozen here: while en route the agent heads
// for this exact point regardless of later changes in the world.
//
// The urgency flag is deliberately left untouched. Whether the order was
// chosen under time pressure is decided before the commitment, and the flag
// set then must survive it.
//
// Parameters:
//   - ord: The order to deliver
//   - destination: The location of the order's house at commitment time
//
// Returns:
//   - nil on success
//   - ErrAlreadyDelivering if a delivery is already underway
//   - Validation error if the order or destination is invalid
func (a *Agent) TakeOrder(ord order.Order, destination kernel.Location) error {
	if a.delivering {
		return ErrAlreadyDelivering
	}

	if err := errors.Join(ord.Validate(), destination.Validate()); err != nil {
		return err
	}

	a.delivering = true
	a.currentOrder = &ord
	a.destination = destination
	a.attempts = 0
	return nil
}

// CompleteDelivery clears the current commitment after a successful hand-over
// and resets the urgency to Normal.
//
// Returns:
//   - nil on success
//   - ErrNotDelivering if no delivery is underway
func (a *Agent) CompleteDelivery() error {
	if !a.delivering {
		return ErrNotDelivering
	}

	a.delivering = false
	a.currentOrder = nil
	a.destination = kernel.Location{}
	a.urgency = a.urgency.Reset()
	a.attempts = 0
	return nil
}

// RecordDeliveryAttempt counts one hand-over attempt for the current
// commitment. Informational only.
func (a *Agent) RecordDeliveryAttempt() {
	a.attempts++
}

// MarkUrgent transitions the urgency to Selected, recording that the next
// order was chosen under time pressure.
//
// Returns:
//   - nil on success
//   - error if the transition is not allowed from the current state
func (a *Agent) MarkUrgent() error {
	urgency, err := a.urgency.Select()
	if err != nil {
		return err
	}

	a.urgency = urgency
	return nil
}

// MarkArrived transitions the urgency to Arrived, recording that the agent
// considers itself at a pressed destination.
//
// Returns:
//   - nil on success
//   - error if the transition is not allowed from the current state
func (a *Agent) MarkArrived() error {
	urgency, err := a.urgency.Arrive()
	if err != nil {
		return err
	}

	a.urgency = urgency
	return nil
}
