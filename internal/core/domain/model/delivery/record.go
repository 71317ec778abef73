package delivery

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord constructor")

// Record captures one completed hand-over for the delivery journal: which
// order went to which house, how pressed the agent was when it let go of the
// pizza, the distance measured at the moment of the hand-over, and how many
// attempts the commitment took.
//
// Records are write-only history. Nothing in the dispatch logic ever reads
// them back; they exist for reporting and post-hoc analysis.
type Record struct {
	id          kernel.UUID
	orderNumber order.Number
	house       order.HouseNumber
	urgency     agent.Urgency
	distance    float64
	attempts    int
	deliveredAt time.Time
	guard       guard.ConstructorGuard
}

// NewRecord creates a journal record for a completed hand-over.
//
// Parameters:
//   - id: Unique identifier for the record
//   - ord: The delivered order
//   - urgency: The agent's urgency at the moment of the hand-over
//   - distance: The distance to the destination measured for the hand-over
//   - attempts: How many hand-over attempts the commitment took
//   - deliveredAt: When the hand-over happened
//
// Returns:
//   - *Record: The created record if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRecord(
	id kernel.UUID,
	ord order.Order,
	urgency agent.Urgency,
	distance float64,
	attempts int,
	deliveredAt time.Time,
) (*Record, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	return RestoreRecord(id, ord.Number(), ord.House(), urgency, distance, attempts, deliveredAt)
}

// RestoreRecord reconstructs a Record from persistent storage.
// Unlike NewRecord it takes the order's number and house separately, matching
// how the journal table stores them.
//
// Returns:
//   - *Record: Restored record
//   - error: Validation error if any field is invalid
func RestoreRecord(
	id kernel.UUID,
	orderNumber order.Number,
	house order.HouseNumber,
	urgency agent.Urgency,
	distance float64,
	attempts int,
	deliveredAt time.Time,
) (*Record, error) {
	record := &Record{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrder(orderNumber, house),
		record.setUrgency(urgency),
		record.setDistance(distance),
		record.setAttempts(attempts),
		record.setDeliveredAt(deliveredAt),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the Record was properly constructed via a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderNumber returns the delivered order's number.
func (r *Record) OrderNumber() order.Number {
	return r.orderNumber
}

// House returns the house the pizza was handed over at.
func (r *Record) House() order.HouseNumber {
	return r.house
}

// Urgency returns the agent's urgency at the moment of the hand-over.
func (r *Record) Urgency() agent.Urgency {
	return r.urgency
}

// Distance returns the distance measured for the hand-over, in world units.
func (r *Record) Distance() float64 {
	return r.distance
}

// Attempts returns how many hand-over attempts the commitment took.
func (r *Record) Attempts() int {
	return r.attempts
}

// DeliveredAt returns when the hand-over happened.
func (r *Record) DeliveredAt() time.Time {
	return r.deliveredAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOrder(number order.Number, house order.HouseNumber) error {
	ord, err := order.NewOrder(number, house)
	if err != nil {
		return err
	}
	r.orderNumber = ord.Number()
	r.house = ord.House()
	return nil
}

func (r *Record) setUrgency(urgency agent.Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	r.urgency = urgency
	return nil
}

func (r *Record) setDistance(distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not a non-negative finite number", distance))
	}
	r.distance = distance
	return nil
}

func (r *Record) setAttempts(attempts int) error {
	if attempts < 0 {
		return errs.NewValueIsInvalidErrorWithCause("attempts", fmt.Errorf("%d is negative", attempts))
	}
	r.attempts = attempts
	return nil
}

func (r *Record) setDeliveredAt(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	r.deliveredAt = deliveredAt
	return nil
}
