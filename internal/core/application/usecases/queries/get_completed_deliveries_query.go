package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetCompletedDeliveriesQueryIsNotConstructed = errors.New(
		"GetCompletedDeliveriesQuery must be created via NewGetCompletedDeliveriesQuery constructor",
	)
)

// Bounds for the journal page size.
const (
	MinDeliveriesLimit = 1
	MaxDeliveriesLimit = 1000
)

// GetCompletedDeliveriesQuery retrieves the most recent entries of the
// delivery journal, newest first.
//
// Example:
//
//	query, err := NewGetCompletedDeliveriesQuery(20)
//	if err != nil {
//	    return fmt.Errorf("invalid page size: %w", err)
//	}
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read journal: %w", err)
//	}
type GetCompletedDeliveriesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetCompletedDeliveriesQuery creates a query for the most recent journal
// entries. The limit must be between MinDeliveriesLimit and
// MaxDeliveriesLimit.
func NewGetCompletedDeliveriesQuery(limit int) (GetCompletedDeliveriesQuery, error) {
	query := GetCompletedDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetCompletedDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCompletedDeliveriesQueryIsNotConstructed if validation fails.
func (q GetCompletedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedDeliveriesQueryIsNotConstructed)
}

// Limit returns the maximum number of journal entries to return.
func (q GetCompletedDeliveriesQuery) Limit() int {
	return q.limit
}

func (q *GetCompletedDeliveriesQuery) setLimit(limit int) error {
	if limit < MinDeliveriesLimit || limit > MaxDeliveriesLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinDeliveriesLimit, MaxDeliveriesLimit)
	}

	q.limit = limit
	return nil
}

// GetCompletedDeliveriesQueryResponse represents one journal entry in the
// read model.
type GetCompletedDeliveriesQueryResponse struct {
	ID          kernel.UUID
	OrderNumber order.Number
	House       order.HouseNumber
	Urgency     agent.Urgency
	Distance    float64
	Attempts    int
	DeliveredAt time.Time
}
