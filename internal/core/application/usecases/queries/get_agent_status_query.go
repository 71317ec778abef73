package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetAgentStatusQueryIsNotConstructed = errors.New(
		"GetAgentStatusQuery must be created via NewGetAgentStatusQuery constructor",
	)
)

// GetAgentStatusQuery retrieves a snapshot of the delivery agent and its
// surroundings: what it carries, where it is headed and how pressed it is.
//
// Example:
//
//	query := NewGetAgentStatusQuery()
//	handler := NewGetAgentStatusQueryHandler(a, world)
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read agent status: %w", err)
//	}
//
//	if status.Delivering {
//	    fmt.Printf("Delivering order %d to house %d\n", status.OrderNumber, status.House)
//	}
type GetAgentStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAgentStatusQuery creates a query to read the agent snapshot.
func NewGetAgentStatusQuery() GetAgentStatusQuery {
	return GetAgentStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentStatusQueryIsNotConstructed if validation fails.
func (q GetAgentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentStatusQueryIsNotConstructed)
}

// GetAgentStatusQueryResponse is the agent read model. OrderNumber, House,
// Destination and DistanceToTarget are meaningful only while Delivering is
// true; they are zero values otherwise.
type GetAgentStatusQueryResponse struct {
	AgentID           kernel.UUID
	Delivering        bool
	OrderNumber       order.Number
	House             order.HouseNumber
	Destination       kernel.Location
	DistanceToTarget  float64
	Urgency           agent.Urgency
	Attempts          int
	PizzaAmount       int
	OutstandingOrders int
}
