package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/ports"
)

// GetAgentStatusQueryHandler assembles the agent snapshot from the live
// agent aggregate and the live world.
type GetAgentStatusQueryHandler struct {
	agent *agent.Agent
	world ports.World
}

// NewGetAgentStatusQueryHandler creates a handler bound to the live agent
// and world.
func NewGetAgentStatusQueryHandler(a *agent.Agent, world ports.World) GetAgentStatusQueryHandler {
	return GetAgentStatusQueryHandler{agent: a, world: world}
}

// Handle executes the query and returns the agent snapshot.
func (h GetAgentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetAgentStatusQuery,
) (GetAgentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentStatusQueryResponse{}, err
	}

	if err := h.agent.Validate(); err != nil {
		return GetAgentStatusQueryResponse{}, err
	}

	response := GetAgentStatusQueryResponse{
		AgentID:           h.agent.ID(),
		Delivering:        h.agent.Delivering(),
		Urgency:           h.agent.Urgency(),
		Attempts:          h.agent.DeliveryAttempts(),
		PizzaAmount:       h.world.PizzaAmount(),
		OutstandingOrders: len(h.world.PizzaOrders()),
	}

	if h.agent.Delivering() {
		ord := *h.agent.CurrentOrder()
		response.OrderNumber = ord.Number()
		response.House = ord.House()
		response.Destination = h.agent.Destination()
		response.DistanceToTarget = h.world.DistanceTo(h.agent.Destination())
	}

	return response, nil
}
