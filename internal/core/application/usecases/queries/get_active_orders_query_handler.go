package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// GetActiveOrdersQueryHandler reads outstanding orders straight from the
// live world. Unlike the delivery journal there is no database behind this
// read model: the world is the source of truth for what is still open.
type GetActiveOrdersQueryHandler struct {
	world ports.World
}

// NewGetActiveOrdersQueryHandler creates a handler bound to the live world.
func NewGetActiveOrdersQueryHandler(world ports.World) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{world: world}
}

// Handle executes the query to retrieve all outstanding orders.
// Returns orders in placement order, each with its house location and the
// seconds left before the house gives up.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := h.world.HouseLocations()
	orders := h.world.PizzaOrders()

	responses := make([]GetActiveOrdersQueryResponse, 0, len(orders))
	for _, ord := range orders {
		loc, ok := locations[ord.House()]
		if !ok {
			continue
		}

		responses = append(responses, GetActiveOrdersQueryResponse{
			OrderNumber: ord.Number(),
			House:       ord.House(),
			Location:    loc,
			TimeLeft:    h.world.HouseTimeLeft(ord.House()),
		})
	}

	return responses, nil
}
