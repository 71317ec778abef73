package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for all non-2xx statuses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LocationResponse is a point in world units.
type LocationResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AgentStatusResponse is the agent snapshot. OrderNumber, HouseNumber,
// Destination and DistanceToTarget are meaningful only while Delivering is
// true.
type AgentStatusResponse struct {
	AgentID           string            `json:"agent_id"`
	Delivering        bool              `json:"delivering"`
	PizzaAmount       int               `json:"pizza_amount"`
	OutstandingOrders int               `json:"outstanding_orders"`
	Urgency           string            `json:"urgency"`
	Attempts          int               `json:"attempts"`
	OrderNumber       int               `json:"order_number"`
	HouseNumber       int               `json:"house_number"`
	Destination       *LocationResponse `json:"destination,omitempty"`
	DistanceToTarget  float64           `json:"distance_to_target"`
}

// ActiveOrderResponse is one outstanding order.
type ActiveOrderResponse struct {
	OrderNumber int              `json:"order_number"`
	HouseNumber int              `json:"house_number"`
	Location    LocationResponse `json:"location"`
	TimeLeft    float64          `json:"time_left_seconds"`
}

// DeliveryResponse is one completed hand-over from the journal.
type DeliveryResponse struct {
	ID          string    `json:"id"`
	OrderNumber int       `json:"order_number"`
	HouseNumber int       `json:"house_number"`
	Urgency     string    `json:"urgency"`
	Distance    float64   `json:"distance"`
	Attempts    int       `json:"attempts"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	HouseNumber int `json:"house_number"`
}

// PlaceOrderResponse carries the number the world assigned to the order.
type PlaceOrderResponse struct {
	OrderNumber int `json:"order_number"`
}

func agentStatusFromQuery(status queries.GetAgentStatusQueryResponse) AgentStatusResponse {
	response := AgentStatusResponse{
		AgentID:           status.AgentID.String(),
		Delivering:        status.Delivering,
		PizzaAmount:       status.PizzaAmount,
		OutstandingOrders: status.OutstandingOrders,
		Urgency:           status.Urgency.String(),
		Attempts:          status.Attempts,
		OrderNumber:       int(status.OrderNumber),
		HouseNumber:       int(status.House),
		DistanceToTarget:  status.DistanceToTarget,
	}

	if status.Delivering {
		response.Destination = &LocationResponse{
			X: status.Destination.X(),
			Y: status.Destination.Y(),
		}
	}

	return response
}

func activeOrdersFromQuery(orders []queries.GetActiveOrdersQueryResponse) []ActiveOrderResponse {
	response := make([]ActiveOrderResponse, len(orders))
	for i, ord := range orders {
		response[i] = ActiveOrderResponse{
			OrderNumber: int(ord.OrderNumber),
			HouseNumber: int(ord.House),
			Location: LocationResponse{
				X: ord.Location.X(),
				Y: ord.Location.Y(),
			},
			TimeLeft: ord.TimeLeft,
		}
	}

	return response
}

func deliveriesFromQuery(deliveries []queries.GetCompletedDeliveriesQueryResponse) []DeliveryResponse {
	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:          d.ID.String(),
			OrderNumber: int(d.OrderNumber),
			HouseNumber: int(d.House),
			Urgency:     d.Urgency.String(),
			Distance:    d.Distance,
			Attempts:    d.Attempts,
			DeliveredAt: d.DeliveredAt,
		}
	}

	return response
}
