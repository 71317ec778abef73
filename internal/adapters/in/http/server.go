package http

import (
	"errors"
	"net/http"
	"strconv"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// defaultDeliveriesLimit is the journal page size when ?limit is absent.
const defaultDeliveriesLimit = 20

// Server exposes the pizzeria over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler

	// Query handlers
	getAgentStatusHandler         queries.GetAgentStatusQueryHandler
	getActiveOrdersHandler        queries.GetActiveOrdersQueryHandler
	getCompletedDeliveriesHandler queries.GetCompletedDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getAgentStatusHandler queries.GetAgentStatusQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCompletedDeliveriesHandler queries.GetCompletedDeliveriesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:             placeOrderHandler,
		getAgentStatusHandler:         getAgentStatusHandler,
		getActiveOrdersHandler:        getActiveOrdersHandler,
		getCompletedDeliveriesHandler: getCompletedDeliveriesHandler,
	}
}

// RegisterRoutes binds the API, the swagger UI and the metrics endpoint
// onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/agent", s.GetAgent)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/deliveries", s.GetDeliveries)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// GetAgent handles GET /api/v1/agent - retrieves the agent snapshot.
//
//	@Summary		Agent status
//	@Description	Returns what the agent carries, where it is headed and how pressed it is.
//	@Tags			agent
//	@Produce		json
//	@Success		200	{object}	AgentStatusResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/agent [get]
func (s *Server) GetAgent(ctx echo.Context) error {
	query := queries.NewGetAgentStatusQuery()

	status, err := s.getAgentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve agent status",
		})
	}

	return ctx.JSON(http.StatusOK, agentStatusFromQuery(status))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all outstanding orders.
//
//	@Summary		Outstanding orders
//	@Description	Returns every order still waiting for its pizza, in placement order.
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		ActiveOrderResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/active [get]
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, activeOrdersFromQuery(orders))
}

// PlaceOrder handles POST /api/v1/orders - places an order for a house.
//
//	@Summary		Place an order
//	@Description	Places a pizza order for a house. A house can wait for one pizza at a time.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"House placing the order"
//	@Success		201		{object}	PlaceOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(order.HouseNumber(request.HouseNumber))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	number, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		case errors.Is(err, commands.ErrHouseAlreadyWaiting):
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to place order",
			})
		}
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderNumber: int(number)})
}

// GetDeliveries handles GET /api/v1/deliveries - reads the delivery journal.
//
//	@Summary		Completed deliveries
//	@Description	Returns the most recent journal entries, newest first.
//	@Tags			deliveries
//	@Produce		json
//	@Param			limit	query		int	false	"Page size between 1 and 1000"	default(20)
//	@Success		200		{array}		DeliveryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/deliveries [get]
func (s *Server) GetDeliveries(ctx echo.Context) error {
	limit := defaultDeliveriesLimit
	if param := ctx.QueryParam("limit"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "limit must be an integer",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetCompletedDeliveriesQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	deliveries, err := s.getCompletedDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read the delivery journal",
		})
	}

	return ctx.JSON(http.StatusOK, deliveriesFromQuery(deliveries))
}
