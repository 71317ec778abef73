package commands

import (
	"context"
	"errors"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// ErrHouseAlreadyWaiting is returned when the house already has a pizza on
// the way: each house holds at most one outstanding order.
var ErrHouseAlreadyWaiting = errors.New("house already waits for a pizza")

// PlaceOrderCommandHandler feeds new orders into the world.
// Orders for houses the town does not know are rejected; a house that
// already waits for its pizza cannot order a second one.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(world, world, logger)
//	cmd, _ := NewPlaceOrderCommand(12)
//
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order rejected: %w", err)
//	}
//	// Order is now outstanding and visible to the dispatch loop
type PlaceOrderCommandHandler struct {
	houses HouseDirectory
	intake ports.OrderIntake
	logger *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for placing orders.
// The directory and the intake are usually the same world object.
func NewPlaceOrderCommandHandler(
	houses HouseDirectory,
	intake ports.OrderIntake,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		houses: houses,
		intake: intake,
		logger: logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command.
// Returns the assigned order number on success, an ObjectNotFound error for
// an unknown house, or ErrHouseAlreadyWaiting when the house has an
// outstanding order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Number, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, ok := h.houses.HouseLocations()[cmd.House()]; !ok {
		return 0, errs.NewObjectNotFoundError("house", int(cmd.House()))
	}

	number, ok := h.intake.PlaceOrder(cmd.House())
	if !ok {
		return 0, ErrHouseAlreadyWaiting
	}

	h.logger.InfoContext(ctx, "Placed pizza order",
		"order", int(number),
		"house", int(cmd.House()),
	)
	return number, nil
}
