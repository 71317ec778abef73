package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrHouseNumberIsInvalid = errors.New("house number must not be negative")
)

// PlaceOrderCommand represents a request to place a pizza order for a house.
// The order number is assigned by the world when the order is accepted.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(12)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d placed for house 12", number)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	house order.HouseNumber

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order for the given
// house. Validates that the house number is not negative.
func NewPlaceOrderCommand(house order.HouseNumber) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setHouse(house); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// House returns the house the pizza should go to.
func (c PlaceOrderCommand) House() order.HouseNumber {
	return c.house
}

func (c *PlaceOrderCommand) setHouse(house order.HouseNumber) error {
	if house < 0 {
		return ErrHouseNumberIsInvalid
	}

	c.house = house
	return nil
}
