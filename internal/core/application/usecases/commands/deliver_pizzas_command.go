package commands

import (
	"errors"
	"math"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrDeliverPizzasCommandIsNotConstructed = errors.New(
		"DeliverPizzasCommand must be created via NewDeliverPizzasCommand constructor",
	)
	ErrDeltaSecondsIsInvalid = errors.New("delta seconds must be a non-negative finite number")
)

// DeliverPizzasCommand triggers one tick of the delivery loop: the world
// moves forward by a time slice and the agent takes one dispatch step.
//
// Example:
//
//	cmd, err := NewDeliverPizzasCommand(1.0)
//	if err != nil {
//	    return fmt.Errorf("invalid tick: %w", err)
//	}
//
//	// Run periodically to keep the agent going
//	ticker := time.NewTicker(time.Second)
//	for range ticker.C {
//	    if _, err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Tick failed: %v", err)
//	    }
//	}
type DeliverPizzasCommand struct { //nolint:recvcheck //using for validation
	deltaSeconds float64

	guard guard.ConstructorGuard
}

// NewDeliverPizzasCommand creates a command to run one delivery tick.
// The time slice must be a non-negative finite number of seconds; zero is
// allowed and advances nothing.
func NewDeliverPizzasCommand(deltaSeconds float64) (DeliverPizzasCommand, error) {
	command := DeliverPizzasCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDeltaSeconds(deltaSeconds); err != nil {
		return DeliverPizzasCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverPizzasCommandIsNotConstructed if validation fails.
func (c DeliverPizzasCommand) Validate() error {
	return c.guard.Validate(ErrDeliverPizzasCommandIsNotConstructed)
}

// DeltaSeconds returns the time slice the world advances by, in seconds.
func (c DeliverPizzasCommand) DeltaSeconds() float64 {
	return c.deltaSeconds
}

func (c *DeliverPizzasCommand) setDeltaSeconds(deltaSeconds float64) error {
	if math.IsNaN(deltaSeconds) || math.IsInf(deltaSeconds, 0) || deltaSeconds < 0 {
		return ErrDeltaSecondsIsInvalid
	}

	c.deltaSeconds = deltaSeconds
	return nil
}
