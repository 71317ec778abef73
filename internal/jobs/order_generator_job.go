package jobs

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderGeneratorJob manages the scheduled flow of new orders.
// Runs every five seconds to place an order for a random house, keeping
// the agent busy without external input.
type OrderGeneratorJob struct {
	handler commands.PlaceOrderCommandHandler
	houses  commands.HouseDirectory
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderGeneratorJob creates a new job for generating orders.
// Uses PlaceOrderCommandHandler to place an order for a random known house.
func NewOrderGeneratorJob(
	handler commands.PlaceOrderCommandHandler,
	houses commands.HouseDirectory,
	logger *slog.Logger,
) *OrderGeneratorJob {
	return &OrderGeneratorJob{
		handler: handler,
		houses:  houses,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_generator_job"),
	}
}

// Start begins the order generator job to run every five seconds.
func (j *OrderGeneratorJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		house, ok := j.pickHouse()
		if !ok {
			return
		}

		cmd, err := commands.NewPlaceOrderCommand(house)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order generator job built an invalid command", "error", err)
			return
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrHouseAlreadyWaiting) && !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Order generator job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order generator job started (running every five seconds)")
	return nil
}

// Stop stops the order generator job.
func (j *OrderGeneratorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order generator job stopped")
}

// pickHouse draws a random house from the town. Returns false when the
// town has no houses.
func (j *OrderGeneratorJob) pickHouse() (order.HouseNumber, bool) {
	locations := j.houses.HouseLocations()
	if len(locations) == 0 {
		return 0, false
	}

	numbers := make([]order.HouseNumber, 0, len(locations))
	for number := range locations {
		numbers = append(numbers, number)
	}

	return numbers[rand.IntN(len(numbers))], true
}
