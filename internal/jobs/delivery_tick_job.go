package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// tickSeconds is how much simulated time one tick advances. It matches the
// job's once-a-second schedule so simulated time tracks wall time.
const tickSeconds = 1.0

// DeliveryTickJob manages the scheduled delivery loop.
// Runs every second to advance the world and let the agent take one
// dispatch step.
type DeliveryTickJob struct {
	handler commands.DeliverPizzasCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryTickJob creates a new job for running the delivery loop.
// Uses DeliverPizzasCommandHandler to process one tick every second.
func NewDeliveryTickJob(handler commands.DeliverPizzasCommandHandler, logger *slog.Logger) *DeliveryTickJob {
	return &DeliveryTickJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_tick_job"),
	}
}

// Start begins the delivery tick job to run every second.
func (j *DeliveryTickJob) Start() error {
	cmd, err := commands.NewDeliverPizzasCommand(tickSeconds)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery tick job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery tick job started (running every second)")
	return nil
}

// Stop stops the delivery tick job.
func (j *DeliveryTickJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery tick job stopped")
}
