package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryTickJob   *DeliveryTickJob
	orderGeneratorJob *OrderGeneratorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	deliverPizzasHandler commands.DeliverPizzasCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	houses commands.HouseDirectory,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryTickJob:   NewDeliveryTickJob(deliverPizzasHandler, logger),
		orderGeneratorJob: NewOrderGeneratorJob(placeOrderHandler, houses, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderGeneratorJob.Start(); err != nil {
		return fmt.Errorf("failed to start order generator job: %w", err)
	}

	if err := jm.deliveryTickJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderGeneratorJob.Stop()
		return fmt.Errorf("failed to start delivery tick job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryTickJob.Stop()
	jm.orderGeneratorJob.Stop()
}
