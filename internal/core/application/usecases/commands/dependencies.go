// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, orchestration, and reporting.
package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryLogRepoFactory provides access to the delivery journal within a
	// transaction.
	DeliveryLogRepoFactory interface {
		DeliveryLogRepository() ports.DeliveryLogRepository
	}

	// UoW manages transactions for the delivery journal.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   journal := uow.DeliveryLogRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryLogRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}

	// WorldClock moves simulated time forward. Advancing the clock is what
	// makes the agent travel and deadlines shrink; the dispatch step itself
	// is instantaneous.
	WorldClock interface {
		Advance(seconds float64)
	}

	// HouseDirectory answers which houses exist in the town and where.
	// Satisfied by ports.World.
	HouseDirectory interface {
		HouseLocations() map[order.HouseNumber]kernel.Location
	}

	// MetricsSink absorbs step results for monitoring. Implementations must
	// be cheap and must never fail the caller.
	MetricsSink interface {
		RecordStep(result services.StepResult)
	}
)

// NopMetricsSink is a MetricsSink that discards everything. Useful in tests
// and in setups that run without a metrics backend.
type NopMetricsSink struct{}

// RecordStep discards the result.
func (NopMetricsSink) RecordStep(services.StepResult) {}
