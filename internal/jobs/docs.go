// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the delivery loop and the order flow running without external
// input.
//
// # Available Jobs
//
// 1. DeliveryTickJob - Runs every second to advance the world and let the agent take one dispatch step
// 2. OrderGeneratorJob - Runs every five seconds to place an order for a random house
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(deliverPizzasHandler, placeOrderHandler, world, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tick job uses the cron expression "* * * * * *" (every second) and
// each tick advances the world by one second, so simulated time tracks wall
// time. The generator uses "*/5 * * * * *" (every five seconds), slow
// enough that a single agent can keep up with the flow.
//
// # Error Handling
//
// - Generator job ignores expected business errors (house already waiting for a pizza)
// - Tick job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
