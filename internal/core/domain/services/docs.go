// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pizzeria system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PizzaDispatcher: A domain service advancing the delivery agent one step
//     at a time against the world
//   - StepResult/StepOutcome: The informational summary of what a step did
//
// Domain services coordinate between the agent aggregate and the world port,
// implementing business logic that spans both following Domain-Driven Design
// principles.
package services
