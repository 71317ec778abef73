// Package agent provides the domain model of the pizza-delivery agent.
// It implements the Agent aggregate root with commitment tracking and the
// Urgency state machine describing the agent's time pressure.
//
// The package includes:
//   - Agent: The aggregate root holding the agent's delivery commitment state
//   - Urgency: A state machine over Normal, Selected and Arrived
//
// Key business rules:
//   - A held order and a frozen destination exist exactly while delivering
//   - The destination is captured at commitment time and never re-read
//   - Urgency only changes through its defined transitions; a completed
//     delivery resets it to Normal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
