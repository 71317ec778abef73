package commands

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/domain/model/agent"
	"pizzeria/internal/core/domain/model/delivery"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// DeliverPizzasCommandHandler runs the delivery loop: each Handle call
// advances the world by the command's time slice and lets the dispatcher
// take one step with the live agent.
//
// Side effects per tick: the step result goes to the metrics sink, a log
// line describes what happened, and a successful hand-over is appended to
// the delivery journal inside its own transaction.
//
// Example:
//
//	handler := NewDeliverPizzasCommandHandler(a, world, world, uowFactory, sink, logger)
//	cmd, _ := NewDeliverPizzasCommand(1.0)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery tick failed: %w", err)
//	}
//	fmt.Println("tick outcome:", result.Outcome)
type DeliverPizzasCommandHandler struct {
	agent      *agent.Agent
	world      ports.World
	clock      WorldClock
	uowFactory UoWFactory
	metrics    MetricsSink
	dispatcher services.PizzaDispatcher
	logger     *slog.Logger
}

// NewDeliverPizzasCommandHandler creates a handler bound to the live agent
// and world. The world and the clock are usually the same object; they are
// separate parameters so the dispatch logic never sees time control.
func NewDeliverPizzasCommandHandler(
	a *agent.Agent,
	world ports.World,
	clock WorldClock,
	uowFactory UoWFactory,
	metrics MetricsSink,
	logger *slog.Logger,
) DeliverPizzasCommandHandler {
	return DeliverPizzasCommandHandler{
		agent:      a,
		world:      world,
		clock:      clock,
		uowFactory: uowFactory,
		metrics:    metrics,
		dispatcher: services.NewPizzaDispatcher(),
		logger:     logger.With("component", "deliver_pizzas_handler"),
	}
}

// Handle processes one delivery tick.
// The returned result describes what the step did. An error means the tick
// itself could not run; a refused hand-over or pickup is a result, not an
// error. Journal trouble is logged and swallowed: the pizza already changed
// hands and the world state stands.
func (h *DeliverPizzasCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverPizzasCommand,
) (services.StepResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.StepResult{}, err
	}

	h.clock.Advance(cmd.DeltaSeconds())

	result, err := h.dispatcher.Step(h.agent, h.world)
	if err != nil {
		return services.StepResult{}, err
	}

	h.metrics.RecordStep(result)
	h.logStep(ctx, result)

	if result.Outcome == services.OutcomeDelivered {
		if journalErr := h.journal(ctx, result); journalErr != nil {
			h.logger.ErrorContext(ctx, "Delivery journal write failed",
				"order", int(result.OrderNumber),
				"error", journalErr,
			)
		}
	}

	return result, nil
}

// logStep writes one line describing the step. Routine movement goes to
// Debug so a once-a-second loop does not drown the log.
func (h *DeliverPizzasCommandHandler) logStep(ctx context.Context, result services.StepResult) {
	switch result.Outcome {
	case services.OutcomeOrderTaken:
		h.logger.InfoContext(ctx, "Took pizza order",
			"order", int(result.OrderNumber),
			"house", int(result.House),
			"distance", result.Distance,
			"preempted", result.Preempted,
		)
	case services.OutcomeDelivered:
		h.logger.InfoContext(ctx, "Delivered pizza",
			"order", int(result.OrderNumber),
			"house", int(result.House),
			"distance", result.Distance,
			"attempts", result.Attempts,
			"urgency", result.Urgency.String(),
		)
	case services.OutcomeDeliveryFailed:
		h.logger.WarnContext(ctx, "Hand-over refused",
			"order", int(result.OrderNumber),
			"house", int(result.House),
			"attempts", result.Attempts,
		)
	case services.OutcomePickupDeferred:
		h.logger.WarnContext(ctx, "No pizza at hand, pickup deferred",
			"order", int(result.OrderNumber),
			"house", int(result.House),
		)
	case services.OutcomeEnRoute:
		h.logger.DebugContext(ctx, "Moving to house",
			"order", int(result.OrderNumber),
			"house", int(result.House),
			"distance", result.Distance,
		)
	case services.OutcomeNoOrders:
		h.logger.DebugContext(ctx, "No orders outstanding")
	}
}

// journal appends the hand-over to the delivery journal in its own
// transaction.
func (h *DeliverPizzasCommandHandler) journal(ctx context.Context, result services.StepResult) error {
	ord, err := order.NewOrder(result.OrderNumber, result.House)
	if err != nil {
		return err
	}

	record, err := delivery.NewRecord(
		kernel.NewUUID(),
		ord,
		result.Urgency,
		result.Distance,
		result.Attempts,
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryLogRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
