package commands

import (
	"context"
	"log/slog"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/metrics"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Stores the new order in the pipeline's first stage and broadcasts it to
// the stage's audience (the kitchen terminals).
type SubmitOrderCommandHandler struct {
	store   ports.OrderStore
	bus     ports.EventBus
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
func NewSubmitOrderCommandHandler(
	store ports.OrderStore,
	bus ports.EventBus,
	m *metrics.Metrics,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		store:   store,
		bus:     bus,
		metrics: m,
		logger:  logger.With("component", "submit_order_handler"),
	}
}

// Handle processes the submission. On success the stored order's read
// model is returned so the caller can report the allocated id.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (order.View, error) {
	if err := cmd.Validate(); err != nil {
		return order.View{}, err
	}

	view, err := h.store.Append(ctx, cmd.Items())
	if err != nil {
		return order.View{}, err
	}

	h.metrics.OrdersSubmitted.Inc()
	h.bus.Broadcast(ctx, ports.Event{Name: order.FirstStage().EntryEvent(), Data: view})
	h.logger.InfoContext(ctx, "order submitted",
		"orderID", view.ID, "total", view.Total, "audience", order.FirstStage().Audience())

	return view, nil
}
