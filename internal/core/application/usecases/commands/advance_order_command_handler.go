package commands

import (
	"context"
	"errors"
	"log/slog"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/metrics"
)

// AdvanceOrderCommandHandler handles the order lifecycle transitions.
//
// A command succeeds iff the order exists and its current stage is the
// configured predecessor of the target stage. On success the transition
// is broadcast to all terminals, the ready stage triggers the customer
// notification, and the paid stage unicasts the itemized receipt to the
// registered customer connection.
//
// On failure the command is a silent no-op: duplicate or late commands
// from multiple operator terminals are absorbed without an error. The
// rejection is still observable through the transitions_rejected
// counter and a debug log line.
type AdvanceOrderCommandHandler struct {
	store    ports.OrderStore
	bus      ports.EventBus
	notifier ReadyNotifier
	live     ports.LiveConnectionRegistry
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for transition commands.
func NewAdvanceOrderCommandHandler(
	store ports.OrderStore,
	bus ports.EventBus,
	notifier ReadyNotifier,
	live ports.LiveConnectionRegistry,
	m *metrics.Metrics,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		store:    store,
		bus:      bus,
		notifier: notifier,
		live:     live,
		metrics:  m,
		logger:   logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the transition command.
// The guard check and status update run atomically under the store lock.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	view, err := h.store.Mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		return o.AdvanceTo(cmd.Target())
	})
	if err != nil {
		reason := metrics.ReasonGuardViolation
		if errors.Is(err, errs.ErrObjectNotFound) {
			reason = metrics.ReasonUnknownOrder
		}

		h.metrics.TransitionsRejected.WithLabelValues(reason).Inc()
		h.logger.DebugContext(ctx, "transition rejected",
			"orderID", cmd.OrderID(), "target", cmd.Target().String(), "reason", reason)

		// Absorbed without an error so duplicate operator input stays quiet.
		return nil
	}

	h.metrics.TransitionsApplied.WithLabelValues(cmd.Target().String()).Inc()
	h.bus.Broadcast(ctx, ports.Event{Name: cmd.Target().EntryEvent(), Data: view})
	h.logger.InfoContext(ctx, "order advanced",
		"orderID", view.ID, "status", view.Status, "audience", cmd.Target().Audience())

	if cmd.Target().IsReady() {
		h.notifier.NotifyReady(ctx, cmd.OrderID())
	}

	if cmd.Target().IsPaid() {
		if connID, ok := h.live.Find(ctx, cmd.OrderID()); ok {
			h.bus.Unicast(ctx, connID, ports.Event{Name: ports.EventPaymentConfirmed, Data: view})
		}
	}

	return nil
}
