package commands

import (
	"context"
	"log/slog"

	"eatery/internal/core/ports"
)

// SubscribePushCommandHandler records the durable push endpoint for an
// order's customer. The descriptor stays registered until the router
// consumes it or classifies it as permanently invalid.
type SubscribePushCommandHandler struct {
	push   ports.PushSubscriptionRegistry
	logger *slog.Logger
}

// NewSubscribePushCommandHandler creates a handler for push subscriptions.
func NewSubscribePushCommandHandler(
	push ports.PushSubscriptionRegistry,
	logger *slog.Logger,
) SubscribePushCommandHandler {
	return SubscribePushCommandHandler{
		push:   push,
		logger: logger.With("component", "subscribe_push_handler"),
	}
}

// Handle processes the subscription command.
func (h SubscribePushCommandHandler) Handle(ctx context.Context, cmd SubscribePushCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.push.Subscribe(ctx, cmd.OrderID(), cmd.Subscription())
	h.logger.DebugContext(ctx, "push subscription registered", "orderID", cmd.OrderID())

	return nil
}
