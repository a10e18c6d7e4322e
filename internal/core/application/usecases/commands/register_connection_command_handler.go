package commands

import (
	"context"
	"log/slog"

	"eatery/internal/core/ports"
)

// RegisterConnectionCommandHandler records which live connection belongs
// to an order's customer. A newer registration for the same order
// overwrites the older one; the registry keeps at most one entry per
// order id.
type RegisterConnectionCommandHandler struct {
	live   ports.LiveConnectionRegistry
	logger *slog.Logger
}

// NewRegisterConnectionCommandHandler creates a handler for customer
// connection registrations.
func NewRegisterConnectionCommandHandler(
	live ports.LiveConnectionRegistry,
	logger *slog.Logger,
) RegisterConnectionCommandHandler {
	return RegisterConnectionCommandHandler{
		live:   live,
		logger: logger.With("component", "register_connection_handler"),
	}
}

// Handle processes the registration command.
func (h RegisterConnectionCommandHandler) Handle(ctx context.Context, cmd RegisterConnectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.live.Register(ctx, cmd.OrderID(), cmd.ConnID())
	h.logger.DebugContext(ctx, "customer connection registered",
		"orderID", cmd.OrderID(), "connID", cmd.ConnID().String())

	return nil
}
