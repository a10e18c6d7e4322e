package commands

import (
	"context"
	"log/slog"

	"eatery/internal/core/ports"
)

// DisconnectCommandHandler prunes live-connection registry entries when
// a connection closes, scanning by handle so entries of other
// connections stay intact.
type DisconnectCommandHandler struct {
	live   ports.LiveConnectionRegistry
	logger *slog.Logger
}

// NewDisconnectCommandHandler creates a handler for connection closures.
func NewDisconnectCommandHandler(
	live ports.LiveConnectionRegistry,
	logger *slog.Logger,
) DisconnectCommandHandler {
	return DisconnectCommandHandler{
		live:   live,
		logger: logger.With("component", "disconnect_handler"),
	}
}

// Handle processes the disconnect command.
func (h DisconnectCommandHandler) Handle(ctx context.Context, cmd DisconnectCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unbound := h.live.RemoveByConnection(ctx, cmd.ConnID())
	if len(unbound) > 0 {
		h.logger.DebugContext(ctx, "customer connections unbound",
			"connID", cmd.ConnID().String(), "orders", len(unbound))
	}

	return nil
}
