// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: every command is a
// validated value object, and every handler follows the same sequence of
// validation, state change, and event emission.
package commands

import (
	"context"

	"eatery/internal/core/domain/model/order"
)

// ReadyNotifier triggers the customer ready-for-pickup notification for
// an order. Implemented by the application-level notification router;
// the interface lives here so transition handling does not depend on
// delivery mechanics.
type ReadyNotifier interface {
	// NotifyReady resolves the customer's channels for orderID and
	// dispatches the ready alert. It must not block on push round-trip
	// latency.
	NotifyReady(ctx context.Context, orderID order.ID)
}
