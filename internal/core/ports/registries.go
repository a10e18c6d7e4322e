package ports

import (
	"context"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
)

// LiveConnectionRegistry is the ephemeral mapping from order id to the
// at-most-one live connection of that order's customer. A newer
// registration for the same order overwrites the older one.
//
// Implementations must make Remove an atomic delete-if-present so that
// concurrent notification cleanups cannot both observe the entry.
type LiveConnectionRegistry interface {
	// Register binds orderID to connID, replacing any previous binding
	// for that order.
	Register(ctx context.Context, orderID order.ID, connID kernel.ConnectionID)

	// Find returns the connection bound to orderID, if any.
	Find(ctx context.Context, orderID order.ID) (kernel.ConnectionID, bool)

	// Remove deletes the binding for orderID if present and reports
	// whether an entry was removed.
	Remove(ctx context.Context, orderID order.ID) bool

	// RemoveByConnection deletes every binding whose value equals connID
	// and returns the order ids that were unbound. Bindings to other
	// connections are untouched.
	RemoveByConnection(ctx context.Context, connID kernel.ConnectionID) []order.ID
}

// PushSubscriptionRegistry maps an order id to the durable push endpoint
// descriptor supplied once by the customer's device.
//
// Implementations must make Remove an atomic delete-if-present.
type PushSubscriptionRegistry interface {
	// Subscribe binds orderID to sub, replacing any previous descriptor
	// for that order.
	Subscribe(ctx context.Context, orderID order.ID, sub notification.Subscription)

	// Find returns the descriptor bound to orderID, if any.
	Find(ctx context.Context, orderID order.ID) (notification.Subscription, bool)

	// Remove deletes the descriptor for orderID if present and reports
	// whether an entry was removed.
	Remove(ctx context.Context, orderID order.ID) bool
}
