// Package ports defines the contracts between the application core and
// its collaborators: the order store, the two customer-channel
// registries, the event bus, and the push-delivery collaborator.
package ports

import (
	"context"

	"eatery/internal/core/domain/model/order"
)

// OrderStore is the single owner of all Order aggregates. It holds
// orders in creation order for the life of the process, issues strictly
// increasing identifiers, and serializes all mutations so transition
// guard checks are atomic.
//
// Orders are never deleted; the daily sales aggregator reads them back
// through All.
type OrderStore interface {
	// Append allocates the next identifier, creates an order in the
	// pipeline's first stage with the given items, and stores it.
	// Returns the read model of the stored order.
	Append(ctx context.Context, items []order.Item) (order.View, error)

	// Mutate runs fn against the aggregate identified by id while
	// holding the store's lock, making check-then-set transitions
	// atomic. Returns the read model after fn ran.
	//
	// Returns errs.ObjectNotFoundError when id is unknown; any error
	// from fn is passed through and leaves the aggregate as fn left it.
	Mutate(ctx context.Context, id order.ID, fn func(*order.Order) error) (order.View, error)

	// Find returns the read model of the order identified by id, or
	// errs.ObjectNotFoundError when id is unknown.
	Find(ctx context.Context, id order.ID) (order.View, error)

	// All returns read models of every stored order in creation order.
	All(ctx context.Context) ([]order.View, error)
}
