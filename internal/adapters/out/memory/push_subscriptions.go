package memory

import (
	"context"
	"sync"

	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
)

// PushSubscriptionRegistry is the in-process order-id to push-descriptor
// mapping. All operations run under one mutex, so Remove is an atomic
// delete-if-present.
type PushSubscriptionRegistry struct {
	mu      sync.Mutex
	entries map[order.ID]notification.Subscription
}

var _ ports.PushSubscriptionRegistry = (*PushSubscriptionRegistry)(nil)

// NewPushSubscriptionRegistry creates an empty registry.
func NewPushSubscriptionRegistry() *PushSubscriptionRegistry {
	return &PushSubscriptionRegistry{
		entries: make(map[order.ID]notification.Subscription),
	}
}

// Subscribe binds orderID to sub, replacing any previous descriptor.
func (r *PushSubscriptionRegistry) Subscribe(_ context.Context, orderID order.ID, sub notification.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[orderID] = sub
}

// Find returns the descriptor bound to orderID, if any.
func (r *PushSubscriptionRegistry) Find(_ context.Context, orderID order.ID) (notification.Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.entries[orderID]
	return sub, ok
}

// Remove deletes the descriptor for orderID if present and reports
// whether an entry was removed.
func (r *PushSubscriptionRegistry) Remove(_ context.Context, orderID order.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[orderID]; !ok {
		return false
	}

	delete(r.entries, orderID)
	return true
}
