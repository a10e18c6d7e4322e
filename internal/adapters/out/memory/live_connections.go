package memory

import (
	"context"
	"sync"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
)

// LiveConnectionRegistry is the in-process order-id to connection-handle
// mapping. All operations run under one mutex, so Remove is an atomic
// delete-if-present.
type LiveConnectionRegistry struct {
	mu      sync.Mutex
	entries map[order.ID]kernel.ConnectionID
}

var _ ports.LiveConnectionRegistry = (*LiveConnectionRegistry)(nil)

// NewLiveConnectionRegistry creates an empty registry.
func NewLiveConnectionRegistry() *LiveConnectionRegistry {
	return &LiveConnectionRegistry{
		entries: make(map[order.ID]kernel.ConnectionID),
	}
}

// Register binds orderID to connID, replacing any previous binding.
func (r *LiveConnectionRegistry) Register(_ context.Context, orderID order.ID, connID kernel.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[orderID] = connID
}

// Find returns the connection bound to orderID, if any.
func (r *LiveConnectionRegistry) Find(_ context.Context, orderID order.ID) (kernel.ConnectionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connID, ok := r.entries[orderID]
	return connID, ok
}

// Remove deletes the binding for orderID if present and reports whether
// an entry was removed.
func (r *LiveConnectionRegistry) Remove(_ context.Context, orderID order.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[orderID]; !ok {
		return false
	}

	delete(r.entries, orderID)
	return true
}

// RemoveByConnection deletes every binding whose value equals connID and
// returns the order ids that were unbound.
func (r *LiveConnectionRegistry) RemoveByConnection(_ context.Context, connID kernel.ConnectionID) []order.ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var unbound []order.ID
	for orderID, bound := range r.entries {
		if bound.IsEqual(connID) {
			delete(r.entries, orderID)
			unbound = append(unbound, orderID)
		}
	}

	return unbound
}
