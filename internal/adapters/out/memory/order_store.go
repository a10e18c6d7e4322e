// Package memory provides the in-process implementations of the order
// store and the two customer-channel registries. State lives for the
// lifetime of the process only; losing it on restart is an accepted
// limitation of the single-shift deployment.
package memory

import (
	"context"
	"sync"
	"time"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"
)

// OrderStore is the single owner of all Order aggregates. A store-wide
// mutex serializes every mutation, so transition guard check-then-set
// sequences run atomically.
type OrderStore struct {
	mu     sync.Mutex
	orders []*order.Order
	byID   map[order.ID]*order.Order
	nextID order.ID
	now    func() time.Time
}

var _ ports.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates an empty store. Identifiers start at 1 and
// strictly increase for the life of the process. The now function is the
// clock used for creation timestamps; pass nil for time.Now.
func NewOrderStore(now func() time.Time) *OrderStore {
	if now == nil {
		now = time.Now
	}
	return &OrderStore{
		byID:   make(map[order.ID]*order.Order),
		nextID: 1,
		now:    now,
	}
}

// Append allocates the next identifier and stores a new order in the
// pipeline's first stage.
func (s *OrderStore) Append(_ context.Context, items []order.Item) (order.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, err := order.NewOrder(s.nextID, items, s.now())
	if err != nil {
		return order.View{}, err
	}

	s.nextID++
	s.orders = append(s.orders, aggregate)
	s.byID[aggregate.ID()] = aggregate

	return aggregate.View(), nil
}

// Mutate runs fn against the aggregate identified by id under the store
// lock. The error from fn is passed through unchanged.
func (s *OrderStore) Mutate(_ context.Context, id order.ID, fn func(*order.Order) error) (order.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, ok := s.byID[id]
	if !ok {
		return order.View{}, errs.NewObjectNotFoundError("orderID", id)
	}

	if err := fn(aggregate); err != nil {
		return order.View{}, err
	}

	return aggregate.View(), nil
}

// Find returns the read model of the order identified by id.
func (s *OrderStore) Find(_ context.Context, id order.ID) (order.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, ok := s.byID[id]
	if !ok {
		return order.View{}, errs.NewObjectNotFoundError("orderID", id)
	}

	return aggregate.View(), nil
}

// All returns read models of every stored order in creation order.
func (s *OrderStore) All(_ context.Context) ([]order.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]order.View, len(s.orders))
	for i, aggregate := range s.orders {
		views[i] = aggregate.View()
	}

	return views, nil
}
