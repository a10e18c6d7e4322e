package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Append(ctx context.Context, items []order.Item) (order.View, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(order.View), args.Error(1)
}

func (m *MockOrderStore) Mutate(
	ctx context.Context, id order.ID, fn func(*order.Order) error,
) (order.View, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(order.View), args.Error(1)
}

func (m *MockOrderStore) Find(ctx context.Context, id order.ID) (order.View, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.View), args.Error(1)
}

func (m *MockOrderStore) All(ctx context.Context) ([]order.View, error) {
	args := m.Called(ctx)
	return args.Get(0).([]order.View), args.Error(1)
}

type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Broadcast(ctx context.Context, event ports.Event) {
	m.Called(ctx, event)
}

func (m *MockEventBus) Unicast(ctx context.Context, connID kernel.ConnectionID, event ports.Event) {
	m.Called(ctx, connID, event)
}

type MockReadyNotifier struct{ mock.Mock }

func (m *MockReadyNotifier) NotifyReady(ctx context.Context, orderID order.ID) {
	m.Called(ctx, orderID)
}

type MockLiveConnectionRegistry struct{ mock.Mock }

func (m *MockLiveConnectionRegistry) Register(
	ctx context.Context, orderID order.ID, connID kernel.ConnectionID,
) {
	m.Called(ctx, orderID, connID)
}

func (m *MockLiveConnectionRegistry) Find(
	ctx context.Context, orderID order.ID,
) (kernel.ConnectionID, bool) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(kernel.ConnectionID), args.Bool(1)
}

func (m *MockLiveConnectionRegistry) Remove(ctx context.Context, orderID order.ID) bool {
	args := m.Called(ctx, orderID)
	return args.Bool(0)
}

func (m *MockLiveConnectionRegistry) RemoveByConnection(
	ctx context.Context, connID kernel.ConnectionID,
) []order.ID {
	args := m.Called(ctx, connID)
	return args.Get(0).([]order.ID)
}

type MockPushSubscriptionRegistry struct{ mock.Mock }

func (m *MockPushSubscriptionRegistry) Subscribe(
	ctx context.Context, orderID order.ID, sub notification.Subscription,
) {
	m.Called(ctx, orderID, sub)
}

func (m *MockPushSubscriptionRegistry) Find(
	ctx context.Context, orderID order.ID,
) (notification.Subscription, bool) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(notification.Subscription), args.Bool(1)
}

func (m *MockPushSubscriptionRegistry) Remove(ctx context.Context, orderID order.ID) bool {
	args := m.Called(ctx, orderID)
	return args.Bool(0)
}
