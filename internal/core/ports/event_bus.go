package ports

import (
	"context"

	"eatery/internal/core/domain/model/kernel"
)

// Event names delivered over the bus. Stage-entry broadcast names
// (new_kitchen_order, status_updated) live in the pipeline table; the
// names below cover the remaining deliveries.
const (
	// EventInitialOrders carries the full order snapshot sent once to
	// every new connection.
	EventInitialOrders = "initial_orders"

	// EventOrderReady is the targeted ready-for-pickup alert for the one
	// customer connection registered for an order.
	EventOrderReady = "order_ready"

	// EventPaymentConfirmed carries the itemized order as a digital
	// receipt to the customer connection when payment is confirmed.
	EventPaymentConfirmed = "payment_confirmed"
)

// Event is one message delivered over the bus: a name and a
// JSON-serializable payload.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// EventBus distributes lifecycle events to terminals.
//
// Broadcast fans an event out to every connected terminal; terminals
// that miss an event converge via the next broadcast or via the
// snapshot they receive on connect. Unicast targets the single
// connection identified by a handle; unknown or closed handles are
// dropped silently.
//
// Both calls must not block the caller on slow consumers.
type EventBus interface {
	Broadcast(ctx context.Context, event Event)
	Unicast(ctx context.Context, connID kernel.ConnectionID, event Event)
}
