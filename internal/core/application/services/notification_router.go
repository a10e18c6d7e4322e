// Package services contains application services that coordinate
// multiple collaborators without owning domain state themselves.
package services

import (
	"context"
	"errors"
	"log/slog"

	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/metrics"
)

// NotificationRouter delivers the one ready-for-pickup signal to the
// customer of an order, through whichever channels are available.
//
// Channel resolution:
//  1. A registered live connection gets the targeted ready event
//     immediately.
//  2. A registered push subscription gets the ready payload dispatched
//     asynchronously; the triggering transition never waits on the push
//     round trip.
//
// Cleanup on push completion:
//   - success: both registry entries for the order are consumed, so a
//     repeat trigger no longer reaches the customer
//   - permanently invalid endpoint (gone/expired): only the push
//     subscription is purged; the live connection entry is untouched
//   - transient failure: nothing is removed and no retry is scheduled;
//     the failure is logged only
//
// A second trigger for the same order while a push is in flight can race
// with the cleanup and cause a duplicate send. No idempotency token
// guards against this; the window is accepted and covered by tests.
type NotificationRouter struct {
	live    ports.LiveConnectionRegistry
	push    ports.PushSubscriptionRegistry
	bus     ports.EventBus
	sender  ports.PushSender
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewNotificationRouter creates a router over the two customer-channel
// registries, the event bus, and the push-delivery collaborator. A nil
// sender disables push delivery while live alerts keep working, for
// deployments that run without VAPID credentials.
func NewNotificationRouter(
	live ports.LiveConnectionRegistry,
	push ports.PushSubscriptionRegistry,
	bus ports.EventBus,
	sender ports.PushSender,
	m *metrics.Metrics,
	logger *slog.Logger,
) *NotificationRouter {
	return &NotificationRouter{
		live:    live,
		push:    push,
		bus:     bus,
		sender:  sender,
		metrics: m,
		logger:  logger.With("component", "notification_router"),
	}
}

// NotifyReady resolves the customer's channels for orderID and
// dispatches the ready alert. Returns immediately; push delivery and its
// cleanup run on their own goroutine.
func (r *NotificationRouter) NotifyReady(ctx context.Context, orderID order.ID) {
	if connID, ok := r.live.Find(ctx, orderID); ok {
		r.bus.Unicast(ctx, connID, ports.Event{Name: ports.EventOrderReady, Data: orderID})
	}

	if r.sender == nil {
		return
	}

	sub, ok := r.push.Find(ctx, orderID)
	if !ok {
		return
	}

	go r.deliver(orderID, sub, notification.ReadyPayload(orderID))
}

// deliver runs detached from the triggering request, so it carries its
// own context rather than the request's.
func (r *NotificationRouter) deliver(
	orderID order.ID,
	sub notification.Subscription,
	payload notification.Payload,
) {
	ctx := context.Background()

	err := r.sender.Send(ctx, sub, payload)
	switch {
	case err == nil:
		r.push.Remove(ctx, orderID)
		r.live.Remove(ctx, orderID)
		r.metrics.PushDeliveries.WithLabelValues(metrics.OutcomeDelivered).Inc()
		r.logger.InfoContext(ctx, "push delivered", "orderID", orderID)

	case errors.Is(err, ports.ErrSubscriptionGone):
		r.push.Remove(ctx, orderID)
		r.metrics.PushDeliveries.WithLabelValues(metrics.OutcomeGone).Inc()
		r.logger.InfoContext(ctx, "push subscription purged", "orderID", orderID)

	default:
		// Known gap: a transient failure drops the notification with no
		// recovery path.
		r.metrics.PushDeliveries.WithLabelValues(metrics.OutcomeFailed).Inc()
		r.logger.ErrorContext(ctx, "push delivery failed", "orderID", orderID, "error", err)
	}
}
