package notification

import (
	"fmt"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"
)

// Subscription is a durable push endpoint descriptor registered by a
// customer's device. The core treats it as an opaque value handed to the
// push-delivery collaborator; the fields mirror the browser Push API
// subscription object.
type Subscription struct {
	// Endpoint is the push service URL the delivery collaborator posts to.
	Endpoint string `json:"endpoint"`

	// Keys carries the client encryption material.
	Keys SubscriptionKeys `json:"keys"`
}

// SubscriptionKeys holds the client keys of a push subscription.
type SubscriptionKeys struct {
	Auth   string `json:"auth"`
	P256dh string `json:"p256dh"`
}

// Validate checks that the subscription carries an endpoint.
// Key material is left to the delivery collaborator to reject.
func (s Subscription) Validate() error {
	if s.Endpoint == "" {
		return errs.NewValueIsRequiredError("endpoint")
	}
	return nil
}

// Payload is the push notification content contract: a JSON object with
// a title and a body. The client-side rendering agent displays it as a
// system notification.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ReadyPayload builds the ready-for-pickup payload for an order,
// naming the order id in the body.
func ReadyPayload(orderID order.ID) Payload {
	return Payload{
		Title: "Your order is ready!",
		Body:  fmt.Sprintf("Order #%d is ready, please come to the counter.", orderID),
	}
}
