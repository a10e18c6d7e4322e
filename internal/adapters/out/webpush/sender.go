// Package webpush delivers ready alerts to browser push endpoints using
// the Web Push protocol with VAPID authentication.
package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpushgo "github.com/SherClockHolmes/webpush-go"

	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"
)

const defaultTTL = 300 // seconds the push service keeps an undelivered message

// Sender sends notification payloads to push-service endpoints. It
// satisfies ports.PushSender.
type Sender struct {
	options webpushgo.Options
}

var _ ports.PushSender = (*Sender)(nil)

// NewSender creates a sender signing requests with the given VAPID key
// pair. The subscriber is the contact address push services may use to
// reach the operator, usually a mailto: URL.
func NewSender(subscriber, vapidPublicKey, vapidPrivateKey string) (*Sender, error) {
	if subscriber == "" {
		return nil, errs.NewValueIsRequiredError("subscriber")
	}
	if vapidPublicKey == "" {
		return nil, errs.NewValueIsRequiredError("vapidPublicKey")
	}
	if vapidPrivateKey == "" {
		return nil, errs.NewValueIsRequiredError("vapidPrivateKey")
	}

	return &Sender{
		options: webpushgo.Options{
			Subscriber:      subscriber,
			VAPIDPublicKey:  vapidPublicKey,
			VAPIDPrivateKey: vapidPrivateKey,
			TTL:             defaultTTL,
		},
	}, nil
}

// Send pushes the payload to the subscription's endpoint. Endpoints the
// push service reports as gone or unknown yield ports.ErrSubscriptionGone
// so the caller can purge the subscription.
func (s *Sender) Send(
	ctx context.Context,
	sub notification.Subscription,
	payload notification.Payload,
) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	options := s.options
	resp, err := webpushgo.SendNotificationWithContext(ctx, message, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpushgo.Keys{
			Auth:   sub.Keys.Auth,
			P256dh: sub.Keys.P256dh,
		},
	}, &options)
	if err != nil {
		return fmt.Errorf("send push notification: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ports.ErrSubscriptionGone
	case resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}

	return nil
}
