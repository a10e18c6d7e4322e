package ports

import (
	"context"
	"errors"

	"eatery/internal/core/domain/model/notification"
)

// ErrSubscriptionGone classifies a push delivery failure as permanently
// invalid: the endpoint no longer exists (HTTP 410/404 semantics) and
// the subscription should be purged. Any other delivery error is
// treated as transient.
var ErrSubscriptionGone = errors.New("push subscription is gone")

// PushSender is the push-delivery collaborator. Send posts the payload
// to the subscription's endpoint and blocks until the push service
// responds; callers that must not wait dispatch it on their own
// goroutine. The collaborator's retry policy, if any, is opaque to the
// core.
type PushSender interface {
	Send(ctx context.Context, sub notification.Subscription, payload notification.Payload) error
}
