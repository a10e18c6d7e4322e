package commands

import (
	"errors"

	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/guard"
)

var (
	ErrSubscribePushCommandIsNotConstructed = errors.New(
		"SubscribePushCommand must be created via NewSubscribePushCommand constructor",
	)
)

// SubscribePushCommand registers a durable push endpoint for an order so
// the ready alert can reach the customer when no live connection exists.
type SubscribePushCommand struct { //nolint:recvcheck //using for validation
	orderID      order.ID
	subscription notification.Subscription

	guard guard.ConstructorGuard
}

// NewSubscribePushCommand creates a command binding orderID to the push
// endpoint descriptor supplied by the customer's device.
func NewSubscribePushCommand(orderID order.ID, sub notification.Subscription) (SubscribePushCommand, error) {
	subscribeCommand := SubscribePushCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subscribeCommand.setOrderID(orderID),
		subscribeCommand.setSubscription(sub),
	); err != nil {
		return SubscribePushCommand{}, err
	}

	return subscribeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubscribePushCommand) Validate() error {
	return c.guard.Validate(ErrSubscribePushCommandIsNotConstructed)
}

// OrderID returns the order the subscription belongs to.
func (c SubscribePushCommand) OrderID() order.ID {
	return c.orderID
}

// Subscription returns the push endpoint descriptor.
func (c SubscribePushCommand) Subscription() notification.Subscription {
	return c.subscription
}

func (c *SubscribePushCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubscribePushCommand) setSubscription(sub notification.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	c.subscription = sub
	return nil
}
