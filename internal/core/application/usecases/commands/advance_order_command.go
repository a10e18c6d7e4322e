package commands

import (
	"errors"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents an operator terminal's instruction to
// move an order into one specific next pipeline stage.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(7, order.AwaitingPayment)
//	if err != nil {
//	    return fmt.Errorf("invalid advance command: %w", err)
//	}
//
//	handler := NewAdvanceOrderCommandHandler(store, bus, notifier, live, m, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command targeting one pipeline stage.
// Validates that the order id is positive and the target is a valid
// stage. Whether the transition is allowed from the order's current
// stage is decided by the handler, not here.
func NewAdvanceOrderCommand(orderID order.ID, target order.Status) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() order.ID {
	return c.orderID
}

// Target returns the stage this command advances the order into.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
