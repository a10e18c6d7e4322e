package commands

import (
	"errors"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"
	"eatery/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a customer's request to place a new order.
// Encapsulates the validated order lines.
//
// Example:
//
//	burger, _ := order.NewItem("Burger", 5, 1)
//	cmd, err := NewSubmitOrderCommand([]order.Item{burger})
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(store, bus, m, logger)
//	view, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct {
	items []order.Item

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new order.
// An empty or absent item list is rejected with a client-visible error;
// this is the only submission failure surfaced to customers.
func NewSubmitOrderCommand(items []order.Item) (SubmitOrderCommand, error) {
	if len(items) == 0 {
		return SubmitOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	lines := make([]order.Item, len(items))
	copy(lines, items)

	return SubmitOrderCommand{
		items: lines,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Items returns a copy of the order lines.
func (c SubmitOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}
