package commands

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/guard"
)

var (
	ErrRegisterConnectionCommandIsNotConstructed = errors.New(
		"RegisterConnectionCommand must be created via NewRegisterConnectionCommand constructor",
	)
)

// RegisterConnectionCommand binds a customer's live connection to their
// order so targeted events (ready alert, receipt) can reach them.
type RegisterConnectionCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	connID  kernel.ConnectionID

	guard guard.ConstructorGuard
}

// NewRegisterConnectionCommand creates a command binding orderID to connID.
func NewRegisterConnectionCommand(orderID order.ID, connID kernel.ConnectionID) (RegisterConnectionCommand, error) {
	registerCommand := RegisterConnectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setOrderID(orderID),
		registerCommand.setConnID(connID),
	); err != nil {
		return RegisterConnectionCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterConnectionCommand) Validate() error {
	return c.guard.Validate(ErrRegisterConnectionCommandIsNotConstructed)
}

// OrderID returns the order the connection belongs to.
func (c RegisterConnectionCommand) OrderID() order.ID {
	return c.orderID
}

// ConnID returns the live connection handle.
func (c RegisterConnectionCommand) ConnID() kernel.ConnectionID {
	return c.connID
}

func (c *RegisterConnectionCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterConnectionCommand) setConnID(connID kernel.ConnectionID) error {
	if err := connID.Validate(); err != nil {
		return err
	}

	c.connID = connID
	return nil
}
