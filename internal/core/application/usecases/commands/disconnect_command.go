package commands

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/pkg/guard"
)

var (
	ErrDisconnectCommandIsNotConstructed = errors.New(
		"DisconnectCommand must be created via NewDisconnectCommand constructor",
	)
)

// DisconnectCommand reports that a live connection closed. Only registry
// entries bound to that exact handle are removed; order status and push
// subscriptions are untouched.
type DisconnectCommand struct {
	connID kernel.ConnectionID

	guard guard.ConstructorGuard
}

// NewDisconnectCommand creates a command for a closed connection handle.
func NewDisconnectCommand(connID kernel.ConnectionID) (DisconnectCommand, error) {
	if err := connID.Validate(); err != nil {
		return DisconnectCommand{}, err
	}

	return DisconnectCommand{
		connID: connID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DisconnectCommand) Validate() error {
	return c.guard.Validate(ErrDisconnectCommandIsNotConstructed)
}

// ConnID returns the closed connection handle.
func (c DisconnectCommand) ConnID() kernel.ConnectionID {
	return c.connID
}
