package kernel

import (
	"eatery/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrConnectionIDIsNotConstructed indicates that a ConnectionID was not properly
// initialized through the constructor function. This error is returned
// when validating a zero-value ConnectionID.
var ErrConnectionIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ConnectionID must be created via NewConnectionID",
)

// ConnectionID is a value object identifying a single live real-time connection.
// It wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability. Every websocket session is assigned one
// ConnectionID when it is accepted; registries and the event bus address the
// connection by this handle rather than by the underlying socket.
//
// The zero value of ConnectionID is invalid and must be constructed using
// NewConnectionID.
//
// ConnectionID is immutable, comparable, and safe to use as a map key.
//
// Example usage:
//
//	// Assign a handle to a freshly accepted connection
//	connID := kernel.NewConnectionID()
type ConnectionID struct {
	id uuid.UUID
}

// NewConnectionID generates a new random connection handle (UUID version 4).
// This is the primary way to identify an accepted live connection.
func NewConnectionID() ConnectionID {
	return ConnectionID{
		id: uuid.New(),
	}
}

// String returns the standard string representation of the connection handle.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value, this returns "00000000-0000-0000-0000-000000000000".
func (c ConnectionID) String() string {
	return c.id.String()
}

// IsEqual compares two connection handles for equality.
// Returns true if both represent the same value, false otherwise.
func (c ConnectionID) IsEqual(other ConnectionID) bool {
	return c.id == other.id
}

// Validate checks if the ConnectionID is properly constructed.
// Returns ErrConnectionIDIsNotConstructed if it is a zero value.
func (c ConnectionID) Validate() error {
	if c.id == uuid.Nil {
		return ErrConnectionIDIsNotConstructed
	}
	return nil
}
