// Package guard provides a small defensive-programming helper that lets
// commands and queries detect whether they were created through their
// designated constructor function rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// command or query struct and set it via NewConstructorGuard inside the
// constructor; a zero-value struct then fails Validate.
//
// Example:
//
//	type SubmitOrderCommand struct {
//	    items []order.Item
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSubmitOrderCommand(items []order.Item) (SubmitOrderCommand, error) {
//	    // ... validate items ...
//	    return SubmitOrderCommand{items: items, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
