// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so invariants established at construction time can be trusted
// everywhere else.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs embedding it cannot be used unless they were
// produced by their constructor function.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(customerID kernel.UUID) (CreateOrderCommand, error) {
//	    return CreateOrderCommand{
//	        customerID: customerID,
//	        guard:      guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
