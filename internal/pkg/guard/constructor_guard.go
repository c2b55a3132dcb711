// Package guard implements the constructor-guard pattern used by commands,
// queries and value objects to reject zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed it in a struct and set it via NewConstructorGuard inside the
// constructor; Validate then fails for any instance created another way.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    foods []kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(foods []kernel.UUID) (PlaceOrderCommand, error) {
//	    // validate foods...
//	    return PlaceOrderCommand{foods: foods, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
