// Package guard implements a defensive construction pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: only objects built through their designated constructor
// carry a constructed guard, so Validate can reject bypassed initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object was created through its
// constructor. The zero value is "not constructed" and fails validation.
//
// Example:
//
//	type Item struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewItem(name string) (Item, error) {
//	    if name == "" {
//	        return Item{}, errors.New("name is required")
//	    }
//	    return Item{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
