// Package guard provides a defensive programming primitive that ensures domain
// objects and commands are created through their constructors rather than as
// zero values.
package guard

import "errors"

// ErrObjectIsNotConstructed is the default error returned when a guarded object
// was not created via its constructor.
var ErrObjectIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed one as a field and initialize it with NewConstructorGuard inside the
// constructor; the zero value fails Validate, so objects created by bypassing
// the constructor are rejected.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For zero-value guards it returns notConstructedErr, or
// ErrObjectIsNotConstructed when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrObjectIsNotConstructed
}
