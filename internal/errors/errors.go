package errors

import "errors"

var (
	// ErrDefinition is a general error used to wrap more specific errors
	// raised while declaring matchers or registering them onto a command.
	ErrDefinition = errors.New("invalid definition")

	// ErrNotFound indicates that a matcher could not find its value
	// in the remaining text, or that the value could not be converted.
	ErrNotFound = errors.New("value not found")

	// ErrConstraint indicates that a value was found but violates
	// one of the constraints of its matcher, like a minimum or maximum.
	ErrConstraint = errors.New("constraint violated")

	// ErrPosition indicates that a matcher has been registered at
	// a position of the command that it does not support.
	ErrPosition = errors.New("invalid position")
)
