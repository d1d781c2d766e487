package prefix

import (
	"errors"
	"fmt"

	"github.com/reeflective/prefix/args"
)

// ErrorType represents the type of error.
type ErrorType uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error, like a
	// custom matcher panicking while parsing its value.
	ErrUnknown ErrorType = iota

	// ErrHelp indicates that the built-in help was requested
	// (the error contains the help message).
	ErrHelp

	// ErrDefinition indicates that some matchers could not be added
	// to a command, because of their configuration or their position.
	ErrDefinition

	// ErrMatch indicates that a matcher could not find its value in
	// the message: the error message can be sent back to the user.
	ErrMatch
)

func (e ErrorType) String() string {
	errs := [...]string{
		"unknown",    // ErrUnknown
		"help",       // ErrHelp
		"definition", // ErrDefinition
		"match",      // ErrMatch
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ErrorType) Error() string {
	return e.String()
}

// Error represents a command error. All errors returned when adding matchers
// to a command or parsing a message are of this type. The error contains
// both a Type and a Message.
type Error struct {
	// The type of error
	Type ErrorType

	// The error message
	Message string

	// The underlying matcher or definition error, if any.
	err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the matcher or definition error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(tp ErrorType, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

func newErrorf(tp ErrorType, format string, args ...any) *Error {
	return newError(tp, fmt.Sprintf(format, args...))
}

// wrapError returns the error as an *Error, using the given
// type and keeping err as the cause if it is not one already.
func wrapError(tp ErrorType, err error) *Error {
	var ret *Error
	if errors.As(err, &ret) {
		return ret
	}

	return &Error{Type: tp, Message: err.Error(), err: err}
}

// matchError formats the error message sent to users when a matcher fails:
// the matcher help is followed by the reason of the failure, if any.
func (c *Command) matchError(m args.Matcher, err error) *Error {
	reason := err.Error()

	var matchErr *args.MatchError
	if errors.As(err, &matchErr) {
		reason = matchErr.Reason
	}

	var message string
	if reason != "" {
		message = fmt.Sprintf("`%s` error: %s. %s", m.Help(), reason, c.helpHint())
	} else {
		message = fmt.Sprintf("`%s` is missing or invalid. %s", m.Help(), c.helpHint())
	}

	return &Error{Type: ErrMatch, Message: message, err: err}
}

// Message returns the message to send back to the user who wrote the command,
// either the help or the reason why the command could not be parsed. It returns
// an empty string if err is nil, or if it is not a user-facing error.
func Message(err error) string {
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		return ""
	}

	if cmdErr.Type == ErrDefinition {
		return ""
	}

	return cmdErr.Message
}
