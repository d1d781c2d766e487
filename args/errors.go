package args

import (
	"errors"

	errs "github.com/reeflective/prefix/internal/errors"
	"github.com/reeflective/prefix/internal/extract"
)

var (
	// ErrDefinition is wrapped by all errors returned when
	// declaring matchers with an invalid configuration.
	ErrDefinition = errs.ErrDefinition

	// ErrNotFound is wrapped by match errors when the
	// value is missing or could not be converted.
	ErrNotFound = errs.ErrNotFound

	// ErrConstraint is wrapped by match errors when the value
	// has been found but violates one of the matcher's constraints.
	ErrConstraint = errs.ErrConstraint

	// ErrPosition is wrapped by errors returned when a matcher
	// is registered at a position it does not support.
	ErrPosition = errs.ErrPosition
)

// MatchError is returned by matchers failing to parse their value.
// A MatchError without reason means that the value is missing or
// invalid, while a reason describes a more specific failure.
type MatchError struct {
	// Reason is the user-facing reason of the failure, or empty.
	Reason string

	// Err is either ErrNotFound or ErrConstraint.
	Err error
}

// Error returns the reason, or a generic message if there is none.
func (e *MatchError) Error() string {
	if e.Reason == "" {
		return "missing or invalid"
	}

	return e.Reason
}

// Unwrap returns the sentinel error classifying the failure.
func (e *MatchError) Unwrap() error {
	return e.Err
}

// NotFound returns a match error with no specific reason.
func NotFound() *MatchError {
	return &MatchError{Err: ErrNotFound}
}

// NotFoundReason returns a match error for a missing value, with a reason.
func NotFoundReason(reason string) *MatchError {
	return &MatchError{Reason: reason, Err: ErrNotFound}
}

// Constraint returns a match error for a value violating a constraint.
func Constraint(reason string) *MatchError {
	return &MatchError{Reason: reason, Err: ErrConstraint}
}

// fromExtract converts errors returned by the extraction helpers.
func fromExtract(err error) *MatchError {
	var groupErr *extract.GroupError
	if errors.As(err, &groupErr) {
		return Constraint(groupErr.Error())
	}

	return NotFound()
}
