package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	errs "github.com/reeflective/prefix/internal/errors"
)

// invalidDefinitionError wraps an error raised by validator on a matcher
// definition value, and replaces its message with one more adapted to the
// developer declaring the matcher.
type invalidDefinitionError struct {
	message      string
	validatorErr error
}

// Error returns the developer-facing message.
func (err *invalidDefinitionError) Error() string {
	return err.message
}

// Unwrap gives access both to ErrDefinition and the original validator error.
func (err *invalidDefinitionError) Unwrap() []error {
	return []error{errs.ErrDefinition, err.validatorErr}
}

// newError builds a definition error from a validator error, using the
// formatter matching the failed tag, or the generic message otherwise.
func newError(verr error, messages map[string]string, args ...any) error {
	if verr == nil {
		return nil
	}

	message := verr.Error()

	if fields, ok := verr.(validator.ValidationErrors); ok && len(fields) > 0 {
		if format, found := messages[fields[0].Tag()]; found {
			message = fmt.Sprintf(format, args...)
		}
	}

	return &invalidDefinitionError{
		message:      message,
		validatorErr: verr,
	}
}
