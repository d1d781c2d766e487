// Package validation performs the checks run when matchers are declared,
// like flag syntax or minimum/maximum consistency. All checks are delegated
// to go-playground/validator, with a few custom tags registered for this
// library, and return errors wrapping the ErrDefinition sentinel.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/prefix/internal/extract"
)

// Custom validation tags.
const (
	TagFlagLong  = "flaglong"
	TagFlagShort = "flagshort"
	TagTimeUnit  = "timeunit"
)

var (
	flagLong  = regexp.MustCompile(`^--[a-z]{2,}$`)
	flagShort = regexp.MustCompile(`^-[a-z]{1,3}$`)
)

// validate is shared by all checks: validator caches are safe for concurrent use.
var validate = New()

// New returns a validator with all custom tags of this library registered.
func New() *validator.Validate {
	val := validator.New()

	_ = val.RegisterValidation(TagFlagLong, func(fl validator.FieldLevel) bool {
		return flagLong.MatchString(fl.Field().String())
	})

	_ = val.RegisterValidation(TagFlagShort, func(fl validator.FieldLevel) bool {
		return flagShort.MatchString(fl.Field().String())
	})

	_ = val.RegisterValidation(TagTimeUnit, func(fl validator.FieldLevel) bool {
		return extract.IsTime(fl.Field().String())
	})

	return val
}

// Name checks the display name of a matcher is provided and has 3+ characters.
func Name(name string) error {
	return newError(validate.Var(name, "required,min=3"), map[string]string{
		"required": "Arg name '%s' not provided",
		"min":      "Arg name '%s' should be 3+ characters",
	}, name)
}

// FlagLong checks a long flag is in the form --command (lowercase letters only).
func FlagLong(long string) error {
	return newError(validate.Var(long, TagFlagLong), map[string]string{
		TagFlagLong: "Long command '%s' must be in the form --command and have 2+ characters",
	}, long)
}

// FlagShort checks a short flag is in the form -c, with 1 to 3 lowercase letters.
func FlagShort(short string) error {
	return newError(validate.Var(short, TagFlagShort), map[string]string{
		TagFlagShort: "Short command '%s' must be in the form -cmd and have 1-3 characters",
	}, short)
}

// TimeUnit checks a time bound (kind is either Min or Max) is a valid time like 20m.
func TimeUnit(kind, value string) error {
	return newError(validate.Var(value, TagTimeUnit), map[string]string{
		TagTimeUnit: "%s value '%s' must be a time unit",
	}, kind, value)
}

// Less checks that lower is strictly less than upper. The display values
// are used in the error message, since bounds might have been converted.
func Less[T int64 | float64](lower, upper T, lowerDisplay, upperDisplay string) error {
	return newError(validate.VarWithValue(lower, upper, "ltfield"), map[string]string{
		"ltfield": "Min value '%s' must be less than '%s'",
	}, lowerDisplay, upperDisplay)
}

// Between checks that a number bound (kind is either Min or Max) is within the
// range of values of the number type it applies to. NaN is never within it.
func Between(kind string, value, lower, upper float64) error {
	tag := fmt.Sprintf("gte=%s,lte=%s", shortFloat(lower), shortFloat(upper))

	const message = "%s value '%s' must be between '%s' and '%s'"

	return newError(validate.Var(value, tag), map[string]string{
		"gte": message,
		"lte": message,
	}, kind, extract.FormatFloat(value), shortFloat(lower), shortFloat(upper))
}

// Positive checks that an argument value is greater or equal to 0.
func Positive(value int) error {
	return newError(validate.Var(value, "gte=0"), map[string]string{
		"gte": "Argument with value '%d' must be positive",
	}, value)
}

// GreaterThanZero checks that an argument value is strictly greater than 0.
func GreaterThanZero(value int) error {
	return newError(validate.Var(value, "gt=0"), map[string]string{
		"gt": "Argument with value '%d' must be greater than '0'",
	}, value)
}

// Struct checks a declarative definition against its `validate` struct tags,
// and reports all invalid fields at once, by their path in the definition.
func Struct(value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return &invalidDefinitionError{message: err.Error(), validatorErr: err}
	}

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: invalid value '%v' (%s)", field.Namespace(), field.Value(), field.ActualTag()))
	}

	return &invalidDefinitionError{
		message:      strings.Join(messages, "; "),
		validatorErr: err,
	}
}

// shortFloat formats a float with an exponent when it is large.
func shortFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
