package args

import (
	"fmt"
	"regexp"

	errs "github.com/reeflective/prefix/internal/errors"
	"github.com/reeflective/prefix/internal/extract"
	"github.com/reeflective/prefix/internal/validation"
)

// pattern extracts a regular expression group from a text.
// It is shared by all text-like matchers.
type pattern struct {
	re    *regexp.Regexp
	group int
}

func (p pattern) extract(text string) (string, string, error) {
	value, rest, err := extract.Group(p.re, p.group, text)
	if err != nil {
		return "", text, fromExtract(err)
	}

	return value, rest, nil
}

// Regex is a generic matcher extracting a single group of a regular expression.
// Everything matched by the expression is removed from the remaining text.
type Regex struct {
	base
	pattern
	example string
}

// RegexOption is a functional option for a Regex matcher.
type RegexOption func(r *Regex)

// Group sets the index of the group to return, 0 (the entire match) by default.
func Group(index int) RegexOption {
	return func(r *Regex) { r.group = index }
}

// NewRegex returns a matcher extracting the given regular expression from the text.
// The example must be matched by the expression, and is shown to users in help.
func NewRegex(name string, re *regexp.Regexp, example string, opts ...RegexOption) (*Regex, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	if re == nil {
		return nil, fmt.Errorf("%w: '%s' regular expression cannot be nil", errs.ErrDefinition, name)
	}

	regex := &Regex{
		base:    b,
		pattern: pattern{re: re},
		example: example,
	}

	for _, opt := range opts {
		opt(regex)
	}

	if err := validation.Positive(regex.group); err != nil {
		return nil, err
	}

	return regex, nil
}

// Parse returns the matched group as a string.
func (r *Regex) Parse(text string) (any, string, error) {
	value, rest, err := r.extract(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `<Email {text}>`.
func (r *Regex) Help() string {
	return fmt.Sprintf("<%s {text}>", r.name)
}

// Example returns the example given when declaring the matcher.
func (r *Regex) Example() string {
	return r.example
}
