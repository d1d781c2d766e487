// Package args provides all the argument matchers that can be added to a
// prefix command: numbers, words and text, regular expressions, Discord
// mentions and emojis, urls, times and flags.
//
// Each matcher extracts a single typed value from the text remaining to be
// parsed, and returns the text left once its value has been consumed. All
// matchers are immutable once constructed, and their constructors fail on
// invalid definitions: use Must to panic instead, when matchers are declared
// in package-level variables.
package args

import (
	"fmt"
	"strings"

	errs "github.com/reeflective/prefix/internal/errors"
	"github.com/reeflective/prefix/internal/validation"
)

// Matcher is the interface implemented by all argument types.
// Custom matchers can be written by implementing it, optionally
// embedding one of the matchers of this package to reuse its behavior.
type Matcher interface {
	// Name is the name of the argument seen by users in help and errors.
	Name() string

	// Parse extracts the matcher's value from the text, and returns the text
	// remaining once the value has been consumed. When failing, it should
	// return a *MatchError, with or without a reason.
	Parse(text string) (value any, rest string, err error)

	// Help returns the syntax of the argument, like `<Age {int 0~99}>`.
	Help() string

	// Example returns a valid example of the argument, which must be
	// successfully parsed by the matcher itself.
	Example() string

	// ValidatePosition checks that the matcher supports being
	// registered at the given index among count positional matchers.
	ValidatePosition(index, count int) error
}

// FlagMatcher is implemented by matchers that are not positional: they can
// match anywhere in the text and must be parsed before all other matchers.
type FlagMatcher interface {
	Matcher
	IsFlag() bool
}

// IsFlag returns true if the matcher is a flag matcher.
func IsFlag(m Matcher) bool {
	flag, ok := m.(FlagMatcher)

	return ok && flag.IsFlag()
}

// Validate checks the definition of a matcher: its help and example must be
// populated, and the example must be parsed by the matcher into a value.
// This check is run on each matcher when it is added to a command.
func Validate(m Matcher) error {
	if m == nil {
		return fmt.Errorf("%w: matcher cannot be nil", errs.ErrDefinition)
	}

	if m.Help() == "" {
		return fmt.Errorf("%w: '%s' help message should be populated", errs.ErrDefinition, m.Name())
	}

	example := m.Example()
	if example == "" {
		return fmt.Errorf("%w: '%s' example message should be populated", errs.ErrDefinition, m.Name())
	}

	value, _, err := m.Parse(example)
	if err != nil {
		return fmt.Errorf("%w: '%s' could not parse the example '%s': %w", errs.ErrDefinition, m.Name(), example, err)
	}

	if value == nil {
		return fmt.Errorf("%w: '%s' parsing the example should return a value", errs.ErrDefinition, m.Name())
	}

	if text, isText := value.(string); isText && text == "" {
		return fmt.Errorf("%w: '%s' parsing the example should return a value", errs.ErrDefinition, m.Name())
	}

	return nil
}

// Must returns the matcher if err is nil, and panics otherwise.
// It is intended for matchers declared in package variables.
func Must[M Matcher](m M, err error) M {
	if err != nil {
		panic(err)
	}

	return m
}

// base holds what is common to all matchers: their display name.
type base struct {
	name string
}

func newBase(name string) (base, error) {
	if err := validation.Name(name); err != nil {
		return base{}, err
	}

	return base{name: name}, nil
}

// Name returns the name of the argument seen by users.
func (b base) Name() string { return b.name }

// ValidatePosition accepts any position.
func (b base) ValidatePosition(int, int) error { return nil }

//
// Examples -------------------------------------------------------------- //
//

var lorem = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit
	sed do eiusmod tempor incididunt ut labore et dolore magna aliqua`)

// loremIpsum returns count words of placeholder text.
func loremIpsum(count int) string {
	words := make([]string, count)
	for i := range words {
		words[i] = lorem[i%len(lorem)]
	}

	return strings.Join(words, " ")
}

// plural returns "s" if count is not 1.
func plural(count int) string {
	if count == 1 {
		return ""
	}

	return "s"
}
