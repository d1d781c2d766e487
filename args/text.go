package args

import (
	"fmt"
	"regexp"
	"strings"

	errs "github.com/reeflective/prefix/internal/errors"
	"github.com/reeflective/prefix/internal/extract"
	"github.com/reeflective/prefix/internal/validation"
)

// Text matches as much text as possible including characters a-z, spaces, - and _.
// The text does not need to be at the start of the remaining text:
// in "Jim Bob! is my name", it matches "Jim Bob".
type Text struct {
	base
	pattern
}

var textPattern = regexp.MustCompile(`[a-zA-Z_\-\s]+`)

// NewText returns a matcher for a text made of letters, spaces, - and _.
func NewText(name string) (*Text, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	return &Text{base: b, pattern: pattern{re: textPattern}}, nil
}

// Parse returns the matched text as a string.
func (t *Text) Parse(text string) (any, string, error) {
	value, rest, err := t.extract(text)
	if err != nil {
		return nil, text, err
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `<Name {text}>`.
func (t *Text) Help() string {
	return fmt.Sprintf("<%s {text}>", t.name)
}

// Example returns two words of placeholder text.
func (t *Text) Example() string {
	return loremIpsum(2)
}

// Words matches a fixed number of words separated by spaces,
// each made of characters a-z, 0-9 and _.
type Words struct {
	base
	pattern
	count int
}

// NewWord returns a matcher for a single word.
func NewWord(name string) (*Words, error) {
	return NewWords(name, 1)
}

// NewWords returns a matcher for count words, which must be greater than 0.
func NewWords(name string, count int) (*Words, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	if err := validation.GreaterThanZero(count); err != nil {
		return nil, err
	}

	words := &Words{
		base:    b,
		pattern: pattern{re: regexp.MustCompile(extract.Words(count))},
		count:   count,
	}

	return words, nil
}

// Parse returns the matched words as a single string.
func (w *Words) Parse(text string) (any, string, error) {
	value, rest, err := w.extract(text)
	if err != nil {
		return nil, text, NotFoundReason(fmt.Sprintf("%d word%s not found", w.count, plural(w.count)))
	}

	return value, rest, nil
}

// Help returns the argument syntax, like `<Name {2 words}>`.
func (w *Words) Help() string {
	return fmt.Sprintf("<%s {%d word%s}>", w.name, w.count, plural(w.count))
}

// Example returns as many words of placeholder text as needed.
func (w *Words) Example() string {
	return loremIpsum(w.count)
}

// Rest matches all the remaining text, including all characters.
// It must be the last positional matcher of a command.
type Rest struct {
	base
}

// NewRest returns a matcher consuming all the remaining text.
func NewRest(name string) (*Rest, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	return &Rest{base: b}, nil
}

// Parse returns the entire text, which cannot be empty.
func (r *Rest) Parse(text string) (any, string, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return nil, text, NotFoundReason("Text cannot be empty")
	}

	return value, "", nil
}

// ValidatePosition fails if the matcher is not the last positional one.
func (r *Rest) ValidatePosition(index, count int) error {
	if index != count-1 {
		return fmt.Errorf("%w: %w: '%s' must be the last argument", errs.ErrDefinition, errs.ErrPosition, r.name)
	}

	return nil
}

// Help returns the argument syntax, like `<Notes {remaining}>`.
func (r *Rest) Help() string {
	return fmt.Sprintf("<%s {remaining}>", r.name)
}

// Example returns two words of placeholder text.
func (r *Rest) Example() string {
	return loremIpsum(2)
}
