// Package extract contains the scanning primitives shared by all matchers:
// extracting a regular expression group from the head (or anywhere) of a
// text, scanning leading numbers with lenient conversion rules, and reading
// time tokens like 20m or 1d.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	errs "github.com/reeflective/prefix/internal/errors"
)

// Group applies the regular expression to the trimmed text, and returns the
// trimmed capture group at the given index, along with the remaining text:
// the first occurrence of the whole match is removed from the text, which
// is then trimmed.
//
// It returns an error wrapping ErrNotFound when the expression does not match,
// and an error wrapping ErrConstraint when the group index is out of range.
func Group(re *regexp.Regexp, group int, text string) (value, rest string, err error) {
	matches := re.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return "", text, errs.ErrNotFound
	}

	if group < 0 || group >= len(matches) {
		return "", text, &GroupError{Group: group, Count: len(matches)}
	}

	rest = strings.TrimSpace(strings.Replace(text, matches[0], "", 1))

	return strings.TrimSpace(matches[group]), rest, nil
}

// GroupError is returned when a regular expression matches,
// but does not have the requested capture group.
type GroupError struct {
	Group int // The requested group index
	Count int // The number of groups, including the whole match
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("Could not get group '%d' from %d matches", e.Group, e.Count)
}

// Unwrap returns ErrConstraint.
func (e *GroupError) Unwrap() error {
	return errs.ErrConstraint
}

// Words returns a regular expression source matching count words made
// of word characters, separated by whitespace, e.g. `\w+\s+\w+`.
func Words(count int) string {
	words := make([]string, count)
	for i := range words {
		words[i] = `\w+`
	}

	return strings.Join(words, `\s+`)
}
