package args

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reeflective/prefix/internal/validation"
)

// Flag matches a long (--yes) or short (-y) flag anywhere in the text.
// It yields true when the flag is present and false otherwise, or the
// opposite when the flag stores false. Flags never fail to parse.
type Flag struct {
	base
	long       string
	short      string
	storeFalse bool
	longRe     *regexp.Regexp
	shortRe    *regexp.Regexp
}

// FlagOption is a functional option for Flag matchers.
type FlagOption func(f *Flag)

// Short sets the short version of the flag, like -y (1 to 3 lowercase letters).
func Short(short string) FlagOption {
	return func(f *Flag) { f.short = short }
}

// StoreFalse makes the flag yield false when present, and true otherwise.
func StoreFalse() FlagOption {
	return func(f *Flag) { f.storeFalse = true }
}

// NewFlag returns a flag matcher. The long flag must be in the form --command
// with at least 2 lowercase letters.
func NewFlag(name, long string, opts ...FlagOption) (*Flag, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}

	if err := validation.FlagLong(long); err != nil {
		return nil, err
	}

	flag := &Flag{base: b, long: long}

	for _, opt := range opts {
		opt(flag)
	}

	flag.longRe = flagPattern(flag.long)

	if flag.short != "" {
		if err := validation.FlagShort(flag.short); err != nil {
			return nil, err
		}

		flag.shortRe = flagPattern(flag.short)
	}

	return flag, nil
}

// NewHelpFlag returns the --help/-h flag used by commands to print their help.
func NewHelpFlag() *Flag {
	return Must(NewFlag("Help", "--help", Short("-h")))
}

// flagPattern matches a flag separated from other words by spaces.
func flagPattern(flag string) *regexp.Regexp {
	return regexp.MustCompile(`(^|\s)` + regexp.QuoteMeta(flag) + `($|\s)`)
}

// IsFlag returns true: flags can be anywhere in the text.
func (f *Flag) IsFlag() bool { return true }

// Long returns the long flag, like --yes.
func (f *Flag) Long() string { return f.long }

// Short returns the short flag, like -y, or an empty string.
func (f *Flag) Short() string { return f.short }

// Parse searches the entire text for the flag, and removes it from the text if
// found, leaving the spaces around it. It returns a bool and never fails.
func (f *Flag) Parse(text string) (any, string, error) {
	value, rest := f.ParseValue(text)

	return value, rest, nil
}

// ParseValue is the typed version of Parse.
func (f *Flag) ParseValue(text string) (bool, string) {
	if rest, found := removeFlag(f.longRe, text); found {
		return !f.storeFalse, rest
	}

	if f.shortRe != nil {
		if rest, found := removeFlag(f.shortRe, text); found {
			return !f.storeFalse, rest
		}
	}

	return f.storeFalse, text
}

// Help returns the argument syntax, like `Yes {--yes/-y}`.
func (f *Flag) Help() string {
	flags := []string{f.long}
	if f.short != "" {
		flags = append(flags, f.short)
	}

	return fmt.Sprintf("%s {%s}", f.name, strings.Join(flags, "/"))
}

// Example returns the long flag.
func (f *Flag) Example() string {
	return f.long
}

// removeFlag replaces the first match of the flag with the spaces around it.
func removeFlag(re *regexp.Regexp, text string) (string, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}

	spaces := text[loc[2]:loc[3]] + text[loc[4]:loc[5]]

	return text[:loc[0]] + spaces + text[loc[1]:], true
}
