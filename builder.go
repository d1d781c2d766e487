package prefix

import (
	"regexp"
	"slices"

	"github.com/reeflective/prefix/args"
)

// Builder declares a command by chaining matchers, like
//
//	values, err := prefix.Cmd("!rate").User("User").Int("Rating", args.Min(0), args.Max(10)).Parse(text)
//
// A Builder is an immutable value: each method returns a new one, so that a
// partial declaration can be shared and extended by several commands. Invalid
// definitions are reported by Build and Parse.
type Builder struct {
	prefix   string
	opts     []Option
	matchers []args.Matcher
	err      error
}

// Cmd starts the declaration of a command matching messages starting with prefix.
func Cmd(prefix string, opts ...Option) Builder {
	return Builder{prefix: prefix, opts: opts}
}

// Named sets the name of the command, shown in its help title.
func (b Builder) Named(name string) Builder {
	b.opts = append(slices.Clone(b.opts), WithName(name))

	return b
}

// Add adds already constructed matchers, including custom ones.
func (b Builder) Add(matchers ...args.Matcher) Builder {
	if b.err != nil {
		return b
	}

	b.matchers = append(slices.Clone(b.matchers), matchers...)

	return b
}

// Int adds an integer matcher, see args.NewInt.
func (b Builder) Int(name string, opts ...args.NumberOption) Builder {
	return b.add(args.NewInt(name, opts...))
}

// Float adds a float matcher, see args.NewFloat.
func (b Builder) Float(name string, opts ...args.NumberOption) Builder {
	return b.add(args.NewFloat(name, opts...))
}

// Text adds a text matcher, see args.NewText.
func (b Builder) Text(name string) Builder {
	return b.add(args.NewText(name))
}

// Word adds a single word matcher, see args.NewWord.
func (b Builder) Word(name string) Builder {
	return b.add(args.NewWord(name))
}

// Words adds a matcher for count words, see args.NewWords.
func (b Builder) Words(name string, count int) Builder {
	return b.add(args.NewWords(name, count))
}

// Rest adds a matcher for all the remaining text, see args.NewRest.
// It must be the last positional matcher.
func (b Builder) Rest(name string) Builder {
	return b.add(args.NewRest(name))
}

// Regex adds a regular expression matcher, see args.NewRegex.
func (b Builder) Regex(name string, re *regexp.Regexp, example string, opts ...args.RegexOption) Builder {
	return b.add(args.NewRegex(name, re, example, opts...))
}

// User adds a user mention matcher.
func (b Builder) User(name string) Builder {
	return b.add(args.NewUserMention(name))
}

// Role adds a role mention matcher.
func (b Builder) Role(name string) Builder {
	return b.add(args.NewRoleMention(name))
}

// Channel adds a channel mention matcher.
func (b Builder) Channel(name string) Builder {
	return b.add(args.NewChannelMention(name))
}

// Flag adds a flag matcher, see args.NewFlag.
func (b Builder) Flag(name, long string, opts ...args.FlagOption) Builder {
	return b.add(args.NewFlag(name, long, opts...))
}

// FlagTrue adds a flag yielding true when present.
// The short flag is optional and ignored when empty.
func (b Builder) FlagTrue(name, long, short string) Builder {
	return b.Flag(name, long, shortFlag(short)...)
}

// FlagFalse adds a flag yielding false when present.
// The short flag is optional and ignored when empty.
func (b Builder) FlagFalse(name, long, short string) Builder {
	return b.Flag(name, long, append(shortFlag(short), args.StoreFalse())...)
}

// URL adds a url matcher.
func (b Builder) URL(name string) Builder {
	return b.add(args.NewURL(name))
}

// Time adds a time matcher, see args.NewTime.
func (b Builder) Time(name string, opts ...args.TimeOption) Builder {
	return b.add(args.NewTime(name, opts...))
}

// Emoji adds an emoji matcher.
func (b Builder) Emoji(name string) Builder {
	return b.add(args.NewEmoji(name))
}

// Build returns the declared command, or the first definition error
// encountered, as an *Error of type ErrDefinition.
func (b Builder) Build() (*Command, error) {
	if b.err != nil {
		return nil, wrapError(ErrDefinition, b.err)
	}

	cmd := New(b.prefix, b.opts...)
	if err := cmd.Add(b.matchers...); err != nil {
		return nil, err
	}

	return cmd, nil
}

// MustBuild is like Build but panics if the command definition is invalid.
func (b Builder) MustBuild() *Command {
	cmd, err := b.Build()
	if err != nil {
		panic(err)
	}

	return cmd
}

// Parse builds the command and parses the message, see Command.Parse.
func (b Builder) Parse(text string) ([]any, error) {
	cmd, err := b.Build()
	if err != nil {
		return nil, err
	}

	return cmd.Parse(text)
}

// Help returns the help of the command, see Command.Help.
// It panics if the command definition is invalid.
func (b Builder) Help() string {
	return b.MustBuild().Help()
}

// Example returns an example of the command, see Command.Example.
// It panics if the command definition is invalid.
func (b Builder) Example() string {
	return b.MustBuild().Example()
}

// add appends a matcher returned by one of the args constructors,
// or records its error if it is the first definition error.
func (b Builder) add(matcher args.Matcher, err error) Builder {
	if b.err != nil {
		return b
	}

	if err != nil {
		b.err = err

		return b
	}

	b.matchers = append(slices.Clone(b.matchers), matcher)

	return b
}

func shortFlag(short string) []args.FlagOption {
	if short == "" {
		return nil
	}

	return []args.FlagOption{args.Short(short)}
}
