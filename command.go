// Package prefix parses chat messages sent to bot "prefix commands", like
// "!rate @user 10 --public", into typed values.
//
// A Command is bound to a prefix literal and holds an ordered list of argument
// matchers (see the args subpackage). Each matcher consumes its value from the
// text remaining after the previous ones, in registration order. Flags are the
// exception: they can be written anywhere in the message, and are thus always
// extracted before all other matchers. Values are nonetheless returned in the
// order in which matchers were registered.
//
// When a message cannot be parsed, the returned error carries a message that
// can be sent back as is to the user, describing the failing argument and how
// to request the command help.
package prefix

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/reeflective/prefix/args"
)

// Command parses messages starting with a given prefix into typed values.
// Once all its matchers are added, a command can be used to parse messages
// concurrently: it is never mutated when parsing.
type Command struct {
	prefix   string
	name     string
	matchers []args.Matcher
	help     *args.Flag
	log      *zap.Logger
}

// New returns a command matching messages starting with prefix, like "!cmd".
func New(prefix string, opts ...Option) *Command {
	o := defOpts().apply(opts...)

	return &Command{
		prefix: prefix,
		name:   o.name,
		help:   o.help,
		log:    o.logger.With(zap.String("command", prefix)),
	}
}

// Prefix returns the prefix literal of the command.
func (c *Command) Prefix() string { return c.prefix }

// Name returns the name of the command, if any.
func (c *Command) Name() string { return c.name }

// Matchers returns the matchers of the command, in registration order.
func (c *Command) Matchers() []args.Matcher {
	return slices.Clone(c.matchers)
}

// Add appends matchers to the command. Each of them must pass its own
// definition checks (see args.Validate), and all positional matchers
// of the command must accept their new positions: for instance, no
// positional matcher can be added after a Rest one.
//
// If any check fails, none of the matchers are added, and
// the error is an *Error of type ErrDefinition.
func (c *Command) Add(matchers ...args.Matcher) error {
	for _, m := range matchers {
		if err := args.Validate(m); err != nil {
			return wrapError(ErrDefinition, err)
		}
	}

	all := append(slices.Clone(c.matchers), matchers...)

	positionals := slices.DeleteFunc(slices.Clone(all), args.IsFlag)
	for i, m := range positionals {
		if err := m.ValidatePosition(i, len(positionals)); err != nil {
			return wrapError(ErrDefinition, err)
		}
	}

	c.matchers = all

	for _, m := range matchers {
		c.log.Debug("Added matcher", zap.String("matcher", m.Name()), zap.String("help", m.Help()))
	}

	return nil
}

// Parse parses a message into the values of all matchers, in the order they
// were added. It returns nil values and a nil error if the message does not
// start with the command prefix.
//
// If the help flag is found anywhere in the message, the returned error is of
// type ErrHelp and contains the command help. If a matcher cannot find its
// value, the error is of type ErrMatch and contains a message describing the
// failure to the user. Use Message to get the text to reply with.
func (c *Command) Parse(text string) (values []any, err error) {
	if !strings.HasPrefix(text, c.prefix) {
		return nil, nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Matcher panicked", zap.Any("panic", r), zap.String("text", text))
			values, err = nil, newErrorf(ErrUnknown, "Could not parse the command: %v. %s", r, c.helpHint())
		}
	}()

	if help, _ := c.help.ParseValue(text); help {
		return nil, newError(ErrHelp, c.Help())
	}

	remaining := strings.TrimSpace(strings.TrimPrefix(text, c.prefix))
	values = make([]any, len(c.matchers))

	for _, index := range c.order() {
		m := c.matchers[index]

		value, rest, matchErr := m.Parse(remaining)
		if matchErr != nil {
			c.log.Debug("Matcher failed", zap.String("matcher", m.Name()), zap.String("text", remaining), zap.Error(matchErr))

			return nil, c.matchError(m, matchErr)
		}

		values[index] = value
		remaining = rest
	}

	return values, nil
}

// order returns the indexes of the matchers in processing order:
// all flags first, then all positionals, each in registration order.
func (c *Command) order() []int {
	order := make([]int, 0, len(c.matchers))

	for i, m := range c.matchers {
		if args.IsFlag(m) {
			order = append(order, i)
		}
	}

	for i, m := range c.matchers {
		if !args.IsFlag(m) {
			order = append(order, i)
		}
	}

	return order
}

// helpHint tells users how to request the command help.
func (c *Command) helpHint() string {
	return fmt.Sprintf("Type `%s %s` for info.", c.prefix, c.help.Long())
}
