// Package definition declares prefix commands in YAML or TOML files, and
// builds them into parsers. A file lists commands, each with its prefix,
// an optional name and its arguments:
//
//	commands:
//	  - prefix: "!rate"
//	    name: Rate your friends!
//	    args:
//	      - {type: user, name: User}
//	      - {type: int, name: Rating, min: 0, max: 10}
//	      - {type: flag, name: Is Public, long: --public, short: -p}
package definition

import (
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reeflective/prefix"
	"github.com/reeflective/prefix/args"
	"github.com/reeflective/prefix/internal/validation"
)

// ErrDefinition is wrapped by all errors caused by invalid definitions.
var ErrDefinition = args.ErrDefinition

// Argument types.
const (
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeText    = "text"
	TypeWord    = "word"
	TypeWords   = "words"
	TypeRest    = "rest"
	TypeRegex   = "regex"
	TypeUser    = "user"
	TypeRole    = "role"
	TypeChannel = "channel"
	TypeFlag    = "flag"
	TypeURL     = "url"
	TypeTime    = "time"
	TypeEmoji   = "emoji"
)

// File is a set of command definitions.
type File struct {
	Commands []Command `yaml:"commands" toml:"commands" validate:"required,dive"`
}

// Command is the definition of a single prefix command.
type Command struct {
	Prefix string `yaml:"prefix"         toml:"prefix"         validate:"required"`
	Name   string `yaml:"name,omitempty" toml:"name,omitempty"`
	Args   []Arg  `yaml:"args,omitempty" toml:"args,omitempty" validate:"dive"`
}

// Arg is the definition of an argument matcher. Only the fields
// relevant to its type are used, the others are ignored.
type Arg struct {
	Type string `yaml:"type" toml:"type" validate:"required,oneof=int float text word words rest regex user role channel flag url time emoji"`
	Name string `yaml:"name" toml:"name" validate:"required"`

	// Bounds of int, float and time arguments,
	// like 10 or 2.5 for numbers and 20m for times.
	Min Bound `yaml:"min,omitempty" toml:"min,omitempty"`
	Max Bound `yaml:"max,omitempty" toml:"max,omitempty"`

	// Number of words.
	Count int `yaml:"count,omitempty" toml:"count,omitempty"`

	// Regular expression, its example and the group to extract.
	Pattern string `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Example string `yaml:"example,omitempty" toml:"example,omitempty"`
	Group   int    `yaml:"group,omitempty"   toml:"group,omitempty"`

	// Flags
	Long       string `yaml:"long,omitempty"        toml:"long,omitempty"`
	Short      string `yaml:"short,omitempty"       toml:"short,omitempty"`
	StoreFalse bool   `yaml:"store_false,omitempty" toml:"store_false,omitempty"`
}

// Bound is a number or time bound, kept as written in the definition.
type Bound string

// UnmarshalYAML accepts any scalar, like 10, -2.5 or 20m.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: bound must be a number or a time", ErrDefinition, node.Line)
	}

	*b = Bound(node.Value)

	return nil
}

// UnmarshalTOML accepts integers, floats and strings.
func (b *Bound) UnmarshalTOML(value any) error {
	switch bound := value.(type) {
	case string:
		*b = Bound(bound)
	case int64:
		*b = Bound(strconv.FormatInt(bound, 10))
	case float64:
		*b = Bound(strconv.FormatFloat(bound, 'f', -1, 64))
	default:
		return fmt.Errorf("%w: bound must be a number or a time, got %T", ErrDefinition, value)
	}

	return nil
}

// Validate checks the structure of the file: all commands need a prefix,
// and all arguments a known type and a name. The arguments themselves are
// checked when building the commands.
func (f *File) Validate() error {
	return validation.Struct(f)
}

// Build builds all commands of the file, in order. The options
// are applied to all of them, after their own name.
func (f *File) Build(opts ...prefix.Option) ([]*prefix.Command, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	commands := make([]*prefix.Command, 0, len(f.Commands))

	for _, def := range f.Commands {
		cmd, err := def.Build(opts...)
		if err != nil {
			return nil, err
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

// Build builds the command and all its argument matchers.
func (c Command) Build(opts ...prefix.Option) (*prefix.Command, error) {
	matchers := make([]args.Matcher, 0, len(c.Args))

	for i, arg := range c.Args {
		m, err := arg.Matcher()
		if err != nil {
			return nil, fmt.Errorf("command '%s': argument %d: %w", c.Prefix, i+1, err)
		}

		matchers = append(matchers, m)
	}

	cmd := prefix.New(c.Prefix, append([]prefix.Option{prefix.WithName(c.Name)}, opts...)...)

	if err := cmd.Add(matchers...); err != nil {
		return nil, fmt.Errorf("command '%s': %w", c.Prefix, err)
	}

	return cmd, nil
}

// Matcher builds the argument matcher.
func (a Arg) Matcher() (args.Matcher, error) {
	switch a.Type {
	case TypeInt, TypeFloat:
		opts, err := a.numberOpts()
		if err != nil {
			return nil, err
		}

		if a.Type == TypeInt {
			return matcher(args.NewInt(a.Name, opts...))
		}

		return matcher(args.NewFloat(a.Name, opts...))
	case TypeText:
		return matcher(args.NewText(a.Name))
	case TypeWord:
		return matcher(args.NewWord(a.Name))
	case TypeWords:
		return matcher(args.NewWords(a.Name, a.Count))
	case TypeRest:
		return matcher(args.NewRest(a.Name))
	case TypeRegex:
		re, err := regexp.Compile(a.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' pattern: %w", ErrDefinition, a.Name, err)
		}

		return matcher(args.NewRegex(a.Name, re, a.Example, args.Group(a.Group)))
	case TypeUser:
		return matcher(args.NewUserMention(a.Name))
	case TypeRole:
		return matcher(args.NewRoleMention(a.Name))
	case TypeChannel:
		return matcher(args.NewChannelMention(a.Name))
	case TypeFlag:
		return matcher(args.NewFlag(a.Name, a.Long, a.flagOpts()...))
	case TypeURL:
		return matcher(args.NewURL(a.Name))
	case TypeTime:
		return matcher(args.NewTime(a.Name, a.timeOpts()...))
	case TypeEmoji:
		return matcher(args.NewEmoji(a.Name))
	default:
		return nil, fmt.Errorf("%w: '%s' has unknown type '%s'", ErrDefinition, a.Name, a.Type)
	}
}

func (a Arg) numberOpts() ([]args.NumberOption, error) {
	var opts []args.NumberOption

	for _, bound := range []struct {
		value Bound
		kind  string
		opt   func(float64) args.NumberOption
	}{
		{a.Min, "Min", args.Min},
		{a.Max, "Max", args.Max},
	} {
		if bound.value == "" {
			continue
		}

		value, err := strconv.ParseFloat(string(bound.value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s value '%s' must be a number", ErrDefinition, bound.kind, bound.value)
		}

		opts = append(opts, bound.opt(value))
	}

	return opts, nil
}

func (a Arg) timeOpts() []args.TimeOption {
	var opts []args.TimeOption

	if a.Min != "" {
		opts = append(opts, args.MinTime(string(a.Min)))
	}

	if a.Max != "" {
		opts = append(opts, args.MaxTime(string(a.Max)))
	}

	return opts
}

func (a Arg) flagOpts() []args.FlagOption {
	var opts []args.FlagOption

	if a.Short != "" {
		opts = append(opts, args.Short(a.Short))
	}

	if a.StoreFalse {
		opts = append(opts, args.StoreFalse())
	}

	return opts
}

// matcher drops the typed nil matcher returned along with an error,
// and runs the checks otherwise run when adding it to a command.
func matcher(m args.Matcher, err error) (args.Matcher, error) {
	if err != nil {
		return nil, err
	}

	if err := args.Validate(m); err != nil {
		return nil, err
	}

	return m, nil
}
