package prefix

import (
	"go.uber.org/zap"

	"github.com/reeflective/prefix/args"
)

// Option is a functional option for configuring a command.
type Option func(o *opts)

type opts struct {
	name   string
	logger *zap.Logger
	help   *args.Flag
}

func (o opts) apply(optFuncs ...Option) opts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

func defOpts() opts {
	return opts{
		logger: zap.NewNop(),
		help:   args.NewHelpFlag(),
	}
}

// WithName sets the name of the command, shown in its help title.
func WithName(name string) Option {
	return func(o *opts) { o.name = name }
}

// WithLogger sets the logger used to trace matcher registrations
// and parsing failures, at debug level. Commands do not log by default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *opts) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHelpFlag replaces the --help/-h flag used to request the command help.
func WithHelpFlag(flag *args.Flag) Option {
	return func(o *opts) {
		if flag != nil {
			o.help = flag
		}
	}
}
