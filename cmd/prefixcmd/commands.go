package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reeflective/prefix"
	"github.com/reeflective/prefix/definition"
	"github.com/reeflective/prefix/internal/config"
	"github.com/reeflective/prefix/internal/logging"
)

// errNoMatch is returned when no command of the definitions matches a message.
var errNoMatch = errors.New("no command matches the message")

// maxConcurrentChecks limits the number of definition files checked at once.
const maxConcurrentChecks = 4

// app holds the configuration shared by all subcommands,
// loaded before any of them runs.
type app struct {
	envFiles []string
	cfg      *config.Config
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "prefixcmd",
		Short:        "Try chat-bot prefix commands against messages",
		SilenceUsage: true,
		// Errors are printed by main.
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("definitions", "d", "", "YAML or TOML file declaring commands ($PREFIXCMD_DEFINITIONS)")
	flags.String("log-level", "", "log level: debug, info, warn or error ($PREFIXCMD_LOG_LEVEL)")
	flags.String("log-format", "", "log format: auto, console or json ($PREFIXCMD_LOG_FORMAT)")
	flags.Bool("no-color", false, "disable colored output ($NO_COLOR)")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from these files (default .env)")

	rootCmd.AddCommand(
		newParseCmd(a),
		newDescribeCmd(a),
		newExampleCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// load reads the configuration from the environment, and overrides
// it with the flags that have been set on the command line.
func (a *app) load(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	override := func(name string, value *string) {
		if flags.Changed(name) {
			*value, _ = flags.GetString(name)
		}
	}

	override("definitions", &cfg.Definitions)
	override("log-level", &cfg.LogLevel)
	override("log-format", &cfg.LogFormat)

	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger

	return nil
}

// commands builds the commands declared in the definition file.
func (a *app) commands() ([]*prefix.Command, error) {
	file, err := definition.Load(a.cfg.Definitions)
	if err != nil {
		return nil, err
	}

	commands, err := file.Build(prefix.WithLogger(a.log))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Definitions, err)
	}

	a.log.Debug("Loaded command definitions",
		zap.String("path", a.cfg.Definitions), zap.Int("commands", len(commands)))

	return commands, nil
}

// selected returns the commands whose prefix or name is in the list,
// or all of them if the list is empty.
func (a *app) selected(names []string) ([]*prefix.Command, error) {
	commands, err := a.commands()
	if err != nil || len(names) == 0 {
		return commands, err
	}

	selected := make([]*prefix.Command, 0, len(names))

	for _, name := range names {
		cmd := find(commands, name)
		if cmd == nil {
			return nil, fmt.Errorf("no command with prefix or name '%s'", name)
		}

		selected = append(selected, cmd)
	}

	return selected, nil
}

func find(commands []*prefix.Command, name string) *prefix.Command {
	for _, cmd := range commands {
		if cmd.Prefix() == name || (cmd.Name() != "" && cmd.Name() == name) {
			return cmd
		}
	}

	return nil
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse message...",
		Short: "Parse a message with the first command matching it",
		Long: `Parse a message with the first command whose prefix it starts with,
and print the values found for each argument. The words of the message are
joined with spaces: use -- before messages containing flags.`,
		Example: `  prefixcmd parse '!rate @someone 7'
  prefixcmd parse -- !rate --help`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := a.commands()
			if err != nil {
				return err
			}

			return parse(cmd.OutOrStdout(), commands, strings.Join(args, " "))
		},
	}
}

// parse parses the message with the first matching command. Help requests
// are printed, parsing errors are returned.
func parse(out io.Writer, commands []*prefix.Command, message string) error {
	for _, cmd := range commands {
		values, err := cmd.Parse(message)

		switch {
		case prefix.WroteHelp(err):
			fmt.Fprintln(out, err)
			return nil
		case err != nil:
			return err
		case values == nil:
			continue
		}

		fmt.Fprintln(out, color.GreenString("Matched"), cmd.Title())

		for _, field := range fields(cmd, values) {
			fmt.Fprintf(out, "  %s %s\n", color.CyanString("%-*s", field.width, field.name), field.value)
		}

		return nil
	}

	return errNoMatch
}

type field struct {
	name  string
	value string
	width int
}

// fields pairs the values parsed by a command with the names of their matchers.
func fields(cmd *prefix.Command, values []any) []field {
	matchers := cmd.Matchers()
	fields := make([]field, len(matchers))
	width := 0

	for i, m := range matchers {
		width = max(width, len(m.Name()))
		fields[i] = field{name: m.Name(), value: fmt.Sprintf("%v (%T)", values[i], values[i])}
	}

	for i := range fields {
		fields[i].width = width
	}

	return fields
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [prefix...]",
		Short: "Print the help of commands, as sent to chat users",
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := a.selected(args)
			if err != nil {
				return err
			}

			for i, c := range commands {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}

				if err := c.WriteHelp(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [prefix...]",
		Short: "Print an example message for commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			commands, err := a.selected(args)
			if err != nil {
				return err
			}

			for _, c := range commands {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Trim(c.Example(), "`"))
			}

			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check that definition files declare valid commands",
		Long: `Check that definition files declare valid commands, and that the example
of each command is parsed by the command itself. Without arguments, the
definitions file of the configuration is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{a.cfg.Definitions}
			}

			return check(cmd.OutOrStdout(), args)
		},
	}
}

// check checks all files concurrently and reports each of them.
func check(out io.Writer, files []string) error {
	results := make([]error, len(files))
	counts := make([]int, len(files))

	var group errgroup.Group
	group.SetLimit(maxConcurrentChecks)

	for i, path := range files {
		group.Go(func() error {
			counts[i], results[i] = checkFile(path)
			return nil
		})
	}

	_ = group.Wait()

	failed := 0

	for i, path := range files {
		if results[i] != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString("FAIL"), path, results[i])

			continue
		}

		fmt.Fprintf(out, "%s %s (%d commands)\n", color.GreenString("ok  "), path, counts[i])
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d definition files are invalid", failed, len(files))
	}

	return nil
}

func checkFile(path string) (int, error) {
	file, err := definition.Load(path)
	if err != nil {
		return 0, err
	}

	commands, err := file.Build()
	if err != nil {
		return 0, err
	}

	for _, cmd := range commands {
		example := strings.Trim(cmd.Example(), "`")

		if _, err := cmd.Parse(example); err != nil {
			return 0, fmt.Errorf("command '%s': example '%s': %w", cmd.Prefix(), example, err)
		}
	}

	return len(commands), nil
}
