package main

import (
	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/prefix/definition"
	"github.com/reeflective/prefix/internal/config"
	"github.com/reeflective/prefix/internal/logging"
)

// bindCompletions registers the completions of the command tree.
func bindCompletions(rootCmd *cobra.Command) *carapace.Carapace {
	comps := carapace.Gen(rootCmd)

	comps.FlagCompletion(carapace.ActionMap{
		"definitions": carapace.ActionFiles(".yaml", ".yml", ".toml"),
		"env-file":    carapace.ActionFiles(),
		"log-level":   carapace.ActionValues("debug", "info", "warn", "error"),
		"log-format":  carapace.ActionValues(logging.FormatAuto, logging.FormatConsole, logging.FormatJSON),
	})

	for _, cmd := range rootCmd.Commands() {
		switch cmd.Name() {
		case "describe", "example":
			carapace.Gen(cmd).PositionalAnyCompletion(carapace.ActionCallback(completePrefixes(rootCmd)))
		case "check":
			carapace.Gen(cmd).PositionalAnyCompletion(carapace.ActionFiles(".yaml", ".yml", ".toml"))
		}
	}

	return comps
}

// completePrefixes completes the prefixes of the commands declared
// in the definitions file given on the command line, if any.
func completePrefixes(rootCmd *cobra.Command) carapace.CompletionCallback {
	return func(_ carapace.Context) carapace.Action {
		path := rootCmd.PersistentFlags().Lookup("definitions").Value.String()
		if path == "" {
			path = config.DefaultDefinitions
		}

		file, err := definition.Load(path)
		if err != nil {
			return carapace.ActionMessage(err.Error())
		}

		values := make([]string, 0, len(file.Commands)*2)
		for _, cmd := range file.Commands {
			values = append(values, cmd.Prefix, cmd.Name)
		}

		return carapace.ActionValuesDescribed(values...)
	}
}
