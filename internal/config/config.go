// Package config loads the configuration of the prefixcmd tool from the
// environment, after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDefinitions is the definitions file used when none is configured.
const DefaultDefinitions = "commands.yaml"

// Config is the configuration of the prefixcmd tool.
// Command-line flags take precedence over it.
type Config struct {
	// Definitions is the path to the YAML file declaring commands.
	Definitions string `env:"PREFIXCMD_DEFINITIONS" envDefault:"commands.yaml"`

	LogLevel  string `env:"PREFIXCMD_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"PREFIXCMD_LOG_FORMAT" envDefault:"auto"`

	// NoColor disables colored output, see https://no-color.org.
	NoColor bool `env:"NO_COLOR"`

	Discord Discord `envPrefix:"DISCORD_"`
}

// Discord configures the bot run by the serve command.
type Discord struct {
	Token string `env:"TOKEN"`

	// Replies sent to a channel are limited to one every ReplyEvery,
	// with bursts of up to ReplyBurst replies.
	ReplyEvery time.Duration `env:"REPLY_EVERY" envDefault:"2s"`
	ReplyBurst int           `env:"REPLY_BURST" envDefault:"3"`
}

// Load loads the given .env files (or .env in the working directory if none)
// into the process environment, and parses the configuration from it.
// Missing .env files are ignored.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	return Parse(nil)
}

// Parse parses the configuration from the given environment,
// or from the process environment if environ is nil.
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Discord.ReplyBurst < 1 {
		return nil, fmt.Errorf("invalid configuration: DISCORD_REPLY_BURST must be at least 1, got %d", cfg.Discord.ReplyBurst)
	}

	return cfg, nil
}
