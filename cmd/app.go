// Package cmd implements the CLI application to compute capital gains from brokerage statements.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/capgains"
	"github.com/etnz/capgains/alpaca"
	"github.com/etnz/capgains/robinhood"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// Environment variables read when the matching flag is not set.
// A .env file in the working directory is loaded first, without overriding the environment.
const (
	EnvInputs   = "CGT_INPUTS"
	EnvOutputs  = "CGT_OUTPUTS"
	EnvSource   = "CGT_SOURCE"
	EnvLogLevel = "CGT_LOG_LEVEL"
)

// Sources of statements.
const (
	SourceRobinhood = "robinhood"
	SourceAlpaca    = "alpaca"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inputsFlag = flag.String("i", "", "Directory of statement files (default $"+EnvInputs+", $INPUTS or \"inputs\")")
var outputsFlag = flag.String("o", "", "Directory for the CSV reports (default $"+EnvOutputs+", $OUTPUTS or \"outputs\")")
var sourceFlag = flag.String("source", "", "Statement format: robinhood or alpaca (default $"+EnvSource+" or robinhood)")
var logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error (default $"+EnvLogLevel+" or warn)")

// Config is the resolved configuration of a run.
type Config struct {
	Inputs   string
	Outputs  string
	Source   string
	LogLevel zerolog.Level
}

// LoadConfig loads the .env file if any, and resolves the configuration from flags and environment.
func LoadConfig() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	flags := map[string]string{
		EnvInputs:   *inputsFlag,
		EnvOutputs:  *outputsFlag,
		EnvSource:   *sourceFlag,
		EnvLogLevel: *logLevelFlag,
	}
	return resolveConfig(flags, os.Getenv)
}

// loadDotEnv loads the variables of the named file into the environment.
// A missing file is not an error, a malformed one is.
func loadDotEnv(name string) error {
	if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", name, err)
	}
	return nil
}

// resolveConfig picks, for each setting, the flag value, then the environment, then the default.
func resolveConfig(flags map[string]string, getenv func(string) string) (Config, error) {
	lookup := func(key string, fallbacks ...string) string {
		if v := strings.TrimSpace(flags[key]); v != "" {
			return v
		}
		for _, k := range append([]string{key}, fallbacks...) {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				return v
			}
		}
		return ""
	}
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	cfg := Config{
		Inputs:  orDefault(lookup(EnvInputs, "INPUTS"), "inputs"),
		Outputs: orDefault(lookup(EnvOutputs, "OUTPUTS"), "outputs"),
		Source:  strings.ToLower(orDefault(lookup(EnvSource), SourceRobinhood)),
	}
	switch cfg.Source {
	case SourceRobinhood, SourceAlpaca:
	default:
		return cfg, fmt.Errorf("unknown source %q, want %s or %s", cfg.Source, SourceRobinhood, SourceAlpaca)
	}
	level, err := zerolog.ParseLevel(strings.ToLower(orDefault(lookup(EnvLogLevel), "warn")))
	if err != nil {
		return cfg, fmt.Errorf("invalid log level: %w", err)
	}
	cfg.LogLevel = level
	return cfg, nil
}

// Decoder returns the statement decoder of the configured source.
func (c Config) Decoder() capgains.StatementDecoder {
	if c.Source == SourceAlpaca {
		return alpaca.Decoder{}
	}
	return robinhood.Decoder{}
}

// Logger returns a console logger writing to stderr.
func (c Config) Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
}

// loadFeed resolves the configuration and loads the merged transaction feed.
func loadFeed(ctx context.Context) (Config, []capgains.Transaction, zerolog.Logger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return cfg, nil, zerolog.Nop(), err
	}
	logger := cfg.Logger()
	txs, err := capgains.LoadStatements(ctx, cfg.Inputs, cfg.Decoder())
	if err != nil {
		return cfg, nil, logger, err
	}
	logger.Debug().Str("source", cfg.Source).Str("inputs", cfg.Inputs).Int("transactions", len(txs)).Msg("loaded statements")
	return cfg, txs, logger, nil
}

// printMarkdown renders markdown for the terminal, falling back to raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
