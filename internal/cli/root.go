// Package cli provides the command-line interface for the string calculator.
package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gork-labs/strcalc/internal/config"
	"github.com/gork-labs/strcalc/pkg/calc"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app holds the state shared by subcommands once flags and config are resolved.
type app struct {
	configPath string
	format     string
	logLevel   string
	noColor    bool

	cfg    config.Config
	opts   []calc.Option
	logger *slog.Logger
	ok     *color.Color
	fail   *color.Color
}

// Execute creates and runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the strcalc command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "strcalc",
		Short:         "Sum delimited lists of integers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to strcalc.yaml (defaults to $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newSumCommand(a))
	rootCmd.AddCommand(newRuleCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flags win over the file.
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.opts = opts
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel()}))
	a.ok = color.New(color.FgGreen)
	a.fail = color.New(color.FgRed)
	if !cfg.Output.Color {
		a.ok.DisableColor()
		a.fail.DisableColor()
	}
	return nil
}
