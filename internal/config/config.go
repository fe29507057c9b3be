// Package config loads the strcalc configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gork-labs/strcalc/pkg/calc"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no --config flag is given.
const EnvConfigPath = "STRCALC_CONFIG"

// RuleConfig selects the validator for one rule kind. Tag, when set, takes
// precedence over Validator and is a go-playground/validator tag.
type RuleConfig struct {
	Validator string `yaml:"validator"`
	Tag       string `yaml:"tag"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json yaml"`
	Color  bool   `yaml:"color"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Config is the root of the configuration file.
type Config struct {
	Rules struct {
		Basic  RuleConfig `yaml:"basic"`
		Custom RuleConfig `yaml:"custom"`
	} `yaml:"rules"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Rules.Basic.Validator = "non_negative"
	c.Rules.Custom.Validator = "non_negative"
	c.Output.Format = "text"
	c.Output.Color = true
	c.Log.Level = "info"
	return c
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values and that every named validator is registered.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Options(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options resolves the rule configuration into calc options.
func (c Config) Options() ([]calc.Option, error) {
	rules := []struct {
		kind calc.Kind
		cfg  RuleConfig
	}{
		{calc.KindBasic, c.Rules.Basic},
		{calc.KindCustom, c.Rules.Custom},
	}

	opts := make([]calc.Option, 0, len(rules))
	for _, r := range rules {
		v, err := resolveValidator(r.cfg)
		if err != nil {
			return nil, fmt.Errorf("rules.%s: %w", r.kind, err)
		}
		if v != nil {
			opts = append(opts, calc.WithValidator(r.kind, v))
		}
	}
	return opts, nil
}

func resolveValidator(rc RuleConfig) (calc.Validator, error) {
	if strings.TrimSpace(rc.Tag) != "" {
		return calc.TagValidator(rc.Tag)
	}
	if rc.Validator == "" {
		return nil, nil
	}
	v, ok := calc.LookupValidator(rc.Validator)
	if !ok {
		return nil, fmt.Errorf("unknown validator %q", rc.Validator)
	}
	return v, nil
}

// LogLevel converts Log.Level to a slog level.
func (c Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
