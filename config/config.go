// Package config loads settings for the inspect command.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables prefixed with PRETTY_ (PRETTY_BREAK_LENGTH, PRETTY_LOG_LEVEL)
//  2. YAML config file
//  3. Defaults
//
// Command line flags are applied on top by the caller.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/pretty-debug/errors"
)

const (
	// EnvPrefix is stripped from environment variable names.
	EnvPrefix = "PRETTY_"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config holds the inspect command settings.
type Config struct {
	// BreakLength is the preferred line width. Zero means the terminal
	// width, or 80 when output is not a terminal.
	BreakLength int `koanf:"break_length"`

	// Lines treats every non-blank input line as a separate document.
	Lines bool `koanf:"lines"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // console or json
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path, when path is non-empty, then applies
// environment overrides, defaults and validation.
func Load(path string) (*Config, error) {
	var content []byte
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.IO(errors.PhaseConfig, "open "+path, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, errors.IO(errors.PhaseConfig, "stat "+path, err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Detail("config file %s is %d bytes, limit is %d", path, info.Size(), maxConfigFileSize).
				Build()
		}

		content, err = io.ReadAll(f)
		if err != nil {
			return nil, errors.IO(errors.PhaseConfig, "read "+path, err)
		}
	}
	return LoadBytes(content)
}

// LoadBytes is Load for YAML already in memory. Empty content is allowed.
func LoadBytes(content []byte) (*Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "parse config yaml")
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindTypeMismatch, err, "unmarshal config")
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps PRETTY_LOG_LEVEL to log.level and PRETTY_BREAK_LENGTH to
// break_length.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.BreakLength < 0 {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("break_length").
			Detail("must not be negative, got %d", c.BreakLength).
			Build()
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log", "level").
			Cause(err).
			Build()
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log", "format").
			Detail("want console or json, got %q", c.Log.Format).
			Build()
	}
	return nil
}

// ZapLevel returns the parsed log level.
func (c *Config) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}
