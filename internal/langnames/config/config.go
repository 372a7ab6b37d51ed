// Package config provides langnames CLI configuration management.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	appconfig "github.com/RobinCoderZhao/langnames/pkg/config"
)

// FileName is the configuration file looked up in the working directory
// and then in the home directory.
const FileName = ".langnames.yaml"

// Config is the main configuration for the langnames binaries.
type Config struct {
	Log LogConfig `yaml:"log"`
}

// LogConfig controls the slog logger writing to stderr.
type LogConfig struct {
	Level  string `yaml:"level" env:"LANGNAMES_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"LANGNAMES_LOG_FORMAT"` // text, json
}

// DefaultConfig keeps stderr limited to the tool's own diagnostics.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads the configuration from ./.langnames.yaml or ~/.langnames.yaml,
// whichever is found first, on top of DefaultConfig.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, FileName))
	}

	if _, err := appconfig.LoadFirst(&cfg, paths...); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// NewLogger builds the logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("config: invalid log level %q: %w", c.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: invalid log format %q (want text or json)", c.Format)
	}
}

// Logger loads the configuration and builds the logger it describes. A
// configuration that cannot be read or used is reported through a logger
// built from DefaultConfig, which is then returned.
func Logger(w io.Writer) *slog.Logger {
	cfg, err := Load()
	if err == nil {
		logger, lerr := cfg.Log.NewLogger(w)
		if lerr == nil {
			return logger
		}
		err = lerr
	}

	logger, _ := DefaultConfig().Log.NewLogger(w)
	logger.Warn("ignoring langnames configuration, using defaults", "error", err)
	return logger
}
