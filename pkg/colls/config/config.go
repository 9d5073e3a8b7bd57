package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level        string `mapstructure:"level"`
	Path         string `mapstructure:"path"`
	ConsoleLevel string `mapstructure:"console_level"`
}

// Config represents the application configuration. It is built once at
// startup, validated, and passed by value into the rendering pipeline; the
// core never reads configuration state of its own.
type Config struct {
	Format  string        `mapstructure:"format"`
	Quotes  bool          `mapstructure:"quotes"`
	Header  bool          `mapstructure:"header"`
	MaxPad  int           `mapstructure:"max_pad"`
	Color   string        `mapstructure:"color"`
	Quiet   bool          `mapstructure:"quiet"`
	List    ListConfig    `mapstructure:"list"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ListConfig configures the external listing process.
type ListConfig struct {
	Path  string   `mapstructure:"path"`
	Flags []string `mapstructure:"flags"`
}

// Validation errors.
var (
	ErrNegativeMaxPad  = errors.New("max_pad must not be negative")
	ErrInvalidColor    = errors.New("color must be auto, always, or never")
	ErrEmptyListPath   = errors.New("list.path must not be empty")
	ErrEmptyFormat     = errors.New("format must not be empty")
	ErrUnknownColumnID = errors.New("format contains no column identifiers")
)

// Validate checks the configuration for values the pipeline cannot accept.
func (c *Config) Validate() error {
	if c.MaxPad < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxPad, c.MaxPad)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
	if c.List.Path == "" {
		return ErrEmptyListPath
	}
	if c.Format == "" {
		return ErrEmptyFormat
	}
	if !strings.ContainsAny(c.Format, "1234567890*") {
		return fmt.Errorf("%w: %q", ErrUnknownColumnID, c.Format)
	}
	return nil
}

// SetDefaults registers every configuration default on the given viper
// instance, so flag-less runs and config-file runs agree.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("quotes", false)
	v.SetDefault("header", false)
	v.SetDefault("max_pad", DefaultMaxPad)
	v.SetDefault("color", DefaultColorMode)
	v.SetDefault("quiet", false)
	v.SetDefault("list.path", DefaultListPath)
	v.SetDefault("list.flags", DefaultListFlags)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "")
	v.SetDefault("logging.console_level", "")
}

// FromViper builds a validated Config from an already-populated viper
// instance, typically the one the CLI bound its flags to.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/colls/, where the config file lives.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "colls")
}
