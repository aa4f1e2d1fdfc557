// Package config loads application settings from viper.
package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/salestax/internal/common"
	"github.com/spf13/viper"
)

// Config holds the settings for the command line driver.
type Config struct {
	Logging LoggingConfig
	Output  OutputConfig
	TUI     TUIConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// OutputConfig controls how receipts are framed on the terminal.
type OutputConfig struct {
	Styled    bool
	ShowInput bool
}

// TUIConfig controls the interactive editor.
type TUIConfig struct {
	Theme string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Styled:    true,
			ShowInput: true,
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// SetDefaults registers DefaultConfig values with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("output.styled", d.Output.Styled)
	v.SetDefault("output.show_input", d.Output.ShowInput)
	v.SetDefault("tui.theme", d.TUI.Theme)
}

// Load reads settings from v and validates them.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
		Output: OutputConfig{
			Styled:    v.GetBool("output.styled"),
			ShowInput: v.GetBool("output.show_input"),
		},
		TUI: TUIConfig{
			Theme: strings.ToLower(v.GetString("tui.theme")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting has a supported value.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format must be console or json, got %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
