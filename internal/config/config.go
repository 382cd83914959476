// Package config holds the widget's runtime settings.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// Theme names one of the built-in color themes.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeNeon    Theme = "neon"
	ThemeMono    Theme = "mono"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeClassic, ThemeNeon, ThemeMono:
		return true
	}
	return false
}

// Config is the complete set of settings.
type Config struct {
	// Lang is a BCP 47 tag choosing the UI language.
	Lang      string    `mapstructure:"lang"`
	Theme     Theme     `mapstructure:"theme"`
	AltScreen bool      `mapstructure:"alt_screen"`
	CharLimit int       `mapstructure:"char_limit"`
	Log       LogConfig `mapstructure:"log"`
}

// LogConfig configures the log sink. The terminal belongs to the UI, so logs
// only go somewhere when File is set.
type LogConfig struct {
	File  string    `mapstructure:"file"`
	Level log.Level `mapstructure:"level"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() *Config {
	return &Config{
		Lang:      "en",
		Theme:     ThemeClassic,
		AltScreen: true,
		CharLimit: 200,
		Log: LogConfig{
			Level: log.InfoLevel,
		},
	}
}

// Validate checks the values that cannot be checked while decoding.
func (c *Config) Validate() error {
	var errs []error
	if _, err := language.Parse(c.Lang); err != nil {
		errs = append(errs, fmt.Errorf("lang %q: %w", c.Lang, err))
	}
	if !c.Theme.Valid() {
		errs = append(errs, fmt.Errorf("theme %q: must be one of classic, neon, mono", c.Theme))
	}
	if c.CharLimit <= 0 {
		errs = append(errs, fmt.Errorf("char_limit must be positive, got %d", c.CharLimit))
	}
	return errors.Join(errs...)
}
