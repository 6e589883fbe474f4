package tui

import (
	"log/slog"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Logger     *slog.Logger
	Thresholds analysis.Thresholds
	Width      int
	Height     int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Logger:     slog.Default(),
		Thresholds: analysis.DefaultThresholds(),
		Width:      80,
		Height:     24,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithThresholds sets the weather categorization bands.
func WithThresholds(t analysis.Thresholds) Option {
	return func(c *Config) {
		c.Thresholds = t
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
