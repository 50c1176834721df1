package config

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultLocale     = "en"
	DefaultMode       = "auto"
	DefaultFormat     = "text"
	DefaultDebounceMS = 200
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("display.locale", DefaultLocale)
	v.SetDefault("display.mode", DefaultMode)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
	v.SetDefault("watch.max_renders_per_minute", 0)
	v.SetDefault("log.json", false)
}

// GetLocale returns the configured display locale, or DefaultLocale
func (c *Config) GetLocale() string {
	if c.Display.Locale == "" {
		return DefaultLocale
	}
	return c.Display.Locale
}

// GetMode returns the configured display mode, or DefaultMode
func (c *Config) GetMode() string {
	if c.Display.Mode == "" {
		return DefaultMode
	}
	return c.Display.Mode
}

// GetFormat returns the configured output format, or DefaultFormat
func (c *Config) GetFormat() string {
	if c.Output.Format == "" {
		return DefaultFormat
	}
	return c.Output.Format
}
