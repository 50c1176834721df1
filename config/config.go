// Package config loads rome's layered configuration.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (defaults.go)
//  2. System config: /etc/rome/config.toml
//  3. User config: ~/.rome/config.toml
//  4. Project config: rome.toml in the working directory or any parent
//  5. ROME_* environment variables (ROME_DISPLAY_LOCALE, ...)
package config

// Config represents the rome configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display" toml:"display" yaml:"display" json:"display"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" yaml:"output" json:"output"`
	Watch   WatchConfig   `mapstructure:"watch" toml:"watch" yaml:"watch" json:"watch"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// DisplayConfig controls how numbers are rendered for people
type DisplayConfig struct {
	Locale string `mapstructure:"locale" toml:"locale" yaml:"locale" json:"locale"` // BCP 47 tag used for digit grouping (e.g. "de-CH")
	Mode   string `mapstructure:"mode" toml:"mode" yaml:"mode" json:"mode"`         // auto, roman or arabic
}

// OutputConfig controls command output
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" yaml:"format" json:"format"` // text, json, yaml or toml
}

// WatchConfig configures `rome watch`
type WatchConfig struct {
	// 0 = re-render on every event
	DebounceMS          int `mapstructure:"debounce_ms" toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
	// 0 = unlimited
	MaxRendersPerMinute int `mapstructure:"max_renders_per_minute" toml:"max_renders_per_minute" yaml:"max_renders_per_minute" json:"max_renders_per_minute"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// Accepted values for enumerated settings.
var (
	DisplayModes  = []string{"auto", "roman", "arabic"}
	OutputFormats = []string{"text", "json", "yaml", "toml"}
)
