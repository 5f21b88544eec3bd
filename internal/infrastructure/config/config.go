// Package config loads, validates, writes and watches the tabring configuration.
package config

// Config represents the complete configuration for tabring.
type Config struct {
	// Registry bounds the tab working set.
	Registry RegistryConfig `mapstructure:"registry" toml:"registry" json:"registry"`
	// Logging controls zerolog output.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Appearance controls terminal colors.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// RegistryConfig holds tab registry settings.
type RegistryConfig struct {
	MaxTabs int `mapstructure:"max_tabs" toml:"max_tabs" json:"max_tabs" jsonschema:"minimum=1,default=5" jsonschema_description:"Maximum number of open tabs before the least recently used one is closed"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=warn"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`

	// File output configuration. An empty File logs to stderr.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty" jsonschema_description:"Log file path; empty logs to stderr"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,default=3"`
}

// AppearanceConfig holds terminal UI preferences.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the hex colors used by the shell and TUI.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
