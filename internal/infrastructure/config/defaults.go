package config

import "github.com/bnema/tabring/internal/domain/registry"

const (
	defaultLogLevel   = "warn"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			MaxTabs: registry.DefaultMaxTabs,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}
