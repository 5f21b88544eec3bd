package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/tabring/internal/domain/validation"
	"github.com/bnema/tabring/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateRegistry(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks cfg the same way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateRegistry(config *Config) []string {
	if config.Registry.MaxTabs < 1 {
		return []string{fmt.Sprintf("registry.max_tabs must be at least 1 (got: %d)", config.Registry.MaxTabs)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !logging.ValidLevel(config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidateHexColors("appearance.palette",
		domainvalidation.ColorField{Name: "background", Value: p.Background},
		domainvalidation.ColorField{Name: "surface", Value: p.Surface},
		domainvalidation.ColorField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.ColorField{Name: "text", Value: p.Text},
		domainvalidation.ColorField{Name: "muted", Value: p.Muted},
		domainvalidation.ColorField{Name: "accent", Value: p.Accent},
		domainvalidation.ColorField{Name: "border", Value: p.Border},
	)
}
