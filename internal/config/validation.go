package config

import (
	"fmt"
	"strings"
)

// Validate reports every invalid setting in c.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Power.Backend {
	case "auto", "logind", "portal", "sysfs", "caffeinate", "windows", "memory":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"power.backend must be one of: auto, logind, portal, sysfs, caffeinate, windows, memory (got: %s)",
			config.Power.Backend))
	}

	if config.Power.DefaultTimeout < 0 {
		validationErrors = append(validationErrors, "power.default_timeout must be non-negative")
	}

	if config.Journal.RetentionDays < 0 {
		validationErrors = append(validationErrors, "journal.retention_days must be non-negative")
	}

	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
