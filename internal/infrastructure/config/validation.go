package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tiler/internal/logging"
)

// Validate normalizes and checks a configuration that was not loaded by a
// Manager, such as the tiling overrides of a scenario.
func Validate(config *Config) error {
	normalizeConfig(config)
	return validateConfig(config)
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTiling(config)...)
	validationErrors = append(validationErrors, validateDesktops(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSnapshots(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateTiling(config *Config) []string {
	var validationErrors []string
	if config.Tiling.WindowPadding < 0 || config.Tiling.WindowPadding > MaxPadding {
		validationErrors = append(validationErrors, fmt.Sprintf("tiling.window_padding must be between 0 and %d", MaxPadding))
	}
	if config.Tiling.DefaultStacks < 0 || config.Tiling.DefaultStacks > MaxStacks {
		validationErrors = append(validationErrors, fmt.Sprintf("tiling.default_stacks must be between 0 and %d", MaxStacks))
	}
	return validationErrors
}

func validateDesktops(config *Config) []string {
	var validationErrors []string
	seen := make(map[[3]int]bool, len(config.Tiling.Desktops))
	for i, d := range config.Tiling.Desktops {
		prefix := fmt.Sprintf("tiling.desktops[%d]", i)
		if d.X < 0 || d.Y < 0 || d.Zone < 0 {
			validationErrors = append(validationErrors, prefix+": x, y and zone must be non-negative")
		}
		if d.Stacks < 0 || d.Stacks > MaxStacks {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.stacks must be between 0 and %d", prefix, MaxStacks))
		}
		if d.Padding != nil && (*d.Padding < UnsetPadding || *d.Padding > MaxPadding) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.padding must be -1 or between 0 and %d", prefix, MaxPadding))
		}
		key := [3]int{d.X, d.Y, d.Zone}
		if seen[key] {
			validationErrors = append(validationErrors, fmt.Sprintf("%s duplicates desktop (%d,%d,%d)", prefix, d.X, d.Y, d.Zone))
		}
		seen[key] = true
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateSnapshots(config *Config) []string {
	if config.Snapshots.IntervalMs < 0 {
		return []string{"snapshots.interval_ms must be non-negative"}
	}
	return nil
}
