package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/jumpkey/internal/domain/validation"
	"github.com/bnema/jumpkey/internal/logging"
)

// validateConfig rejects values that make the whole file unusable.
// Problems confined to one shortcut are reported by Warnings instead, so a
// single bad entry never disables the others.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)
	validationErrors = append(validationErrors, validateDaemon(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateJournal(config *Config) []string {
	if config.Journal.RetentionDays < 0 {
		return []string{"journal.retention_days must be non-negative"}
	}
	return nil
}

func validateDaemon(config *Config) []string {
	if config.Daemon.ReloadDebounceMs > 60_000 {
		return []string{"daemon.reload_debounce_ms must be at most 60000"}
	}
	return nil
}

// Warnings lists per-shortcut problems: bad accelerators, incomplete entries
// and duplicate ids. None of them stop the daemon.
func Warnings(config *Config) []string {
	var warnings []string
	ids := make([]string, 0, len(config.Shortcuts))

	for i, entry := range config.Shortcuts {
		cfg := entry.ToEntity(i)
		ids = append(ids, cfg.ID)
		prefix := fmt.Sprintf("shortcuts[%d] (%s)", i, cfg.ID)

		if !cfg.IsComplete() {
			warnings = append(warnings, prefix+": needs both application_to_focus and keyboard_shortcut, it will be ignored")
		}
		warnings = append(warnings, domainvalidation.ValidateAccelerator(prefix+".keyboard_shortcut", cfg.KeyboardShortcut)...)
		warnings = append(warnings, domainvalidation.ValidateApplicationID(prefix+".application_to_focus", cfg.ApplicationToFocus)...)
		warnings = append(warnings, domainvalidation.ValidateArguments(prefix+".command_line_arguments", cfg.CommandLineArguments)...)
	}

	for _, dup := range domainvalidation.DuplicateIDs(ids) {
		warnings = append(warnings, fmt.Sprintf("shortcut id %q is used more than once", dup))
	}
	return warnings
}
