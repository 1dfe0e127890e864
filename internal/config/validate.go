package config

import (
	"fmt"
	"strings"

	"configreader/internal/logger"
	"configreader/internal/sectionstore"
)

// Validate checks every field of s. It returns an error describing every
// invalid value found, or nil if all values are valid.
func Validate(s Settings) error {
	var errs []string

	if strings.TrimSpace(s.File) == "" {
		errs = append(errs, "file: must not be empty")
	}
	if err := sectionstore.ValidateSectionName(s.Section); err != nil {
		errs = append(errs, fmt.Sprintf("section: %v", err))
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf(
			"log level: invalid value %q (allowed: debug, info, warn, error, disabled)", s.LogLevel))
	}
	switch s.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Sprintf(
			"log format: invalid value %q (allowed: %s, %s)", s.LogFormat, LogFormatText, LogFormatJSON))
	}
	if _, err := s.SeedValues(); err != nil {
		errs = append(errs, fmt.Sprintf("defaults: %v", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalidSettings, strings.Join(errs, "\n  "))
}
