package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every settings variable name.
const EnvPrefix = "CONFIGREADER_"

// Environment variable names for configreader settings.
const (
	EnvFile          = EnvPrefix + "FILE"           // Path to the INI file
	EnvSection       = EnvPrefix + "SECTION"        // Default section name
	EnvCaseSensitive = EnvPrefix + "CASE_SENSITIVE" // Keep key case ("1" or "true")
	EnvInterpolate   = EnvPrefix + "INTERPOLATE"    // Expand %(key)s references
	EnvExpandEnv     = EnvPrefix + "EXPAND_ENV"     // Expand $VAR references
	EnvLogLevel      = EnvPrefix + "LOG_LEVEL"      // debug, info, warn, error
	EnvLogFormat     = EnvPrefix + "LOG_FORMAT"     // text or json
	EnvJSON          = EnvPrefix + "JSON"           // Enable JSON output
	EnvDefaults      = EnvPrefix + "DEFAULTS"       // Comma-separated [section.]key=value
)

// FromEnv reads settings from CONFIGREADER_* variables. environ nil means
// the process environment.
func FromEnv(environ map[string]string) (Settings, error) {
	var s Settings
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, fmt.Errorf("reading %s* variables: %w", EnvPrefix, err)
	}
	return s, nil
}
