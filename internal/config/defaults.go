package config

import "configreader/internal/sectionstore"

// Default file, section and log settings.
const (
	DefaultFile      = "settings.ini"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatText
)

// Log formats accepted in Settings.LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Default returns the settings used when neither a flag nor a variable sets
// a field.
func Default() Settings {
	return Settings{
		File:      DefaultFile,
		Section:   sectionstore.DefaultSectionName,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}
