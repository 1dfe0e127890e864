// Package config resolves the settings of the configreader command from
// flags, CONFIGREADER_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"configreader/internal/sectionstore"
)

// Settings controls how the command opens and prints a file.
type Settings struct {
	File          string `env:"FILE"`
	Section       string `env:"SECTION"`
	CaseSensitive bool   `env:"CASE_SENSITIVE"`
	Interpolate   bool   `env:"INTERPOLATE"`
	ExpandEnv     bool   `env:"EXPAND_ENV"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogFormat     string `env:"LOG_FORMAT"`
	JSON          bool   `env:"JSON"`

	// Defaults holds "[section.]key=value" entries added to the store
	// when the file lacks them.
	Defaults []string `env:"DEFAULTS" envSeparator:","`
}

// StoreOptions returns the store options the settings describe.
func (s Settings) StoreOptions() sectionstore.Options {
	return sectionstore.Options{
		DefaultSection: s.Section,
		CaseSensitive:  s.CaseSensitive,
		Interpolate:    s.Interpolate,
		ExpandEnv:      s.ExpandEnv,
	}
}

// Resolve layers flags over the environment over Default and validates the
// result. A field set in an earlier layer is kept; only zero fields are
// filled from later layers, so a false boolean flag cannot turn off a
// variable that is set to true. environ nil means the process environment.
func Resolve(flags Settings, environ map[string]string) (Settings, error) {
	return newBuilder().
		with(flags).
		withEnv(environ).
		with(Default()).
		build()
}

type builder struct {
	layers []Settings
	err    error
}

func newBuilder() *builder {
	return &builder{layers: make([]Settings, 0, 3)}
}

func (b *builder) with(s Settings) *builder {
	b.layers = append(b.layers, s)
	return b
}

func (b *builder) withEnv(environ map[string]string) *builder {
	s, err := FromEnv(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	return b.with(s)
}

func (b *builder) build() (Settings, error) {
	if b.err != nil {
		return Settings{}, b.err
	}
	var out Settings
	for _, layer := range b.layers {
		if err := mergo.Merge(&out, layer); err != nil {
			return Settings{}, fmt.Errorf("merging settings: %w", err)
		}
	}
	return out, Validate(out)
}
