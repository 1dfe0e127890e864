// Package envbridge copies store entries to and from an environment.
package envbridge

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"configreader/internal/sectionstore"
)

// Namespace is a writable set of environment variables.
type Namespace interface {
	Setenv(key, value string) error
	// Environ returns the variables as "KEY=value" strings.
	Environ() []string
}

// OSEnv is the environment of the current process.
type OSEnv struct{}

func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }
func (OSEnv) Environ() []string              { return os.Environ() }

// MapEnv is an in-memory Namespace.
type MapEnv map[string]string

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}

// Environ returns the variables sorted by name.
func (m MapEnv) Environ() []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Name returns the variable name for a key: SECTION_KEY when prepend is set,
// otherwise KEY, upper-cased either way.
func Name(section, key string, prepend bool) string {
	if prepend {
		return strings.ToUpper(section) + "_" + strings.ToUpper(key)
	}
	return strings.ToUpper(key)
}

// ToEnv writes every entry of s to ns after interpolation and environment
// expansion. When two entries map to the same name the later one wins.
func ToEnv(s *sectionstore.Store, ns Namespace, prepend bool) error {
	entries, err := s.Expanded()
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := Name(e.Section, e.Key, prepend)
		if err := ns.Setenv(name, e.Value); err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
	}
	return nil
}

// LoadOptions controls LoadEnv.
type LoadOptions struct {
	// Section receives the imported keys. Empty means the default section,
	// or the section named Prefix when Prefix is set.
	Section string

	// Prefix limits the import to variables named PREFIX_*, with the
	// prefix removed from the key.
	Prefix string
}

// LoadEnv adds variables from ns that are not already a key in any section
// of s, compared without regard to case. Values are stored as raw text. It
// returns the number of keys added.
func LoadEnv(s *sectionstore.Store, ns Namespace, opts LoadOptions) (int, error) {
	known := make(map[string]bool)
	for _, e := range s.Entries() {
		known[strings.ToLower(e.Key)] = true
	}

	section := opts.Section
	prefix := ""
	if opts.Prefix != "" {
		prefix = strings.ToUpper(opts.Prefix) + "_"
		if section == "" {
			section = opts.Prefix
		}
	}

	n := 0
	for _, kv := range ns.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
				continue
			}
			name = name[len(prefix):]
		}
		if known[strings.ToLower(name)] {
			continue
		}
		if err := s.Restore(section, name, value); err != nil {
			return n, fmt.Errorf("importing %s: %w", name, err)
		}
		known[strings.ToLower(name)] = true
		n++
	}
	return n, nil
}
