package sectionstore

import (
	"errors"
	"fmt"

	"configreader/internal/literal"
)

// GetOptions controls Get.
type GetOptions struct {
	// Section to read from. Empty means the default section.
	Section string

	// Raw returns the stored text instead of the decoded value.
	Raw bool

	// Default is returned when the key is missing and UseDefault is set. A
	// string default is decoded like stored text unless Raw is set.
	Default    any
	UseDefault bool

	// CommitDefault stores Default when it is used.
	CommitDefault bool
}

// Get returns the value stored under key. A missing key returns
// ErrMissingOption unless a default is supplied.
func (s *Store) Get(key string, opts GetOptions) (any, error) {
	name := s.sectionName(opts.Section)
	raw, err := s.lookup(name, key)
	if errors.Is(err, ErrMissingOption) && opts.UseDefault {
		if opts.CommitDefault {
			if err := s.Set(name, key, opts.Default); err != nil {
				return nil, err
			}
		}
		if str, ok := opts.Default.(string); ok {
			return literal.DecodeIf(str, !opts.Raw), nil
		}
		return opts.Default, nil
	}
	if err != nil {
		return nil, err
	}
	return literal.DecodeIf(raw, !opts.Raw), nil
}

// Items returns the decoded keys of a section in order.
func (s *Store) Items(sectionName string) (*literal.Map, error) {
	name := s.sectionName(sectionName)
	sec, ok := s.sections[name]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, ErrMissingSection)
	}
	out := literal.NewMap()
	for _, k := range sec.keys {
		v, err := s.expand(name, sec.values[k])
		if err != nil {
			return nil, fmt.Errorf("section %q key %q: %w", name, k, err)
		}
		out.Set(k, literal.Decode(v))
	}
	return out, nil
}

// Show returns every section mapped to its decoded keys.
func (s *Store) Show() (*literal.Map, error) {
	out := literal.NewMap()
	for _, name := range s.order {
		items, err := s.Items(name)
		if err != nil {
			return nil, err
		}
		out.Set(name, items)
	}
	return out, nil
}

// Expanded returns every key with interpolation and environment expansion
// applied, in store order.
func (s *Store) Expanded() ([]Entry, error) {
	entries := s.Entries()
	for i, e := range entries {
		v, err := s.expand(e.Section, e.Value)
		if err != nil {
			return nil, fmt.Errorf("section %q key %q: %w", e.Section, e.Key, err)
		}
		entries[i].Value = v
	}
	return entries, nil
}

func (s *Store) lookup(sectionName, key string) (string, error) {
	raw, ok := s.rawValue(sectionName, key)
	if !ok {
		return "", fmt.Errorf("option %q in section %q: %w", key, sectionName, ErrMissingOption)
	}
	return s.expand(sectionName, raw)
}

func (s *Store) rawValue(sectionName, key string) (string, bool) {
	sec, ok := s.sections[sectionName]
	if !ok {
		return "", false
	}
	v, ok := sec.values[s.keyName(key)]
	return v, ok
}
