// Package sectionstore holds INI data in memory: ordered sections of ordered
// key/value pairs, stored as the text that goes to disk and decoded through
// package literal on the way out.
//
// The default section always exists and is always listed first. Other
// sections appear when created or when a key is first set into them. An empty section
// argument means the default section.
package sectionstore

import (
	"fmt"
	"os"
	"strings"

	"configreader/internal/literal"
)

// DefaultSectionName is used when Options.DefaultSection is empty.
const DefaultSectionName = "main"

// Options configures a Store.
type Options struct {
	// DefaultSection names the section used when none is given.
	DefaultSection string

	// CaseSensitive keeps key names as written. Otherwise keys are folded to
	// lower case. Section names are always case-sensitive.
	CaseSensitive bool

	// Interpolate expands %(key)s references on read.
	Interpolate bool

	// ExpandEnv expands $VAR and ${VAR} on read.
	ExpandEnv bool

	// LookupEnv resolves variables for ExpandEnv. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Entry is one key of one section.
type Entry struct {
	Section string
	Key     string
	Value   string
}

type section struct {
	keys   []string
	values map[string]string
}

func newSection() *section {
	return &section{values: make(map[string]string)}
}

// Store is an in-memory INI document. It is not safe for concurrent use.
type Store struct {
	opts     Options
	order    []string
	sections map[string]*section
}

// New returns an empty Store holding only the default section.
func New(opts Options) *Store {
	if opts.DefaultSection == "" {
		opts.DefaultSection = DefaultSectionName
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	s := &Store{opts: opts}
	s.Clear()
	return s
}

// DefaultSection returns the name of the default section.
func (s *Store) DefaultSection() string {
	return s.opts.DefaultSection
}

// Clear removes every section and key, leaving an empty default section.
func (s *Store) Clear() {
	s.order = []string{s.opts.DefaultSection}
	s.sections = map[string]*section{s.opts.DefaultSection: newSection()}
}

// Sections returns the section names, default section first.
func (s *Store) Sections() []string {
	return append([]string(nil), s.order...)
}

// HasSection reports whether name exists.
func (s *Store) HasSection(name string) bool {
	_, ok := s.sections[s.sectionName(name)]
	return ok
}

// HasKey reports whether key exists in section.
func (s *Store) HasKey(sectionName, key string) bool {
	sec, ok := s.sections[s.sectionName(sectionName)]
	if !ok {
		return false
	}
	_, ok = sec.values[s.keyName(key)]
	return ok
}

// Keys returns the keys of a section in order.
func (s *Store) Keys(sectionName string) ([]string, error) {
	name := s.sectionName(sectionName)
	sec, ok := s.sections[name]
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, ErrMissingSection)
	}
	return append([]string(nil), sec.keys...), nil
}

// Set encodes value and stores it under key, creating the section if needed.
// Existing keys keep their position.
func (s *Store) Set(sectionName, key string, value any) error {
	return s.SetRaw(sectionName, key, literal.Encode(value))
}

// SetRaw stores raw text under key without encoding it.
func (s *Store) SetRaw(sectionName, key, raw string) error {
	return s.put(sectionName, key, raw, s.opts.Interpolate)
}

func (s *Store) put(sectionName, key, raw string, checkSyntax bool) error {
	name := s.sectionName(sectionName)
	if err := ValidateSectionName(name); err != nil {
		return err
	}
	if err := s.check(key, raw, checkSyntax); err != nil {
		return err
	}
	s.store(name, key, raw)
	return nil
}

func (s *Store) check(key, raw string, checkSyntax bool) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if checkSyntax {
		if err := checkInterpolation(raw); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}

func (s *Store) store(name, key, raw string) {
	sec := s.section(name)
	k := s.keyName(key)
	if _, exists := sec.values[k]; !exists {
		sec.keys = append(sec.keys, k)
	}
	sec.values[k] = raw
}

// Restore stores raw text taken from a file or environment. Unlike SetRaw it does not
// check interpolation syntax; a bad reference fails when the key is read.
func (s *Store) Restore(sectionName, key, raw string) error {
	return s.put(sectionName, key, raw, false)
}

// AddSection creates an empty section if it does not exist.
func (s *Store) AddSection(name string) error {
	name = s.sectionName(name)
	if err := ValidateSectionName(name); err != nil {
		return err
	}
	s.section(name)
	return nil
}

// SetMany sets every entry of values in order. Every key and value is
// checked first; if any is rejected the store is left unchanged.
func (s *Store) SetMany(sectionName string, values *literal.Map) error {
	name := s.sectionName(sectionName)
	if err := ValidateSectionName(name); err != nil {
		return err
	}
	raws := make([]string, 0, values.Len())
	var err error
	values.Each(func(k string, v any) {
		if err != nil {
			return
		}
		raw := literal.Encode(v)
		if err = s.check(k, raw, s.opts.Interpolate); err == nil {
			raws = append(raws, raw)
		}
	})
	if err != nil {
		return err
	}
	i := 0
	values.Each(func(k string, _ any) {
		s.store(name, k, raws[i])
		i++
	})
	return nil
}

// RemoveKey deletes key from section and reports whether it was present.
func (s *Store) RemoveKey(sectionName, key string) bool {
	sec, ok := s.sections[s.sectionName(sectionName)]
	if !ok {
		return false
	}
	k := s.keyName(key)
	if _, ok := sec.values[k]; !ok {
		return false
	}
	delete(sec.values, k)
	for i, name := range sec.keys {
		if name == k {
			sec.keys = append(sec.keys[:i], sec.keys[i+1:]...)
			break
		}
	}
	return true
}

// RemoveSection deletes a section and its keys and reports whether anything
// was removed. The default section is emptied rather than deleted.
func (s *Store) RemoveSection(sectionName string) bool {
	name := s.sectionName(sectionName)
	sec, ok := s.sections[name]
	if !ok {
		return false
	}
	if name == s.opts.DefaultSection {
		s.sections[name] = newSection()
		return len(sec.keys) > 0
	}
	delete(s.sections, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Entries returns every key as stored, in store order.
func (s *Store) Entries() []Entry {
	var out []Entry
	for _, name := range s.order {
		sec := s.sections[name]
		for _, k := range sec.keys {
			out = append(out, Entry{Section: name, Key: k, Value: sec.values[k]})
		}
	}
	return out
}

// ValidateSectionName rejects names the INI format reserves ("default" in
// any case) or cannot write back as a header.
func ValidateSectionName(name string) error {
	switch {
	case strings.EqualFold(name, "default"):
		return fmt.Errorf("%q: %w", name, ErrSectionNameNotAllowed)
	case strings.TrimSpace(name) != name, name == "", strings.ContainsAny(name, "]\r\n"):
		return fmt.Errorf("%q: %w", name, ErrSectionNameNotAllowed)
	}
	return nil
}

// ValidateKey rejects keys that cannot be written to an INI file and read
// back: blank keys, keys with surrounding spaces or spanning lines, and keys
// that would start a comment or a section header.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("empty key: %w", ErrInvalidKey)
	}
	if strings.TrimSpace(key) != key || strings.ContainsAny(key, "\r\n") ||
		strings.ContainsAny(key[:1], "#;[") {
		return fmt.Errorf("key %q: %w", key, ErrInvalidKey)
	}
	return nil
}

func (s *Store) section(name string) *section {
	sec, ok := s.sections[name]
	if !ok {
		sec = newSection()
		s.sections[name] = sec
		s.order = append(s.order, name)
	}
	return sec
}

func (s *Store) sectionName(name string) string {
	if name == "" {
		return s.opts.DefaultSection
	}
	return name
}

func (s *Store) keyName(key string) string {
	if s.opts.CaseSensitive {
		return key
	}
	return strings.ToLower(key)
}
