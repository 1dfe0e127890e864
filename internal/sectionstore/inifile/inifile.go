// Package inifile reads and writes a sectionstore.Store as an INI file.
//
// Keys in a [DEFAULT] section, in any case, are imported into the store's
// default section. Inline comments are not recognized, so ';' and '#' after a value
// are part of it. Saving writes "key = value" lines through a temporary file
// and a rename while holding a lock on path + ".lock".
package inifile

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"configreader/internal/sectionstore"
)

// ErrUnwritable is returned by Encode for text that no INI quoting can
// carry, such as a value holding both a backtick and a triple quote.
var ErrUnwritable = errors.New("text cannot be written to an INI file")

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	AllowPythonMultilineValues: true,
	PreserveSurroundedQuote:    true,
}

// Load replaces the contents of s with the file at path. A missing file
// leaves s empty.
func Load(path string, s *sectionstore.Store) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.Clear()
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := Parse(raw, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse replaces the contents of s with the INI document in data. s is left
// unchanged if data does not parse or holds a key s would reject.
func Parse(data []byte, s *sectionstore.Store) error {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	for _, sec := range f.Sections() {
		if name := sectionName(sec); name != "" {
			if err := sectionstore.ValidateSectionName(name); err != nil {
				return err
			}
		}
		for _, key := range sec.Keys() {
			if err := sectionstore.ValidateKey(key.Name()); err != nil {
				return fmt.Errorf("section %q: %w", sec.Name(), err)
			}
		}
	}

	s.Clear()
	for _, sec := range f.Sections() {
		name := sectionName(sec)
		if name != "" {
			if err := s.AddSection(name); err != nil {
				return err
			}
		}
		for _, key := range sec.Keys() {
			if err := s.Restore(name, key.Name(), key.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

// sectionName maps [DEFAULT], in any case, to the store's default section.
func sectionName(sec *ini.Section) string {
	if strings.EqualFold(sec.Name(), ini.DefaultSection) {
		return ""
	}
	return sec.Name()
}

// Encode renders s as an INI document, default section first. Keys and
// values Parse would trim or reinterpret are wrapped in backticks, or in
// triple quotes when they contain a backtick or a line break.
func Encode(s *sectionstore.Store) ([]byte, error) {
	var buf bytes.Buffer
	entries := s.Entries()
	for i, name := range s.Sections() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("[" + name + "]\n")
		for len(entries) > 0 && entries[0].Section == name {
			e := entries[0]
			entries = entries[1:]

			key, err := quoteKey(e.Key)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", name, err)
			}
			value, err := quoteValue(e.Value)
			if err != nil {
				return nil, fmt.Errorf("section %q key %q: %w", name, e.Key, err)
			}
			buf.WriteString(key + " =")
			if value != "" {
				buf.WriteString(" " + value)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

func quoteKey(key string) (string, error) {
	if !strings.ContainsAny(key, "=:") && key[0] != '"' && key[0] != '`' {
		return key, nil
	}
	return quote(key)
}

func quoteValue(v string) (string, error) {
	switch {
	case strings.Contains(v, "\n"):
		if strings.Contains(v, `"""`) {
			return "", fmt.Errorf("value %q: %w", v, ErrUnwritable)
		}
		return `"""` + v + `"""`, nil
	case v != strings.TrimSpace(v), strings.HasPrefix(v, `"""`), strings.HasPrefix(v, "`"):
		return quote(v)
	}
	return v, nil
}

func quote(text string) (string, error) {
	if !strings.Contains(text, "`") {
		return "`" + text + "`", nil
	}
	if !strings.Contains(text, `"""`) {
		return `"""` + text + `"""`, nil
	}
	return "", fmt.Errorf("%q: %w", text, ErrUnwritable)
}

// Save writes s to path, creating the parent directory if needed.
func Save(path string, s *sectionstore.Store) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	l, err := lock(path)
	if err != nil {
		return err
	}
	defer l.release()
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
func atomicWrite(path string, data []byte) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}
