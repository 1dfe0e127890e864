package config

import (
	"fmt"
	"strings"

	"configreader/internal/sectionstore"
)

// SeedValues parses Defaults into section name, key and raw value. An entry
// is "key=value" for the default section or "section.key=value"; the
// section ends at the first dot.
func (s Settings) SeedValues() (map[string]map[string]string, error) {
	if len(s.Defaults) == 0 {
		return nil, nil
	}
	out := make(map[string]map[string]string)
	for _, entry := range s.Defaults {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%q: expected [section.]key=value", entry)
		}
		section, key, dotted := strings.Cut(name, ".")
		if !dotted {
			section, key = "", name
		}
		if section != "" {
			if err := sectionstore.ValidateSectionName(section); err != nil {
				return nil, err
			}
		}
		if err := sectionstore.ValidateKey(key); err != nil {
			return nil, err
		}
		if out[section] == nil {
			out[section] = make(map[string]string)
		}
		out[section][key] = value
	}
	return out, nil
}
