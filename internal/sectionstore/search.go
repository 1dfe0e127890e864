package sectionstore

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the similarity a fuzzy match needs when no other
// threshold is chosen.
const DefaultThreshold = 0.36

// Match is the first entry a search found.
type Match struct {
	Section string
	Key     string
	Value   string
}

// SearchOptions controls SearchWith.
type SearchOptions struct {
	IgnoreCase bool

	// Fuzzy accepts the first value whose similarity ratio is at least
	// Threshold.
	Fuzzy     bool
	Threshold float64
}

// Search returns the first entry, in store order, whose value text equals
// value exactly.
func (s *Store) Search(value string) (Match, bool) {
	m, ok, _ := s.SearchWith(value, SearchOptions{})
	return m, ok
}

// SearchWith is Search with case folding and fuzzy matching. Values are
// compared after expansion; a value that fails to expand is compared as
// stored.
func (s *Store) SearchWith(value string, opts SearchOptions) (Match, bool, error) {
	if opts.Fuzzy && (opts.Threshold < 0 || opts.Threshold > 1) {
		return Match{}, false, fmt.Errorf("%v: %w", opts.Threshold, ErrInvalidThreshold)
	}

	want := value
	if opts.IgnoreCase {
		want = strings.ToLower(want)
	}
	for _, e := range s.Entries() {
		found, err := s.expand(e.Section, e.Value)
		if err != nil {
			found = e.Value
		}
		got := found
		if opts.IgnoreCase {
			got = strings.ToLower(got)
		}

		var hit bool
		if opts.Fuzzy {
			hit = similarity(got, want) >= opts.Threshold
		} else {
			hit = got == want
		}
		if hit {
			return Match{Section: e.Section, Key: e.Key, Value: found}, true, nil
		}
	}
	return Match{}, false, nil
}

// similarity is the character-level matching ratio of a and b in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
