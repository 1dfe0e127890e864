package configreader

import (
	"configreader/internal/literal"
	"configreader/internal/sectionstore"
)

// Get returns the decoded value of key. See sectionstore.GetOptions.
func (r *Reader) Get(key string, opts sectionstore.GetOptions) (any, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.store.Get(key, opts)
}

// Items returns the decoded keys of a section.
func (r *Reader) Items(section string) (*literal.Map, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.store.Items(section)
}

// Sections returns the section names, default section first.
func (r *Reader) Sections() ([]string, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.store.Sections(), nil
}

// Show returns every section with its decoded keys.
func (r *Reader) Show() (*literal.Map, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return r.store.Show()
}

// Search returns the first entry whose value is exactly value.
func (r *Reader) Search(value string) (sectionstore.Match, bool, error) {
	if err := r.check(); err != nil {
		return sectionstore.Match{}, false, err
	}
	m, ok := r.store.Search(value)
	return m, ok, nil
}

// SearchWith searches with case folding or fuzzy matching.
func (r *Reader) SearchWith(value string, opts sectionstore.SearchOptions) (sectionstore.Match, bool, error) {
	if err := r.check(); err != nil {
		return sectionstore.Match{}, false, err
	}
	return r.store.SearchWith(value, opts)
}

// Set stores value under key in section.
func (r *Reader) Set(section, key string, value any, opts ...WriteOption) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := r.store.Set(section, key, value); err != nil {
		return err
	}
	return r.commit(opts)
}

// SetMany stores every entry of values in section, in order.
func (r *Reader) SetMany(section string, values *literal.Map, opts ...WriteOption) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := r.store.SetMany(section, values); err != nil {
		return err
	}
	return r.commit(opts)
}

// RemoveKey deletes key from section and reports whether it was present.
func (r *Reader) RemoveKey(section, key string, opts ...WriteOption) (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	removed := r.store.RemoveKey(section, key)
	return removed, r.commit(opts)
}

// RemoveSection deletes a section and reports whether anything was removed.
// The default section is emptied instead.
func (r *Reader) RemoveSection(section string, opts ...WriteOption) (bool, error) {
	if err := r.check(); err != nil {
		return false, err
	}
	removed := r.store.RemoveSection(section)
	return removed, r.commit(opts)
}
