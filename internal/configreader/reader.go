// Package configreader ties an INI file on disk to an in-memory section
// store and to the JSON and environment bridges.
//
// Changes stay in memory until Save, a mutator called WithCommit, or
// Close(WithCommit()).
package configreader

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"configreader/internal/logger"
	"configreader/internal/sectionstore"
	"configreader/internal/sectionstore/inifile"
)

// ErrClosed is returned by every method after Close.
var ErrClosed = errors.New("reader is closed")

// Options configures Open.
type Options struct {
	sectionstore.Options

	// Defaults maps section names to keys and raw values that are added
	// whenever the file does not have them. An empty section name means the
	// default section.
	Defaults map[string]map[string]string

	Logger *logger.Logger
}

// Reader is an open INI file. It is not safe for concurrent use.
type Reader struct {
	path   string
	opts   Options
	store  *sectionstore.Store
	log    *logger.Logger
	closed bool
}

// WriteOption modifies a mutating call.
type WriteOption func(*writeOptions)

type writeOptions struct {
	commit bool
}

// WithCommit saves the file after the change is applied.
func WithCommit() WriteOption {
	return func(o *writeOptions) { o.commit = true }
}

// Open reads the file at path, which need not exist yet. Relative paths are
// resolved against the working directory.
func Open(path string, opts Options) (*Reader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := &Reader{
		path:  abs,
		opts:  opts,
		store: sectionstore.New(opts.Options),
		log:   log.Component("configreader"),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) load() error {
	if err := inifile.Load(r.path, r.store); err != nil {
		return err
	}
	if err := r.seedDefaults(); err != nil {
		return err
	}
	r.log.Debug().
		Str("path", r.path).
		Int("sections", len(r.store.Sections())).
		Int("keys", len(r.store.Entries())).
		Msg("loaded")
	return nil
}

func (r *Reader) seedDefaults() error {
	sections := make([]string, 0, len(r.opts.Defaults))
	for name := range r.opts.Defaults {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		values := r.opts.Defaults[name]
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		if err := r.store.AddSection(name); err != nil {
			return fmt.Errorf("default section: %w", err)
		}
		for _, k := range keys {
			if r.store.HasKey(name, k) {
				continue
			}
			if err := r.store.Restore(name, k, values[k]); err != nil {
				return fmt.Errorf("default %q: %w", k, err)
			}
		}
	}
	return nil
}

// Path returns the absolute path of the backing file.
func (r *Reader) Path() string {
	return r.path
}

// Store returns the underlying store. Changes made through it are saved
// like any other.
func (r *Reader) Store() *sectionstore.Store {
	return r.store
}

// SetPath points future saves at path. The contents in memory are kept and
// the file at the old path is left alone.
func (r *Reader) SetPath(path string) error {
	if err := r.check(); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	r.log.Debug().Str("from", r.path).Str("to", abs).Msg("path changed")
	r.path = abs
	return nil
}

// Save writes the store to the backing file.
func (r *Reader) Save() error {
	if err := r.check(); err != nil {
		return err
	}
	if err := inifile.Save(r.path, r.store); err != nil {
		return fmt.Errorf("saving %s: %w", r.path, err)
	}
	r.log.Debug().Str("path", r.path).Msg("saved")
	return nil
}

// Reload discards unsaved changes and reads the backing file again.
func (r *Reader) Reload() error {
	if err := r.check(); err != nil {
		return err
	}
	return r.load()
}

// Close releases the reader. With WithCommit the store is saved first; if
// that fails the reader stays open.
func (r *Reader) Close(opts ...WriteOption) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := r.commit(opts); err != nil {
		return err
	}
	r.closed = true
	r.log.Debug().Str("path", r.path).Msg("closed")
	return nil
}

func (r *Reader) check() error {
	if r.closed {
		return ErrClosed
	}
	return nil
}

func (r *Reader) commit(opts []WriteOption) error {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.commit {
		return nil
	}
	return r.Save()
}
