package configreader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"configreader/internal/envbridge"
	"configreader/internal/jsonbridge"
	"configreader/internal/literal"
	"configreader/internal/preview"
)

// ToJSON writes the store to w as JSON.
func (r *Reader) ToJSON(w io.Writer) error {
	if err := r.check(); err != nil {
		return err
	}
	return jsonbridge.WriteJSON(w, r.store)
}

// ToJSONFile writes the store as JSON to path in the named encoding.
func (r *Reader) ToJSONFile(path, encoding string) (err error) {
	if err := r.check(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := jsonbridge.EncodeTo(f, encoding)
	if err != nil {
		return err
	}
	if err := jsonbridge.WriteJSON(w, r.store); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	r.log.Debug().Str("path", path).Str("encoding", encoding).Msg("exported json")
	return nil
}

// LoadJSON reads a JSON object from src into the store.
func (r *Reader) LoadJSON(src io.Reader, opts jsonbridge.LoadOptions, wopts ...WriteOption) error {
	if err := r.check(); err != nil {
		return err
	}
	if err := jsonbridge.LoadJSON(src, r.store, opts); err != nil {
		return err
	}
	return r.commit(wopts)
}

// LoadJSONFile reads the JSON file at path into the store.
func (r *Reader) LoadJSONFile(path string, opts jsonbridge.LoadOptions, wopts ...WriteOption) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if err := r.LoadJSON(f, opts, wopts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	r.log.Debug().Str("path", path).Msg("imported json")
	return nil
}

// ToEnv writes every entry to ns. See envbridge.ToEnv.
func (r *Reader) ToEnv(ns envbridge.Namespace, prepend bool) error {
	if err := r.check(); err != nil {
		return err
	}
	return envbridge.ToEnv(r.store, ns, prepend)
}

// LoadEnv imports untracked variables from ns and returns how many were
// added. See envbridge.LoadEnv.
func (r *Reader) LoadEnv(ns envbridge.Namespace, opts envbridge.LoadOptions, wopts ...WriteOption) (int, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	n, err := envbridge.LoadEnv(r.store, ns, opts)
	if err != nil {
		return n, err
	}
	r.log.Debug().Int("count", n).Str("prefix", opts.Prefix).Msg("imported environment")
	return n, r.commit(wopts)
}

// Print renders a preview of the store to w, titled with the file name, and
// returns the same snapshot Show does.
func (r *Reader) Print(w io.Writer) (*literal.Map, error) {
	snapshot, err := r.Show()
	if err != nil {
		return nil, err
	}
	if err := preview.Render(w, filepath.Base(r.path), snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}
