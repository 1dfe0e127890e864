// Package jsonbridge converts a sectionstore.Store to and from JSON.
//
// Output is an object of sections, each an object of decoded values in store
// order. Input is read in document order so keys land in the store in the
// order they were written.
package jsonbridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"configreader/internal/literal"
	"configreader/internal/sectionstore"
)

// ErrMalformedDocument is returned when a document does not have the shape
// LoadJSON expects.
var ErrMalformedDocument = errors.New("malformed document")

// ToJSON returns s as a compact JSON object.
func ToJSON(s *sectionstore.Store) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON writes s to w as a JSON object followed by a newline.
func WriteJSON(w io.Writer, s *sectionstore.Store) error {
	shown, err := s.Show()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(shown); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// LoadOptions controls LoadJSON.
type LoadOptions struct {
	// Section receives top-level entries. Empty means the default section.
	Section string

	// Identifier marks top-level keys that name a section. An entry whose
	// key starts with Identifier must hold an object; its pairs go into the
	// section named by the rest of the key.
	Identifier string

	// Encoding names the text encoding of the input. Empty means UTF-8.
	Encoding string
}

// LoadJSON reads a JSON object from r and sets its entries into s. Entries
// are applied as they are read, so an error leaves earlier entries in place.
// An identifier entry is applied whole or not at all.
func LoadJSON(r io.Reader, s *sectionstore.Store, opts LoadOptions) error {
	src, err := DecodeFrom(r, opts.Encoding)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(src)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return readError(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("top level is not an object: %w", ErrMalformedDocument)
	}

	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return err
		}
		value, err := decodeValue(dec, 0)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}

		if opts.Identifier != "" && strings.HasPrefix(key, opts.Identifier) {
			inner, ok := value.(*literal.Map)
			if !ok {
				return fmt.Errorf("key %q is %s, not an object: %w", key, kind(value), ErrMalformedDocument)
			}
			if err := s.SetMany(strings.TrimPrefix(key, opts.Identifier), inner); err != nil {
				return err
			}
			continue
		}
		if err := s.Set(opts.Section, key, value); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return readError(err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return readError(err)
		}
		return fmt.Errorf("unexpected %v after the document: %w", tok, ErrMalformedDocument)
	}
	return nil
}

const maxDepth = 64

func decodeValue(dec *json.Decoder, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d: %w", maxDepth, ErrMalformedDocument)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, readError(err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := literal.NewMap()
			for dec.More() {
				key, err := objectKey(dec)
				if err != nil {
					return nil, err
				}
				v, err := decodeValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				m.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, readError(err)
			}
			return m, nil
		case '[':
			list := []any{}
			for dec.More() {
				v, err := decodeValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, readError(err)
			}
			return list, nil
		}
		return nil, fmt.Errorf("unexpected %v: %w", t, ErrMalformedDocument)
	case json.Number:
		return number(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", readError(err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("object key %v: %w", tok, ErrMalformedDocument)
	}
	return key, nil
}

// number keeps integral values as int64 and everything else as float64.
func number(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", n, ErrMalformedDocument)
	}
	return f, nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	}
	return "a number"
}

func readError(err error) error {
	return fmt.Errorf("reading json: %w: %w", ErrMalformedDocument, err)
}
