package jsonbridge

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned for an encoding name that is not recognized.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Lookup returns the encoding registered under name. Empty means UTF-8.
// "utf-16" reads a byte order mark if present, defaults to little-endian,
// and writes a mark. Other names are resolved as WHATWG labels.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEncoding)
	}
	return enc, nil
}

// DecodeFrom returns a reader that converts r from the named encoding to
// UTF-8.
func DecodeFrom(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// EncodeTo returns a writer that converts UTF-8 text to the named encoding
// and writes it to w. Close flushes buffered output; it does not close w.
func EncodeTo(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8BOM {
		// Plain UTF-8 output, without a byte order mark.
		enc = unicode.UTF8
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}
