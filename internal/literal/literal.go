// Package literal converts between the text stored in an INI file and the
// typed values handed to callers.
//
// Decoded values are one of: string, int64, float64, bool, nil, []any and
// *Map. The accepted text is a small, bounded literal grammar (None,
// True/False, numbers, quoted strings, [lists], (tuples) and {'key': value}
// mappings). Nothing is ever evaluated; text that does not fit the grammar is
// returned unchanged as a string.
package literal

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("invalid literal")

// maxDepth bounds container nesting so hostile input cannot exhaust the stack.
const maxDepth = 64

// Decode returns the typed value for raw. It never fails: when raw is not a
// literal, raw itself is returned.
func Decode(raw string) any {
	v, err := Parse(raw)
	if err != nil {
		return raw
	}
	return v
}

// DecodeIf decodes raw when evaluate is true and returns it verbatim otherwise.
func DecodeIf(raw string, evaluate bool) any {
	if !evaluate {
		return raw
	}
	return Decode(raw)
}

// Parse is the strict form of Decode. The returned error wraps ErrSyntax.
func Parse(raw string) (any, error) {
	p := &parser{src: raw}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("empty input: %w", ErrSyntax)
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected trailing text %q", p.src[p.pos:])
	}
	return v, nil
}
