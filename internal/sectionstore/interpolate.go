package sectionstore

import (
	"fmt"
	"strings"
)

const maxInterpolationDepth = 10

func (s *Store) expand(sectionName, raw string) (string, error) {
	var err error
	if s.opts.Interpolate {
		raw, err = s.interpolate(sectionName, raw, 1)
		if err != nil {
			return "", err
		}
	}
	if s.opts.ExpandEnv {
		raw = s.expandEnv(raw)
	}
	return raw, nil
}

// expandEnv replaces $NAME and ${NAME} with the value of a set variable.
// References to unset variables and text that is not a reference, such as
// a lone "$" or an unclosed "${", are copied as written.
func (s *Store) expandEnv(raw string) string {
	if !strings.Contains(raw, "$") {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '$' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		name, width := envReference(raw[i+1:])
		if width == 0 {
			b.WriteByte('$')
			i++
			continue
		}
		ref := raw[i : i+1+width]
		if v, ok := s.opts.LookupEnv(name); ok && name != "" {
			ref = v
		}
		b.WriteString(ref)
		i += 1 + width
	}
	return b.String()
}

// envReference returns the variable name at the start of rest and the
// number of bytes the reference spans, or a zero width if there is none.
func envReference(rest string) (string, int) {
	if strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", 0
		}
		return rest[1:end], end + 1
	}
	n := 0
	for n < len(rest) && isNameByte(rest[n]) {
		n++
	}
	return rest[:n], n
}

func isNameByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// interpolate replaces %(name)s with the value of name, looked up in the
// same section and then the default section. %% is a literal percent sign
// and any other % is left alone.
func (s *Store) interpolate(sectionName, raw string, depth int) (string, error) {
	if !strings.Contains(raw, "%") {
		return raw, nil
	}
	if depth > maxInterpolationDepth {
		return "", fmt.Errorf("%q: %w", raw, ErrInterpolationDepth)
	}

	var b strings.Builder
	for i := 0; i < len(raw); {
		rest := raw[i:]
		switch {
		case rest[0] != '%':
			b.WriteByte(rest[0])
			i++
		case strings.HasPrefix(rest, "%%"):
			b.WriteByte('%')
			i += 2
		case strings.HasPrefix(rest, "%("):
			end := strings.Index(rest, ")s")
			if end < 0 {
				return "", fmt.Errorf("%q: %w", rest, ErrInterpolationSyntax)
			}
			name := rest[2:end]
			ref, ok := s.rawValue(sectionName, name)
			if !ok {
				ref, ok = s.rawValue(s.opts.DefaultSection, name)
			}
			if !ok {
				return "", fmt.Errorf("%q in section %q: %w", name, sectionName, ErrInterpolationMissing)
			}
			v, err := s.interpolate(sectionName, ref, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
			i += end + 2
		default:
			b.WriteByte('%')
			i++
		}
	}
	return b.String(), nil
}

func checkInterpolation(raw string) error {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' {
			continue
		}
		rest := raw[i:]
		switch {
		case strings.HasPrefix(rest, "%%"):
			i++
		case strings.HasPrefix(rest, "%("):
			end := strings.Index(rest, ")s")
			if end < 0 {
				return fmt.Errorf("%q: %w", rest, ErrInterpolationSyntax)
			}
			i += end + 1
		}
	}
	return nil
}
