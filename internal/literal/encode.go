package literal

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Encode renders v as the text Decode reads back. A top-level string is
// stored verbatim; strings nested in lists or mappings are quoted. Values
// outside the literal types are rendered with fmt.
func Encode(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case *Map:
		return repr(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if v != nil && reflect.ValueOf(v).Kind() == reflect.Struct {
		return fmt.Sprint(v)
	}
	return repr(v)
}

// Quote returns the quoted literal form of s, choosing single quotes unless
// s contains a single quote and no double quote.
func Quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == rune(q) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case !unicode.IsPrint(r) && r != ' ':
			if r > 0xffff {
				fmt.Fprintf(&b, `\U%08x`, r)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

func repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return Quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = repr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Map:
		if x == nil {
			return "None"
		}
		parts := make([]string, 0, x.Len())
		x.Each(func(k string, e any) {
			parts = append(parts, Quote(k)+": "+repr(e))
		})
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return reprReflect(reflect.ValueOf(v))
}

// reprReflect covers the remaining integer kinds, typed slices and
// string-keyed maps. Anything else is rendered with fmt and quoted.
func reprReflect(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Bool:
		return repr(rv.Bool())
	case reflect.String:
		return Quote(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = repr(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			e := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
			parts[i] = Quote(k) + ": " + repr(e.Interface())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "None"
		}
		if _, ok := rv.Interface().(fmt.Stringer); !ok {
			return repr(rv.Elem().Interface())
		}
	case reflect.Invalid:
		return "None"
	}
	return Quote(fmt.Sprint(rv.Interface()))
}

// formatFloat follows the shortest round-tripping form, switching to
// exponent notation outside [1e-4, 1e16), and always marks the value as a
// float with a '.' or exponent.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	e := strconv.FormatFloat(f, 'e', -1, bitSize)
	exp, err := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
