package payload

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToSnakeCaseKeys returns a copy of v with every object key converted to
// snake_case, recursing through objects and arrays. Leaf values are unchanged.
func ToSnakeCaseKeys(v interface{}) interface{} {
	return transformKeys(v, SnakeCase)
}

// ToCamelCaseKeys returns a copy of v with every object key converted to
// camelCase, recursing through objects and arrays. Leaf values are unchanged.
func ToCamelCaseKeys(v interface{}) interface{} {
	return transformKeys(v, CamelCase)
}

func transformKeys(v interface{}, fn func(string) string) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if !isIndex(k) {
				k = fn(k)
			}
			out[k] = transformKeys(child, fn)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = transformKeys(child, fn)
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = transformKeys(child, fn)
		}
		return out
	default:
		return v
	}
}

func isIndex(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SnakeCase converts a camelCase key: "addressLine1" -> "address_line_1".
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && prev != '_' {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if i > 0 && unicode.IsLetter(prev) {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	return b.String()
}

// CamelCase converts a snake_case key: "address_line_1" -> "addressLine1".
// Leading underscores are kept.
func CamelCase(s string) string {
	trimmed := strings.TrimLeft(s, "_")
	lead := s[:len(s)-len(trimmed)]

	parts := strings.Split(trimmed, "_")

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(lead)
	b.WriteString(parts[0])

	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}

	return b.String()
}
