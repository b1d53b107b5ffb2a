package payload

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is one query string entry.
type Param struct {
	Key   string
	Value interface{}
}

// P is shorthand for Param{Key: key, Value: value}.
func P(key string, value interface{}) Param {
	return Param{Key: key, Value: value}
}

// Query renders params as a URL-encoded query string in the given order.
// Entries whose value is nil (or a nil pointer) are skipped. Arrays and
// objects are JSON-stringified before encoding.
func Query(params ...Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s, ok := queryValue(p.Value)
		if !ok {
			continue
		}
		parts = append(parts, encodeComponent(p.Key)+"="+encodeComponent(s))
	}
	return strings.Join(parts, "&")
}

func queryValue(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return fmt.Sprint(rv.Interface()), true
		}
		return string(b), true
	default:
		return fmt.Sprint(rv.Interface()), true
	}
}

// componentUnescaper restores the characters a URI component leaves as is
// but url.QueryEscape encodes, and spaces as %20 rather than "+".
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for a query component. Unreserved marks
// !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
