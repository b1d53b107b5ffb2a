package schema

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const rootField = "(root)"

// normalize rewrites raw arguments in place: nulls on object properties are
// dropped, defaults are filled, and scalar values are coerced to the declared
// type where the conversion is lossless. Key order of the input is preserved.
func normalize(raw []byte, fields []Field) ([]byte, []FieldError) {
	doc := bytes.TrimSpace(raw)
	if len(doc) == 0 || bytes.Equal(doc, []byte("null")) {
		doc = []byte("{}")
	}

	if !gjson.ValidBytes(doc) {
		return nil, []FieldError{{Field: rootField, Message: "arguments are not valid JSON"}}
	}
	if !gjson.ParseBytes(doc).IsObject() {
		return nil, []FieldError{{Field: rootField, Message: "arguments must be a JSON object"}}
	}

	n := &normalizer{doc: append([]byte(nil), doc...)}
	n.object("", fields)
	if n.err != nil {
		return nil, []FieldError{{Field: rootField, Message: n.err.Error()}}
	}

	return n.doc, nil
}

type normalizer struct {
	doc []byte
	err error
}

func (n *normalizer) object(prefix string, fields []Field) {
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		r := gjson.GetBytes(n.doc, path)

		if !r.Exists() || r.Type == gjson.Null {
			if r.Exists() {
				n.delete(path)
			}
			if f.Default != nil {
				n.set(path, f.Default)
			}
			continue
		}

		n.value(path, r, f)
	}
}

func (n *normalizer) value(path string, r gjson.Result, f Field) {
	if n.err != nil {
		return
	}

	switch f.Type {
	case Number, Integer:
		if r.Type != gjson.String {
			return
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		n.set(path, v)

	case Boolean:
		if r.Type != gjson.String {
			return
		}
		switch s := strings.TrimSpace(r.Str); {
		case strings.EqualFold(s, "true"):
			n.set(path, true)
		case strings.EqualFold(s, "false"):
			n.set(path, false)
		}

	case String:
		if r.Type == gjson.Number {
			n.set(path, r.Raw)
		}

	case Object:
		if r.IsObject() {
			n.object(path, f.Fields)
		}

	case Array:
		if !r.IsArray() {
			return
		}
		for i, elem := range r.Array() {
			// nulls inside arrays are left for the validator to reject
			if elem.Type == gjson.Null {
				continue
			}
			n.value(path+"."+strconv.Itoa(i), elem, *f.Items)
		}
	}
}

func (n *normalizer) set(path string, v interface{}) {
	if n.err != nil {
		return
	}
	n.doc, n.err = sjson.SetBytes(n.doc, path, v)
}

func (n *normalizer) delete(path string) {
	if n.err != nil {
		return
	}
	n.doc, n.err = sjson.DeleteBytes(n.doc, path)
}
