// Package schema describes tool parameters and validates untyped, model-produced
// arguments against them.
//
// Invariants:
// - A Schema always describes a JSON object at the root.
// - JSONSchema() carries every constraint the validator enforces, so framework
//   adapters that need a JSON-Schema document lose nothing.
// - Coercion is explicit: numeric strings become numbers, numbers become
//   strings for string fields, "true"/"false" become booleans, nulls are
//   treated as absent. Nothing else is rewritten.
package schema

import "fmt"

// Type is the JSON type of a field.
type Type string

const (
	String  Type = "string"
	Number  Type = "number"
	Integer Type = "integer"
	Boolean Type = "boolean"
	Object  Type = "object"
	Array   Type = "array"
	// Any accepts every JSON value and is rendered without a "type" keyword.
	Any Type = "any"
)

// Field defines a single named parameter.
type Field struct {
	Name        string
	Type        Type
	Description string
	Required    bool
	Default     interface{}
	Enum        []string

	// Minimum and Maximum bound a Number or Integer field, inclusive.
	Minimum *float64
	Maximum *float64

	// Fields lists the properties of an Object field.
	Fields []Field
	// Open allows an Object field to carry keys that are not declared in Fields.
	Open bool
	// Items describes the elements of an Array field. Its Name is ignored.
	Items *Field
}

// Schema is the parameter schema of one operation. The root is an object whose
// properties are Fields.
type Schema struct {
	Fields []Field
}

// New builds a Schema from the given fields.
func New(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// JSONSchema renders the schema as a JSON-Schema (draft 7 compatible) document.
func (s Schema) JSONSchema() map[string]interface{} {
	return objectSchema("", s.Fields, false)
}

// Check verifies the schema is well formed.
func (s Schema) Check() error {
	return checkFields("", s.Fields)
}

func checkFields(prefix string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		if f.Name == "" {
			return fmt.Errorf("field name cannot be empty under %q", prefix)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %s", path)
		}
		seen[f.Name] = true
		if err := checkField(path, f); err != nil {
			return err
		}
	}
	return nil
}

func checkField(path string, f Field) error {
	switch f.Type {
	case String, Number, Integer, Boolean, Any:
	case Object:
		if len(f.Fields) == 0 && !f.Open {
			return fmt.Errorf("object field %s declares no properties", path)
		}
		return checkFields(path, f.Fields)
	case Array:
		if f.Items == nil {
			return fmt.Errorf("array field %s has no item definition", path)
		}
		return checkField(path+"[]", *f.Items)
	default:
		return fmt.Errorf("invalid type %q for %s", f.Type, path)
	}
	if len(f.Enum) > 0 && f.Type != String {
		return fmt.Errorf("enum on non-string field %s", path)
	}
	if f.Minimum != nil || f.Maximum != nil {
		if f.Type != Number && f.Type != Integer {
			return fmt.Errorf("bounds on non-numeric field %s", path)
		}
		if f.Minimum != nil && f.Maximum != nil && *f.Minimum > *f.Maximum {
			return fmt.Errorf("minimum exceeds maximum for %s", path)
		}
	}
	return nil
}

func objectSchema(description string, fields []Field, open bool) map[string]interface{} {
	properties := make(map[string]interface{}, len(fields))
	required := []string{}

	for _, f := range fields {
		properties[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	out := map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": open,
	}
	if description != "" {
		out["description"] = description
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func fieldSchema(f Field) map[string]interface{} {
	var out map[string]interface{}

	switch f.Type {
	case Object:
		out = objectSchema(f.Description, f.Fields, f.Open)
	case Array:
		out = map[string]interface{}{
			"type":  "array",
			"items": fieldSchema(*f.Items),
		}
	case Any:
		out = map[string]interface{}{}
	default:
		out = map[string]interface{}{"type": string(f.Type)}
	}

	if f.Description != "" {
		out["description"] = f.Description
	}
	if len(f.Enum) > 0 {
		out["enum"] = f.Enum
	}
	if f.Minimum != nil {
		out["minimum"] = *f.Minimum
	}
	if f.Maximum != nil {
		out["maximum"] = *f.Maximum
	}
	if f.Default != nil {
		out["default"] = f.Default
	}
	return out
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
