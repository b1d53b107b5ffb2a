package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks argument documents against a compiled Schema.
type Validator struct {
	schema   Schema
	compiled *gojsonschema.Schema
}

// Compile checks the schema and prepares it for validation.
func Compile(s Schema) (*Validator, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.JSONSchema()))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: s, compiled: compiled}, nil
}

// Schema returns the schema the validator was compiled from.
func (v *Validator) Schema() Schema {
	return v.schema
}

// Validate normalizes raw and validates the result. It never panics on
// malformed input; every failure is reported through the Result.
func (v *Validator) Validate(raw []byte) Result {
	doc, errs := normalize(raw, v.schema.Fields)
	if len(errs) > 0 {
		return Result{errors: errs}
	}

	res, err := v.compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return Result{errors: []FieldError{{Field: rootField, Message: err.Error()}}}
	}

	if !res.Valid() {
		errs := make([]FieldError, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			errs = append(errs, FieldError{Field: e.Field(), Message: e.Description()})
		}
		return Result{errors: errs}
	}

	return Result{value: doc}
}

// Result is either a valid, normalized argument document or a list of errors.
type Result struct {
	value  json.RawMessage
	errors []FieldError
}

// Valid reports whether validation succeeded.
func (r Result) Valid() bool {
	return r.value != nil && len(r.errors) == 0
}

// Value returns the normalized document. It is nil when the result is invalid.
func (r Result) Value() json.RawMessage {
	if !r.Valid() {
		return nil
	}
	return r.value
}

// Errors returns the violations of an invalid result.
func (r Result) Errors() []FieldError {
	return r.errors
}

// Err returns a *ValidationError for an invalid result and nil otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Errors: r.errors}
}

// Decode unmarshals the normalized document into out.
func (r Result) Decode(out interface{}) error {
	if err := r.Err(); err != nil {
		return err
	}
	return json.Unmarshal(r.value, out)
}
