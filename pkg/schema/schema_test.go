package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func orderSchema() Schema {
	return New(
		Field{Name: "currencyCode", Type: String, Description: "Currency", Required: true},
		Field{Name: "items", Type: Array, Description: "Items", Required: true, Items: &Field{
			Type: Object,
			Fields: []Field{
				{Name: "name", Type: String, Description: "Name", Required: true},
				{Name: "itemCost", Type: Number, Description: "Cost", Required: true},
				{Name: "quantity", Type: Integer, Description: "Quantity", Default: 1},
			},
		}},
		Field{Name: "page", Type: Integer, Description: "Page", Default: 1},
		Field{Name: "intent", Type: String, Description: "Intent", Enum: []string{"CAPTURE", "AUTHORIZE"}},
		Field{Name: "express", Type: Boolean, Description: "Express"},
		Field{Name: "metadata", Type: Object, Description: "Free form", Open: true},
	)
}

func TestSchema_JSONSchema(t *testing.T) {
	doc := orderSchema().JSONSchema()

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Equal(t, []string{"currencyCode", "items"}, doc["required"])

	props := doc["properties"].(map[string]interface{})
	page := props["page"].(map[string]interface{})
	assert.Equal(t, "integer", page["type"])
	assert.Equal(t, 1, page["default"])

	intent := props["intent"].(map[string]interface{})
	assert.Equal(t, []string{"CAPTURE", "AUTHORIZE"}, intent["enum"])

	items := props["items"].(map[string]interface{})
	assert.Equal(t, "array", items["type"])
	elem := items["items"].(map[string]interface{})
	assert.Equal(t, []string{"name", "itemCost"}, elem["required"])

	metadata := props["metadata"].(map[string]interface{})
	assert.Equal(t, true, metadata["additionalProperties"])
}

func TestSchema_Check(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{"empty name", New(Field{Type: String})},
		{"invalid type", New(Field{Name: "x", Type: "date"})},
		{"array without items", New(Field{Name: "x", Type: Array})},
		{"object without properties", New(Field{Name: "x", Type: Object})},
		{"duplicate field", New(Field{Name: "x", Type: String}, Field{Name: "x", Type: Number})},
		{"enum on number", New(Field{Name: "x", Type: Number, Enum: []string{"1"}})},
		{"bounds on string", New(Field{Name: "x", Type: String, Maximum: float64Ptr(3)})},
		{"minimum above maximum", New(Field{Name: "x", Type: Integer, Minimum: float64Ptr(5), Maximum: float64Ptr(1)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.schema.Check())
			_, err := Compile(tt.schema)
			assert.Error(t, err)
		})
	}

	assert.NoError(t, orderSchema().Check())
}

func TestValidator_Coercion(t *testing.T) {
	v, err := Compile(orderSchema())
	require.NoError(t, err)

	res := v.Validate([]byte(`{
		"currencyCode": "USD",
		"items": [{"name": "Mug", "itemCost": " 12.50 ", "quantity": "3"}],
		"express": "TRUE"
	}`))
	require.True(t, res.Valid(), "errors: %v", res.Errors())

	doc := res.Value()
	assert.Equal(t, gjson.Number, gjson.GetBytes(doc, "items.0.itemCost").Type)
	assert.Equal(t, 12.5, gjson.GetBytes(doc, "items.0.itemCost").Float())
	assert.Equal(t, int64(3), gjson.GetBytes(doc, "items.0.quantity").Int())
	assert.True(t, gjson.GetBytes(doc, "express").Bool())
	assert.Equal(t, int64(1), gjson.GetBytes(doc, "page").Int())
}

func TestValidator_NumberToString(t *testing.T) {
	v, err := Compile(New(Field{Name: "quantity", Type: String, Description: "q", Required: true}))
	require.NoError(t, err)

	res := v.Validate([]byte(`{"quantity": 2}`))
	require.True(t, res.Valid())
	assert.JSONEq(t, `{"quantity":"2"}`, string(res.Value()))
}

func TestValidator_NullIsAbsent(t *testing.T) {
	v, err := Compile(orderSchema())
	require.NoError(t, err)

	res := v.Validate([]byte(`{"currencyCode":"USD","items":[{"name":"a","itemCost":1,"quantity":null}],"page":null,"intent":null}`))
	require.True(t, res.Valid(), "errors: %v", res.Errors())

	doc := res.Value()
	assert.Equal(t, int64(1), gjson.GetBytes(doc, "page").Int())
	assert.Equal(t, int64(1), gjson.GetBytes(doc, "items.0.quantity").Int())
	assert.False(t, gjson.GetBytes(doc, "intent").Exists())
}

func TestValidator_PreservesKeyOrder(t *testing.T) {
	v, err := Compile(New(
		Field{Name: "a", Type: Number, Description: "a"},
		Field{Name: "b", Type: Number, Description: "b"},
	))
	require.NoError(t, err)

	res := v.Validate([]byte(`{"b":1,"a":"2"}`))
	require.True(t, res.Valid())
	assert.Equal(t, `{"b":1,"a":2}`, string(res.Value()))
}

func TestValidator_Rejects(t *testing.T) {
	v, err := Compile(orderSchema())
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"missing required", `{"items":[]}`, "currencyCode"},
		{"missing item field", `{"currencyCode":"USD","items":[{"name":"a"}]}`, "itemCost"},
		{"non numeric string", `{"currencyCode":"USD","items":[{"name":"a","itemCost":"ten"}]}`, "items.0.itemCost"},
		{"unknown property", `{"currencyCode":"USD","items":[],"colour":"red"}`, "colour"},
		{"enum violation", `{"currencyCode":"USD","items":[],"intent":"SELL"}`, "intent"},
		{"not json", `{"currencyCode":`, "not valid JSON"},
		{"array root", `[1,2]`, "JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate([]byte(tt.input))
			assert.False(t, res.Valid())
			assert.Nil(t, res.Value())

			err := res.Err()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidator_Bounds(t *testing.T) {
	s := New(Field{Name: "months", Type: Integer, Description: "m", Default: 12, Minimum: float64Ptr(1), Maximum: float64Ptr(36)})

	doc := s.JSONSchema()
	months := doc["properties"].(map[string]interface{})["months"].(map[string]interface{})
	assert.Equal(t, 1.0, months["minimum"])
	assert.Equal(t, 36.0, months["maximum"])

	v, err := Compile(s)
	require.NoError(t, err)

	tests := []struct {
		input string
		valid bool
	}{
		{`{}`, true},
		{`{"months": 1}`, true},
		{`{"months": "36"}`, true},
		{`{"months": 0}`, false},
		{`{"months": 37}`, false},
		{`{"months": "5000"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := v.Validate([]byte(tt.input))
			assert.Equal(t, tt.valid, res.Valid(), "errors: %v", res.Errors())
			if !tt.valid {
				assert.Contains(t, res.Err().Error(), "months")
			}
		})
	}
}

func TestValidator_EmptyInput(t *testing.T) {
	v, err := Compile(New(Field{Name: "page", Type: Integer, Description: "p", Default: 1}))
	require.NoError(t, err)

	for _, input := range []string{"", "null", "  "} {
		res := v.Validate([]byte(input))
		require.True(t, res.Valid(), "input %q", input)
		assert.JSONEq(t, `{"page":1}`, string(res.Value()))
	}
}

func TestResult_Decode(t *testing.T) {
	v, err := Compile(orderSchema())
	require.NoError(t, err)

	var out struct {
		CurrencyCode string `json:"currencyCode"`
		Items        []struct {
			ItemCost float64 `json:"itemCost"`
			Quantity int     `json:"quantity"`
		} `json:"items"`
	}

	res := v.Validate([]byte(`{"currencyCode":"EUR","items":[{"name":"a","itemCost":"4.2"}]}`))
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, "EUR", out.CurrencyCode)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 4.2, out.Items[0].ItemCost)
	assert.Equal(t, 1, out.Items[0].Quantity)

	bad := v.Validate([]byte(`{}`))
	assert.Error(t, bad.Decode(&out))
}

func float64Ptr(v float64) *float64 {
	return &v
}
