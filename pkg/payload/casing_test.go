package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"pageSize":       "page_size",
		"addressLine1":   "address_line_1",
		"adminArea2":     "admin_area_2",
		"currencyCode":   "currency_code",
		"already_snake":  "already_snake",
		"address_line_1": "address_line_1",
		"name":           "name",
		"":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"page_size":      "pageSize",
		"address_line_1": "addressLine1",
		"total_required": "totalRequired",
		"name":           "name",
		"_private_key":   "_privateKey",
		"":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, CamelCase(in), in)
	}
}

func TestToSnakeCaseKeys_Nested(t *testing.T) {
	in := map[string]interface{}{
		"productId": "PROD-1",
		"billingCycles": []interface{}{
			map[string]interface{}{
				"tenureType": "REGULAR",
				"pricingScheme": map[string]interface{}{
					"fixedPrice": map[string]interface{}{"currencyCode": "USD", "value": "10"},
				},
			},
		},
		"tags": []interface{}{"someTag", 3.0},
		"0":    "indexLike",
	}

	want := map[string]interface{}{
		"product_id": "PROD-1",
		"billing_cycles": []interface{}{
			map[string]interface{}{
				"tenure_type": "REGULAR",
				"pricing_scheme": map[string]interface{}{
					"fixed_price": map[string]interface{}{"currency_code": "USD", "value": "10"},
				},
			},
		},
		"tags": []interface{}{"someTag", 3.0},
		"0":    "indexLike",
	}

	assert.Equal(t, want, ToSnakeCaseKeys(in))
	// input is not mutated
	assert.Contains(t, in, "productId")
}

func TestCaseKeys_RoundTrip(t *testing.T) {
	values := []interface{}{
		map[string]interface{}{},
		map[string]interface{}{"a": 1.0},
		map[string]interface{}{
			"invoiceId": "INV2-1",
			"primaryRecipients": []interface{}{
				map[string]interface{}{
					"billingInfo": map[string]interface{}{
						"emailAddress": "a@example.com",
						"name":         map[string]interface{}{"givenName": "Ada", "surname": "L"},
					},
				},
			},
			"shippingAddress": map[string]interface{}{"addressLine1": "x", "adminArea2": "y"},
			"amounts":         []interface{}{[]interface{}{1.0, "two"}, nil, true},
		},
		[]interface{}{map[string]interface{}{"nestedKey": []interface{}{map[string]interface{}{"deepKey": nil}}}},
		"leaf",
		42.0,
		nil,
	}

	for _, v := range values {
		assert.Equal(t, v, ToCamelCaseKeys(ToSnakeCaseKeys(v)))
	}
}

func TestToSnakeCaseKeys_MapSlice(t *testing.T) {
	in := []map[string]interface{}{{"trackingNumber": "1Z"}}
	assert.Equal(t, []interface{}{map[string]interface{}{"tracking_number": "1Z"}}, ToSnakeCaseKeys(in))
}
