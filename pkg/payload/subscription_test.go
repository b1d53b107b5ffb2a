package payload

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subscriptionWithShipping = `{
	"id": "I-123",
	"custom_id": "abc",
	"shipping_amount": {"currency_code": "USD", "value": "5.00"},
	"plan": {"taxes": {"percentage": "10"}}
}`

const subscriptionBare = `{"id": "I-123", "plan": {}}`

func decodeUpdates(t *testing.T, raw string) Updates {
	t.Helper()
	var u Updates
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	return u
}

func TestSubscriptionPatch_ShippingAmountAddOrReplace(t *testing.T) {
	updates := decodeUpdates(t, `{"shippingAmount": "7.50"}`)

	ops, err := SubscriptionPatch(updates, []byte(subscriptionBare), "USD")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, OpAdd, ops[0].Op)
	assert.Equal(t, "/shipping_amount", ops[0].Path)
	assert.Equal(t, Money{CurrencyCode: "USD", Value: "7.50"}, ops[0].Value)

	ops, err = SubscriptionPatch(updates, []byte(subscriptionWithShipping), "USD")
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, OpReplace, ops[0].Op)
	assert.Equal(t, Money{CurrencyCode: "USD", Value: "7.50"}, ops[0].Value)
}

func TestSubscriptionPatch_FixedPriceSequence(t *testing.T) {
	updates := decodeUpdates(t, `{"fixedPrice": {"sequence": 2, "value": "10.00"}}`)

	ops, err := SubscriptionPatch(updates, []byte(subscriptionBare), "USD")
	require.NoError(t, err)
	require.Len(t, ops, 1)

	assert.Equal(t, OpReplace, ops[0].Op)
	assert.Equal(t, "/plan/billing_cycles/@sequence==2/pricing_scheme/fixed_price", ops[0].Path)

	money, ok := ops[0].Value.(Money)
	require.True(t, ok)
	assert.Equal(t, "10.00", money.Value)
	assert.Equal(t, "USD", money.CurrencyCode)

	b, err := json.Marshal(ops[0])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "sequence\":")
}

func TestSubscriptionPatch_FixedPriceDefaultSequence(t *testing.T) {
	updates := decodeUpdates(t, `{"fixedPrice": {"value": 12, "currency_code": "EUR"}}`)

	ops, err := SubscriptionPatch(updates, nil, "USD")
	require.NoError(t, err)
	assert.Equal(t, "/plan/billing_cycles/@sequence==1/pricing_scheme/fixed_price", ops[0].Path)
	assert.Equal(t, Money{CurrencyCode: "EUR", Value: "12.00"}, ops[0].Value)
}

func TestSubscriptionPatch_AddOnlyForEligibleFields(t *testing.T) {
	updates := decodeUpdates(t, `{
		"customId": "new",
		"taxesPercentage": "12",
		"taxesInclusive": true,
		"paymentFailureThreshold": 3,
		"autoBillOutstanding": false,
		"outstandingBalance": "1.00",
		"shippingAddress": {"address": {"country_code": "US"}}
	}`)

	ops, err := SubscriptionPatch(updates, []byte(subscriptionWithShipping), "USD")
	require.NoError(t, err)
	require.Len(t, ops, 7)

	got := make([][2]string, 0, len(ops))
	for _, op := range ops {
		got = append(got, [2]string{op.Op, op.Path})
	}

	assert.Equal(t, [][2]string{
		{OpReplace, "/custom_id"},
		{OpReplace, "/plan/taxes/percentage"},
		{OpAdd, "/plan/taxes/inclusive"},
		{OpReplace, "/plan/payment_preferences/payment_failure_threshold"},
		{OpReplace, "/plan/payment_preferences/auto_bill_outstanding"},
		{OpReplace, "/billing_info/outstanding_balance"},
		{OpAdd, "/subscriber/shipping_address"},
	}, got)

	assert.Equal(t, float64(3), ops[3].Value)
	assert.Equal(t, false, ops[4].Value)
	assert.Equal(t, Money{CurrencyCode: "USD", Value: "1.00"}, ops[5].Value)
	assert.Equal(t, map[string]interface{}{"address": map[string]interface{}{"country_code": "US"}}, ops[6].Value)

	b, err := json.Marshal(ops[4])
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"replace","path":"/plan/payment_preferences/auto_bill_outstanding","value":false}`, string(b))
}

func TestSubscriptionPatch_PreservesInputOrder(t *testing.T) {
	first := decodeUpdates(t, `{"taxesPercentage": "5", "customId": "x", "shippingAmount": "1"}`)
	second := decodeUpdates(t, `{"shippingAmount": "1", "taxesPercentage": "5", "customId": "x"}`)

	paths := func(u Updates) []string {
		ops, err := SubscriptionPatch(u, nil, "USD")
		require.NoError(t, err)
		out := []string{}
		for _, op := range ops {
			out = append(out, op.Path)
		}
		return out
	}

	assert.Equal(t, []string{"/plan/taxes/percentage", "/custom_id", "/shipping_amount"}, paths(first))
	assert.Equal(t, []string{"/shipping_amount", "/plan/taxes/percentage", "/custom_id"}, paths(second))
}

func TestSubscriptionPatch_UnknownFieldFails(t *testing.T) {
	updates := decodeUpdates(t, `{"customId": "x", "nickname": "y"}`)

	ops, err := SubscriptionPatch(updates, nil, "USD")
	assert.Nil(t, ops)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownUpdateField))
	assert.Contains(t, err.Error(), "nickname")
}

func TestSubscriptionPatch_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"non numeric amount", `{"shippingAmount": "lots"}`},
		{"bool amount", `{"outstandingBalance": true}`},
		{"fractional sequence", `{"fixedPrice": {"sequence": 1.5, "value": "1"}}`},
		{"zero sequence", `{"fixedPrice": {"sequence": 0, "value": "1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := SubscriptionPatch(decodeUpdates(t, tt.raw), nil, "USD")
			assert.Nil(t, ops)
			assert.ErrorIs(t, err, ErrInvalidUpdateValue)
		})
	}
}

func TestUpdates_JSONRoundTrip(t *testing.T) {
	raw := `{"shippingAmount":"1.00","customId":"c","fixedPrice":{"sequence":2,"value":"3"}}`
	u := decodeUpdates(t, raw)

	require.Len(t, u, 3)
	assert.Equal(t, "shippingAmount", u[0].Field)
	assert.Equal(t, "customId", u[1].Field)
	assert.Equal(t, "fixedPrice", u[2].Field)

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, raw, string(b))

	var bad Updates
	assert.Error(t, json.Unmarshal([]byte(`["customId"]`), &bad))
}

func TestSubscriptionUpdateFields(t *testing.T) {
	fields := SubscriptionUpdateFields()
	assert.Len(t, fields, 9)
	assert.Contains(t, fields, "shippingAmount")
	assert.Contains(t, fields, "fixedPrice")
}
