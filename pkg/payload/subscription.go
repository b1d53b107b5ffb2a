package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	OpAdd     = "add"
	OpReplace = "replace"

	sequencePlaceholder = "{sequence}"
)

// PatchOperation is one JSON-Patch style instruction.
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

type subscriptionPath struct {
	field string
	path  string
	// addIfMissing switches the op to "add" when the path is undefined in the
	// current subscription.
	addIfMissing bool
	money        bool
}

var subscriptionPaths = []subscriptionPath{
	{field: "outstandingBalance", path: "/billing_info/outstanding_balance", money: true},
	{field: "customId", path: "/custom_id", addIfMissing: true},
	{field: "fixedPrice", path: "/plan/billing_cycles/@sequence==" + sequencePlaceholder + "/pricing_scheme/fixed_price", money: true},
	{field: "paymentFailureThreshold", path: "/plan/payment_preferences/payment_failure_threshold"},
	{field: "autoBillOutstanding", path: "/plan/payment_preferences/auto_bill_outstanding"},
	{field: "taxesInclusive", path: "/plan/taxes/inclusive", addIfMissing: true},
	{field: "taxesPercentage", path: "/plan/taxes/percentage", addIfMissing: true},
	{field: "shippingAmount", path: "/shipping_amount", addIfMissing: true, money: true},
	{field: "shippingAddress", path: "/subscriber/shipping_address", addIfMissing: true},
}

// SubscriptionUpdateFields lists the updatable field names in table order.
func SubscriptionUpdateFields() []string {
	names := make([]string, 0, len(subscriptionPaths))
	for _, p := range subscriptionPaths {
		names = append(names, p.field)
	}
	return names
}

func lookupSubscriptionPath(field string) (subscriptionPath, bool) {
	for _, p := range subscriptionPaths {
		if p.field == field {
			return p, true
		}
	}
	return subscriptionPath{}, false
}

// Update is one requested field change.
type Update struct {
	Field string
	Value interface{}
}

// Updates is an ordered set of field changes. It decodes from a JSON object and
// keeps the object's key order.
type Updates []Update

// UnmarshalJSON decodes a JSON object keeping key order.
func (u *Updates) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("updates must be a JSON object")
	}

	out := Updates{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in updates", tok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("update %s: %w", key, err)
		}
		out = append(out, Update{Field: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*u = out
	return nil
}

// MarshalJSON encodes the updates as a JSON object in their order.
func (u Updates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, up := range u {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(up.Field)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(up.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SubscriptionPatch builds the patch operations for updates, in update order.
// current is the JSON of the subscription as the API returns it and decides
// between "add" and "replace" for fields that may be unset. currency is used
// for money values that do not carry their own currency code.
//
// An unknown field fails the whole call; no partial list is returned.
func SubscriptionPatch(updates Updates, current []byte, currency string) ([]PatchOperation, error) {
	ops := make([]PatchOperation, 0, len(updates))

	for _, up := range updates {
		target, ok := lookupSubscriptionPath(up.Field)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUpdateField, up.Field)
		}

		path := target.path
		value := up.Value

		if strings.Contains(path, sequencePlaceholder) {
			seq, rest, err := splitSequence(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", up.Field, err)
			}
			path = strings.Replace(path, sequencePlaceholder, strconv.Itoa(seq), 1)
			value = rest
		}

		if target.money {
			m, err := wrapMoney(value, currency)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", up.Field, err)
			}
			value = m
		}

		op := OpReplace
		if target.addIfMissing && !pathDefined(current, path) {
			op = OpAdd
		}

		ops = append(ops, PatchOperation{Op: op, Path: path, Value: value})
	}

	return ops, nil
}

// pathDefined walks a slash path against doc. Missing at any segment means
// undefined.
func pathDefined(doc []byte, path string) bool {
	if len(doc) == 0 {
		return false
	}
	dotted := strings.ReplaceAll(strings.Trim(path, "/"), "/", ".")
	return gjson.GetBytes(doc, dotted).Exists()
}

// splitSequence pulls the billing cycle sequence (default 1) out of a fixed
// price value. A scalar value has no sequence.
func splitSequence(value interface{}) (int, interface{}, error) {
	obj, ok := value.(map[string]interface{})
	if !ok {
		return 1, value, nil
	}

	seq := 1
	rest := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		if k != "sequence" {
			rest[k] = v
			continue
		}
		n, ok := v.(float64)
		if !ok || n < 1 || n != float64(int(n)) {
			return 0, nil, fmt.Errorf("%w: sequence must be a positive integer", ErrInvalidUpdateValue)
		}
		seq = int(n)
	}

	return seq, rest, nil
}

func wrapMoney(value interface{}, currency string) (Money, error) {
	if obj, ok := value.(map[string]interface{}); ok {
		if c, ok := obj["currency_code"].(string); ok && c != "" {
			currency = c
		} else if c, ok := obj["currencyCode"].(string); ok && c != "" {
			currency = c
		}
		value = obj["value"]
	}

	amount, err := amountString(value)
	if err != nil {
		return Money{}, err
	}
	if currency == "" {
		return Money{}, fmt.Errorf("%w: currency code is required", ErrInvalidUpdateValue)
	}

	return Money{CurrencyCode: currency, Value: amount}, nil
}
