package payload

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is the wire shape of an amount.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// NewMoney renders d with two decimal places.
func NewMoney(currency string, d decimal.Decimal) Money {
	return Money{CurrencyCode: currency, Value: FormatAmount(d)}
}

// FormatAmount renders d rounded to two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// amountString converts a user supplied amount to its wire string. Strings are
// kept exactly as given so "10.00" stays "10.00".
func amountString(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if _, err := decimal.NewFromString(s); err != nil {
			return "", fmt.Errorf("%w: %q is not an amount", ErrInvalidUpdateValue, val)
		}
		return s, nil
	case float64:
		return FormatAmount(decimal.NewFromFloat(val)), nil
	case int:
		return FormatAmount(decimal.NewFromInt(int64(val))), nil
	case int64:
		return FormatAmount(decimal.NewFromInt(val)), nil
	default:
		return "", fmt.Errorf("%w: amount of type %T", ErrInvalidUpdateValue, v)
	}
}
