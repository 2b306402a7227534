package chain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ScaleInteger divides an integer amount of the smallest denomination by 10^exponent.
func ScaleInteger(raw string, exponent int32) (decimal.Decimal, error) {
	d, err := ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Shift(-exponent), nil
}

// ParseDecimal parses a decimal amount from its textual form, exponent notation included.
// Empty strings are zero.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return d, nil
}

// NumberToDecimal converts a JSON number using its original text, never a float64.
func NumberToDecimal(n json.Number) (decimal.Decimal, error) {
	return ParseDecimal(n.String())
}
