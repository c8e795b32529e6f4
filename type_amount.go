package holdem

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts when none is configured.
var DefaultCurrency = "KRW"

// Amount is a signed monetary value in the minor unit of the currency.
//
// All money in the tracker is integral: sums and threshold comparisons never
// go through floating point.
type Amount int64

// Format returns the display string of the amount in the given currency, like "-₩50,000".
// An unknown currency code falls back to DefaultCurrency.
func (a Amount) Format(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	if cur == nil {
		return decimal.NewFromInt(int64(a)).String()
	}
	return cur.Formatter().Format(int64(a))
}

// String returns the amount formatted in DefaultCurrency.
func (a Amount) String() string { return a.Format(DefaultCurrency) }

// SignedString is like String but always carries a sign, "+" for gains.
func (a Amount) SignedString() string {
	if a > 0 {
		return "+" + a.String()
	}
	return a.String()
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// UnmarshalJSON decodes an amount leniently: a JSON number, or a string holding a number.
// Fractional values are rounded half-up, anything else decodes as 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, ok := parseLenientDecimal(data)
	if !ok {
		*a = 0
		return nil
	}
	*a = Amount(roundHalfUp(d))
	return nil
}

// ParseAmount parses a user provided amount, accepting the same inputs as the JSON decoder.
func ParseAmount(s string) Amount {
	d, ok := parseDecimalString(s)
	if !ok {
		return 0
	}
	return Amount(roundHalfUp(d))
}

// parseLenientDecimal reads a decimal out of a raw JSON value.
func parseLenientDecimal(data []byte) (decimal.Decimal, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return decimal.Zero, false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return decimal.Zero, false
		}
		return parseDecimalString(s)
	}
	return parseDecimalString(string(data))
}

func parseDecimalString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var half = decimal.New(5, -1)

// roundHalfUp rounds to the nearest integer, halves going up (-2.5 -> -2, 2.5 -> 3).
// A result out of the int64 range is 0, like any other invalid input.
func roundHalfUp(d decimal.Decimal) int64 {
	r := d.Add(half).Floor().BigInt()
	if !r.IsInt64() {
		return 0
	}
	return r.Int64()
}
