package holdem

import (
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Hours is a played duration in hours, kept exact (4.5 hours stays 4.5).
type Hours struct {
	value decimal.Decimal
}

// H returns the Hours for value.
func H[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Hours {
	return hoursOf(newDecimal(value))
}

// hoursOf wraps d, every zero being the zero Hours.
func hoursOf(d decimal.Decimal) Hours {
	if d.IsZero() {
		return Hours{}
	}
	return Hours{value: d}
}

// ParseHours parses a user provided duration, invalid input is 0.
func ParseHours(s string) Hours {
	d, ok := parseDecimalString(s)
	if !ok {
		return Hours{}
	}
	return hoursOf(d)
}

func (h Hours) Add(o Hours) Hours       { return hoursOf(h.value.Add(o.value)) }
func (h Hours) Equal(o Hours) bool      { return h.value.Equal(o.value) }
func (h Hours) IsPositive() bool        { return h.value.IsPositive() }
func (h Hours) IsZero() bool            { return h.value.IsZero() }
func (h Hours) InexactFloat64() float64 { return h.value.InexactFloat64() }
func (h Hours) String() string          { return h.value.String() }

// MarshalJSON encodes the hours as a plain JSON number.
func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(h.value.String()), nil
}

// UnmarshalJSON decodes hours leniently, see Amount.UnmarshalJSON.
func (h *Hours) UnmarshalJSON(data []byte) error {
	d, ok := parseLenientDecimal(data)
	if !ok {
		*h = Hours{}
		return nil
	}
	*h = hoursOf(d)
	return nil
}

// Rate returns amount per hour rounded half-up to the minor unit.
// It is 0 when hours is zero or negative.
func Rate(amount Amount, hours Hours) Amount {
	if !hours.IsPositive() {
		return 0
	}
	return Amount(roundHalfUp(decimal.NewFromInt(int64(amount)).Div(hours.value)))
}
