package holdem

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		json string
		want Amount
	}{
		{`150000`, 150000},
		{`-200000`, -200000},
		{`"1500"`, 1500},
		{`" 42 "`, 42},
		{`2.5`, 3},
		{`-2.5`, -2},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
		{`true`, 0},
		{`1e30`, 0},
		{`-1e30`, 0},
		{`"9223372036854775808"`, 0},
		{`9223372036854775807`, 9223372036854775807},
	}
	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			a := Amount(7)
			if err := json.Unmarshal([]byte(tt.json), &a); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.json, err)
			}
			if a != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.json, a, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{"50000", 50000},
		{" -1200 ", -1200},
		{"10.49", 10},
		{"", 0},
		{"12k", 0},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAmountFormat(t *testing.T) {
	if got := Amount(50000).Format("KRW"); !strings.Contains(got, "50,000") || strings.HasPrefix(got, "-") {
		t.Errorf("Format(KRW) = %q, want a positive 50,000", got)
	}
	if got := Amount(-50000).Format("KRW"); !strings.HasPrefix(got, "-") || !strings.Contains(got, "50,000") {
		t.Errorf("Format(KRW) = %q, want a negative 50,000", got)
	}
	// USD has two decimals, the amount is in cents.
	if got := Amount(123456).Format("USD"); !strings.Contains(got, "1,234.56") {
		t.Errorf("Format(USD) = %q, want 1,234.56", got)
	}
	if got, want := Amount(10).Format("XXX-unknown"), Amount(10).Format(DefaultCurrency); got != want {
		t.Errorf("Format(unknown) = %q, want the default currency %q", got, want)
	}
	if got := Amount(10).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString() = %q, want a leading +", got)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		amount Amount
		hours  Hours
		want   Amount
	}{
		{150000, H(4.5), 33333},
		{-200000, H(5), -40000},
		{-50000, H(9.5), -5263},
		{1, H(2), 1},
		{-1, H(2), 0},
		{1000, H(0), 0},
		{1000, H(-1), 0},
	}
	for _, tt := range tests {
		if got := Rate(tt.amount, tt.hours); got != tt.want {
			t.Errorf("Rate(%d, %v) = %d, want %d", tt.amount, tt.hours, got, tt.want)
		}
	}
}

func TestHoursJSON(t *testing.T) {
	var h Hours
	for _, in := range []string{`4.5`, `"4.5"`} {
		if err := json.Unmarshal([]byte(in), &h); err != nil || !h.Equal(H(4.5)) {
			t.Errorf("Unmarshal(%s) = %v, %v, want 4.5", in, h, err)
		}
	}
	data, err := json.Marshal(H(4.5))
	if err != nil || string(data) != "4.5" {
		t.Errorf("Marshal(4.5) = %s, %v", data, err)
	}
}

func TestHoursZeroIsCanonical(t *testing.T) {
	zeros := map[string]Hours{
		"H(0)":       H(0),
		"H(0.0)":     H(0.0),
		"ParseHours": ParseHours("0"),
		"Add":        H(1.5).Add(H(-1.5)),
		"unset":      ParseHours(""),
	}
	for _, in := range []string{`0`, `"0.0"`, `-0`} {
		var h Hours
		if err := json.Unmarshal([]byte(in), &h); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", in, err)
		}
		zeros["Unmarshal "+in] = h
	}
	for name, h := range zeros {
		if !reflect.DeepEqual(h, Hours{}) {
			t.Errorf("%s = %#v, want the zero Hours", name, h)
		}
	}
}
