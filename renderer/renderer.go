// Package renderer turns the tracker's records and reports into markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holdem"
	"github.com/shopspring/decimal"
)

// Options holds configuration shared by all renderers.
type Options struct {
	Currency string // display currency code, holdem.DefaultCurrency if empty
}

func (o Options) money(a holdem.Amount) string {
	if o.Currency == "" {
		return a.String()
	}
	return a.Format(o.Currency)
}

func (o Options) signed(a holdem.Amount) string {
	if a > 0 {
		return "+" + o.money(a)
	}
	return o.money(a)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// cell makes s safe for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

var thousand = decimal.NewFromInt(1000)

// TrendString renders session profits in thousands, like "+150k | -200k".
// It is "-" when there is nothing to show.
func TrendString(trend []holdem.Amount) string {
	if len(trend) == 0 {
		return "-"
	}
	parts := make([]string, len(trend))
	for i, x := range trend {
		k := decimal.NewFromInt(int64(x.Abs())).Div(thousand).Round(0).String()
		if x >= 0 {
			parts[i] = "+" + k + "k"
		} else {
			parts[i] = "-" + k + "k"
		}
	}
	return strings.Join(parts, " | ")
}

// LeaksString renders tag counts like "overplay(3), tilt(1)". It is "-" when
// there is nothing to show.
func LeaksString(tags []holdem.TagCount) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("%s(%d)", t.Tag, t.Count)
	}
	return strings.Join(parts, ", ")
}
