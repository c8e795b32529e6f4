package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/date"
	"github.com/shopspring/decimal"
)

// setFlags returns the names of the flags explicitly set on the command line.
func setFlags(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

func checkNumber(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

// amountFlag is an amount in the currency minor unit.
type amountFlag struct{ holdem.Amount }

func (a *amountFlag) Set(s string) error {
	if err := checkNumber(s); err != nil {
		return err
	}
	a.Amount = holdem.ParseAmount(s)
	return nil
}

// hoursFlag is a duration in hours, like 4.5.
type hoursFlag struct{ holdem.Hours }

func (h *hoursFlag) Set(s string) error {
	if err := checkNumber(s); err != nil {
		return err
	}
	h.Hours = holdem.ParseHours(s)
	return nil
}

// dateFlag is a day like 2024-01-05, lenient on leading zeros.
type dateFlag struct{ date.Date }

func (d *dateFlag) Set(s string) error {
	v, err := date.Parse(s)
	if err != nil {
		return err
	}
	d.Date = v
	return nil
}
