package chart

import (
	"errors"
	"fmt"

	"github.com/etnz/holdem"
)

// Panel identifies one of the four charts of the board.
type Panel int

const (
	MonthlyProfit Panel = iota
	MonthlyHourly
	RollingProfit
	RollingHourly
)

// Panels lists all panels in display order.
var Panels = []Panel{MonthlyProfit, MonthlyHourly, RollingProfit, RollingHourly}

// String returns the panel's name, also used as a file name stem.
func (p Panel) String() string {
	switch p {
	case MonthlyProfit:
		return "month-pnl"
	case MonthlyHourly:
		return "month-hourly"
	case RollingProfit:
		return "last30-pnl"
	case RollingHourly:
		return "last30-hourly"
	default:
		return fmt.Sprintf("panel(%d)", int(p))
	}
}

// ParsePanel is the inverse of Panel.String.
func ParsePanel(s string) (Panel, error) {
	for _, p := range Panels {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown chart %q", s)
}

type series struct {
	labels []string
	values []int64
	unit   string
}

// Board holds the series of the four charts.
//
// The series are computed once, from the records, by NewBoard; Render only
// draws them, so that a surface resize never goes back to the records.
type Board struct {
	series map[Panel]series
}

// NewBoard prepares the board from the monthly and the rolling aggregates.
func NewBoard(monthly, rolling holdem.Series) *Board {
	return &Board{series: map[Panel]series{
		MonthlyProfit: {monthly.Labels, amounts(monthly.Profit), DefaultUnit},
		MonthlyHourly: {monthly.Labels, amounts(monthly.Hourly), HourlyUnit},
		RollingProfit: {rolling.Labels, amounts(rolling.Profit), DefaultUnit},
		RollingHourly: {rolling.Labels, amounts(rolling.Hourly), HourlyUnit},
	}}
}

// NewBoardFrom computes the aggregates of s and prepares the board.
func NewBoardFrom(s *holdem.Store) *Board {
	sessions := s.Sessions()
	return NewBoard(holdem.MonthlyAggregate(sessions), holdem.RollingAggregate(sessions, holdem.DefaultRollingWindow))
}

// Len returns the number of points of panel p.
func (b *Board) Len(p Panel) int { return len(b.series[p].values) }

// Render draws each panel on its target surface. Panels without a target
// are skipped.
func (b *Board) Render(targets map[Panel]Surface) error {
	var errs []error
	for _, p := range Panels {
		s, ok := targets[p]
		if !ok || s == nil {
			continue
		}
		ser := b.series[p]
		if err := Draw(s, ser.labels, ser.values, Options{Unit: ser.unit}); err != nil {
			errs = append(errs, fmt.Errorf("chart %v: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

func amounts(as []holdem.Amount) []int64 {
	vs := make([]int64, len(as))
	for i, a := range as {
		vs[i] = int64(a)
	}
	return vs
}
