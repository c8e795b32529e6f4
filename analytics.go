package holdem

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/holdem/date"
)

// This file contains the derivation engine: pure functions computing metrics
// and series out of the records. Nothing is cached, every call recomputes
// from its input.

// BankrollTotal is the sum of all account balances.
func BankrollTotal(accounts []Account) Amount {
	var total Amount
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// SessionsProfit is the sum of all sessions' profit.
func SessionsProfit(sessions []Session) Amount {
	var total Amount
	for _, s := range sessions {
		total += s.Profit()
	}
	return total
}

// SessionsHours is the total time played.
func SessionsHours(sessions []Session) Hours {
	var total Hours
	for _, s := range sessions {
		total = total.Add(s.Hours)
	}
	return total
}

// WinRate is the percentage of winning sessions, rounded. It is 0 without sessions.
func WinRate(sessions []Session) int {
	total := len(sessions)
	if total == 0 {
		return 0
	}
	wins := 0
	for _, s := range sessions {
		if s.Profit() > 0 {
			wins++
		}
	}
	// round(100*wins/total) with halves going up, in integers.
	return (200*wins + total) / (2 * total)
}

// HourlyRate is the overall profit per hour, 0 when no time was played.
func HourlyRate(sessions []Session) Amount {
	return Rate(SessionsProfit(sessions), SessionsHours(sessions))
}

// DailyLossExceeded reports whether the net result of any single date is a
// loss of at least risk.DailyLoss. It is always false when DailyLoss is 0.
func DailyLossExceeded(sessions []Session, risk Risk) bool {
	if risk.DailyLoss <= 0 {
		return false
	}
	byDate := make(map[string]Amount)
	for _, s := range sessions {
		byDate[s.Date] += s.Profit()
	}
	for _, pnl := range byDate {
		if pnl < 0 && pnl.Abs() >= risk.DailyLoss {
			return true
		}
	}
	return false
}

// LatestSessionLossExceeded reports whether the most recent session lost at
// least risk.StopLoss. It is always false when StopLoss is 0.
func LatestSessionLossExceeded(sessions []Session, risk Risk) bool {
	if risk.StopLoss <= 0 || len(sessions) == 0 {
		return false
	}
	latest := SortSessionsByDate(sessions, true)[0]
	return latest.BuyIn-latest.CashOut >= risk.StopLoss
}

// SortSessionsByDate returns a copy of sessions sorted by date, most recent
// first when desc is set. Sessions on the same date keep their insertion order.
func SortSessionsByDate(sessions []Session, desc bool) []Session {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b Session) int {
		if desc {
			return strings.Compare(b.Date, a.Date)
		}
		return strings.Compare(a.Date, b.Date)
	})
	return sorted
}

// RecentSessions returns the n most recent sessions, most recent first.
func RecentSessions(sessions []Session, n int) []Session {
	sorted := SortSessionsByDate(sessions, true)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Series is a chart ready time series: Labels, Profit and Hourly are index aligned.
type Series struct {
	Labels []string
	Profit []Amount
	Hourly []Amount
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Labels) }

// MonthlyAggregate groups sessions by year-month, summing profit and hours.
//
// Sessions whose date is missing or cannot be parsed are left out. Labels
// are sorted ascending; the hourly value is the month's profit per hour.
func MonthlyAggregate(sessions []Session) Series {
	type month struct {
		pnl Amount
		hrs Hours
	}
	months := make(map[string]*month)
	for _, s := range sessions {
		d, err := date.Parse(s.Date)
		if err != nil {
			continue
		}
		k := d.MonthKey()
		m, ok := months[k]
		if !ok {
			m = &month{}
			months[k] = m
		}
		m.pnl += s.Profit()
		m.hrs = m.hrs.Add(s.Hours)
	}
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	series := Series{
		Labels: keys,
		Profit: make([]Amount, len(keys)),
		Hourly: make([]Amount, len(keys)),
	}
	for i, k := range keys {
		series.Profit[i] = months[k].pnl
		series.Hourly[i] = Rate(months[k].pnl, months[k].hrs)
	}
	return series
}

// DefaultRollingWindow is the number of sessions shown in the rolling charts.
const DefaultRollingWindow = 30

// RollingAggregate returns one point per session for the last n sessions by
// date, oldest first. Labels are the month-day of each session.
func RollingAggregate(sessions []Session, n int) Series {
	sorted := SortSessionsByDate(sessions, false)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	series := Series{
		Labels: make([]string, len(sorted)),
		Profit: make([]Amount, len(sorted)),
		Hourly: make([]Amount, len(sorted)),
	}
	for i, s := range sorted {
		series.Labels[i] = sessionLabel(s.Date)
		series.Profit[i] = s.Profit()
		series.Hourly[i] = Rate(s.Profit(), s.Hours)
	}
	return series
}

// sessionLabel shortens a session date to its month-day part.
func sessionLabel(raw string) string {
	if d, err := date.Parse(raw); err == nil {
		return d.Label()
	}
	if len(raw) > 5 {
		return raw[5:]
	}
	return ""
}

// TagCount is a tag and how many hands carry it.
type TagCount struct {
	Tag   string
	Count int
}

// DefaultLeakLimit is the number of tags reported by TopLeakTags in reviews.
const DefaultLeakLimit = 5

// TopLeakTags counts tags over all hands and returns the limit most frequent
// ones. Ties keep the order in which tags were first met.
func TopLeakTags(hands []Hand, limit int) []TagCount {
	var counts []TagCount
	index := make(map[string]int)
	for _, h := range hands {
		for _, t := range h.TagList() {
			i, ok := index[t]
			if !ok {
				i = len(counts)
				index[t] = i
				counts = append(counts, TagCount{Tag: t})
			}
			counts[i].Count++
		}
	}
	slices.SortStableFunc(counts, func(a, b TagCount) int { return cmp.Compare(b.Count, a.Count) })
	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// DefaultTrendLimit is the number of sessions reported by RecentTrend in reviews.
const DefaultTrendLimit = 10

// RecentTrend returns the profit of the limit most recent sessions, most recent first.
func RecentTrend(sessions []Session, limit int) []Amount {
	recent := RecentSessions(sessions, limit)
	trend := make([]Amount, len(recent))
	for i, s := range recent {
		trend[i] = s.Profit()
	}
	return trend
}
