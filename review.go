package holdem

import (
	"gonum.org/v1/gonum/stat"
)

// Dashboard is an at-a-glance overview of the bankroll and the results.
type Dashboard struct {
	Bankroll     Amount
	Profit       Amount
	Sessions     int
	WinRate      int // percent
	Hours        Hours
	HourlyRate   Amount
	Recent       []Session // most recent first
	StopLossHit  bool      // the latest session lost at least the stop loss
	DailyLossHit bool      // some day lost at least the daily loss limit
	HighContrast bool
}

// DashboardRecentSessions is the number of sessions listed on the dashboard.
const DashboardRecentSessions = 5

// NewDashboard computes the dashboard from the current records.
func NewDashboard(s *Store) *Dashboard {
	sessions := s.Sessions()
	return &Dashboard{
		Bankroll:     BankrollTotal(s.Accounts()),
		Profit:       SessionsProfit(sessions),
		Sessions:     len(sessions),
		WinRate:      WinRate(sessions),
		Hours:        SessionsHours(sessions),
		HourlyRate:   HourlyRate(sessions),
		Recent:       RecentSessions(sessions, DashboardRecentSessions),
		StopLossHit:  LatestSessionLossExceeded(sessions, s.Risk()),
		DailyLossHit: DailyLossExceeded(sessions, s.Risk()),
		HighContrast: s.UI().HighContrast,
	}
}

// Review gathers what helps studying one's game.
type Review struct {
	Leaks       []TagCount // most frequent hand tags
	Trend       []Amount   // profit of the most recent sessions, most recent first
	MeanSession float64    // average session length in hours
	Hands       int
}

// NewReview computes the review from the current records.
func NewReview(s *Store) *Review {
	sessions := s.Sessions()
	r := &Review{
		Leaks: TopLeakTags(s.Hands(), DefaultLeakLimit),
		Trend: RecentTrend(sessions, DefaultTrendLimit),
		Hands: s.Count(KindHand),
	}
	if len(sessions) > 0 {
		hours := make([]float64, len(sessions))
		for i, x := range sessions {
			hours[i] = x.Hours.InexactFloat64()
		}
		r.MeanSession = stat.Mean(hours, nil)
	}
	return r
}
