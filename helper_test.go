package holdem

import (
	"fmt"
	"time"
)

// testNow is the fixed clock of stores created by newTestStore.
var testNow = time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)

// newTestStore creates a store with a fixed clock and predictable ids ("id1", "id2", ...).
func newTestStore() *Store {
	n := 0
	return NewStore(
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id%d", n) }),
	)
}

// session is a helper for test to create a session from const.
func session(date string, buyIn, cashOut Amount, hours float64) Session {
	return Session{Date: date, BuyIn: buyIn, CashOut: cashOut, Hours: H(hours)}
}

// scenario returns the two sessions used throughout the tests:
// +150000 in 4.5h on 2024-01-05 and -200000 in 5h on 2024-01-06.
func scenario() []Session {
	return []Session{
		session("2024-01-05", 200000, 350000, 4.5),
		session("2024-01-06", 500000, 300000, 5.0),
	}
}
