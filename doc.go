// Package holdem provides the records and the analytics of a personal poker
// tracker. It is local-first: everything lives in a single state object that
// the user owns, can back up and restore.
//
// The core functionalities include:
//   - Record Store: accounts, sessions, hands and opponents, plus the risk
//     thresholds and display preferences. Deleting a session deletes its hands.
//   - Player Directory: opponents are identified by name, ignoring case and
//     surrounding spaces, so that recording hands never creates duplicates.
//   - Derivation Engine: stateless functions computing the bankroll, profit,
//     hourly and win rates, stop-loss warnings, and the monthly and rolling
//     series drawn by the chart package.
//   - Import/Export: a pretty-printed JSON backup that round-trips the state.
//
// Money is always an integral Amount in the currency minor unit, only hourly
// rates divide, and they are rounded back to the minor unit.
package holdem
