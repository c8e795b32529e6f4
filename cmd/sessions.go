package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/date"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct {
	id       string
	date     dateFlag
	location string
	game     string
	blinds   string
	buyIn    amountFlag
	cashOut  amountFlag
	hours    hoursFlag
	notes    string
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "record or edit a session" }
func (*sessionCmd) Usage() string {
	return `holdem session [-d <date>] -location <place> [-game cash|tournament] -blinds <sb/bb> -buyin <amount> -cashout <amount> -hours <h> [-notes <text>]
holdem session -id <id> [flags to change]

  Records a session played on the given day (today by default), or edits
  the session with the given id. Only the flags given on the command line
  are changed. Amounts are in the currency minor unit.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	c.date.Date = date.Of(now())
	f.StringVar(&c.id, "id", "", "Id of the session to edit")
	f.Var(&c.date, "d", "Day of the session")
	f.StringVar(&c.location, "location", "", "Where the session was played")
	f.StringVar(&c.game, "game", "cash", "Game type")
	f.StringVar(&c.blinds, "blinds", "", "Blinds, like 1/2")
	f.Var(&c.buyIn, "buyin", "Total buy-in")
	f.Var(&c.cashOut, "cashout", "Cash-out")
	f.Var(&c.hours, "hours", "Hours played, like 4.5")
	f.StringVar(&c.notes, "notes", "", "Free notes")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}

	set := setFlags(f)
	var x holdem.Session
	if c.id != "" {
		var ok bool
		if x, ok = w.store.Session(c.id); !ok {
			w.close()
			fmt.Fprintf(stderr, "Error: session %q not found\n", c.id)
			return subcommands.ExitFailure
		}
	} else {
		// a new session gets every field, defaults included.
		set = map[string]bool{"d": true, "location": true, "game": true, "blinds": true, "buyin": true, "cashout": true, "hours": true, "notes": true}
	}
	if set["d"] {
		x.Date = c.date.String()
	}
	if set["location"] {
		x.Location = strings.TrimSpace(c.location)
	}
	if set["game"] {
		x.GameType = strings.TrimSpace(c.game)
	}
	if set["blinds"] {
		x.Blinds = strings.TrimSpace(c.blinds)
	}
	if set["buyin"] {
		x.BuyIn = c.buyIn.Amount
	}
	if set["cashout"] {
		x.CashOut = c.cashOut.Amount
	}
	if set["hours"] {
		x.Hours = c.hours.Hours
	}
	if set["notes"] {
		x.Notes = strings.TrimSpace(c.notes)
	}
	x = w.store.UpsertSession(x)

	sessions := w.store.Sessions()
	risk := w.store.Risk()
	stopLoss := holdem.LatestSessionLossExceeded(sessions, risk)
	dailyLoss := holdem.DailyLossExceeded(sessions, risk)

	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "✅ Saved session %s on %s: %s\n", x.ID, x.Date, signed(x.Profit(), w.cfg.Currency))
	if stopLoss {
		fmt.Fprintf(stdout, "⚠️  %s\n", renderer.StopLossWarning)
	}
	if dailyLoss {
		fmt.Fprintf(stdout, "⚠️  %s\n", renderer.DailyLossWarning)
	}
	return subcommands.ExitSuccess
}

func signed(a holdem.Amount, cur string) string {
	if a > 0 {
		return "+" + a.Format(cur)
	}
	return a.Format(cur)
}

type sessionsCmd struct{}

func (*sessionsCmd) Name() string     { return "sessions" }
func (*sessionsCmd) Synopsis() string { return "list sessions" }
func (*sessionsCmd) Usage() string {
	return `holdem sessions

  Lists all sessions, most recent first.
`
}
func (*sessionsCmd) SetFlags(f *flag.FlagSet) {}

func (*sessionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()
	printMarkdown(renderer.SessionsMarkdown(w.store, renderer.Options{Currency: w.cfg.Currency}), w.store.UI().HighContrast)
	return subcommands.ExitSuccess
}
