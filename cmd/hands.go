package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
)

type handCmd struct {
	session  string
	hole     string
	position string
	line     string
	pot      amountFlag
	result   amountFlag
	tags     string
	notes    string
	opponent string
}

func (*handCmd) Name() string     { return "hand" }
func (*handCmd) Synopsis() string { return "record a notable hand" }
func (*handCmd) Usage() string {
	return `holdem hand [-session <id>] -hole <cards> [-position <pos>] [-line <action line>] [-pot <amount>] [-result <amount>] [-tags <t1,t2>] [-opponent <name>] [-notes <text>]

  Records a hand played during a session, the most recent one by default.
  The opponent is looked up by name, ignoring case, and created if unknown.
`
}

func (c *handCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.session, "session", "", "Id of the session, defaults to the most recent one")
	f.StringVar(&c.hole, "hole", "", "Hole cards, like 'As Ks'")
	f.StringVar(&c.position, "position", "", "Position at the table, like BTN")
	f.StringVar(&c.line, "line", "", "Summary of the action")
	f.Var(&c.pot, "pot", "Final pot")
	f.Var(&c.result, "result", "Net result of the hand, negative for a loss")
	f.StringVar(&c.tags, "tags", "", "Comma separated tags used to spot leaks")
	f.StringVar(&c.opponent, "opponent", "", "Name of the main opponent")
	f.StringVar(&c.notes, "notes", "", "Free notes")
}

func (c *handCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}

	sessionID := c.session
	if sessionID == "" {
		recent := holdem.RecentSessions(w.store.Sessions(), 1)
		if len(recent) == 0 {
			w.close()
			fmt.Fprintln(stderr, "Error: record a session first")
			return subcommands.ExitFailure
		}
		sessionID = recent[0].ID
	} else if _, ok := w.store.Session(sessionID); !ok {
		w.close()
		fmt.Fprintf(stderr, "Error: session %q not found\n", sessionID)
		return subcommands.ExitFailure
	}

	h := w.store.RecordHand(holdem.HandInput{
		SessionID:    sessionID,
		Hole:         c.hole,
		Position:     c.position,
		Line:         c.line,
		Pot:          c.pot.Amount,
		Result:       c.result.Amount,
		Tags:         c.tags,
		Notes:        c.notes,
		OpponentName: c.opponent,
	})
	opponent := w.store.HandOpponentName(h)

	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	if opponent != "" {
		fmt.Fprintf(stdout, "✅ Saved hand %s against %s\n", h.ID, opponent)
	} else {
		fmt.Fprintf(stdout, "✅ Saved hand %s\n", h.ID)
	}
	return subcommands.ExitSuccess
}

type handsCmd struct{}

func (*handsCmd) Name() string     { return "hands" }
func (*handsCmd) Synopsis() string { return "list recorded hands" }
func (*handsCmd) Usage() string {
	return `holdem hands

  Lists all hands, most recently recorded first.
`
}
func (*handsCmd) SetFlags(f *flag.FlagSet) {}

func (*handsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()
	printMarkdown(renderer.HandsMarkdown(w.store, renderer.Options{Currency: w.cfg.Currency}), w.store.UI().HighContrast)
	return subcommands.ExitSuccess
}
