package renderer

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/etnz/holdem"
	md "github.com/nao1215/markdown"
)

// SessionsMarkdown renders all sessions, most recent first.
func SessionsMarkdown(s *holdem.Store, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	sessions := holdem.SortSessionsByDate(s.Sessions(), true)
	doc.H1("Sessions")
	if len(sessions) == 0 {
		doc.PlainText("No sessions recorded.")
		return doc.String()
	}
	doc.Table(sessionTable(sessions, opts, true))
	doc.PlainText(fmt.Sprintf("Total: %s over %s hours.",
		opts.signed(holdem.SessionsProfit(sessions)), holdem.SessionsHours(sessions)))
	return doc.String()
}

// HandsMarkdown renders all hands, most recently recorded first, with their
// session and opponent. A hand whose session or opponent is gone shows
// empty cells.
func HandsMarkdown(s *holdem.Store, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	hands := s.Hands()
	slices.SortStableFunc(hands, func(a, b holdem.Hand) int { return cmp.Compare(b.CreatedAt, a.CreatedAt) })

	doc.H1("Hands")
	if len(hands) == 0 {
		doc.PlainText("No hands recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header: []string{"Date", "Session", "Opponent", "Hole", "Position", "Line", "Pot", "Result", "Tags", "Notes", "ID"},
	}
	for _, h := range hands {
		date, label := s.HandSession(h)
		table.Rows = append(table.Rows, []string{
			cell(date),
			cell(label),
			cell(s.HandOpponentName(h)),
			cell(h.Hole),
			cell(h.Position),
			cell(h.Line),
			opts.money(h.Pot),
			opts.signed(h.Result),
			cell(h.Tags),
			cell(truncate(h.Notes, 40)),
			h.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}

// AccountsMarkdown renders the accounts and the bankroll they add up to.
func AccountsMarkdown(s *holdem.Store, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	accounts := s.Accounts()
	doc.H1("Accounts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Name", "Type", "Balance", "ID"},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{cell(a.Name), string(a.Type), opts.money(a.Balance), a.ID})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Bankroll"), "", md.Bold(opts.money(holdem.BankrollTotal(accounts))), ""})
	doc.Table(table)
	return doc.String()
}

// PlayersMarkdown renders the players matching query, most recently seen first.
func PlayersMarkdown(s *holdem.Store, query string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	players := s.SearchPlayers(query)
	doc.H1("Players")
	if len(players) == 0 {
		if query != "" {
			doc.PlainText(fmt.Sprintf("No player matches %q.", query))
		} else {
			doc.PlainText("No players recorded.")
		}
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Name", "Site", "Tags", "Notes", "Last Seen", "Hands", "Color"},
	}
	for _, p := range players {
		table.Rows = append(table.Rows, []string{
			cell(p.Name),
			cell(p.Site),
			cell(p.Tags),
			cell(truncate(p.Notes, 80)),
			lastSeen(p.LastSeen),
			fmt.Sprint(p.HandCount),
			p.Color,
		})
	}
	doc.Table(table)
	return doc.String()
}

func lastSeen(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
