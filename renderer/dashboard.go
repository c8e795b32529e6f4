package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdem"
	md "github.com/nao1215/markdown"
)

// Warnings shown on the dashboard.
const (
	StopLossWarning  = "Session stop loss reached"
	DailyLossWarning = "Daily loss limit reached"
)

// DashboardMarkdown renders the dashboard: metrics, risk warnings and the
// most recent sessions.
func DashboardMarkdown(d *holdem.Dashboard, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdem Tracker")
	if d.StopLossHit {
		doc.Blockquote(md.Bold(StopLossWarning))
	}
	if d.DailyLossHit {
		doc.Blockquote(md.Bold(DailyLossWarning))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Bankroll"), md.Bold(opts.money(d.Bankroll))},
		Rows: [][]string{
			{"Total Profit", opts.signed(d.Profit)},
			{"Sessions", fmt.Sprint(d.Sessions)},
			{"Win Rate", fmt.Sprintf("%d%%", d.WinRate)},
			{"Hours Played", d.Hours.String()},
			{"Hourly Rate", opts.money(d.HourlyRate) + "/h"},
		},
	})

	doc.H2("Recent Sessions")
	doc.Table(sessionTable(d.Recent, opts, false))
	return doc.String()
}

// sessionTable lists sessions as given. The long form adds hours and notes.
func sessionTable(sessions []holdem.Session, opts Options, long bool) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Location", "Game", "Blinds", "Buy-in", "Cash-out", "Profit"},
	}
	if long {
		table.Alignment = append(table.Alignment, md.AlignRight, md.AlignLeft, md.AlignLeft)
		table.Header = append(table.Header, "Hours", "Notes", "ID")
	}
	for _, s := range sessions {
		row := []string{
			cell(s.Date),
			cell(s.Location),
			cell(s.GameType),
			cell(s.Blinds),
			opts.money(s.BuyIn),
			opts.money(s.CashOut),
			opts.signed(s.Profit()),
		}
		if long {
			row = append(row, s.Hours.String(), cell(truncate(s.Notes, 40)), s.ID)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
