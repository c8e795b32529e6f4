package cmd

import (
	"context"
	"flag"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show bankroll, results and risk warnings" }
func (*dashboardCmd) Usage() string {
	return `holdem dashboard

  Shows the bankroll, total profit, win and hourly rates, the loss limit
  warnings and the five most recent sessions.
`
}
func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()

	d := holdem.NewDashboard(w.store)
	printMarkdown(renderer.DashboardMarkdown(d, renderer.Options{Currency: w.cfg.Currency}), d.HighContrast)
	return subcommands.ExitSuccess
}

type reviewCmd struct{}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "show leaks and recent trend" }
func (*reviewCmd) Usage() string {
	return `holdem review

  Shows the most frequent hand tags and the profit of the last ten sessions,
  in thousands.
`
}
func (*reviewCmd) SetFlags(f *flag.FlagSet) {}

func (*reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()
	printMarkdown(renderer.ReviewMarkdown(holdem.NewReview(w.store)), w.store.UI().HighContrast)
	return subcommands.ExitSuccess
}
