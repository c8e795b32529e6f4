package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/google/subcommands"
)

type riskCmd struct {
	stopLoss  amountFlag
	dailyLoss amountFlag
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "show or set the loss limits" }
func (*riskCmd) Usage() string {
	return `holdem risk [-stop-loss <amount>] [-daily-loss <amount>]

  Sets the loss limits warned about on the dashboard, 0 disables a limit.
  Without flags, shows the current limits.

  - stop-loss: warns when the latest session lost at least this amount.
  - daily-loss: warns when the sessions of a single day lost at least this amount.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.stopLoss, "stop-loss", "Session stop loss, 0 to disable")
	f.Var(&c.dailyLoss, "daily-loss", "Daily loss limit, 0 to disable")
}

func (c *riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	set := setFlags(f)
	risk := w.store.Risk()
	if set["stop-loss"] {
		risk.StopLoss = c.stopLoss.Abs()
	}
	if set["daily-loss"] {
		risk.DailyLoss = c.dailyLoss.Abs()
	}

	if len(set) > 0 {
		w.store.SetRisk(risk)
		if status := commit(ctx, w); status != subcommands.ExitSuccess {
			return status
		}
	} else {
		w.close()
	}
	fmt.Fprintf(stdout, "Stop loss: %s\n", limitString(risk.StopLoss, w.cfg.Currency))
	fmt.Fprintf(stdout, "Daily loss: %s\n", limitString(risk.DailyLoss, w.cfg.Currency))
	return subcommands.ExitSuccess
}

func limitString(a holdem.Amount, cur string) string {
	if a == 0 {
		return "disabled"
	}
	return a.Format(cur)
}

type contrastCmd struct{}

func (*contrastCmd) Name() string     { return "contrast" }
func (*contrastCmd) Synopsis() string { return "toggle the high contrast display" }
func (*contrastCmd) Usage() string {
	return `holdem contrast

  Toggles the high contrast style of the reports.
`
}
func (*contrastCmd) SetFlags(f *flag.FlagSet) {}

func (*contrastCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	on := w.store.ToggleHighContrast()
	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	if on {
		fmt.Fprintln(stdout, "✅ High contrast on")
	} else {
		fmt.Fprintln(stdout, "✅ High contrast off")
	}
	return subcommands.ExitSuccess
}
