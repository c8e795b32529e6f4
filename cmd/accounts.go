package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
)

type accountCmd struct {
	id      string
	name    string
	typ     string
	balance amountFlag
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "add or edit a bankroll account" }
func (*accountCmd) Usage() string {
	return `holdem account -name <name> [-type cash|site] [-balance <amount>]
holdem account -id <id> [-name <name>] [-type cash|site] [-balance <amount>]

  Adds an account, or edits the account with the given id. Only the flags
  given on the command line are changed.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to edit")
	f.StringVar(&c.name, "name", "", "Account name")
	f.StringVar(&c.typ, "type", string(holdem.AccountCash), "Account type: cash or site")
	f.Var(&c.balance, "balance", "Balance in the currency minor unit")
}

func (c *accountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ := holdem.AccountType(c.typ)
	if typ != holdem.AccountCash && typ != holdem.AccountSite {
		fmt.Fprintf(stderr, "Error: account type %q is not one of cash, site\n", c.typ)
		return subcommands.ExitUsageError
	}
	if c.id == "" && c.name == "" {
		fmt.Fprintln(stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	w, status := open(ctx)
	if w == nil {
		return status
	}

	a := holdem.Account{Type: holdem.AccountCash}
	if c.id != "" {
		var ok bool
		if a, ok = w.store.Account(c.id); !ok {
			w.close()
			fmt.Fprintf(stderr, "Error: account %q not found\n", c.id)
			return subcommands.ExitFailure
		}
	}
	set := setFlags(f)
	if set["name"] {
		a.Name = c.name
	}
	if set["type"] {
		a.Type = typ
	}
	if set["balance"] {
		a.Balance = c.balance.Amount
	}
	a = w.store.UpsertAccount(a)

	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "✅ Saved account %q (%s): %s\n", a.Name, a.ID, a.Balance.Format(w.cfg.Currency))
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list bankroll accounts" }
func (*accountsCmd) Usage() string {
	return `holdem accounts

  Lists the accounts and the bankroll they add up to.
`
}
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()
	printMarkdown(renderer.AccountsMarkdown(w.store, renderer.Options{Currency: w.cfg.Currency}), w.store.UI().HighContrast)
	return subcommands.ExitSuccess
}
