package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete records" }
func (*rmCmd) Usage() string {
	return `holdem rm <account|session|hand|player> <id>...

  Deletes records by id. Deleting a session also deletes its hands.
  Deleting a hand does not update its opponent's hand count, see
  'holdem players -recount'.
`
}
func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(stderr, "Error: a kind and at least one id are required")
		return subcommands.ExitUsageError
	}
	kind, err := holdem.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	w, status := open(ctx)
	if w == nil {
		return status
	}
	hands := w.store.Count(holdem.KindHand)
	var deleted, missing int
	for _, id := range f.Args()[1:] {
		ok, err := w.store.Delete(kind, id)
		if err != nil {
			w.close()
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !ok {
			fmt.Fprintf(stderr, "Warning: %v %q not found\n", kind, id)
			missing++
			continue
		}
		deleted++
	}
	cascaded := hands - w.store.Count(holdem.KindHand)

	if deleted > 0 {
		if status := commit(ctx, w); status != subcommands.ExitSuccess {
			return status
		}
	} else {
		w.close()
	}
	if kind == holdem.KindSession && cascaded > 0 {
		fmt.Fprintf(stdout, "✅ Deleted %d %v(s) and %d hand(s)\n", deleted, kind, cascaded)
	} else {
		fmt.Fprintf(stdout, "✅ Deleted %d %v(s)\n", deleted, kind)
	}
	if missing > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
