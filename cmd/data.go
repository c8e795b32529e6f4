package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/holdem"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of all records" }
func (*exportCmd) Usage() string {
	return `holdem export [-o <file>]

  Writes all records and settings as pretty printed JSON, to
  holdem-tracker-backup.json by default. Use -o - for the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", holdem.ExportFilename, "Output file, - for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	defer w.close()

	if c.output == "-" {
		if err := holdem.Export(stdout, w.store); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := holdem.Export(out, w.store); err != nil {
		out.Close()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "✅ Exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a backup" }
func (*importCmd) Usage() string {
	return `holdem import <file>

  Replaces all records and settings by the content of a backup written by
  'holdem export'. Use - to read the standard input. A backup without
  "sessions" and "accounts" is rejected and nothing is changed.
`
}
func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: a single backup file is required")
		return subcommands.ExitUsageError
	}
	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		in, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
		r = in
	}

	w, status := open(ctx)
	if w == nil {
		return status
	}
	if err := w.store.Import(r); err != nil {
		w.close()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "✅ Imported %d account(s), %d session(s), %d hand(s), %d player(s)\n",
		w.store.Count(holdem.KindAccount), w.store.Count(holdem.KindSession),
		w.store.Count(holdem.KindHand), w.store.Count(holdem.KindPlayer))
	return subcommands.ExitSuccess
}

type sampleCmd struct{}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "add sample records" }
func (*sampleCmd) Usage() string {
	return `holdem sample

  Adds a few sample accounts, sessions and hands to try the tracker out.
`
}
func (*sampleCmd) SetFlags(f *flag.FlagSet) {}

func (*sampleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	w.store.AddSampleData()
	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintln(stdout, "✅ Sample records added")
	return subcommands.ExitSuccess
}

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all records" }
func (*resetCmd) Usage() string {
	return `holdem reset -yes

  Deletes all records and restores the default settings. Export a backup
  first: this cannot be undone.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(stderr, "Error: reset deletes all records, confirm with -yes")
		return subcommands.ExitUsageError
	}
	w, status := open(ctx)
	if w == nil {
		return status
	}
	w.store.Reset()
	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintln(stdout, "✅ All records deleted")
	return subcommands.ExitSuccess
}
