// Command holdem tracks poker sessions, hands, opponents and bankroll.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/holdem/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	complete.Complete("holdem", cmd.Completion(commander, flag.CommandLine))

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
