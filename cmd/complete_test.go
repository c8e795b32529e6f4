package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("holdem", flag.ContinueOnError)
	top.String("store", "", "")
	top.Bool("raw", false, "")
	commander := subcommands.NewCommander(top, "holdem")
	Register(commander)

	c := Completion(commander, top)
	assert.Contains(t, c.Flags, "store")
	assert.Contains(t, c.Flags, "raw")

	for _, name := range []string{"dashboard", "session", "hand", "rm", "charts", "import", "topic"} {
		require.Contains(t, c.Sub, name)
	}
	assert.Contains(t, c.Sub["session"].Flags, "buyin")
	assert.Contains(t, c.Sub["reset"].Flags, "yes")
	assert.ElementsMatch(t, []string{"account", "session", "hand", "player"}, c.Sub["rm"].Args.Predict(""))
	assert.ElementsMatch(t, []string{"month-pnl", "month-hourly", "last30-pnl", "last30-hourly"}, c.Sub["charts"].Args.Predict(""))
	assert.Contains(t, c.Sub["topic"].Args.Predict(""), "sessions")
	assert.ElementsMatch(t, []string{"svg", "png"}, c.Sub["charts"].Flags["format"].Predict(""))
}
