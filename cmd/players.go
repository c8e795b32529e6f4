package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
)

type playerCmd struct {
	id    string
	name  string
	site  string
	tags  string
	color string
	notes string
}

func (*playerCmd) Name() string     { return "player" }
func (*playerCmd) Synopsis() string { return "add or edit an opponent" }
func (*playerCmd) Usage() string {
	return `holdem player -name <name> [-site <site>] [-tags <t1,t2>] [-color <#rrggbb>] [-notes <text>]
holdem player -id <id> [flags to change]

  Saves an opponent. Without -id, the player with the same name (ignoring
  case) is updated if any, or a new one is created.
`
}

func (c *playerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the player to edit")
	f.StringVar(&c.name, "name", "", "Player name (required)")
	f.StringVar(&c.site, "site", "", "Site or room where the player is met")
	f.StringVar(&c.tags, "tags", "", "Comma separated tags, like nit,station")
	f.StringVar(&c.color, "color", holdem.DefaultPlayerColor, "Badge color")
	f.StringVar(&c.notes, "notes", "", "Free notes")
}

func (c *playerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	in := holdem.PlayerInput{
		ID:    c.id,
		Name:  c.name,
		Site:  c.site,
		Tags:  c.tags,
		Color: c.color,
		Notes: c.notes,
	}
	// an edit keeps what is not given on the command line.
	if old, ok := w.store.Player(c.id); ok {
		set := setFlags(f)
		keep := func(flag string, v *string, was string) {
			if !set[flag] {
				*v = was
			}
		}
		keep("name", &in.Name, old.Name)
		keep("site", &in.Site, old.Site)
		keep("tags", &in.Tags, old.Tags)
		keep("color", &in.Color, old.Color)
		keep("notes", &in.Notes, old.Notes)
	}
	p, err := w.store.SavePlayer(in)
	if err != nil {
		w.close()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, holdem.ErrMissingName) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	if status := commit(ctx, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "✅ Saved player %q (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

type playersCmd struct {
	query   string
	recount bool
}

func (*playersCmd) Name() string     { return "players" }
func (*playersCmd) Synopsis() string { return "search opponents" }
func (*playersCmd) Usage() string {
	return `holdem players [-q <text>] [-recount]

  Lists the players whose name, site, tags or notes contain the query,
  most recently seen first.

  Hand counts and last seen dates are maintained when hands are recorded
  but not when they are deleted; -recount recomputes both from the recorded
  hands.
`
}

func (c *playersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search text, case insensitive")
	f.BoolVar(&c.recount, "recount", false, "Recompute hand counts and last seen dates from the recorded hands")
}

func (c *playersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, status := open(ctx)
	if w == nil {
		return status
	}
	if c.recount {
		n := w.store.RecountPlayers()
		if n > 0 {
			if status := commit(ctx, w); status != subcommands.ExitSuccess {
				return status
			}
		} else {
			w.close()
		}
		fmt.Fprintf(stdout, "✅ Recounted hands, %d player(s) corrected\n", n)
		return subcommands.ExitSuccess
	}
	defer w.close()
	printMarkdown(renderer.PlayersMarkdown(w.store, c.query), w.store.UI().HighContrast)
	return subcommands.ExitSuccess
}
