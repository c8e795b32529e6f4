package cmd

import (
	"flag"

	"github.com/etnz/holdem/chart"
	"github.com/etnz/holdem/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// kinds completes the record kinds of 'holdem rm'.
var kinds = predict.Set{"account", "session", "hand", "player"}

// Completion describes the commands registered in c, and the top level
// flags of top, for shell completion.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		root.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argPredictor(cmd.Name()),
		}
	})
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case f.Name == "store":
			flags[f.Name] = predict.Files("*")
		case f.Name == "o":
			flags[f.Name] = predict.Dirs("*")
		case f.Name == "backend":
			flags[f.Name] = predict.Set{"json", "sqlite", "memory"}
		case f.Name == "format":
			flags[f.Name] = predict.Set{"svg", "png"}
		case f.Name == "type":
			flags[f.Name] = predict.Set{"cash", "site"}
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func argPredictor(name string) complete.Predictor {
	switch name {
	case "rm":
		return kinds
	case "charts":
		var panels predict.Set
		for _, p := range chart.Panels {
			panels = append(panels, p.String())
		}
		return panels
	case "import":
		return predict.Files("*.json")
	case "topic":
		topics, _ := docs.Names()
		return predict.Set(append(topics, "*"))
	default:
		return predict.Nothing
	}
}
