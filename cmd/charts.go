package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/holdem/chart"
	"github.com/google/subcommands"
)

type chartsCmd struct {
	width  float64
	height float64
	format string
	dir    string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "draw the profit and hourly charts" }
func (*chartsCmd) Usage() string {
	return `holdem charts [-w <width>] [-h <height>] [-format svg|png] [-o <dir>] [chart...]

  Draws the monthly and the last 30 sessions charts, of profit and hourly
  rate, one file per chart: month-pnl, month-hourly, last30-pnl,
  last30-hourly. All charts are drawn when none is named.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.width, "w", 640, "Chart width")
	f.Float64Var(&c.height, "h", 240, "Chart height")
	f.StringVar(&c.format, "format", "svg", "Image format: svg or png")
	f.StringVar(&c.dir, "o", ".", "Output directory")
}

// encoder is a surface that can be written to a file.
type encoder interface {
	chart.Surface
	Encode(w io.Writer) error
}

func (c *chartsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.width <= chart.PadLeft+chart.PadRight || c.height <= chart.PadTop+chart.PadBottom {
		fmt.Fprintln(stderr, "Error: the chart size is too small")
		return subcommands.ExitUsageError
	}
	var newSurface func(w, h float64) encoder
	switch c.format {
	case "svg":
		newSurface = func(w, h float64) encoder { return chart.NewSVG(w, h) }
	case "png":
		newSurface = func(w, h float64) encoder { return chart.NewPNG(w, h) }
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	panels := chart.Panels
	if f.NArg() > 0 {
		panels = nil
		for _, name := range f.Args() {
			p, err := chart.ParsePanel(name)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			panels = append(panels, p)
		}
	}

	w, status := open(ctx)
	if w == nil {
		return status
	}
	board := chart.NewBoardFrom(w.store)
	w.close()

	surfaces := make(map[chart.Panel]encoder, len(panels))
	targets := make(map[chart.Panel]chart.Surface, len(panels))
	for _, p := range panels {
		surfaces[p] = newSurface(c.width, c.height)
		targets[p] = surfaces[p]
	}
	if err := board.Render(targets); err != nil {
		fmt.Fprintf(stderr, "Error drawing charts: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		fmt.Fprintf(stderr, "Error creating %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}
	for _, p := range panels {
		file := filepath.Join(c.dir, p.String()+"."+c.format)
		if err := writeChart(file, surfaces[p]); err != nil {
			fmt.Fprintf(stderr, "Error writing chart: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "✅ %s (%d points)\n", file, board.Len(p))
	}
	return subcommands.ExitSuccess
}

func writeChart(file string, s encoder) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %q: %w", file, err)
	}
	return f.Close()
}
