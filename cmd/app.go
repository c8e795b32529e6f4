// Package cmd implements the CLI application to track poker results.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdem"
	"github.com/etnz/holdem/config"
	"github.com/etnz/holdem/logger"
	"github.com/etnz/holdem/storage"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&reviewCmd{}, "reports")
	c.Register(&chartsCmd{}, "reports")

	c.Register(&accountCmd{}, "records")
	c.Register(&accountsCmd{}, "records")
	c.Register(&sessionCmd{}, "records")
	c.Register(&sessionsCmd{}, "records")
	c.Register(&handCmd{}, "records")
	c.Register(&handsCmd{}, "records")
	c.Register(&playerCmd{}, "records")
	c.Register(&playersCmd{}, "records")
	c.Register(&rmCmd{}, "records")

	c.Register(&riskCmd{}, "settings")
	c.Register(&contrastCmd{}, "settings")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&sampleCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storePath   = flag.String("store", "", "Path to the tracker store (default $HOLDEM_STORE or holdem.json)")
	backendName = flag.String("backend", "", "Storage backend: json, sqlite or memory (default $HOLDEM_BACKEND or json)")
	currency    = flag.String("currency", "", "Currency code used to display amounts (default $HOLDEM_CURRENCY or KRW)")
	verbose     = flag.Bool("v", false, "Log debug information")
	rawOutput   = flag.Bool("raw", false, "Print reports as plain markdown")
)

// outputs, replaced by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings merges the environment configuration with the command line flags.
func settings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *backendName != "" {
		cfg.Backend = *backendName
		if os.Getenv("HOLDEM_STORE") == "" {
			cfg.StorePath = config.DefaultStorePath(cfg.Backend)
		}
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// now returns the current time, or HOLDEM_TESTING_NOW when set, so that
// documentation scenarios have stable dates.
func now() time.Time {
	if v := os.Getenv("HOLDEM_TESTING_NOW"); v != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Now()
}

// workspace is the store of the tracker opened for the duration of a command.
type workspace struct {
	store   *holdem.Store
	backend storage.Backend
	cfg     *config.Config
	log     zerolog.Logger
}

// openWorkspace loads the store as configured.
func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: stderr})
	logger.SetGlobalLogger(log)
	holdem.DefaultCurrency = cfg.Currency

	b, err := storage.Open(cfg.Backend, cfg.StorePath)
	if err != nil {
		return nil, err
	}
	return &workspace{
		store:   storage.Load(ctx, b, log, holdem.WithClock(now)),
		backend: b,
		cfg:     cfg,
		log:     log,
	}, nil
}

// save persists the store.
func (w *workspace) save(ctx context.Context) error {
	if err := storage.Save(ctx, w.backend, w.store); err != nil {
		return err
	}
	w.log.Debug().Stringer("backend", w.backend).Msg("state saved")
	return nil
}

func (w *workspace) close() {
	if err := w.backend.Close(); err != nil {
		w.log.Warn().Err(err).Msg("cannot close storage")
	}
}

// open is the common prologue of the commands: it opens the workspace or
// reports why it cannot.
func open(ctx context.Context) (*workspace, subcommands.ExitStatus) {
	w, err := openWorkspace(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening tracker store: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return w, subcommands.ExitSuccess
}

// commit saves the workspace after a mutation and closes it.
func commit(ctx context.Context, w *workspace) subcommands.ExitStatus {
	defer w.close()
	if err := w.save(ctx); err != nil {
		fmt.Fprintf(stderr, "Error saving tracker store: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string, highContrast bool) {
	if *rawOutput {
		fmt.Fprint(stdout, doc)
		return
	}
	style := glamour.WithAutoStyle()
	if highContrast {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Fprint(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}
