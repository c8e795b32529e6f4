package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/holdem/chart"
	"github.com/etnz/holdem/renderer"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tracker runs commands against a json store in a temporary directory.
type tracker struct {
	t   *testing.T
	dir string
}

func newTracker(t *testing.T) *tracker {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOLDEM_TESTING_NOW", "2024-01-10 12:00:00")
	t.Setenv("HOLDEM_CURRENCY", "KRW")

	prevStore, prevBackend, prevRaw := *storePath, *backendName, *rawOutput
	prevOut, prevErr := stdout, stderr
	*storePath, *backendName, *rawOutput = filepath.Join(dir, "holdem.json"), "json", true
	t.Cleanup(func() {
		*storePath, *backendName, *rawOutput = prevStore, prevBackend, prevRaw
		stdout, stderr = prevOut, prevErr
	})
	return &tracker{t: t, dir: dir}
}

// run executes a single command line and returns its outputs.
func (tr *tracker) run(args ...string) (string, string, subcommands.ExitStatus) {
	tr.t.Helper()
	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut

	fs := flag.NewFlagSet("holdem", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "holdem")
	Register(commander)
	require.NoError(tr.t, fs.Parse(args))
	status := commander.Execute(context.Background())
	return out.String(), errOut.String(), status
}

// ok runs a command that must succeed and returns its output.
func (tr *tracker) ok(args ...string) string {
	tr.t.Helper()
	out, errOut, status := tr.run(args...)
	require.Equal(tr.t, subcommands.ExitSuccess, status, "holdem %s\nstderr: %s", strings.Join(args, " "), errOut)
	return out
}

var savedID = regexp.MustCompile(`Saved \w+ ([0-9a-f-]{36})`)

// id extracts the id of the record saved by a command.
func (tr *tracker) id(out string) string {
	tr.t.Helper()
	m := savedID.FindStringSubmatch(out)
	require.NotNil(tr.t, m, "no id in %q", out)
	return m[1]
}

func TestSessionFlow(t *testing.T) {
	tr := newTracker(t)

	tr.ok("account", "-name", "Wallet", "-balance", "1000000")
	out := tr.ok("session", "-location", "Pub", "-blinds", "1/2", "-buyin", "200000", "-cashout", "150000", "-hours", "2")
	assert.Contains(t, out, "on 2024-01-10: -₩50,000")

	dashboard := tr.ok("dashboard")
	assert.Contains(t, dashboard, "Holdem Tracker")
	assert.Contains(t, dashboard, "₩1,000,000")
	assert.Contains(t, dashboard, "Pub")
	assert.NotContains(t, dashboard, renderer.StopLossWarning)

	sessions := tr.ok("sessions")
	assert.Contains(t, sessions, "2024-01-10")
	assert.Contains(t, sessions, "-₩50,000")
}

func TestSessionEditKeepsUnsetFields(t *testing.T) {
	tr := newTracker(t)

	id := tr.id(tr.ok("session", "-d", "2024-1-5", "-location", "Pub", "-buyin", "100000", "-cashout", "100000", "-hours", "3"))
	out := tr.ok("session", "-id", id, "-cashout", "130000")
	assert.Contains(t, out, "on 2024-01-05: +₩30,000")

	sessions := tr.ok("sessions")
	assert.Contains(t, sessions, "Pub")

	_, errOut, status := tr.run("session", "-id", "nope", "-hours", "1")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, `session "nope" not found`)
}

func TestRiskWarnings(t *testing.T) {
	tr := newTracker(t)

	out := tr.ok("risk")
	assert.Contains(t, out, "Stop loss: disabled")

	out = tr.ok("risk", "-stop-loss", "-40000", "-daily-loss", "60000")
	assert.Contains(t, out, "Stop loss: ₩40,000")
	assert.Contains(t, out, "Daily loss: ₩60,000")

	out = tr.ok("session", "-d", "2024-01-09", "-location", "Pub", "-buyin", "100000", "-cashout", "50000", "-hours", "1")
	assert.Contains(t, out, renderer.StopLossWarning)
	assert.NotContains(t, out, renderer.DailyLossWarning)

	out = tr.ok("session", "-location", "Club", "-buyin", "100000", "-cashout", "90000", "-hours", "1")
	assert.NotContains(t, out, renderer.StopLossWarning, "only the latest session counts")
	assert.NotContains(t, out, renderer.DailyLossWarning)

	// same day, the first recorded session stays the latest one.
	out = tr.ok("session", "-location", "Club", "-buyin", "100000", "-cashout", "45000", "-hours", "1")
	assert.NotContains(t, out, renderer.StopLossWarning)
	assert.Contains(t, out, renderer.DailyLossWarning)

	dashboard := tr.ok("dashboard")
	assert.Contains(t, dashboard, renderer.DailyLossWarning)
}

func TestHandsAndPlayers(t *testing.T) {
	tr := newTracker(t)

	_, errOut, status := tr.run("hand", "-hole", "As Ks")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "record a session first")

	tr.ok("session", "-location", "Pub", "-buyin", "100000", "-cashout", "50000", "-hours", "1")
	out := tr.ok("hand", "-hole", "As Ks", "-position", "BTN", "-result", "-30000", "-tags", "overcall", "-opponent", "Kim")
	assert.Contains(t, out, "against Kim")
	tr.ok("hand", "-hole", "7h 7d", "-tags", "overcall, tilt", "-opponent", " kim ")

	players := tr.ok("players")
	assert.Contains(t, players, "Kim")
	assert.Equal(t, 1, strings.Count(players, "Kim"), "the opponent is matched ignoring case")

	hands := tr.ok("hands")
	assert.Contains(t, hands, "As Ks")
	assert.Contains(t, hands, "7h 7d")

	review := tr.ok("review")
	assert.Contains(t, review, "overcall(2)")

	_, _, status = tr.run("hand", "-session", "nope", "-hole", "As Ks")
	assert.Equal(t, subcommands.ExitFailure, status)

	_, _, status = tr.run("player", "-site", "Pub")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestRemoveSessionCascades(t *testing.T) {
	tr := newTracker(t)

	id := tr.id(tr.ok("session", "-location", "Pub", "-buyin", "100000", "-cashout", "50000", "-hours", "1"))
	tr.ok("hand", "-hole", "As Ks")
	tr.ok("hand", "-hole", "Qs Qd")

	out := tr.ok("rm", "session", id)
	assert.Contains(t, out, "Deleted 1 session(s) and 2 hand(s)")
	assert.Contains(t, tr.ok("hands"), "No hands recorded.")

	out, errOut, status := tr.run("rm", "session", id)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, "not found")
	assert.Contains(t, out, "Deleted 0 session(s)")

	_, _, status = tr.run("rm", "table", "x")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestExportImport(t *testing.T) {
	tr := newTracker(t)

	tr.ok("sample")
	backup := filepath.Join(tr.dir, "backup.json")
	tr.ok("export", "-o", backup)
	before := tr.ok("sessions")

	_, _, status := tr.run("reset")
	assert.Equal(t, subcommands.ExitUsageError, status)
	tr.ok("reset", "-yes")
	assert.Contains(t, tr.ok("sessions"), "No sessions recorded.")

	out := tr.ok("import", backup)
	assert.Contains(t, out, "Imported 2 account(s), 3 session(s), 3 hand(s)")
	assert.Equal(t, before, tr.ok("sessions"))

	// a rejected backup changes nothing.
	bad := filepath.Join(tr.dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"hands": []}`), 0644))
	_, _, status = tr.run("import", bad)
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, before, tr.ok("sessions"))
}

func TestCharts(t *testing.T) {
	tr := newTracker(t)
	tr.ok("sample")

	dir := filepath.Join(tr.dir, "charts")
	out := tr.ok("charts", "-o", dir)
	for _, p := range chart.Panels {
		data, err := os.ReadFile(filepath.Join(dir, p.String()+".svg"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "<polyline")
	}
	assert.Contains(t, out, "last30-pnl.svg (3 points)")

	tr.ok("charts", "-format", "png", "-o", dir, "month-pnl")
	_, err := os.Stat(filepath.Join(dir, "month-pnl.png"))
	assert.NoError(t, err)

	_, _, status := tr.run("charts", "-format", "gif")
	assert.Equal(t, subcommands.ExitUsageError, status)
	_, _, status = tr.run("charts", "pie")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestFlagsOverrideInvalidEnvironment(t *testing.T) {
	tr := newTracker(t)
	t.Setenv("HOLDEM_BACKEND", "redis")

	// -backend json is set by newTracker.
	assert.Contains(t, tr.ok("risk"), "Stop loss: disabled")

	*backendName = ""
	_, errOut, status := tr.run("risk")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, `HOLDEM_BACKEND "redis"`)
}

func TestContrast(t *testing.T) {
	tr := newTracker(t)
	assert.Contains(t, tr.ok("contrast"), "on")
	assert.Contains(t, tr.ok("contrast"), "off")
}
