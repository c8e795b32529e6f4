package docs

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestIndex(t *testing.T) {
	topics, err := Topics()
	if err != nil {
		t.Fatalf("Topics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("Topics() = [], want the topics of readme.md")
	}
	for _, topic := range topics {
		if topic.Summary == "" {
			t.Errorf("topic %q has no summary in readme.md", topic.Name)
		}
		if _, err := Read(topic.Name); err != nil {
			t.Errorf("Read(%q) error = %v", topic.Name, err)
		}
	}

	unlisted, err := Unlisted()
	if err != nil {
		t.Fatalf("Unlisted() error = %v", err)
	}
	if len(unlisted) > 0 {
		t.Errorf("pages missing from readme.md: %v", unlisted)
	}
}

func TestRead(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	var want strings.Builder
	for _, name := range names {
		page, err := Read(name)
		if err != nil {
			t.Fatalf("Read(%q) error = %v", name, err)
		}
		want.WriteString(page)
	}
	if got, err := Read("*"); err != nil || got != want.String() {
		t.Errorf("Read(*) = %d bytes, %v, want the %d topics concatenated", len(got), err, len(names))
	}

	if got, err := Read(Index); err != nil || !strings.HasPrefix(got, "# Holdem Tracker") {
		t.Errorf("Read(%q) = %.20q, %v", Index, got, err)
	}
	if _, err := Read("sessions", "poker-theory"); err == nil {
		t.Error("Read(unknown topic) succeeded")
	}
}

// Fenced blocks with these info strings are executed, in order, by
// TestScenarios. A setup block starts over in a new directory, a check
// block must succeed, and an expected block is compared with the output of
// the latest run block.
const (
	setupBlock    = "bash setup"
	runBlock      = "bash run"
	checkBlock    = "bash check"
	expectedBlock = "console check"
)

type block struct {
	kind   string
	script string
	line   int
}

// scenarioBlocks returns the executable fenced blocks of a markdown file.
func scenarioBlocks(t *testing.T, file string) []block {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read %s: %v", file, err)
	}

	var blocks []block
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(src))
		switch kind {
		case setupBlock, runBlock, checkBlock, expectedBlock:
		default:
			return ast.WalkContinue, nil
		}
		var script strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			script.Write(seg.Value(src))
		}
		line := 1 + strings.Count(string(src[:fcb.Info.Segment.Start]), "\n")
		blocks = append(blocks, block{kind: kind, script: script.String(), line: line})
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("cannot walk %s: %v", file, err)
	}
	return blocks
}

// scenario runs the blocks of a page against a holdem binary.
type scenario struct {
	file string
	env  []string
	dir  string
	last string // output of the latest run block
}

func (s *scenario) exec(t *testing.T, b block) {
	t.Helper()
	where := fmt.Sprintf("%s:%d", s.file, b.line)

	if b.kind == expectedBlock {
		got := strings.TrimSpace(strings.ReplaceAll(s.last, "\t", "        "))
		if want := strings.TrimSpace(b.script); got != want {
			t.Errorf("%s: output\n%s\nwant\n%s", where, got, want)
		}
		return
	}
	if b.kind == setupBlock {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.script)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if b.kind == runBlock {
		s.last = string(out)
	}
	switch {
	case err == nil:
	case b.kind == checkBlock:
		t.Errorf("%s: check failed: %v\n%s", where, err, out)
	default:
		t.Fatalf("%s: %s failed: %v\n%s", where, b.kind, err, out)
	}
}

// buildHoldem compiles the holdem command into dir.
func buildHoldem(t *testing.T, dir string) {
	t.Helper()
	out, err := exec.Command("go", "build", "-o", filepath.Join(dir, "holdem"), "../holdem/").CombinedOutput()
	if err != nil {
		t.Fatalf("cannot build holdem: %v\n%s", err, out)
	}
}

func TestScenarios(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	buildHoldem(t, bin)

	// a fixed clock, and nothing from the developer's environment.
	env := append(os.Environ(),
		"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"HOLDEM_TESTING_NOW=2006-01-02 15:04:05",
		"HOLDEM_STORE=", "HOLDEM_BACKEND=", "HOLDEM_CURRENCY=KRW")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			s := &scenario{file: file, env: env, dir: t.TempDir()}
			for _, b := range scenarioBlocks(t, file) {
				s.exec(t, b)
			}
		})
	}
}
