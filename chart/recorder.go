package chart

import (
	"fmt"
	"slices"
	"strings"
)

// Op is a drawing instruction kept by a Recorder.
type Op struct {
	Kind   string // "line", "polyline" or "text"
	Points []Point
	Stroke Stroke
	Text   string
	Align  Align
	Color  string
}

// String renders the op on a single line, for test failures and debugging.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind)
	for _, p := range o.Points {
		fmt.Fprintf(&b, " (%g,%g)", p.X, p.Y)
	}
	switch o.Kind {
	case "text":
		fmt.Fprintf(&b, " %q %v %s", o.Text, o.Align, o.Color)
	default:
		fmt.Fprintf(&b, " %s w=%g", o.Stroke.Color, o.Stroke.Width)
		if o.Stroke.Dash != nil {
			fmt.Fprintf(&b, " dash=%v", o.Stroke.Dash)
		}
	}
	return b.String()
}

// Recorder is an in-memory Surface that records what is drawn on it.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (w, h float64) { return r.W, r.H }
func (r *Recorder) Clear()               { r.Ops = nil }

func (r *Recorder) Line(x0, y0, x1, y1 float64, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: "line", Points: []Point{{x0, y0}, {x1, y1}}, Stroke: cloneStroke(s)})
}

func (r *Recorder) Polyline(pts []Point, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: "polyline", Points: slices.Clone(pts), Stroke: cloneStroke(s)})
}

func (r *Recorder) Text(x, y float64, s string, a Align, color string) {
	r.Ops = append(r.Ops, Op{Kind: "text", Points: []Point{{x, y}}, Text: s, Align: a, Color: color})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var ops []Op
	for _, o := range r.Ops {
		if o.Kind == kind {
			ops = append(ops, o)
		}
	}
	return ops
}

// String lists the recorded ops, one per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, o := range r.Ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func cloneStroke(s Stroke) Stroke {
	s.Dash = slices.Clone(s.Dash)
	return s
}
