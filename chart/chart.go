// Package chart draws the line charts of the tracker on an abstract drawing surface.
//
// The layout is fixed: a left gutter for the value labels, five horizontal
// gridlines, at most about six x labels, one polyline for the series and a
// dashed zero line when the series crosses zero.
package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// ErrLengthMismatch is returned by Draw when labels and values differ in length.
var ErrLengthMismatch = errors.New("labels and values differ in length")

// Layout constants, in surface units.
const (
	PadLeft   = 44
	PadRight  = 10
	PadTop    = 10
	PadBottom = 24

	// crisp is the offset aligning 1 unit strokes on the pixel grid.
	crisp = 0.5

	gridLines = 4
	maxLabels = 6
)

// Colors and units used by default.
const (
	DefaultColor = "#3a6ff8"
	DefaultUnit  = "₩"
	HourlyUnit   = "₩/h"

	gridColor = "#e6ebf2"
	textColor = "#6b7a90"
	zeroColor = "#cfd6e6"
)

var (
	gridStroke = Stroke{Color: gridColor, Width: 1}
	zeroDash   = []float64{4, 4}
)

// Point is a position on a surface.
type Point struct{ X, Y float64 }

// Stroke describes how a line is drawn. A nil Dash draws a solid line.
type Stroke struct {
	Color string
	Width float64
	Dash  []float64
}

// Align is the horizontal alignment of a text relative to its anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Surface is a drawing target. Text is drawn with its baseline at y.
type Surface interface {
	Size() (w, h float64)
	Clear()
	Line(x0, y0, x1, y1 float64, s Stroke)
	Polyline(pts []Point, s Stroke)
	Text(x, y float64, s string, a Align, color string)
}

// Options tune a chart.
type Options struct {
	Unit  string // prefix of the value labels, DefaultUnit if empty
	Color string // series color, DefaultColor if empty
}

// Draw clears s and draws values as a line chart labelled with labels.
//
// Drawing is idempotent: calling it twice with the same input on the same
// surface leaves the surface as after the first call.
func Draw(s Surface, labels []string, values []int64, opts Options) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(labels), len(values))
	}
	if opts.Unit == "" {
		opts.Unit = DefaultUnit
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}

	w, h := s.Size()
	l := newLayout(w, h, values)
	s.Clear()

	for i := 0; i <= gridLines; i++ {
		y := l.gridY(i)
		s.Line(PadLeft+crisp, y+crisp, PadLeft+l.W+crisp, y+crisp, gridStroke)
		s.Text(PadLeft-6+crisp, y+4+crisp, opts.Unit+humanize.Comma(l.gridValue(i)), AlignRight, textColor)
	}

	for i := 0; i < len(labels); i += l.step(len(labels)) {
		s.Text(l.x(i, len(labels))+crisp, PadTop+l.H+16+crisp, labels[i], AlignCenter, textColor)
	}

	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{l.x(i, len(labels)) + crisp, l.y(float64(v)) + crisp}
	}
	s.Polyline(pts, Stroke{Color: opts.Color, Width: 2})

	if l.min < 0 && l.max > 0 {
		y0 := l.y(0)
		s.Line(PadLeft+crisp, y0+crisp, PadLeft+l.W+crisp, y0+crisp, Stroke{Color: zeroColor, Width: 2, Dash: zeroDash})
	}
	return nil
}

// layout is the geometry of a chart. The value range always includes zero.
type layout struct {
	W, H     float64 // plot area
	min, max float64
	span     float64
}

func newLayout(w, h float64, values []int64) layout {
	l := layout{W: w - PadLeft - PadRight, H: h - PadTop - PadBottom}
	for _, v := range values {
		l.min = math.Min(l.min, float64(v))
		l.max = math.Max(l.max, float64(v))
	}
	l.span = l.max - l.min
	if l.span == 0 {
		l.span = 1
	}
	return l
}

func (l layout) gridY(i int) float64 { return PadTop + l.H*float64(i)/gridLines }

// gridValue is the value at gridline i, rounded half-up.
func (l layout) gridValue(i int) int64 {
	return int64(math.Floor(l.max - l.span*float64(i)/gridLines + 0.5))
}

// step is the stride between x labels.
func (l layout) step(n int) int { return max(1, (n+maxLabels-1)/maxLabels) }

// x is the abscissa of point i out of n, a single point sits on the left edge.
func (l layout) x(i, n int) float64 { return PadLeft + l.W*float64(i)/float64(max(1, n-1)) }

func (l layout) y(v float64) float64 { return PadTop + l.H*(1-(v-l.min)/l.span) }
