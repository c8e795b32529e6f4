package chart

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// SVG is a Surface producing an SVG document.
//
// Drawing is recorded, so that Clear can discard previous drawings, and
// written out by Encode.
type SVG struct {
	Recorder
}

// NewSVG returns an empty SVG surface of the given size.
func NewSVG(w, h float64) *SVG { return &SVG{Recorder: Recorder{W: w, H: h}} }

// Encode writes the SVG document to w.
func (s *SVG) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.W, s.H)
	canvas.Rect(0, 0, s.W, s.H, "fill:#ffffff")
	for _, o := range s.Ops {
		switch o.Kind {
		case "line":
			p, q := o.Points[0], o.Points[1]
			canvas.Line(p.X, p.Y, q.X, q.Y, strokeStyle(o.Stroke))
		case "polyline":
			if len(o.Points) == 0 {
				continue
			}
			xs := make([]float64, len(o.Points))
			ys := make([]float64, len(o.Points))
			for i, p := range o.Points {
				xs[i], ys[i] = p.X, p.Y
			}
			canvas.Polyline(xs, ys, strokeStyle(o.Stroke)+";fill:none")
		case "text":
			p := o.Points[0]
			canvas.Text(p.X, p.Y, o.Text, textStyle(o.Align, o.Color))
		}
	}
	canvas.End()
	return ew.err
}

func strokeStyle(s Stroke) string {
	style := fmt.Sprintf("stroke:%s;stroke-width:%g", s.Color, s.Width)
	if len(s.Dash) > 0 {
		dash := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			dash[i] = fmt.Sprintf("%g", d)
		}
		style += ";stroke-dasharray:" + strings.Join(dash, ",")
	}
	return style
}

func textStyle(a Align, color string) string {
	anchor := "start"
	switch a {
	case AlignCenter:
		anchor = "middle"
	case AlignRight:
		anchor = "end"
	}
	return fmt.Sprintf("fill:%s;font-size:12px;font-family:system-ui,sans-serif;text-anchor:%s", color, anchor)
}

// errWriter keeps the first write error, svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
