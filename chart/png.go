package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PNG is a Surface producing a PNG image, rasterized with go-chart.
//
// Like SVG it records the drawing until Encode. Coordinates are rounded to
// whole pixels.
type PNG struct {
	Recorder
}

// NewPNG returns an empty PNG surface of the given size in pixels.
func NewPNG(w, h float64) *PNG { return &PNG{Recorder: Recorder{W: w, H: h}} }

// Encode rasterizes the drawing and writes it to w.
func (p *PNG) Encode(w io.Writer) error {
	width, height := int(math.Ceil(p.W)), int(math.Ceil(p.H))
	r, err := gochart.PNG(width, height)
	if err != nil {
		return fmt.Errorf("cannot create png renderer: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("cannot load chart font: %w", err)
	}
	r.SetFont(font)

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	for _, o := range p.Ops {
		switch o.Kind {
		case "line", "polyline":
			if len(o.Points) == 0 {
				continue
			}
			r.SetStrokeColor(hexColor(o.Stroke.Color))
			r.SetStrokeWidth(o.Stroke.Width)
			r.SetStrokeDashArray(o.Stroke.Dash)
			r.MoveTo(px(o.Points[0].X), px(o.Points[0].Y))
			for _, q := range o.Points[1:] {
				r.LineTo(px(q.X), px(q.Y))
			}
			r.Stroke()
		case "text":
			r.SetFontColor(hexColor(o.Color))
			r.SetFontSize(9) // about 12px at the default dpi
			x := px(o.Points[0].X)
			switch o.Align {
			case AlignCenter:
				x -= r.MeasureText(o.Text).Width() / 2
			case AlignRight:
				x -= r.MeasureText(o.Text).Width()
			}
			r.Text(o.Text, x, px(o.Points[0].Y))
		}
	}
	if err := r.Save(w); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

func px(v float64) int { return int(math.Floor(v)) }

func hexColor(c string) drawing.Color { return drawing.ColorFromHex(strings.TrimPrefix(c, "#")) }
