package rangeplot

import (
	"github.com/midbel/svg"
)

const (
	FontSize    = 10.0
	AxisHeight  = 30.0
	TickPadding = 12.0
)

// Axis draws the ticks placed by the widget under the plot. The domain line
// is hidden. Tick lines are only drawn when WithInnerTicks is set.
type Axis struct {
	Ticks          []Tick
	Color          string
	WithInnerTicks bool
}

// Render draws the ticks falling inside [0, length], translated to left and
// top.
func (a Axis) Render(length, left, top float64) svg.Element {
	var (
		g    = svg.NewGroup(svg.WithTranslate(left, top))
		font = svg.NewFont(FontSize)
		sk   = svg.NewStroke(a.color(), 1)
	)
	g.Class = append(g.Class, "x", "axis")
	g.Fill = svg.NewFill(a.color())
	for _, t := range a.Ticks {
		if t.Pos < 0 || t.Pos > length {
			continue
		}
		grp := svg.NewGroup(svg.WithTranslate(t.Pos, 0))
		if a.WithInnerTicks {
			line := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(0, FontSize*0.8))
			line.Stroke = sk
			grp.Append(line.AsElement())
		}
		text := svg.NewText(t.Label)
		text.Pos = svg.NewPos(0, TickPadding)
		text.Font = font
		text.Anchor = "middle"
		text.Baseline = "hanging"
		grp.Append(text.AsElement())

		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func (a Axis) color() string {
	if a.Color == "" {
		return "black"
	}
	return a.Color
}
