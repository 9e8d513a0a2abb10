package rangeplot

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// Backend draws a descriptor.
type Backend interface {
	Render(io.Writer, Descriptor) error
}

// Chart is the SVG backend. The plot is drawn at the top of the container
// and the axis below it.
type Chart struct {
	Title string
	Style Style
	// AxisHeight is the height reserved under the plot for tick labels.
	AxisHeight float64
}

func NewChart(title string) Chart {
	return Chart{
		Title:      title,
		Style:      DefaultStyle(),
		AxisHeight: AxisHeight,
	}
}

func (c Chart) Render(w io.Writer, d Descriptor) error {
	el := svg.NewSVG(svg.WithDimension(d.Width, c.height(d)))
	el.OmitProlog = true
	if !d.Empty() {
		el.Append(c.drawAxis(d))
		ar := c.getArea(d)
		ar.Append(c.drawMarks(d))
		ar.Append(c.drawHandle(d))
		if hv := c.drawHover(d); hv != nil {
			ar.Append(hv)
		}
		el.Append(ar.AsElement())
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) height(d Descriptor) float64 {
	if d.Empty() {
		return 0
	}
	return d.ContainerHeight + c.axisHeight()
}

func (c Chart) axisHeight() float64 {
	if c.AxisHeight <= 0 {
		return AxisHeight
	}
	return c.AxisHeight
}

func (c Chart) getArea(d Descriptor) svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area", string(d.Plot))
	g.Transform = svg.Translate(d.Padding.Left, d.Padding.Top)
	return g
}

func (c Chart) drawMarks(d Descriptor) svg.Element {
	var rdr markRenderer
	switch d.Plot {
	case PlotLineChart:
		rdr = LineRenderer{
			Color: c.Style.Line.Color,
			Width: c.Style.Line.Width,
			Point: PointShape(c.Style.Line.Point),
		}
	default:
		rdr = BarRenderer{
			Fill:     c.Style.Fill.Color,
			Selected: c.Style.Fill.Selected,
			Opacity:  c.Style.Fill.Opacity,
		}
	}
	return rdr.Render(d.Marks)
}

func (c Chart) drawAxis(d Descriptor) svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	axe := Axis{
		Ticks:          d.Ticks,
		Color:          c.Style.Text.Color,
		WithInnerTicks: c.Style.Axis.Ticks,
	}
	el := axe.Render(d.DrawingWidth(), d.Padding.Left, d.Height)
	g.Append(el)
	return g.AsElement()
}
