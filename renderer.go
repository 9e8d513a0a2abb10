package rangeplot

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const currentColor = "currentColor"

type markRenderer interface {
	Render([]Mark) svg.Element
}

// LineRenderer joins the points of a line chart.
type LineRenderer struct {
	Color string
	Width float64
	Point PointFunc
}

func (r LineRenderer) Render(marks []Mark) svg.Element {
	var (
		grp = getBaseGroup(r.Color, "line")
		pat = getBasePath(false, r.Width)
	)
	if len(marks) == 0 {
		return grp.AsElement()
	}
	fst := slices.Fst(marks)
	pat.AbsMoveTo(svg.NewPos(fst.X, fst.Y))
	for _, m := range slices.Rest(marks) {
		pat.AbsLineTo(svg.NewPos(m.X, m.Y))
	}
	grp.Append(pat.AsElement())
	if r.Point != nil {
		for _, m := range marks {
			if el := r.Point(svg.NewPos(m.X, m.Y)); el != nil {
				grp.Append(el)
			}
		}
	}
	return grp.AsElement()
}

// BarRenderer draws the bins of a histogram. Bins inside the selection use
// the Selected colour.
type BarRenderer struct {
	Fill     string
	Selected string
	Opacity  float64
}

func (r BarRenderer) Render(marks []Mark) svg.Element {
	grp := getBaseGroup("", "bar")
	for _, m := range marks {
		var el svg.Rect
		el.Pos = svg.NewPos(m.X, m.Y)
		el.Dim = svg.NewDim(m.W, m.H)
		el.Fill = svg.NewFill(r.Fill)
		if m.Selected && r.Selected != "" {
			el.Fill = svg.NewFill(r.Selected)
		}
		if r.Opacity > 0 {
			el.Fill.Opacity = r.Opacity
		}
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (c Chart) drawHandle(d Descriptor) svg.Element {
	var (
		h   = d.Handle
		grp = getBaseGroup("", "brush", string(d.Cursor))
		sel svg.Rect
	)
	sel.Pos = svg.NewPos(h.Lo, h.Top)
	sel.Dim = svg.NewDim(h.Width(), h.Height)
	sel.Fill = svg.NewFill(c.Style.Brush.Color)
	sel.Fill.Opacity = c.Style.Brush.Opacity
	grp.Append(sel.AsElement())

	for _, x := range []float64{h.Lo, h.Hi} {
		li := svg.NewLine(svg.NewPos(x, h.Top), svg.NewPos(x, h.Top+h.Height))
		li.Stroke = svg.NewStroke(c.Style.Brush.Edge, 2)
		grp.Append(li.AsElement())
	}
	return grp.AsElement()
}

func (c Chart) drawHover(d Descriptor) svg.Element {
	if d.Hover == nil {
		return nil
	}
	var (
		hv  = d.Hover
		grp = getBaseGroup(c.Style.Line.Color, "hint")
		pos = svg.NewPos(hv.X, hv.Y)
	)
	grp.Append(GetCircle(pos))

	lbl := hintText(hv.Label, hv.X, 0)
	val := hintText(hv.Value, hv.X, FontSize*1.2)
	grp.Append(lbl.AsElement())
	grp.Append(val.AsElement())
	return grp.AsElement()
}

func hintText(str string, x, y float64) svg.Text {
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y-FontSize)
	text.Font = svg.NewFont(FontSize * 0.9)
	text.Anchor = "middle"
	text.Baseline = "auto"
	return text
}

func getBasePath(fill bool, width float64) svg.Path {
	if width <= 0 {
		width = 1
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColor, 1)
	pat.Stroke.Width = width
	if fill {
		pat.Fill = svg.NewFill(currentColor)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
