package rangeplot

// Style holds the colours used by the SVG backend.
type Style struct {
	Line struct {
		Color string
		Width float64
		Point string
	}
	Fill struct {
		Color    string
		Selected string
		Opacity  float64
	}
	Brush struct {
		Color   string
		Edge    string
		Opacity float64
	}
	Text struct {
		Color string
	}
	Axis struct {
		// Ticks draws a short line above each label.
		Ticks bool
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Color = Tableau10[0]
	s.Line.Width = 1.5
	s.Fill.Color = "#d3d8e0"
	s.Fill.Selected = Tableau10[0]
	s.Fill.Opacity = 0.9
	s.Brush.Color = "#d3d8e0"
	s.Brush.Edge = Category10[0]
	s.Brush.Opacity = 0.3
	s.Text.Color = "#6a7485"
	return s
}

// WithPalette returns s using the first colours of p for the line, the
// selected bins and the brush edges.
func (s Style) WithPalette(p Palette) Style {
	if len(p) == 0 {
		return s
	}
	s.Line.Color = p[0]
	s.Fill.Selected = p[0]
	s.Brush.Edge = p[len(p)-1]
	return s
}
