package rangeplot

// PlotType selects how the data under the brush is drawn.
type PlotType string

const (
	PlotLineChart PlotType = "lineChart"
	PlotHistogram PlotType = "histogram"
)

func (p PlotType) Valid() bool {
	return p == PlotLineChart || p == PlotHistogram
}

// Cursor is the pointer style the backend should show over the plot.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorResize   Cursor = "ew-resize"
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

const (
	chartHeight          = 62.0
	chartHeightLarge     = 112.0
	containerHeight      = 78.0
	containerHeightLarge = 130.0
)

// PlotHeight returns the height of the plot for the compact or enlarged
// display.
func PlotHeight(enlarged bool) float64 {
	if enlarged {
		return chartHeightLarge
	}
	return chartHeight
}

// ContainerHeight returns the height of the box holding the plot and its
// axis for the compact or enlarged display.
func ContainerHeight(enlarged bool) float64 {
	if enlarged {
		return containerHeightLarge
	}
	return containerHeight
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// ChartPadding is the margin kept around the plotted marks.
var ChartPadding = Padding{
	Top:    18,
	Bottom: 12,
}

// Mark is a point of a line chart (W and H are zero) or a bar of a
// histogram, in pixels relative to the plot area.
type Mark struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Selected bool
}

type Tick struct {
	Pos   float64
	Label string
}

// Handle is the brush overlay: the pixel positions of both edges and the
// rectangle covering the selection.
type Handle struct {
	Lo     float64
	Hi     float64
	Top    float64
	Height float64
}

func (h Handle) Width() float64 {
	return h.Hi - h.Lo
}

// Hover describes the highlighted sample and its tooltip.
type Hover struct {
	Index int
	X     float64
	Y     float64
	Label string
	Value string
}

// Descriptor is everything a rendering backend needs to draw the widget.
// Coordinates of marks, ticks, handle and hover are relative to the plot
// area, itself offset by Padding inside the container.
type Descriptor struct {
	Width           float64
	Height          float64
	ContainerHeight float64
	Padding

	Plot   PlotType
	Marks  []Mark
	Ticks  []Tick
	Handle Handle
	Hover  *Hover
	Cursor Cursor
}

// Empty reports whether there is nothing to draw.
func (d Descriptor) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// DrawingWidth is the width of the plot area.
func (d Descriptor) DrawingWidth() float64 {
	return d.Width
}

// DrawingHeight is the height available for marks.
func (d Descriptor) DrawingHeight() float64 {
	h := d.Height - d.Padding.Vertical()
	if h < 0 {
		return 0
	}
	return h
}
