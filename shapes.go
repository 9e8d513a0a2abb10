package rangeplot

import (
	"github.com/midbel/svg"
)

// DefaultSize is the size in pixels of the hovered point marker.
var DefaultSize float64 = 6

type PointFunc func(svg.Pos) svg.Element

func GetCircle(pos svg.Pos) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Fill = svg.NewFill(currentColor)
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Fill = svg.NewFill(currentColor)

	return el.AsElement()
}

// PointShape returns the marker drawing function registered under name.
func PointShape(name string) PointFunc {
	switch name {
	case "circle":
		return GetCircle
	case "square":
		return GetSquare
	default:
		return nil
	}
}
