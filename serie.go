package rangeplot

import (
	"errors"
	"time"
)

var ErrInvalidValue = errors.New("invalid value: lower bound greater than upper bound")

// Point is a sample of a series. Series are ordered by X ascending.
type Point[T ScalerConstraint] struct {
	X T
	Y float64
}

func NumberPoint(x, y float64) Point[float64] {
	return Point[float64]{
		X: x,
		Y: y,
	}
}

func TimePoint(x time.Time, y float64) Point[time.Time] {
	return Point[time.Time]{
		X: x,
		Y: y,
	}
}

// Bin is a bucket of a histogram covering [X0, X1).
type Bin[T ScalerConstraint] struct {
	X0    T
	X1    T
	Count float64
}

func NumberBin(x0, x1, count float64) Bin[float64] {
	return Bin[float64]{
		X0:    x0,
		X1:    x1,
		Count: count,
	}
}

func TimeBin(x0, x1 time.Time, count float64) Bin[time.Time] {
	return Bin[time.Time]{
		X0:    x0,
		X1:    x1,
		Count: count,
	}
}

// Value is the selected sub-range of a domain.
type Value[T ScalerConstraint] struct {
	Lo T
	Hi T
}

func NewValue[T ScalerConstraint](lo, hi T) Value[T] {
	return Value[T]{
		Lo: lo,
		Hi: hi,
	}
}

// Check returns ErrInvalidValue when the bounds are reversed.
func (v Value[T]) Check(dom Domain[T]) error {
	if dom.Less(v.Hi, v.Lo) {
		return ErrInvalidValue
	}
	return nil
}

// Within returns v restricted to the bounds of dom.
func (v Value[T]) Within(dom Domain[T]) Value[T] {
	lo := Clamp(dom, v.Lo, dom.Min(), dom.Max())
	hi := Clamp(dom, v.Hi, lo, dom.Max())
	return NewValue(lo, hi)
}

func (v Value[T]) Equal(dom Domain[T], other Value[T]) bool {
	return Equal(dom, v.Lo, other.Lo) && Equal(dom, v.Hi, other.Hi)
}

// Width returns the extent of v in domain units.
func (v Value[T]) Width(dom Domain[T]) float64 {
	return dom.Diff(v.Hi) - dom.Diff(v.Lo)
}

// Contains reports whether the bin lies inside v.
func (v Value[T]) Contains(dom Domain[T], b Bin[T]) bool {
	return !dom.Less(b.X0, v.Lo) && !dom.Less(v.Hi, b.X1)
}
