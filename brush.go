package rangeplot

import (
	"log/slog"
	"math"
)

// DefaultTolerance is the distance in pixels around a handle within which a
// pointer grabs that handle.
const DefaultTolerance = 6.0

// Edge identifies the part of the selection moved by a drag gesture.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLo
	EdgeHi
	EdgeWhole
)

func (e Edge) String() string {
	switch e {
	case EdgeLo:
		return "lo"
	case EdgeHi:
		return "hi"
	case EdgeWhole:
		return "whole"
	default:
		return "none"
	}
}

type brushState[T ScalerConstraint] struct {
	active bool
	edge   Edge
	origin float64
	value  Value[T]
	last   Value[T]
	moved  bool
	scale  Scaler[T]
	// pending is set when both handles are under the pointer: the first
	// move picks lo or hi from its direction.
	pending bool
}

// Brush tracks a drag gesture over the selection handles and computes the
// value proposed after each pointer event. The zero value is an idle brush
// with the default tolerance.
type Brush[T ScalerConstraint] struct {
	Tolerance float64
	Logger    *slog.Logger

	state brushState[T]
}

func NewBrush[T ScalerConstraint](tolerance float64) *Brush[T] {
	return &Brush[T]{
		Tolerance: tolerance,
	}
}

// Active reports whether a drag is in progress.
func (b *Brush[T]) Active() bool {
	return b.state.active
}

// Edge returns the edge being dragged, EdgeNone when idle.
func (b *Brush[T]) Edge() Edge {
	if !b.state.active {
		return EdgeNone
	}
	return b.state.edge
}

// Last returns the last value computed during the current or previous drag.
func (b *Brush[T]) Last() Value[T] {
	return b.state.last
}

// Moved reports whether the current drag has produced at least one value.
func (b *Brush[T]) Moved() bool {
	return b.state.active && b.state.moved
}

// Hit returns the edge a pointer down at px would grab.
func (b *Brush[T]) Hit(px float64, value Value[T], scale Scaler[T]) Edge {
	var (
		tol = b.tolerance()
		lo  = scale.Scale(value.Lo)
		hi  = scale.Scale(value.Hi)
	)
	switch {
	case math.Abs(px-lo) <= tol:
		return EdgeLo
	case math.Abs(px-hi) <= tol:
		return EdgeHi
	case px > lo && px < hi:
		return EdgeWhole
	default:
		return EdgeNone
	}
}

// PointerDown starts a drag if px grabs one of the handles or the selection
// itself. It returns false when the brush was already dragging or px misses
// the selection.
func (b *Brush[T]) PointerDown(px float64, value Value[T], scale Scaler[T]) bool {
	if b.state.active {
		return false
	}
	edge := b.Hit(px, value, scale)
	if edge == EdgeNone {
		return false
	}
	b.state = brushState[T]{
		active: true,
		edge:   edge,
		origin: px,
		value:  value,
		last:   value,
		scale:  scale,
	}
	if edge != EdgeWhole && scale.Len() > 0 {
		b.state.pending = math.Abs(scale.Scale(value.Hi)-scale.Scale(value.Lo)) <= b.tolerance()
	}
	b.logger().Debug("brush start", "edge", edge.String(), "px", px)
	return true
}

// PointerMove computes the value for the pointer at px. The returned value
// must be emitted; false means the brush is idle.
func (b *Brush[T]) PointerMove(px float64) (Value[T], bool) {
	if !b.state.active {
		return Value[T]{}, false
	}
	if b.state.pending && px != b.state.origin {
		b.state.pending = false
		b.state.edge = EdgeLo
		if px > b.state.origin {
			b.state.edge = EdgeHi
		}
	}
	var (
		scale = b.state.scale
		dom   = scale.Domain()
		curr  = scale.Invert(px)
		orig  = b.state.value
		next  Value[T]
	)
	switch b.state.edge {
	case EdgeLo:
		next = NewValue(Clamp(dom, curr, dom.Min(), orig.Hi), orig.Hi)
	case EdgeHi:
		next = NewValue(orig.Lo, Clamp(dom, curr, orig.Lo, dom.Max()))
	case EdgeWhole:
		delta := dom.Diff(curr) - dom.Diff(scale.Invert(b.state.origin))
		next = shift(dom, orig, delta)
	}
	b.state.last = next
	b.state.moved = true
	return next, true
}

// PointerUp ends the drag. The last value is returned to be emitted once more
// if the pointer moved during the gesture.
func (b *Brush[T]) PointerUp() (Value[T], bool) {
	if !b.state.active {
		return Value[T]{}, false
	}
	var (
		last  = b.state.last
		moved = b.state.moved
	)
	b.reset()
	b.logger().Debug("brush end", "moved", moved)
	return last, moved
}

// Cancel ends the drag without emitting anything. The last value computed is
// kept.
func (b *Brush[T]) Cancel() {
	if !b.state.active {
		return
	}
	b.reset()
	b.logger().Debug("brush cancelled")
}

func (b *Brush[T]) reset() {
	b.state.active = false
	b.state.edge = EdgeNone
	b.state.moved = false
	b.state.scale = nil
}

func (b *Brush[T]) tolerance() float64 {
	if b.Tolerance <= 0 {
		return DefaultTolerance
	}
	return b.Tolerance
}

func (b *Brush[T]) logger() *slog.Logger {
	if b.Logger == nil {
		return discard
	}
	return b.Logger
}

// shift moves v by delta domain units, stopping at the bounds of dom. The
// width of v is kept exactly: bounded values are rebuilt with Translate.
func shift[T ScalerConstraint](dom Domain[T], v Value[T], delta float64) Value[T] {
	if !dom.Less(dom.Min(), v.Lo) && !dom.Less(v.Hi, dom.Max()) {
		return NewValue(dom.Min(), dom.Max())
	}
	var (
		lo = dom.Shift(v.Lo, delta)
		hi = dom.Shift(v.Hi, delta)
	)
	switch {
	case dom.Less(lo, dom.Min()):
		return NewValue(dom.Min(), dom.Translate(dom.Min(), v.Lo, v.Hi))
	case dom.Less(dom.Max(), hi):
		return NewValue(dom.Translate(dom.Max(), v.Hi, v.Lo), dom.Max())
	default:
		return NewValue(lo, hi)
	}
}
