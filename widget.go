package rangeplot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var ErrInvalidPlot = errors.New("invalid plot: expected lineChart or histogram")

// Props are the inputs of a widget. Domain, Series and Histogram belong to
// the caller and are never modified. Value is only changed by the caller,
// usually with the values received by OnBrush.
type Props[T ScalerConstraint] struct {
	Domain    Domain[T]
	Value     Value[T]
	Width     float64
	Height    float64
	Plot      PlotType
	Series    []Point[T]
	Histogram []Bin[T]
	// YDomain is the vertical extent of the marks. When nil, it is computed
	// from the series or the histogram counts.
	YDomain  Domain[float64]
	Enlarged bool
	OnBrush  func(Value[T])
	Hint     HintFormatter[T]
}

func (p Props[T]) check() error {
	if p.Domain == nil || !p.Domain.Valid() {
		return ErrInvalidDomain
	}
	if err := p.Value.Check(p.Domain); err != nil {
		return err
	}
	if !p.Plot.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPlot, p.Plot)
	}
	if p.YDomain != nil && !p.YDomain.Valid() {
		return fmt.Errorf("y %w", ErrInvalidDomain)
	}
	return nil
}

func (p Props[T]) lineChart() bool {
	return p.Plot == PlotLineChart
}

type Option[T ScalerConstraint] func(*Widget[T])

func WithLogger[T ScalerConstraint](logger *slog.Logger) Option[T] {
	return func(w *Widget[T]) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithTolerance[T ScalerConstraint](px float64) Option[T] {
	return func(w *Widget[T]) {
		w.brush.Tolerance = px
	}
}

func WithTickSpacing[T ScalerConstraint](px float64) Option[T] {
	return func(w *Widget[T]) {
		w.spacing = px
	}
}

// Widget coordinates the scale, the brush and the hovered point of a range
// plot. It is driven by pointer events from a single goroutine and is not
// safe for concurrent use.
type Widget[T ScalerConstraint] struct {
	props   Props[T]
	brush   Brush[T]
	cache   scaleCache[T]
	spacing float64
	logger  *slog.Logger

	hover   int
	pointer float64
	inside  bool
}

// New returns a widget for props. An invalid domain or value is rejected
// before any layout is attempted.
func New[T ScalerConstraint](props Props[T], options ...Option[T]) (*Widget[T], error) {
	if err := props.check(); err != nil {
		return nil, err
	}
	w := Widget[T]{
		props:   props,
		spacing: MinTickWidth,
		logger:  discard,
		hover:   -1,
	}
	w.brush.Tolerance = DefaultTolerance
	for _, o := range options {
		o(&w)
	}
	w.brush.Logger = w.logger
	return &w, nil
}

// Props returns the current inputs of the widget.
func (w *Widget[T]) Props() Props[T] {
	return w.props
}

// Dragging reports whether a brush gesture is in progress.
func (w *Widget[T]) Dragging() bool {
	return w.brush.Active()
}

// Update replaces the inputs of the widget. Invalid props are ignored and the
// error returned. A drag in progress is cancelled when the domain or the
// width change, or when the value fed back is not the one last proposed.
// The hovered point is looked up again under the last pointer position.
func (w *Widget[T]) Update(props Props[T]) error {
	if err := props.check(); err != nil {
		w.logger.Warn("props rejected", "err", err)
		return err
	}
	if w.brush.Active() {
		var (
			sameDomain = equalDomain(w.props.Domain, props.Domain) && w.props.Width == props.Width
			sameValue  = sameDomain && props.Value.Equal(props.Domain, w.brush.Last())
		)
		if !sameDomain || !sameValue {
			w.brush.Cancel()
		}
	}
	w.props = props
	w.hover = w.resolve(w.pointer)
	return nil
}

// PointerDown starts a drag when px, relative to the widget, grabs the
// selection.
func (w *Widget[T]) PointerDown(px float64) {
	scale, ok := w.scale()
	if !ok {
		return
	}
	x := px - ChartPadding.Left
	w.track(x)
	value := w.props.Value.Within(w.props.Domain)
	if w.brush.PointerDown(x, value, scale) {
		w.hover = -1
	}
}

// PointerMove moves the brush while dragging, or updates the hovered point
// otherwise.
func (w *Widget[T]) PointerMove(px float64) {
	x := px - ChartPadding.Left
	w.track(x)
	if w.brush.Active() {
		if v, ok := w.brush.PointerMove(x); ok {
			w.emit(v)
		}
		return
	}
	w.hover = w.resolve(x)
}

// PointerUp ends the drag and emits its final value when the pointer moved.
// Without an active drag, it does nothing.
func (w *Widget[T]) PointerUp() {
	if v, ok := w.brush.PointerUp(); ok {
		w.emit(v)
	}
}

// PointerLeave clears the hovered point. A drag in progress is cancelled
// without emitting.
func (w *Widget[T]) PointerLeave() {
	w.inside = false
	w.hover = -1
	w.brush.Cancel()
}

// Unmount releases the transient state of the widget without emitting.
func (w *Widget[T]) Unmount() {
	w.PointerLeave()
	w.cache = scaleCache[T]{}
}

// Render computes the geometry of the widget for its current props, hovered
// point and drag state.
func (w *Widget[T]) Render() (Descriptor, error) {
	var (
		p    = w.props
		desc = Descriptor{
			Plot:   PlotHistogram,
			Cursor: CursorDefault,
		}
	)
	if p.lineChart() {
		desc.Plot = PlotLineChart
	}
	if err := p.check(); err != nil {
		return desc, err
	}
	if p.Width <= 0 || p.Height <= 0 || math.IsNaN(p.Width) || math.IsNaN(p.Height) {
		return desc, nil
	}
	desc.Width = p.Width
	desc.Height = p.Height
	desc.ContainerHeight = p.Height + ContainerHeight(p.Enlarged) - PlotHeight(p.Enlarged)
	desc.Padding = ChartPadding

	scale, ticks, err := w.cache.get(p.Domain, p.Width, w.spacing)
	if err != nil {
		return desc, err
	}
	var (
		value  = p.Value.Within(p.Domain)
		yscale = NumberScaler(flip(w.yDomain()), NewRange(0, desc.DrawingHeight()))
	)
	desc.Ticks = ticks
	desc.Handle = Handle{
		Lo:     scale.Scale(value.Lo),
		Hi:     scale.Scale(value.Hi),
		Top:    yscale.Min(),
		Height: yscale.Len(),
	}
	if p.lineChart() {
		desc.Marks = lineMarks(p.Series, scale, yscale)
		desc.Hover = w.hovered(scale, yscale)
	} else {
		desc.Marks = barMarks(p.Histogram, value, scale, yscale)
	}
	desc.Cursor = w.cursor(value, scale)
	return desc, nil
}

func (w *Widget[T]) emit(v Value[T]) {
	if w.props.OnBrush != nil {
		w.props.OnBrush(v)
	}
}

func (w *Widget[T]) track(x float64) {
	w.pointer = x
	w.inside = true
}

// resolve returns the index of the sample hovered at x, or -1 when there is
// none. A gap in the series is never hovered.
func (w *Widget[T]) resolve(x float64) int {
	if !w.inside || w.brush.Active() || !w.props.lineChart() {
		return -1
	}
	scale, ok := w.scale()
	if !ok {
		return -1
	}
	i, ok := Nearest(x, w.props.Series, scale)
	if !ok || math.IsNaN(w.props.Series[i].Y) {
		return -1
	}
	return i
}

func (w *Widget[T]) scale() (Scaler[T], bool) {
	s, _, err := w.cache.get(w.props.Domain, math.Max(w.props.Width, 0), w.spacing)
	if err != nil {
		w.logger.Warn("scale unavailable", "err", err)
		return nil, false
	}
	return s, true
}

func (w *Widget[T]) cursor(value Value[T], scale Scaler[T]) Cursor {
	edge := w.brush.Edge()
	if edge == EdgeNone && w.inside {
		edge = w.brush.Hit(w.pointer, value, scale)
		if edge == EdgeWhole {
			return CursorGrab
		}
	}
	switch edge {
	case EdgeLo, EdgeHi:
		return CursorResize
	case EdgeWhole:
		return CursorGrabbing
	default:
		return CursorDefault
	}
}

func (w *Widget[T]) hovered(scale Scaler[T], yscale Scaler[float64]) *Hover {
	if w.hover < 0 || w.hover >= len(w.props.Series) || w.brush.Active() {
		return nil
	}
	var (
		pt     = w.props.Series[w.hover]
		format = w.props.Hint
	)
	if math.IsNaN(pt.Y) {
		return nil
	}
	if format == nil {
		format = DefaultHint[T]
	}
	return &Hover{
		Index: w.hover,
		X:     scale.Scale(pt.X),
		Y:     yscale.Scale(pt.Y),
		Label: format(w.props.Domain)(pt.X),
		Value: FormatNumber(pt.Y),
	}
}

func (w *Widget[T]) yDomain() Domain[float64] {
	if w.props.YDomain != nil {
		return w.props.YDomain
	}
	if !w.props.lineChart() {
		var top float64
		for _, b := range w.props.Histogram {
			top = math.Max(top, b.Count)
		}
		return NumberDomain(0, top)
	}
	var (
		fst = math.Inf(1)
		lst = math.Inf(-1)
	)
	for _, pt := range w.props.Series {
		if math.IsNaN(pt.Y) {
			continue
		}
		fst = math.Min(fst, pt.Y)
		lst = math.Max(lst, pt.Y)
	}
	if fst > lst {
		return NumberDomain(0, 0)
	}
	return NumberDomain(fst, lst)
}

// flip reverses a vertical domain so that its maximum is drawn at the top.
func flip(dom Domain[float64]) Domain[float64] {
	return NumberDomain(dom.Max(), dom.Min())
}

func lineMarks[T ScalerConstraint](series []Point[T], x Scaler[T], y Scaler[float64]) []Mark {
	marks := make([]Mark, 0, len(series))
	for _, pt := range series {
		if math.IsNaN(pt.Y) {
			continue
		}
		marks = append(marks, Mark{
			X: x.Scale(pt.X),
			Y: y.Scale(pt.Y),
		})
	}
	return marks
}

func barMarks[T ScalerConstraint](bins []Bin[T], value Value[T], x Scaler[T], y Scaler[float64]) []Mark {
	var (
		marks = make([]Mark, 0, len(bins))
		dom   = x.Domain()
	)
	for _, b := range bins {
		var (
			x0  = x.Scale(b.X0)
			x1  = x.Scale(b.X1)
			top = y.Scale(b.Count)
		)
		marks = append(marks, Mark{
			X:        x0,
			Y:        top,
			W:        math.Max(x1-x0, 0),
			H:        math.Max(y.Max()-top, 0),
			Selected: value.Contains(dom, b),
		})
	}
	return marks
}

func equalDomain[T ScalerConstraint](a, b Domain[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Min() == b.Min() && a.Max() == b.Max()
}

// scaleCache keeps the transform and the axis ticks computed for the last
// (domain, width) pair.
type scaleCache[T ScalerConstraint] struct {
	ok      bool
	min     T
	max     T
	width   float64
	spacing float64

	scale Scaler[T]
	ticks []Tick
}

func (c *scaleCache[T]) get(dom Domain[T], width, spacing float64) (Scaler[T], []Tick, error) {
	if dom == nil {
		return nil, nil, ErrInvalidDomain
	}
	if c.ok && c.min == dom.Min() && c.max == dom.Max() && c.width == width && c.spacing == spacing {
		return c.scale, c.ticks, nil
	}
	scale, err := Build(dom, width)
	if err != nil {
		return nil, nil, err
	}
	values, format := ticksWithFormat(scale, spacing)
	ticks := make([]Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, Tick{
			Pos:   scale.Scale(v),
			Label: format(v),
		})
	}
	*c = scaleCache[T]{
		ok:      true,
		min:     dom.Min(),
		max:     dom.Max(),
		width:   width,
		spacing: spacing,
		scale:   scale,
		ticks:   ticks,
	}
	return scale, ticks, nil
}
