package rangeplot

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidDomain = errors.New("invalid domain: min greater than max")
	ErrInvalidWidth  = errors.New("invalid width: negative value")
)

type ScalerConstraint interface {
	float64 | time.Time
}

// Domain is the closed interval a scaler maps from. Offsets returned by Diff
// and consumed by Offset and Shift are expressed in domain units: plain
// numbers for numeric domains, nanoseconds for time domains. Less and
// Translate never go through those offsets and stay exact.
type Domain[T ScalerConstraint] interface {
	Min() T
	Max() T
	Diff(T) float64
	Extend() float64
	Offset(float64) T
	Shift(T, float64) T
	// Translate moves v by to - from.
	Translate(v, from, to T) T
	Less(T, T) bool
	Values(int) []T
	Valid() bool
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Min() float64 {
	return n.fst
}

func (n numberDomain) Max() float64 {
	return n.lst
}

func (n numberDomain) Valid() bool {
	return n.fst <= n.lst
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Offset(f float64) float64 {
	return n.fst + f
}

func (n numberDomain) Shift(v, f float64) float64 {
	return v + f
}

func (n numberDomain) Translate(v, from, to float64) float64 {
	return v + (to - from)
}

func (n numberDomain) Less(a, b float64) bool {
	return a < b
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 || n.Extend() == 0 {
		return []float64{n.fst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f.UTC(),
		lst: t.UTC(),
	}
}

func (t timeDomain) Min() time.Time {
	return t.fst
}

func (t timeDomain) Max() time.Time {
	return t.lst
}

func (t timeDomain) Valid() bool {
	return !t.fst.After(t.lst)
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Offset(f float64) time.Time {
	return t.fst.Add(time.Duration(math.Round(f)))
}

func (t timeDomain) Shift(v time.Time, f float64) time.Time {
	return v.Add(time.Duration(math.Round(f)))
}

func (t timeDomain) Translate(v, from, to time.Time) time.Time {
	return v.Add(to.Sub(from))
}

func (t timeDomain) Less(a, b time.Time) bool {
	return a.Before(b)
}

func (t timeDomain) Values(c int) []time.Time {
	if c <= 0 || t.Extend() == 0 {
		return []time.Time{t.fst}
	}
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

// Clamp restricts v to the interval [lo, hi] of the given domain.
func Clamp[T ScalerConstraint](dom Domain[T], v, lo, hi T) T {
	if dom.Less(v, lo) {
		return lo
	}
	if dom.Less(hi, v) {
		return hi
	}
	return v
}

// Equal reports whether a and b are the same point of dom.
func Equal[T ScalerConstraint](dom Domain[T], a, b T) bool {
	return !dom.Less(a, b) && !dom.Less(b, a)
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Mid() float64 {
	return r.F + r.Len()/2
}

// Scaler maps values of a domain to pixels (Scale) and back (Invert).
type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Invert(float64) T
	Space() float64
	Domain() Domain[T]
	Max() float64
	Min() float64
	Len() float64
}

type linearScaler[T ScalerConstraint] struct {
	Range
	dom Domain[T]
}

// Build returns the linear transform between dom and the pixel range
// [0, width]. A degenerate domain maps every value to the middle of the
// range and every pixel to the domain minimum.
func Build[T ScalerConstraint](dom Domain[T], width float64) (Scaler[T], error) {
	if dom == nil || !dom.Valid() {
		return nil, ErrInvalidDomain
	}
	if width < 0 || math.IsNaN(width) {
		return nil, ErrInvalidWidth
	}
	return linearScaler[T]{
		Range: NewRange(0, width),
		dom:   dom,
	}, nil
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return linearScaler[float64]{
		Range: rg,
		dom:   dom,
	}
}

func (s linearScaler[T]) Domain() Domain[T] {
	return s.dom
}

func (s linearScaler[T]) Scale(v T) float64 {
	if s.dom.Extend() == 0 {
		return s.Mid()
	}
	return s.F + s.dom.Diff(v)*s.Space()
}

func (s linearScaler[T]) Invert(px float64) T {
	if s.dom.Extend() == 0 || s.Len() == 0 {
		return s.dom.Min()
	}
	return s.dom.Offset((px - s.F) / s.Space())
}

func (s linearScaler[T]) Space() float64 {
	if s.dom.Extend() == 0 {
		return 0
	}
	return s.Len() / s.dom.Extend()
}
