package rangeplot

import (
	"math"
	"sort"
)

// Nearest returns the index of the point of series whose X is the closest to
// the domain value under the pixel px. Ties are resolved toward the lower
// index. It returns false when series is empty.
func Nearest[T ScalerConstraint](px float64, series []Point[T], scale Scaler[T]) (int, bool) {
	if len(series) == 0 {
		return 0, false
	}
	var (
		dom    = scale.Domain()
		target = dom.Diff(scale.Invert(px))
		offset = func(i int) float64 {
			return dom.Diff(series[i].X)
		}
	)
	i := sort.Search(len(series), func(i int) bool {
		return offset(i) >= target
	})
	switch {
	case i == 0:
		return 0, true
	case i == len(series):
		return first(len(series)-1, offset), true
	}
	var (
		before = math.Abs(target - offset(i-1))
		after  = math.Abs(offset(i) - target)
	)
	if after < before {
		return i, true
	}
	return first(i-1, offset), true
}

// first walks back over samples sharing the X of index i.
func first(i int, offset func(int) float64) int {
	for i > 0 && offset(i-1) == offset(i) {
		i--
	}
	return i
}
