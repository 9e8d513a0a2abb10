package rangeplot

import (
	"math"
	"time"
)

// MinTickWidth is the default minimum number of pixels between two ticks.
const MinTickWidth = 80.0

// TickCount returns how many ticks of at least spacing pixels fit in width.
// It never returns less than one.
func TickCount(width, spacing float64) int {
	if spacing <= 0 {
		spacing = MinTickWidth
	}
	n := int(math.Floor(width / spacing))
	if n < 1 {
		n = 1
	}
	return n
}

// Ticks returns the tick positions, as domain values in ascending order, for
// an axis drawn with s where ticks are at least spacing pixels apart.
func Ticks[T ScalerConstraint](s Scaler[T], spacing float64) []T {
	ticks, _ := ticksWithFormat(s, spacing)
	return ticks
}

func ticksWithFormat[T ScalerConstraint](s Scaler[T], spacing float64) ([]T, func(T) string) {
	n := TickCount(s.Len(), spacing)
	switch dom := any(s.Domain()).(type) {
	case Domain[time.Time]:
		ticks, iv := timeTicks(dom, n)
		format := iv.formatter()
		return any(ticks).([]T), func(v T) string {
			return format(any(v).(time.Time))
		}
	default:
		return s.Domain().Values(n - 1), func(v T) string {
			return FormatNumber(any(v).(float64))
		}
	}
}

type calendarUnit int

const (
	unitFixed calendarUnit = iota
	unitMonth
	unitYear
)

type interval struct {
	unit   calendarUnit
	step   time.Duration
	count  int
	layout string
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var timeIntervals = []interval{
	{step: time.Millisecond, layout: "%T.%L"},
	{step: 5 * time.Millisecond, layout: "%T.%L"},
	{step: 10 * time.Millisecond, layout: "%T.%L"},
	{step: 50 * time.Millisecond, layout: "%T.%L"},
	{step: 100 * time.Millisecond, layout: "%T.%L"},
	{step: 500 * time.Millisecond, layout: "%T.%L"},
	{step: time.Second, layout: "%T"},
	{step: 5 * time.Second, layout: "%T"},
	{step: 15 * time.Second, layout: "%T"},
	{step: 30 * time.Second, layout: "%T"},
	{step: time.Minute, layout: "%R"},
	{step: 5 * time.Minute, layout: "%R"},
	{step: 15 * time.Minute, layout: "%R"},
	{step: 30 * time.Minute, layout: "%R"},
	{step: time.Hour, layout: "%R"},
	{step: 3 * time.Hour, layout: "%R"},
	{step: 6 * time.Hour, layout: "%b %d %R"},
	{step: 12 * time.Hour, layout: "%b %d %R"},
	{step: day, layout: "%b %d"},
	{step: 2 * day, layout: "%b %d"},
	{step: week, layout: "%b %d"},
	{unit: unitMonth, count: 1, step: month, layout: "%b %Y"},
	{unit: unitMonth, count: 3, step: 3 * month, layout: "%b %Y"},
}

var yearSteps = []int{1, 2, 5}

func (i interval) duration() time.Duration {
	return i.step
}

func (i interval) floor(t time.Time) time.Time {
	t = t.UTC()
	switch i.unit {
	case unitMonth:
		m := int(t.Month()) - 1
		m -= m % i.count
		return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, time.UTC)
	case unitYear:
		y := t.Year()
		y -= y % i.count
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t.Truncate(i.step)
	}
}

func (i interval) next(t time.Time) time.Time {
	switch i.unit {
	case unitMonth:
		return t.AddDate(0, i.count, 0)
	case unitYear:
		return t.AddDate(i.count, 0, 0)
	default:
		return t.Add(i.step)
	}
}

func (i interval) formatter() func(time.Time) string {
	format, err := makeTimeFormat(i.layout)
	if err != nil {
		return func(t time.Time) string {
			return t.Format(time.RFC3339)
		}
	}
	return format
}

func (i interval) ticks(dom Domain[time.Time], limit int) []time.Time {
	var (
		list []time.Time
		fst  = dom.Min()
		lst  = dom.Max()
	)
	for t := i.floor(fst); !t.After(lst); t = i.next(t) {
		if t.Before(fst) {
			continue
		}
		list = append(list, t)
		if len(list) > limit {
			break
		}
	}
	return list
}

// yearInterval returns the year based interval whose step is the smallest
// "nice" number of years not shorter than target.
func yearInterval(target time.Duration) interval {
	years := int(math.Ceil(float64(target) / float64(year)))
	if years < 1 {
		years = 1
	}
	mag := int(math.Pow(10, math.Floor(math.Log10(float64(years)))))
	count := 10 * mag
	for _, s := range yearSteps {
		if s*mag >= years {
			count = s * mag
			break
		}
	}
	return interval{
		unit:   unitYear,
		count:  count,
		step:   time.Duration(count) * year,
		layout: "%Y",
	}
}

func pickInterval(span time.Duration, n int) int {
	target := span / time.Duration(n)
	for i, iv := range timeIntervals {
		if iv.duration() >= target {
			return i
		}
	}
	return len(timeIntervals)
}

func intervalAt(i int, span time.Duration, n int) interval {
	if i < len(timeIntervals) {
		return timeIntervals[i]
	}
	target := span / time.Duration(n)
	if i > len(timeIntervals) {
		target = time.Duration(i-len(timeIntervals)+1) * target
	}
	return yearInterval(target)
}

// timeTicks returns at most n ticks aligned on a calendar interval, the
// smallest one producing no more than n ticks inside the domain.
func timeTicks(dom Domain[time.Time], n int) ([]time.Time, interval) {
	span := time.Duration(dom.Extend())
	if span <= 0 {
		return []time.Time{dom.Min()}, timeIntervals[0]
	}
	var (
		idx   = pickInterval(span, n)
		iv    interval
		ticks []time.Time
	)
	for {
		iv = intervalAt(idx, span, n)
		ticks = iv.ticks(dom, n)
		if len(ticks) <= n {
			break
		}
		idx++
	}
	if len(ticks) == 0 {
		return []time.Time{dom.Min()}, iv
	}
	return ticks, iv
}
