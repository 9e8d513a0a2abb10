package rangeplot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// HintFormatter returns the function used to label the hovered point given
// the domain of the widget. Implementations usually pick a coarser pattern
// when the domain spans a long period.
type HintFormatter[T ScalerConstraint] func(Domain[T]) func(T) string

const (
	HintWeek   = "%m/%d/%Y"
	HintDay    = "%m/%d/%Y %I:%M %p"
	HintHour   = "%I:%M %p"
	HintSecond = "%I:%M:%S %p"
)

// HintPattern returns the time pattern matching the given span.
func HintPattern(span time.Duration) string {
	switch {
	case span > week:
		return HintWeek
	case span > day:
		return HintDay
	case span > time.Hour:
		return HintHour
	default:
		return HintSecond
	}
}

// DefaultHint is the formatter used when none is given to the widget: time
// domains are formatted with HintPattern, numbers with FormatNumber.
func DefaultHint[T ScalerConstraint](dom Domain[T]) func(T) string {
	if _, ok := any(dom).(Domain[time.Time]); ok {
		format, _ := makeTimeFormat(HintPattern(time.Duration(dom.Extend())))
		return func(v T) string {
			return format(any(v).(time.Time))
		}
	}
	return func(v T) string {
		return FormatNumber(any(v).(float64))
	}
}

// TimeHint builds a HintFormatter from a pattern per span, as returned by
// pick. Patterns use the % specifiers accepted by ParseTimeFormat.
func TimeHint(pick func(time.Duration) string) HintFormatter[time.Time] {
	return func(dom Domain[time.Time]) func(time.Time) string {
		format, err := makeTimeFormat(pick(time.Duration(dom.Extend())))
		if err != nil {
			return func(t time.Time) string {
				return t.Format(time.RFC3339)
			}
		}
		return format
	}
}

// FormatNumber gives a compact label whose precision decreases with the
// magnitude of v.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// ParseTimeFormat converts a pattern made of % specifiers (%Y-%m-%d) into a
// layout accepted by time.Format and time.Parse.
func ParseTimeFormat(format string) (string, error) {
	return parseFormat(format)
}

func makeTimeFormat(format string) (func(time.Time) string, error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(t time.Time) string {
		return t.UTC().Format(format)
	}, nil
}

func makeParseTime(format string) (func(string) (time.Time, error), error) {
	format, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(str string) (time.Time, error) {
		return time.Parse(format, str)
	}, nil
}

// ParseTime returns a parser for values written with the given % pattern.
func ParseTime(format string) (func(string) (time.Time, error), error) {
	return makeParseTime(format)
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06",
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'd': "02",
	'e': "_2",
	'j': "002",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'k': "_3",
	'M': "04",
	'S': "05",
	'L': "000",
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-07:00",
	'Z': "Z",
	'c': "Mon Jan 2 15:04:05 2006",
	'r': "03:04:05 PM",
	'R': "15:04",
	'%': "%",
	'n': "\n",
	't': "\t",
}

func parseFormat(str string) (string, error) {
	var (
		r = strings.NewReader(str)
		w strings.Builder
	)
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in format string")
		}
		if x != percent {
			w.WriteRune(x)
			continue
		}
		x, _, _ = r.ReadRune()
		str, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %c", x)
		}
		w.WriteString(str)
	}
	return w.String(), nil
}
