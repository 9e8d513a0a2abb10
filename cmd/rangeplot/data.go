package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/rangeplot"
)

var errColumns = errors.New("not enough columns")

type parseFunc[T rangeplot.ScalerConstraint] func(string) (T, error)

// readPoints reads a series from a CSV file with a header and the columns
// x,y. An empty y is a gap in the line.
func readPoints[T rangeplot.ScalerConstraint](file string, parse parseFunc[T]) ([]rangeplot.Point[T], error) {
	var points []rangeplot.Point[T]
	err := readRows(file, 2, func(row []string) error {
		x, err := parse(row[0])
		if err != nil {
			return err
		}
		y, err := parseCount(row[1])
		if err != nil {
			return err
		}
		points = append(points, rangeplot.Point[T]{X: x, Y: y})
		return nil
	})
	return points, err
}

// readBins reads a histogram from a CSV file with a header and the columns
// x0,x1,count.
func readBins[T rangeplot.ScalerConstraint](file string, parse parseFunc[T]) ([]rangeplot.Bin[T], error) {
	var bins []rangeplot.Bin[T]
	err := readRows(file, 3, func(row []string) error {
		x0, err := parse(row[0])
		if err != nil {
			return err
		}
		x1, err := parse(row[1])
		if err != nil {
			return err
		}
		n, err := parseCount(row[2])
		if err != nil {
			return err
		}
		bins = append(bins, rangeplot.Bin[T]{X0: x0, X1: x1, Count: n})
		return nil
	})
	return bins, err
}

func readRows(file string, cols int, fn func([]string) error) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if len(row) < cols {
			return fmt.Errorf("%s:%d: %w", file, line, errColumns)
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("%s:%d: %w", file, line, err)
		}
	}
	return nil
}

func parseNumber(str string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

func parseCount(str string) (float64, error) {
	if str = strings.TrimSpace(str); str == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}
