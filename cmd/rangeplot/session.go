package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/rangeplot"
	"github.com/midbel/rangeplot/internal/config"
)

// kind knows how to read and print the horizontal values of one data type.
type kind[T rangeplot.ScalerConstraint] struct {
	parse  parseFunc[T]
	domain func(T, T) rangeplot.Domain[T]
	format func(T) string
}

func numberKind() kind[float64] {
	return kind[float64]{
		parse:  parseNumber,
		domain: rangeplot.NumberDomain,
		format: rangeplot.FormatNumber,
	}
}

func timeKind(format string) (kind[time.Time], error) {
	parse, err := rangeplot.ParseTime(format)
	if err != nil {
		return kind[time.Time]{}, err
	}
	k := kind[time.Time]{
		parse: func(str string) (time.Time, error) {
			return parse(strings.TrimSpace(str))
		},
		domain: rangeplot.TimeDomain,
		format: func(t time.Time) string {
			return t.UTC().Format(time.RFC3339)
		},
	}
	return k, nil
}

func (k kind[T]) bounds(vs []string) (T, T, error) {
	var lo, hi T
	lo, err := k.parse(vs[0])
	if err != nil {
		return lo, hi, err
	}
	hi, err = k.parse(vs[1])
	return lo, hi, err
}

func (k kind[T]) props(file config.WidgetFile, cfg config.AppConfig) (rangeplot.Props[T], error) {
	var props rangeplot.Props[T]
	lo, hi, err := k.bounds(file.Domain)
	if err != nil {
		return props, fmt.Errorf("domain: %w", err)
	}
	vlo, vhi, err := k.bounds(file.Value)
	if err != nil {
		return props, fmt.Errorf("value: %w", err)
	}
	props = rangeplot.Props[T]{
		Domain:   k.domain(lo, hi),
		Value:    rangeplot.NewValue(vlo, vhi),
		Width:    file.Width,
		Height:   file.Height,
		Plot:     rangeplot.PlotType(file.Plot),
		Enlarged: file.Enlarged,
	}
	if props.Width <= 0 {
		props.Width = cfg.Width()
	}
	if props.Height <= 0 {
		props.Height = rangeplot.PlotHeight(file.Enlarged)
	}
	if file.Data == "" {
		return props, nil
	}
	switch props.Plot {
	case rangeplot.PlotHistogram:
		props.Histogram, err = readBins(file.Data, k.parse)
	default:
		props.Series, err = readPoints(file.Data, k.parse)
	}
	return props, err
}

// session owns a widget and plays the part of its parent: every value the
// brush proposes is fed back as the new value of the widget.
type session[T rangeplot.ScalerConstraint] struct {
	widget  *rangeplot.Widget[T]
	chart   rangeplot.Chart
	format  func(T) string
	logger  *slog.Logger
	emitted []rangeplot.Value[T]
}

func newSession[T rangeplot.ScalerConstraint](k kind[T], file config.WidgetFile, cfg config.AppConfig, logger *slog.Logger) (*session[T], error) {
	props, err := k.props(file, cfg)
	if err != nil {
		return nil, err
	}
	s := session[T]{
		chart:  getChart(file),
		format: k.format,
		logger: logger,
	}
	props.OnBrush = s.onBrush

	s.widget, err = rangeplot.New(props,
		rangeplot.WithLogger[T](logger),
		rangeplot.WithTolerance[T](cfg.Tolerance()),
		rangeplot.WithTickSpacing[T](cfg.TickSpacing()),
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *session[T]) onBrush(v rangeplot.Value[T]) {
	s.emitted = append(s.emitted, v)
	s.logger.Debug("brush", "lo", s.format(v.Lo), "hi", s.format(v.Hi))

	props := s.widget.Props()
	props.Value = v
	if err := s.widget.Update(props); err != nil {
		s.logger.Warn("value not applied", "err", err)
	}
}

func (s *session[T]) apply(events []event) error {
	for i, e := range events {
		switch e.Type {
		case eventDown:
			s.widget.PointerDown(e.X)
		case eventMove:
			s.widget.PointerMove(e.X)
		case eventUp:
			s.widget.PointerUp()
		case eventLeave:
			s.widget.PointerLeave()
		default:
			return fmt.Errorf("event #%d: %w: %s", i+1, errEvent, e.Type)
		}
	}
	return nil
}

func (s *session[T]) render(w io.Writer) (rangeplot.Descriptor, error) {
	desc, err := s.widget.Render()
	if err != nil {
		return desc, err
	}
	return desc, s.chart.Render(w, desc)
}

func (s *session[T]) writeFile(file string) (rangeplot.Descriptor, error) {
	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rangeplot.Descriptor{}, err
		}
	}
	w, err := os.Create(file)
	if err != nil {
		return rangeplot.Descriptor{}, err
	}
	defer w.Close()
	return s.render(w)
}

func getChart(file config.WidgetFile) rangeplot.Chart {
	ch := rangeplot.NewChart(file.Title)
	if file.Palette != "" {
		ch.Style = ch.Style.WithPalette(rangeplot.PaletteByName(file.Palette))
	}
	ch.Style.Line.Point = file.Point
	ch.Style.Axis.Ticks = file.Ticks
	return ch
}
