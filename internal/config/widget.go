package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/midbel/rangeplot"
)

// DataType is the type of the horizontal values of a widget.
type DataType string

const (
	DataNumber DataType = "number"
	DataTime   DataType = "time"
)

// DefaultTimeFormat is used to read time values when a widget file sets no
// format.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

var (
	ErrBounds   = errors.New("expected two bounds")
	ErrDataType = errors.New("unknown data type")
	ErrPlot     = errors.New("unknown plot")
)

// WidgetFile describes one widget to render. Bounds are kept as text and
// parsed once the data type is known.
type WidgetFile struct {
	Title      string   `yaml:"title"`
	Type       DataType `yaml:"type"`
	Plot       string   `yaml:"plot"`
	Domain     []string `yaml:"domain"`
	Value      []string `yaml:"value"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Enlarged   bool     `yaml:"enlarged"`
	Data       string   `yaml:"data"`
	TimeFormat string   `yaml:"timeformat"`
	Palette    string   `yaml:"palette"`
	Point      string   `yaml:"point"`
	Ticks      bool     `yaml:"ticks"`
	Output     string   `yaml:"output"`

	// Path is the file the widget was read from.
	Path string `yaml:"-"`
}

// LoadWidget reads and checks a widget file. A relative data file is
// resolved from the directory of the widget file.
func LoadWidget(path string) (WidgetFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return WidgetFile{}, err
	}
	w, err := ParseWidget(buf)
	if err != nil {
		return WidgetFile{}, fmt.Errorf("%s: %w", path, err)
	}
	w.Path = path
	if w.Data != "" && !filepath.IsAbs(w.Data) {
		w.Data = filepath.Join(filepath.Dir(path), w.Data)
	}
	return w, nil
}

// ParseWidget decodes a widget from YAML and fills the missing fields with
// their defaults.
func ParseWidget(buf []byte) (WidgetFile, error) {
	var w WidgetFile
	if err := yaml.Unmarshal(buf, &w); err != nil {
		return w, err
	}
	if w.Type == "" {
		w.Type = DataNumber
	}
	if w.Plot == "" {
		w.Plot = string(rangeplot.PlotLineChart)
	}
	if w.TimeFormat == "" {
		w.TimeFormat = DefaultTimeFormat
	}
	if len(w.Value) == 0 {
		w.Value = append(w.Value, w.Domain...)
	}
	return w, w.check()
}

func (w WidgetFile) check() error {
	switch w.Type {
	case DataNumber, DataTime:
	default:
		return fmt.Errorf("%w: %s", ErrDataType, w.Type)
	}
	if !rangeplot.PlotType(w.Plot).Valid() {
		return fmt.Errorf("%w: %s", ErrPlot, w.Plot)
	}
	if len(w.Domain) != 2 {
		return fmt.Errorf("domain: %w", ErrBounds)
	}
	if len(w.Value) != 2 {
		return fmt.Errorf("value: %w", ErrBounds)
	}
	return nil
}

// OutputFile returns where the rendered widget is written: the configured
// output, or the widget file name with an svg extension, inside dir.
func (w WidgetFile) OutputFile(dir string) string {
	name := w.Output
	if name == "" {
		base := filepath.Base(w.Path)
		name = base[:len(base)-len(filepath.Ext(base))] + ".svg"
	}
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
