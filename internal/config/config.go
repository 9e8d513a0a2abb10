// Package config provides the configuration of the rangeplot command.
package config

import (
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel    = "INFO"
	DefaultWidth       = 400.0
	DefaultTickSpacing = 80.0
	DefaultTolerance   = 6.0
	DefaultWorkers     = 4
	DefaultOutputDir   = "."
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the settings shared by all commands.
type AppConfig struct {
	logLevel    string
	logFormat   LogFormat
	width       float64
	tickSpacing float64
	tolerance   float64
	workers     int
	outputDir   string
}

// NewAppConfig returns a configuration filled with the defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:    DefaultLogLevel,
		logFormat:   LogFormatPretty,
		width:       DefaultWidth,
		tickSpacing: DefaultTickSpacing,
		tolerance:   DefaultTolerance,
		workers:     DefaultWorkers,
		outputDir:   DefaultOutputDir,
	}
}

// Option modifies an AppConfig.
type Option func(*AppConfig)

// NewAppConfigWithOptions returns the defaults with opts applied in order.
func NewAppConfigWithOptions(opts ...Option) AppConfig {
	cfg := NewAppConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

func applyOption(cfg AppConfig, opt Option) AppConfig {
	opt(&cfg)
	return cfg
}

func WithLogLevel(level string) Option {
	return func(c *AppConfig) {
		c.logLevel = strings.ToUpper(level)
	}
}

func WithLogFormat(format LogFormat) Option {
	return func(c *AppConfig) {
		c.logFormat = format
	}
}

func WithWidth(px float64) Option {
	return func(c *AppConfig) {
		if px > 0 {
			c.width = px
		}
	}
}

func WithTickSpacing(px float64) Option {
	return func(c *AppConfig) {
		if px > 0 {
			c.tickSpacing = px
		}
	}
}

func WithTolerance(px float64) Option {
	return func(c *AppConfig) {
		if px >= 0 {
			c.tolerance = px
		}
	}
}

func WithWorkers(n int) Option {
	return func(c *AppConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(c *AppConfig) {
		c.outputDir = dir
	}
}

// LogLevel returns the minimum level of the records written.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the output format of the logs.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Width returns the width used for widget files that set none.
func (c AppConfig) Width() float64 { return c.width }

// TickSpacing returns the minimum distance between two axis labels.
func (c AppConfig) TickSpacing() float64 { return c.tickSpacing }

// Tolerance returns the distance under which the pointer grabs an edge.
func (c AppConfig) Tolerance() float64 { return c.tolerance }

// Workers returns how many widgets are rendered at the same time.
func (c AppConfig) Workers() int { return c.workers }

// OutputDir returns the directory receiving the rendered files.
func (c AppConfig) OutputDir() string { return c.outputDir }
