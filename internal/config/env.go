package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable read by LoadFromEnv.
const EnvPrefix = "RANGEPLOT"

// EnvConfig mirrors AppConfig as environment variables. Zero values leave
// the defaults of AppConfig untouched.
type EnvConfig struct {
	LogLevel    string  `envconfig:"LOG_LEVEL" default:"INFO"`
	LogFormat   string  `envconfig:"LOG_FORMAT" default:"pretty"`
	Width       float64 `envconfig:"WIDTH" default:"400"`
	TickSpacing float64 `envconfig:"TICK_SPACING" default:"80"`
	Tolerance   float64 `envconfig:"TOLERANCE" default:"6"`
	Workers     int     `envconfig:"WORKERS" default:"4"`
	OutputDir   string  `envconfig:"OUTPUT_DIR"`
}

// LoadFromEnv reads RANGEPLOT_* variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix reads the variables named after prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	switch LogFormat(e.LogFormat) {
	case LogFormatJSON:
		cfg = applyOption(cfg, WithLogFormat(LogFormatJSON))
	default:
		cfg = applyOption(cfg, WithLogFormat(LogFormatPretty))
	}
	cfg = applyOption(cfg, WithWidth(e.Width))
	cfg = applyOption(cfg, WithTickSpacing(e.TickSpacing))
	cfg = applyOption(cfg, WithTolerance(e.Tolerance))
	cfg = applyOption(cfg, WithWorkers(e.Workers))
	if e.OutputDir != "" {
		cfg = applyOption(cfg, WithOutputDir(e.OutputDir))
	}
	return cfg
}
