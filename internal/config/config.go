// Package config holds the root configuration for the stealth engine tooling.
// The engine packages themselves are pure; configuration only shapes the
// defaults the CLI and embedding callers construct them with.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/oranolio956/qa-automation-framework-sub005/pkg/gesture"
)

var (
	instance *Config
	once     sync.Once
	loadErr  error
)

// Config is the root configuration structure.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Behavior BehaviorConfig `mapstructure:"behavior"`
	Gesture  gesture.Config `mapstructure:"gesture"`
}

// ColorConfig defines the console colors for each log level.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" json:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" json:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" json:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" json:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" json:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" json:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" json:"fatal" yaml:"fatal"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" json:"level" yaml:"level"`
	Format      string      `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" json:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" json:"colors" yaml:"colors"`
}

// BehaviorConfig holds the persona defaults used when a caller does not
// specify aggressiveness explicitly.
type BehaviorConfig struct {
	Aggressiveness float64 `mapstructure:"aggressiveness" json:"aggressiveness" yaml:"aggressiveness"`
}

// SetDefaults registers defaults so the tool can run with no config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "stealth-engine")
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")

	v.SetDefault("behavior.aggressiveness", 0.5)

	g := gesture.DefaultConfig()
	v.SetDefault("gesture.strategy", string(g.Strategy))
	v.SetDefault("gesture.epsilon", g.Epsilon)
	v.SetDefault("gesture.min_points", g.MinPoints)
	v.SetDefault("gesture.max_points", g.MaxPoints)
	v.SetDefault("gesture.min_step_ms", g.MinStepMs)
	v.SetDefault("gesture.max_step_ms", g.MaxStepMs)
	v.SetDefault("gesture.midpoint_sigma_ratio", g.MidpointSigmaRatio)
	v.SetDefault("gesture.max_midpoint_offset", g.MaxMidpointOffset)
	v.SetDefault("gesture.drift_amplitude", g.DriftAmplitude)
	v.SetDefault("gesture.tremor_strength", g.TremorStrength)
	v.SetDefault("gesture.tap_hold_min_ms", g.TapHoldMinMs)
	v.SetDefault("gesture.tap_hold_max_ms", g.TapHoldMaxMs)
}

// Validate checks the fields that cannot be repaired by clamping downstream.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}

	switch c.Gesture.Strategy {
	case "", gesture.CurveQuadratic, gesture.CurveLinear:
	default:
		return fmt.Errorf("gesture.strategy must be quadratic or linear, got %q", c.Gesture.Strategy)
	}

	if c.Gesture.MinPoints > c.Gesture.MaxPoints {
		return fmt.Errorf("gesture.min_points (%d) exceeds gesture.max_points (%d)",
			c.Gesture.MinPoints, c.Gesture.MaxPoints)
	}
	if c.Gesture.MinStepMs > c.Gesture.MaxStepMs {
		return fmt.Errorf("gesture.min_step_ms (%.1f) exceeds gesture.max_step_ms (%.1f)",
			c.Gesture.MinStepMs, c.Gesture.MaxStepMs)
	}
	return nil
}

// Load initializes the configuration singleton from Viper.
func Load(v *viper.Viper) error {
	once.Do(func() {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			loadErr = fmt.Errorf("error unmarshaling config: %w", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			loadErr = fmt.Errorf("invalid configuration: %w", err)
			return
		}
		instance = &cfg
	})
	return loadErr
}

// Set stores a configuration directly, bypassing Viper. Used by tests and by
// embedders that build the configuration programmatically.
func Set(cfg *Config) {
	instance = cfg
}

// Get returns the loaded configuration instance.
func Get() *Config {
	if instance == nil {
		panic("Configuration not initialized. Call config.Load() in the root command.")
	}
	return instance
}
