package gesture

import "math"

// CurveStrategy selects how intermediate swipe points are generated. Both
// strategies satisfy the same output invariants; callers cannot distinguish
// which one produced a Path from its structural guarantees.
type CurveStrategy string

const (
	// CurveQuadratic traces a quadratic Bezier through a randomly perturbed
	// midpoint. This is the default.
	CurveQuadratic CurveStrategy = "quadratic"
	// CurveLinear interpolates the endpoints directly, with per-point jitter
	// standing in for the curve. Fallback when curved paths are disabled.
	CurveLinear CurveStrategy = "linear"
)

// Config holds the tunable parameters of the synthesizer. The zero value is
// usable: normalize() fills in defaults.
type Config struct {
	Strategy CurveStrategy `mapstructure:"strategy" yaml:"strategy"`

	// Epsilon is the endpoint tolerance in pixels.
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`

	// Point count per swipe is drawn uniformly from [MinPoints, MaxPoints].
	MinPoints int `mapstructure:"min_points" yaml:"min_points"`
	MaxPoints int `mapstructure:"max_points" yaml:"max_points"`

	// Per-step time delta in milliseconds is drawn from
	// [MinStepMs, MaxStepMs]; never zero, never implausibly slow.
	MinStepMs float64 `mapstructure:"min_step_ms" yaml:"min_step_ms"`
	MaxStepMs float64 `mapstructure:"max_step_ms" yaml:"max_step_ms"`

	// MidpointSigmaRatio scales the Gaussian midpoint perturbation with the
	// swipe distance; MaxMidpointOffset caps it in pixels.
	MidpointSigmaRatio float64 `mapstructure:"midpoint_sigma_ratio" yaml:"midpoint_sigma_ratio"`
	MaxMidpointOffset  float64 `mapstructure:"max_midpoint_offset" yaml:"max_midpoint_offset"`

	// DriftAmplitude scales the low-frequency Perlin waver along the path;
	// TremorStrength scales the high-frequency Gaussian tremor.
	DriftAmplitude float64 `mapstructure:"drift_amplitude" yaml:"drift_amplitude"`
	TremorStrength float64 `mapstructure:"tremor_strength" yaml:"tremor_strength"`

	// Tap hold duration bounds in milliseconds.
	TapHoldMinMs float64 `mapstructure:"tap_hold_min_ms" yaml:"tap_hold_min_ms"`
	TapHoldMaxMs float64 `mapstructure:"tap_hold_max_ms" yaml:"tap_hold_max_ms"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:           CurveQuadratic,
		Epsilon:            10.0,
		MinPoints:          10,
		MaxPoints:          40,
		MinStepMs:          10.0,
		MaxStepMs:          100.0,
		MidpointSigmaRatio: 0.12,
		MaxMidpointOffset:  120.0,
		DriftAmplitude:     1.5,
		TremorStrength:     0.6,
		TapHoldMinMs:       40.0,
		TapHoldMaxMs:       180.0,
	}
}

// normalize repairs a partially filled or inconsistent config so the
// synthesizer stays total. Missing values take the defaults; inverted ranges
// are swapped; point and step minima are forced to sane floors.
func (c Config) normalize() Config {
	def := DefaultConfig()

	if c.Strategy != CurveQuadratic && c.Strategy != CurveLinear {
		c.Strategy = def.Strategy
	}
	if c.Epsilon <= 0 || math.IsNaN(c.Epsilon) {
		c.Epsilon = def.Epsilon
	}
	if c.MinPoints < 2 {
		c.MinPoints = def.MinPoints
	}
	if c.MaxPoints <= 0 {
		c.MaxPoints = def.MaxPoints
	}
	if c.MaxPoints < c.MinPoints {
		c.MaxPoints = c.MinPoints
	}
	if c.MinStepMs <= 0 || math.IsNaN(c.MinStepMs) {
		c.MinStepMs = def.MinStepMs
	}
	if c.MaxStepMs < c.MinStepMs {
		c.MaxStepMs = c.MinStepMs
	}
	if c.MidpointSigmaRatio <= 0 || math.IsNaN(c.MidpointSigmaRatio) {
		c.MidpointSigmaRatio = def.MidpointSigmaRatio
	}
	if c.MaxMidpointOffset <= 0 || math.IsNaN(c.MaxMidpointOffset) {
		c.MaxMidpointOffset = def.MaxMidpointOffset
	}
	if c.DriftAmplitude < 0 || math.IsNaN(c.DriftAmplitude) {
		c.DriftAmplitude = def.DriftAmplitude
	}
	if c.TremorStrength < 0 || math.IsNaN(c.TremorStrength) {
		c.TremorStrength = def.TremorStrength
	}
	if c.TapHoldMinMs <= 0 || math.IsNaN(c.TapHoldMinMs) {
		c.TapHoldMinMs = def.TapHoldMinMs
	}
	if c.TapHoldMaxMs < c.TapHoldMinMs {
		c.TapHoldMaxMs = c.TapHoldMinMs
	}
	return c
}
