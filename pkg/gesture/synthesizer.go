// Package gesture converts start/end point pairs into timed sequences of
// touch points that follow naturalistic curved paths. Synthesis is pure
// computation: the package never dispatches events and never blocks. The
// device driver replays the returned Path as timed touch events.
package gesture

import (
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fitts's Law parameters for pacing a swipe: movement time in milliseconds is
// fittsA + fittsB * log2(1 + distance/fittsW). The per-step deltas derived
// from it are always clamped back into [MinStepMs, MaxStepMs].
const (
	fittsA = 80.0
	fittsB = 120.0
	fittsW = 30.0
)

// Perlin drift parameters, matching the trajectory waver model: standard
// persistence/lacunarity with the frequency expressed against gesture time.
const (
	perlinAlpha     = 2.0
	perlinBeta      = 2.0
	perlinOctaves   = int32(3)
	driftFrequency  = 0.8
	degenerateSteps = 2
)

// Synthesizer produces gesture paths. It is immutable after construction and
// safe for concurrent use as long as each call supplies its own *rand.Rand.
type Synthesizer struct {
	cfg    Config
	logger *zap.Logger
}

// New builds a Synthesizer. The config is normalized (zero values take
// defaults, inverted ranges are repaired); a nil logger is replaced with a
// no-op one.
func New(cfg Config, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{cfg: cfg.normalize(), logger: logger}
}

// Config returns the normalized configuration in effect.
func (s *Synthesizer) Config() Config {
	return s.cfg
}

// Swipe synthesizes one swipe from start to end. Coordinates outside bounds
// are clamped, never rejected. Pass a seeded *rand.Rand for reproducible
// output; nil uses a time-seeded source.
//
// The returned Path always has at least 2 points, endpoints within the
// configured epsilon of the clamped start/end, every coordinate inside
// bounds, and strictly increasing timestamps with consecutive deltas inside
// [MinStepMs, MaxStepMs]. A degenerate start == end request produces a short
// valid path instead of failing.
func (s *Synthesizer) Swipe(start, end Vector2D, bounds Bounds, rng *rand.Rand) Path {
	rng = ensureRand(rng)

	from := bounds.Clamp(start)
	to := bounds.Clamp(end)
	dist := from.Dist(to)

	if dist < 1e-9 {
		return s.degeneratePath(from, rng)
	}

	n := s.cfg.MinPoints + rng.Intn(s.cfg.MaxPoints-s.cfg.MinPoints+1)

	var curve []Vector2D
	switch s.cfg.Strategy {
	case CurveLinear:
		curve = s.linearCurve(from, to, n, rng)
	default:
		curve = s.quadraticCurve(from, to, n, rng)
	}

	points := s.schedule(curve, dist, bounds, rng)

	path := Path{ID: uuid.New(), Start: from, End: to, Points: points}
	s.logger.Debug("synthesized swipe",
		zap.String("strategy", string(s.cfg.Strategy)),
		zap.Int("points", len(points)),
		zap.Float64("distance", dist),
		zap.Float64("duration_ms", path.DurationMs()))
	return path
}

// quadraticCurve evaluates a quadratic Bezier through a Gaussian-perturbed
// midpoint at n evenly spaced t values. The perturbation sigma grows with the
// swipe distance and is capped, so short flicks stay tight while long swipes
// arc visibly. The offset is drawn from a continuous distribution, so the
// path is non-straight almost surely.
func (s *Synthesizer) quadraticCurve(from, to Vector2D, n int, rng *rand.Rand) []Vector2D {
	dist := from.Dist(to)
	sigma := math.Min(dist*s.cfg.MidpointSigmaRatio, s.cfg.MaxMidpointOffset)

	mid := from.Add(to).Mul(0.5)
	ctrl := mid.Add(Vector2D{
		X: rng.NormFloat64() * sigma,
		Y: rng.NormFloat64() * sigma,
	})

	curve := make([]Vector2D, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		omt := 1.0 - t
		// B(t) = (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2
		curve[i] = from.Mul(omt * omt).
			Add(ctrl.Mul(2 * omt * t)).
			Add(to.Mul(t * t))
	}
	return curve
}

// linearCurve is the fallback strategy: straight interpolation with small
// per-point jitter standing in for curvature. It feeds the same scheduling
// and noise pipeline as the quadratic path, so its output guarantees are
// identical.
func (s *Synthesizer) linearCurve(from, to Vector2D, n int, rng *rand.Rand) []Vector2D {
	jitter := math.Max(s.cfg.TremorStrength, 1.0)

	curve := make([]Vector2D, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		p := from.Add(to.Sub(from).Mul(t))
		if i > 0 && i < n-1 {
			p = p.Add(Vector2D{
				X: rng.NormFloat64() * jitter,
				Y: rng.NormFloat64() * jitter,
			})
		}
		curve[i] = p
	}
	return curve
}

// schedule assigns timestamps and applies the noise combination to a curve:
// Perlin drift first (low-frequency waver), Gaussian tremor second
// (high-frequency jitter), then the bounds clamp. Endpoints are exempt from
// noise so they stay within epsilon of the request.
func (s *Synthesizer) schedule(curve []Vector2D, dist float64, bounds Bounds, rng *rand.Rand) []TimedPoint {
	n := len(curve)

	// Pace the whole swipe with Fitts's Law, jittered +/- 15%, then clamp
	// each derived step back into the documented range.
	id := math.Log2(1.0 + dist/fittsW)
	mt := fittsA + fittsB*id
	mt += mt * (rng.Float64()*0.3 - 0.15)
	stepBudget := mt / float64(n-1)

	seed := rng.Int63()
	noiseX := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	noiseY := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed+1)

	points := make([]TimedPoint, n)
	offset := 0.0
	for i, p := range curve {
		if i > 0 {
			step := stepBudget * (0.6 + 0.8*rng.Float64())
			step = math.Max(s.cfg.MinStepMs, math.Min(s.cfg.MaxStepMs, step))
			// The delta a consumer observes is the difference of two
			// accumulated sums, which can round a hair outside the step
			// range even though the step itself is clamped. Nudge the
			// accumulated offset so the realized delta honors both bounds.
			next := offset + step
			if next-offset < s.cfg.MinStepMs {
				next = math.Nextafter(next, math.Inf(1))
			}
			if next-offset > s.cfg.MaxStepMs {
				next = math.Nextafter(next, offset)
			}
			if next <= offset {
				next = math.Nextafter(offset, math.Inf(1))
			}
			offset = next
		}

		if i > 0 && i < n-1 {
			elapsed := offset / 1000.0
			drift := Vector2D{
				X: noiseX.Noise1D(elapsed*driftFrequency) * s.cfg.DriftAmplitude,
				Y: noiseY.Noise1D(elapsed*driftFrequency) * s.cfg.DriftAmplitude,
			}
			p = p.Add(drift)
			p = p.Add(Vector2D{
				X: rng.NormFloat64() * s.cfg.TremorStrength,
				Y: rng.NormFloat64() * s.cfg.TremorStrength,
			})
		}

		p = bounds.Clamp(p)
		points[i] = TimedPoint{X: p.X, Y: p.Y, OffsetMs: offset}
	}
	return points
}

// degeneratePath handles start == end: a short stationary path with a small
// nonzero time delta, never a panic or an empty result.
func (s *Synthesizer) degeneratePath(at Vector2D, rng *rand.Rand) Path {
	points := make([]TimedPoint, degenerateSteps)
	offset := 0.0
	for i := range points {
		if i > 0 {
			offset += s.cfg.MinStepMs + rng.Float64()*(s.cfg.MaxStepMs-s.cfg.MinStepMs)
		}
		points[i] = TimedPoint{X: at.X, Y: at.Y, OffsetMs: offset}
	}
	return Path{ID: uuid.New(), Start: at, End: at, Points: points}
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
