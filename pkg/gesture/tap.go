package gesture

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tap synthesizes a stationary press-hold-release gesture at the given point.
// The hold duration follows a Gaussian skewed toward shorter presses and
// clamped to the configured bounds; a few tremor samples during the hold model
// the involuntary finger movement while muscles are tensed. The returned Path
// satisfies the same structural guarantees as Swipe.
func (s *Synthesizer) Tap(at Vector2D, bounds Bounds, rng *rand.Rand) Path {
	rng = ensureRand(rng)

	pressed := bounds.Clamp(at)
	hold := s.tapHoldDuration(rng)

	// 1-3 interior tremor samples between press and release.
	interior := 1 + rng.Intn(3)
	n := interior + 2

	points := make([]TimedPoint, 0, n)
	points = append(points, TimedPoint{X: pressed.X, Y: pressed.Y, OffsetMs: 0})

	offset := 0.0
	step := hold / float64(n-1)
	for i := 1; i < n; i++ {
		offset += math.Max(1.0, step*(0.5+rng.Float64()))

		p := pressed.Add(Vector2D{
			X: rng.NormFloat64() * s.cfg.TremorStrength,
			Y: rng.NormFloat64() * s.cfg.TremorStrength,
		})
		p = bounds.Clamp(p)
		points = append(points, TimedPoint{X: p.X, Y: p.Y, OffsetMs: offset})
	}

	path := Path{ID: uuid.New(), Start: pressed, End: pressed, Points: points}
	s.logger.Debug("synthesized tap",
		zap.Int("points", len(points)),
		zap.Float64("hold_ms", path.DurationMs()))
	return path
}

// tapHoldDuration draws how long the touch stays down, in milliseconds: a
// Gaussian centered slightly below the midpoint of the configured range
// (presses skew short), hard-clamped to the range.
func (s *Synthesizer) tapHoldDuration(rng *rand.Rand) float64 {
	minMs := s.cfg.TapHoldMinMs
	maxMs := s.cfg.TapHoldMaxMs

	mean := (minMs + maxMs) / 2.0 * 0.9
	stdDev := (maxMs - minMs) / 5.0

	d := mean + rng.NormFloat64()*stdDev
	return math.Max(minMs, math.Min(maxMs, d))
}
