// Package behavior exposes parameterized random-variable samplers for
// interaction timing and cadence. A Profile represents one simulated persona;
// a single aggressiveness scalar shifts every derived distribution
// monotonically from conservative to aggressive activity.
//
// Every sampler takes an explicit *rand.Rand. A profile is immutable after
// construction, so it is safe to share across goroutines as long as each
// caller supplies its own generator (rand.Rand itself is not thread safe).
package behavior

import (
	"math"
)

// Aggressiveness is clamped to this range; values outside are pulled in, not
// rejected.
const (
	MinAggressiveness = 0.1
	MaxAggressiveness = 1.0
)

// Hard floors and ceilings applied to every sample regardless of distribution
// tails.
const (
	MinInterActionDelaySeconds = 0.5
	MaxInterActionDelaySeconds = 15.0
	MinSessionDurationMinutes  = 1.0
	MaxSessionDurationMinutes  = 30.0
	MinDailySessions           = 1
	MaxDailySessions           = 10
)

// Endpoints of the closed-form means over the aggressiveness range. At
// aggressiveness 0.1 the persona idles near the slow end; at 1.0 it acts at
// the fast end.
const (
	delayMeanAtMin    = 12.0 // seconds between actions, most cautious persona
	delayMeanAtMax    = 1.5
	durationMeanAtMin = 4.0 // minutes per session
	durationMeanAtMax = 25.0
	dailyMeanAtMin    = 1.5 // sessions per day
	dailyMeanAtMax    = 9.0

	// Relative spreads; variances scale with the means so aggressive personas
	// stay tight around their faster cadence.
	delaySigmaRatio    = 0.35
	durationSigmaRatio = 0.30
	dailySigmaRatio    = 0.40

	// Ex-Gaussian cognitive pause parameters (milliseconds) at the two
	// aggressiveness extremes.
	pauseMuAtMin  = 450.0
	pauseMuAtMax  = 180.0
	pauseTauAtMin = 350.0
	pauseTauAtMax = 120.0
)

// Profile holds one persona's timing parameters. All derived distribution
// parameters are computed once at construction so the monotonicity invariant
// lives in exactly one place.
type Profile struct {
	aggressiveness float64

	delayMean  float64
	delaySigma float64

	durationMean  float64
	durationSigma float64

	dailyMean  float64
	dailySigma float64

	pauseMu    float64
	pauseSigma float64
	pauseTau   float64
}

// NewProfile constructs a persona profile. Out-of-range aggressiveness is
// clamped to [0.1, 1.0]; NaN falls back to the minimum.
func NewProfile(aggressiveness float64) Profile {
	a := clamp(aggressiveness, MinAggressiveness, MaxAggressiveness)

	p := Profile{aggressiveness: a}

	// t is the normalized position in [0, 1] across the aggressiveness range.
	t := (a - MinAggressiveness) / (MaxAggressiveness - MinAggressiveness)

	p.delayMean = lerp(delayMeanAtMin, delayMeanAtMax, t)
	p.delaySigma = p.delayMean * delaySigmaRatio

	p.durationMean = lerp(durationMeanAtMin, durationMeanAtMax, t)
	p.durationSigma = p.durationMean * durationSigmaRatio

	p.dailyMean = lerp(dailyMeanAtMin, dailyMeanAtMax, t)
	p.dailySigma = p.dailyMean * dailySigmaRatio

	p.pauseMu = lerp(pauseMuAtMin, pauseMuAtMax, t)
	p.pauseSigma = p.pauseMu * 0.25
	p.pauseTau = lerp(pauseTauAtMin, pauseTauAtMax, t)

	return p
}

// Aggressiveness returns the clamped aggressiveness this profile was built
// with.
func (p Profile) Aggressiveness() float64 {
	return p.aggressiveness
}

// MeanInterActionDelay returns the closed-form mean (seconds) of the
// inter-action delay distribution. Strictly decreasing in aggressiveness.
func (p Profile) MeanInterActionDelay() float64 {
	return p.delayMean
}

// MeanSessionDuration returns the closed-form mean (minutes) of the session
// duration distribution. Strictly increasing in aggressiveness.
func (p Profile) MeanSessionDuration() float64 {
	return p.durationMean
}

// MeanDailySessions returns the closed-form mean of the daily session count
// distribution. Strictly increasing in aggressiveness.
func (p Profile) MeanDailySessions() float64 {
	return p.dailyMean
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
