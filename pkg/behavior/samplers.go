package behavior

import (
	"math"
	"math/rand"
	"time"
)

// SampleInterActionDelay draws the number of seconds to wait before the next
// action. The draw is Gaussian around the profile's closed-form mean and is
// hard-clipped to [0.5s, 15s] regardless of distribution tails.
func (p Profile) SampleInterActionDelay(rng *rand.Rand) float64 {
	rng = ensure(rng)
	v := p.delayMean + rng.NormFloat64()*p.delaySigma
	return clamp(v, MinInterActionDelaySeconds, MaxInterActionDelaySeconds)
}

// SampleSessionDuration draws one session's length in minutes, hard-clipped
// to [1, 30].
func (p Profile) SampleSessionDuration(rng *rand.Rand) float64 {
	rng = ensure(rng)
	v := p.durationMean + rng.NormFloat64()*p.durationSigma
	return clamp(v, MinSessionDurationMinutes, MaxSessionDurationMinutes)
}

// SampleDailySessionCount draws how many sessions the persona runs in one
// day, rounded to the nearest integer and hard-clipped to [1, 10].
func (p Profile) SampleDailySessionCount(rng *rand.Rand) uint32 {
	rng = ensure(rng)
	v := math.Round(p.dailyMean + rng.NormFloat64()*p.dailySigma)
	v = clamp(v, MinDailySessions, MaxDailySessions)
	return uint32(v)
}

// SampleCognitivePause draws a short think-time pause between micro-actions
// from an ex-Gaussian distribution (Gaussian core plus exponential tail),
// which matches observed human reaction-time data far better than a plain
// normal. Aggressive personas think faster: both the Gaussian mean and the
// tail shrink with aggressiveness. Never negative.
func (p Profile) SampleCognitivePause(rng *rand.Rand) time.Duration {
	rng = ensure(rng)
	ms := p.pauseMu + rng.NormFloat64()*p.pauseSigma + rng.ExpFloat64()*p.pauseTau
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// ensure returns a usable generator. Callers wanting reproducibility must
// pass their own seeded instance; nil gets a time-seeded fallback so the
// samplers stay total.
func ensure(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
