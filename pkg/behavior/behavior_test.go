package behavior

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oranolio956/qa-automation-framework-sub005/pkg/rng"
)

func TestNewProfileClampsAggressiveness(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"below range", -5.0, MinAggressiveness},
		{"zero", 0.0, MinAggressiveness},
		{"lower edge", 0.1, 0.1},
		{"in range", 0.6, 0.6},
		{"upper edge", 1.0, 1.0},
		{"above range", 7.0, MaxAggressiveness},
		{"NaN", math.NaN(), MinAggressiveness},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile(tc.in)
			assert.InDelta(t, tc.want, p.Aggressiveness(), 1e-12)
		})
	}
}

// TestClosedFormMonotonicity is the primary property test: for any two
// profiles a < b in aggressiveness, the delay mean of a is >= that of b, and
// the duration and daily-count means of a are <= those of b. This holds on
// the closed forms, not just on a sample batch.
func TestClosedFormMonotonicity(t *testing.T) {
	levels := []float64{0.1, 0.4, 0.7, 1.0}
	for i := 1; i < len(levels); i++ {
		slower := NewProfile(levels[i-1])
		faster := NewProfile(levels[i])

		assert.Greater(t, slower.MeanInterActionDelay(), faster.MeanInterActionDelay(),
			"delay mean must decrease from %.1f to %.1f", levels[i-1], levels[i])
		assert.Less(t, slower.MeanSessionDuration(), faster.MeanSessionDuration(),
			"duration mean must increase from %.1f to %.1f", levels[i-1], levels[i])
		assert.Less(t, slower.MeanDailySessions(), faster.MeanDailySessions(),
			"daily mean must increase from %.1f to %.1f", levels[i-1], levels[i])
	}
}

// TestEmpiricalMonotonicity backs the closed-form check with sample means
// over a large seeded batch.
func TestEmpiricalMonotonicity(t *testing.T) {
	const draws = 10000
	levels := []float64{0.1, 0.4, 0.7, 1.0}

	meanDelay := make([]float64, len(levels))
	meanDuration := make([]float64, len(levels))
	meanDaily := make([]float64, len(levels))

	for i, a := range levels {
		p := NewProfile(a)
		r := rng.New(uint64(1000 + i))
		var sumDelay, sumDuration, sumDaily float64
		for j := 0; j < draws; j++ {
			sumDelay += p.SampleInterActionDelay(r)
			sumDuration += p.SampleSessionDuration(r)
			sumDaily += float64(p.SampleDailySessionCount(r))
		}
		meanDelay[i] = sumDelay / draws
		meanDuration[i] = sumDuration / draws
		meanDaily[i] = sumDaily / draws
	}

	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t, meanDelay[i-1], meanDelay[i])
		assert.LessOrEqual(t, meanDuration[i-1], meanDuration[i])
		assert.LessOrEqual(t, meanDaily[i-1], meanDaily[i])
	}
}

func TestSampleBounds(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 10000; i++ {
		// Random aggressiveness, including out-of-range values.
		p := NewProfile(r.Float64()*2.0 - 0.5)

		delay := p.SampleInterActionDelay(r)
		require.GreaterOrEqual(t, delay, MinInterActionDelaySeconds)
		require.LessOrEqual(t, delay, MaxInterActionDelaySeconds)

		dur := p.SampleSessionDuration(r)
		require.GreaterOrEqual(t, dur, MinSessionDurationMinutes)
		require.LessOrEqual(t, dur, MaxSessionDurationMinutes)

		n := p.SampleDailySessionCount(r)
		require.GreaterOrEqual(t, n, uint32(MinDailySessions))
		require.LessOrEqual(t, n, uint32(MaxDailySessions))

		pause := p.SampleCognitivePause(r)
		require.GreaterOrEqual(t, pause, time.Duration(0))
	}
}

func TestSampleMeanConvergesToClosedForm(t *testing.T) {
	const draws = 20000
	p := NewProfile(0.5)
	r := rng.New(42)

	var sum float64
	for i := 0; i < draws; i++ {
		sum += p.SampleInterActionDelay(r)
	}
	// Clipping at 0.5/15s barely touches the a=0.5 distribution, so the
	// sample mean should sit close to the closed form.
	assert.InDelta(t, p.MeanInterActionDelay(), sum/draws, 0.2)
}

func TestNilRNGFallback(t *testing.T) {
	p := NewProfile(0.5)
	assert.NotPanics(t, func() {
		_ = p.SampleInterActionDelay(nil)
		_ = p.SampleSessionDuration(nil)
		_ = p.SampleDailySessionCount(nil)
		_ = p.SampleCognitivePause(nil)
	})
}

func TestCognitivePauseShrinksWithAggressiveness(t *testing.T) {
	const draws = 10000
	slow := NewProfile(0.1)
	fast := NewProfile(1.0)

	rSlow := rng.New(11)
	rFast := rng.New(12)

	var sumSlow, sumFast float64
	for i := 0; i < draws; i++ {
		sumSlow += float64(slow.SampleCognitivePause(rSlow))
		sumFast += float64(fast.SampleCognitivePause(rFast))
	}
	assert.Greater(t, sumSlow/draws, sumFast/draws)
}
