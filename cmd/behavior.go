package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/oranolio956/qa-automation-framework-sub005/internal/config"
	"github.com/oranolio956/qa-automation-framework-sub005/pkg/behavior"
	"github.com/oranolio956/qa-automation-framework-sub005/pkg/rng"
)

var (
	behaviorAggressiveness float64
	behaviorSamples        int
	behaviorSeed           uint64
)

// behaviorReport is the JSON shape emitted by the behavior subcommand.
type behaviorReport struct {
	Aggressiveness    float64 `json:"aggressiveness"`
	MeanDelaySeconds  float64 `json:"mean_inter_action_delay_seconds"`
	MeanDurationMin   float64 `json:"mean_session_duration_minutes"`
	MeanDailySessions float64 `json:"mean_daily_sessions"`

	DelaySeconds    []float64 `json:"sampled_delays_seconds"`
	DurationMinutes []float64 `json:"sampled_durations_minutes"`
	DailySessions   []uint32  `json:"sampled_daily_sessions"`
}

var behaviorCmd = &cobra.Command{
	Use:   "behavior",
	Short: "Inspect a persona's timing distributions.",
	Long: `Constructs a behavior profile for the given aggressiveness, prints its
closed-form means and a batch of samples from each timing distribution.
Pass --seed for reproducible batches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := behaviorAggressiveness
		if !cmd.Flags().Changed("aggressiveness") {
			a = config.Get().Behavior.Aggressiveness
		}

		profile := behavior.NewProfile(a)

		var r *rand.Rand
		if cmd.Flags().Changed("seed") {
			r = rng.New(behaviorSeed)
		} else {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		report := behaviorReport{
			Aggressiveness:    profile.Aggressiveness(),
			MeanDelaySeconds:  profile.MeanInterActionDelay(),
			MeanDurationMin:   profile.MeanSessionDuration(),
			MeanDailySessions: profile.MeanDailySessions(),
		}
		for i := 0; i < behaviorSamples; i++ {
			report.DelaySeconds = append(report.DelaySeconds, profile.SampleInterActionDelay(r))
			report.DurationMinutes = append(report.DurationMinutes, profile.SampleSessionDuration(r))
			report.DailySessions = append(report.DailySessions, profile.SampleDailySessionCount(r))
		}

		return printJSON(report)
	},
}

func init() {
	behaviorCmd.Flags().Float64VarP(&behaviorAggressiveness, "aggressiveness", "a", 0.5, "persona aggressiveness in [0.1, 1.0]")
	behaviorCmd.Flags().IntVarP(&behaviorSamples, "samples", "n", 10, "number of samples to draw per distribution")
	behaviorCmd.Flags().Uint64Var(&behaviorSeed, "seed", 0, "seed for reproducible sampling")
}
