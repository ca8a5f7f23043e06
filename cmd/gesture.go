package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oranolio956/qa-automation-framework-sub005/internal/config"
	"github.com/oranolio956/qa-automation-framework-sub005/internal/observability"
	"github.com/oranolio956/qa-automation-framework-sub005/pkg/gesture"
	"github.com/oranolio956/qa-automation-framework-sub005/pkg/rng"
)

var (
	gestureFrom   string
	gestureTo     string
	gestureBounds string
	gestureSeed   uint64
	gestureTap    bool
)

var gestureCmd = &cobra.Command{
	Use:   "gesture",
	Short: "Synthesize a swipe or tap path.",
	Long: `Synthesizes one gesture path between the given points and prints it as
JSON for the device driver to replay. Pass --seed for reproducible output;
without it every invocation produces a fresh path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parsePoint(gestureFrom)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		to, err := parsePoint(gestureTo)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		bounds, err := parseBounds(gestureBounds)
		if err != nil {
			return fmt.Errorf("invalid --bounds: %w", err)
		}

		var r *rand.Rand
		if cmd.Flags().Changed("seed") {
			r = rng.New(gestureSeed)
		}

		s := gesture.New(config.Get().Gesture, observability.GetLogger())

		var path gesture.Path
		if gestureTap {
			path = s.Tap(from, bounds, r)
		} else {
			path = s.Swipe(from, to, bounds, r)
		}
		return printJSON(path)
	},
}

// parsePoint parses "x,y" into a vector.
func parsePoint(s string) (gesture.Vector2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gesture.Vector2D{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return gesture.Vector2D{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return gesture.Vector2D{}, err
	}
	return gesture.Vector2D{X: x, Y: y}, nil
}

// parseBounds parses "WxH" into screen bounds.
func parseBounds(s string) (gesture.Bounds, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return gesture.Bounds{}, fmt.Errorf("expected WIDTHxHEIGHT, got %q", s)
	}
	w, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return gesture.Bounds{}, err
	}
	h, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return gesture.Bounds{}, err
	}
	return gesture.Bounds{Width: uint32(w), Height: uint32(h)}, nil
}

func init() {
	gestureCmd.Flags().StringVar(&gestureFrom, "from", "100,1500", "start point as x,y")
	gestureCmd.Flags().StringVar(&gestureTo, "to", "100,400", "end point as x,y")
	gestureCmd.Flags().StringVar(&gestureBounds, "bounds", "1080x1920", "screen bounds as WIDTHxHEIGHT")
	gestureCmd.Flags().Uint64Var(&gestureSeed, "seed", 0, "seed for reproducible synthesis")
	gestureCmd.Flags().BoolVar(&gestureTap, "tap", false, "synthesize a tap at --from instead of a swipe")
}
