package gesture

import "github.com/google/uuid"

// TimedPoint is one touch sample: a coordinate plus its offset from the
// gesture's first event in milliseconds.
type TimedPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	OffsetMs float64 `json:"t_offset_ms"`
}

// Path is an ordered, time-stamped sequence of touch points representing one
// synthesized gesture. It is an immutable value object produced fresh by every
// synthesizer call and consumed once by the device driver.
//
// Structural guarantees, identical for every curve strategy:
//   - Points is non-empty (at least 2 entries)
//   - the first and last points lie within the configured epsilon of the
//     requested (clamped) start and end
//   - every coordinate lies within the bounds supplied at synthesis
//   - OffsetMs is strictly increasing across consecutive points
type Path struct {
	ID     uuid.UUID    `json:"id"`
	Start  Vector2D     `json:"start"`
	End    Vector2D     `json:"end"`
	Points []TimedPoint `json:"points"`
}

// DurationMs returns the total gesture duration.
func (p Path) DurationMs() float64 {
	if len(p.Points) == 0 {
		return 0
	}
	return p.Points[len(p.Points)-1].OffsetMs - p.Points[0].OffsetMs
}
