package gesture

import "math"

// Vector2D is a 2-D point or direction in screen coordinates.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2D) Mul(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Mag returns the vector's magnitude.
func (v Vector2D) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vector2D) Dist(o Vector2D) float64 {
	return v.Sub(o).Mag()
}

// Normalize returns the unit vector in v's direction. The zero vector
// normalizes to itself rather than producing NaN.
func (v Vector2D) Normalize() Vector2D {
	m := v.Mag()
	if m < 1e-9 {
		return Vector2D{}
	}
	return v.Mul(1.0 / m)
}

// Bounds is the inclusive screen extent gesture coordinates are clamped to.
type Bounds struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Clamp pulls a point inside the bounds. Coordinates are clamped, never
// rejected; degenerate zero bounds collapse everything to the origin.
func (b Bounds) Clamp(v Vector2D) Vector2D {
	maxX := float64(b.Width)
	maxY := float64(b.Height)
	return Vector2D{
		X: math.Max(0, math.Min(maxX, v.X)),
		Y: math.Max(0, math.Min(maxY, v.Y)),
	}
}
