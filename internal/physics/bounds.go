package physics

import (
	"math"
	"math/rand"
)

// Bounds is the play field rectangle [0,Width]×[0,Height].
type Bounds struct {
	Width  float64
	Height float64
}

// OutOfBounds is true iff the point lies outside the play field.
func (b Bounds) OutOfBounds(x, y float64) bool {
	return x < 0 || x > b.Width || y < 0 || y > b.Height
}

// Wrap moves a coordinate that crossed an edge to the opposite edge. The
// orthogonal coordinate is preserved; in-bounds points come back unchanged.
func (b Bounds) Wrap(x, y float64) (float64, float64) {
	if x > b.Width {
		x = 0
	} else if x < 0 {
		x = b.Width
	}
	if y > b.Height {
		y = 0
	} else if y < 0 {
		y = b.Height
	}
	return x, y
}

// Overshoot is how far a point lies outside the play field (0 when inside).
func (b Bounds) Overshoot(x, y float64) float64 {
	dx := math.Max(0, math.Max(-x, x-b.Width))
	dy := math.Max(0, math.Max(-y, y-b.Height))
	return math.Max(dx, dy)
}

// RandomEdgePosition picks one of the four edges uniformly, then a uniform
// point along it.
func (b Bounds) RandomEdgePosition(rng *rand.Rand) Vec2 {
	switch rng.Intn(4) {
	case 0:
		return Vec2{X: 0, Y: rng.Float64() * b.Height}
	case 1:
		return Vec2{X: rng.Float64() * b.Width, Y: 0}
	case 2:
		return Vec2{X: b.Width, Y: rng.Float64() * b.Height}
	default:
		return Vec2{X: rng.Float64() * b.Width, Y: b.Height}
	}
}

// Center returns the middle of the play field.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.Width / 2, Y: b.Height / 2}
}
