package physics

import "math"

// Vec2 is a 2D position or velocity in world pixels.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// DistSq avoids the square root for nearest-neighbour comparisons.
func (v Vec2) DistSq(o Vec2) float64 {
	dx, dy := o.X-v.X, o.Y-v.Y
	return dx*dx + dy*dy
}

// VelocityFromRotation converts a heading (radians) into a velocity of the given speed.
func VelocityFromRotation(rotation, speed float64) Vec2 {
	return Vec2{X: math.Cos(rotation) * speed, Y: math.Sin(rotation) * speed}
}
