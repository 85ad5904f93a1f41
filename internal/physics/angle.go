package physics

import "math"

const tau = 2 * math.Pi

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// Between returns the bearing in radians from (x1,y1) to (x2,y2).
func Between(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Normalize maps any angle into (-π, π].
func Normalize(a float64) float64 {
	a = math.Mod(a, tau)
	if a <= -math.Pi {
		a += tau
	} else if a > math.Pi {
		a -= tau
	}
	return a
}

// Reverse returns the opposite heading.
func Reverse(a float64) float64 {
	return Normalize(a + math.Pi)
}

// ShortestBetween returns the signed smallest difference b-a in radians.
func ShortestBetween(a, b float64) float64 {
	return Normalize(b - a)
}

// RotateTo turns current toward target by at most step radians, taking the
// short way around the circle. Snaps when within one step.
func RotateTo(current, target, step float64) float64 {
	diff := ShortestBetween(current, target)
	if math.Abs(diff) <= step {
		return Normalize(target)
	}
	if diff > 0 {
		return Normalize(current + step)
	}
	return Normalize(current - step)
}
