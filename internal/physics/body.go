package physics

import "math"

// Body holds the arcade kinematics of one entity. Rotation is in radians,
// AngularVel in radians/second, Drag in pixels/second², AngularDrag in
// radians/second². A zero MaxSpeed means unlimited.
type Body struct {
	Pos         Vec2
	Vel         Vec2
	Rotation    float64
	AngularVel  float64
	Drag        float64
	AngularDrag float64
	MaxSpeed    float64
	Radius      float64
}

// Step integrates the body over dt seconds.
func (b *Body) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if b.Drag > 0 {
		speed := b.Vel.Len()
		if speed > 0 {
			reduced := speed - b.Drag*dt
			if reduced <= 0 {
				b.Vel = Vec2{}
			} else {
				b.Vel = b.Vel.Scale(reduced / speed)
			}
		}
	}
	if b.MaxSpeed > 0 {
		if speed := b.Vel.Len(); speed > b.MaxSpeed {
			b.Vel = b.Vel.Scale(b.MaxSpeed / speed)
		}
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	b.Rotation = Normalize(b.Rotation + b.AngularVel*dt)
	if b.AngularDrag > 0 && b.AngularVel != 0 {
		mag := math.Abs(b.AngularVel) - b.AngularDrag*dt
		if mag <= 0 {
			b.AngularVel = 0
		} else {
			b.AngularVel = math.Copysign(mag, b.AngularVel)
		}
	}
}

// Reset places the body at pos and stops all motion.
func (b *Body) Reset(pos Vec2) {
	b.Pos = pos
	b.Stop()
}

func (b *Body) Stop() {
	b.Vel = Vec2{}
	b.AngularVel = 0
}

// Thrust adds acceleration along the current heading for dt seconds.
func (b *Body) Thrust(accel, dt float64) {
	b.Vel = b.Vel.Add(VelocityFromRotation(b.Rotation, accel*dt))
}

// Overlaps reports whether two circular bodies intersect.
func Overlaps(a, b *Body) bool {
	r := a.Radius + b.Radius
	return a.Pos.DistSq(b.Pos) < r*r
}
