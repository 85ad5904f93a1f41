package world

import (
	"github.com/spaceharvest/server/internal/physics"
)

// steerParams carries one craft's greedy steering tuning. Turn rates are
// radians per second.
type steerParams struct {
	avoidRange    float64
	closeRange    float64
	idleRange     float64
	turnRate      float64
	closeTurnRate float64
	avoidTurnRate float64
	accel         float64
	speedRatio    float64
}

func (s *State) steerParams(accel float64) steerParams {
	ai := s.Cfg.AI
	return steerParams{
		avoidRange:    ai.AvoidRange,
		closeRange:    ai.CloseRange,
		idleRange:     s.Cfg.Game.BaseRadius,
		turnRate:      ai.TurnRate,
		closeTurnRate: ai.CloseTurnRate,
		avoidTurnRate: ai.AvoidTurnRate,
		accel:         accel,
		speedRatio:    ai.SpeedRatio,
	}
}

// nearest returns the index of the closest point and its distance, or -1.
// The first of equally close points wins.
func nearest(from physics.Vec2, pts []physics.Vec2) (int, float64) {
	best, bestSq := -1, 0.0
	for i, p := range pts {
		d := from.DistSq(p)
		if best < 0 || d < bestSq {
			best, bestSq = i, d
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, from.Dist(pts[best])
}

// steer turns body toward target, or away from the closest avoid point
// inside avoidRange. Thrust is applied every tick except when idling at home,
// so an avoiding craft flies out of the range. It reports whether avoidance
// took over.
func steer(body *physics.Body, target physics.Vec2, hasTarget bool, avoid []physics.Vec2, p steerParams, dt float64) bool {
	body.AngularVel = 0
	if i, d := nearest(body.Pos, avoid); i >= 0 && d < p.avoidRange {
		away := physics.Reverse(physics.Between(body.Pos, avoid[i]))
		body.Rotation = physics.RotateTo(body.Rotation, away, p.avoidTurnRate*dt)
		body.Thrust(p.accel*p.speedRatio, dt)
		return true
	}

	dist := body.Pos.Dist(target)
	rate := p.turnRate
	if dist < p.closeRange {
		rate = p.closeTurnRate
	}
	body.Rotation = physics.RotateTo(body.Rotation, physics.Between(body.Pos, target), rate*dt)

	if !hasTarget && dist <= p.idleRange {
		return false
	}
	body.Thrust(p.accel*p.speedRatio, dt)
	return false
}
