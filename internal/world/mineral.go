package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/physics"
)

// Mineral is a collectible resource. Value and Frame come from its tier.
type Mineral struct {
	Body  physics.Body
	Tier  string
	Value int
	Frame int
}

// SpawnMineral drops one mineral at pos with a random tier and an outward
// kick. Returns false when the pool is full.
func (s *State) SpawnMineral(pos physics.Vec2) (ecs.EntityID, bool) {
	id, m, ok := s.Minerals.Acquire()
	if !ok {
		return 0, false
	}
	tier := s.Tables.Minerals.Pick(s.Rng.Float64())
	m.Tier = tier.Name
	m.Value = tier.Value
	m.Frame = tier.Frame
	heading := s.randHeading()
	m.Body = physics.Body{
		Pos:        pos,
		Vel:        physics.VelocityFromRotation(heading, s.randFloat(20, 80)),
		Rotation:   heading,
		AngularVel: physics.DegToRad(s.randFloat(-100, 100)),
		Drag:       5,
		Radius:     s.Cfg.Game.MineralRadius,
	}
	return id, true
}

// MineralDone retires a mineral with no other effect.
func (s *State) MineralDone(id ecs.EntityID) bool {
	return s.Minerals.Release(id)
}

// CollectMineral credits the mineral's value to p and retires it. With
// atBase the float text is anchored at p's base.
func (s *State) CollectMineral(p *Player, id ecs.EntityID, showFloatText, atBase bool) bool {
	m, ok := s.Minerals.Get(id)
	if !ok {
		return false
	}
	value := m.Value
	s.Minerals.Release(id)
	if p != nil {
		s.ScoreUpdate(p, value, showFloatText, atBase)
	}
	return true
}

func (s *State) updateMineral(m *Mineral, dt float64) {
	m.Body.Step(dt)
	if s.Bounds.OutOfBounds(m.Body.Pos.X, m.Body.Pos.Y) {
		m.Body.Pos.X, m.Body.Pos.Y = s.Bounds.Wrap(m.Body.Pos.X, m.Body.Pos.Y)
	}
}
