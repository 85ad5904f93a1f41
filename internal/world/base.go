package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/physics"
)

// Base is a player's home. It belongs to Owner but never holds the player.
type Base struct {
	Body    physics.Body
	Owner   int
	Home    physics.Vec2
	Retreat physics.Vec2 // off-field parking spot during boss waves
}

func (s *State) spawnBase(owner int, home physics.Vec2) (ecs.EntityID, bool) {
	id, b, ok := s.Bases.Acquire()
	if !ok {
		return 0, false
	}
	b.Owner = owner
	b.Home = home
	b.Retreat = s.retreatPosition(home)
	b.Body = physics.Body{Pos: home, Radius: s.Cfg.Game.BaseRadius}
	return id, true
}

// retreatPosition pushes a base horizontally off the nearer side edge.
func (s *State) retreatPosition(home physics.Vec2) physics.Vec2 {
	off := s.Cfg.Game.BaseRadius * 3
	if home.X < s.Bounds.Width/2 {
		return physics.Vec2{X: -off, Y: home.Y}
	}
	return physics.Vec2{X: s.Bounds.Width + off, Y: home.Y}
}

// AtHome reports whether the base sits at its home position.
func (b *Base) AtHome() bool {
	return b.Body.Pos == b.Home
}

// updateBase steps the base linearly toward home or its retreat spot.
func (s *State) updateBase(b *Base, dt float64) {
	target := b.Home
	if s.BasesRetreating() {
		target = b.Retreat
	}
	b.Body.Pos = stepToward(b.Body.Pos, target, s.Cfg.Boss.BaseRetreatSpeed*dt)
}

// AllBasesHome reports whether every active base is back in place.
func (s *State) AllBasesHome() bool {
	home := true
	s.Bases.Each(func(_ ecs.EntityID, b *Base) {
		if !b.AtHome() {
			home = false
		}
	})
	return home
}

func stepToward(from, to physics.Vec2, step float64) physics.Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= step || dist == 0 {
		return to
	}
	return from.Add(d.Scale(step / dist))
}
