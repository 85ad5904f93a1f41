package world

import (
	"math"

	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/physics"
)

// Turret is a fixed gun on its owner's base. It keeps no target between
// ticks.
type Turret struct {
	Owner    int
	Mount    data.TurretMount
	Pivot    physics.Vec2
	Rotation float64
	LastShot float64
}

func (s *State) addTurret(p *Player, mount data.TurretMount) {
	id, t, ok := s.Turrets.Acquire()
	if !ok {
		return
	}
	t.Owner = p.Number
	t.Mount = mount
	t.Rotation = physics.DegToRad(mount.Angle)
	t.Pivot = p.Home.Add(physics.Vec2{X: mount.X, Y: mount.Y})
	if b, ok := s.BaseOf(p); ok {
		t.Pivot = b.Body.Pos.Add(physics.Vec2{X: mount.X, Y: mount.Y})
	}
	t.LastShot = s.Now
	p.Turrets = append(p.Turrets, id)
}

// turretCandidates lists everything a turret of owner may shoot at.
func (s *State) turretCandidates(owner int) []physics.Vec2 {
	var out []physics.Vec2
	s.Aliens.Each(func(_ ecs.EntityID, a *Alien) {
		out = append(out, a.Body.Pos)
	})
	s.Asteroids.Each(func(_ ecs.EntityID, a *Asteroid) {
		out = append(out, a.Body.Pos)
	})
	s.Bosses.Each(func(_ ecs.EntityID, b *Boss) {
		out = append(out, b.Body.Pos)
	})
	s.Harvesters.Each(func(_ ecs.EntityID, h *Harvester) {
		if !h.Dead && h.Owner != owner {
			out = append(out, h.Body.Pos)
		}
	})
	s.Roster.Each(func(p *Player) {
		if !p.Dead && p.Number != owner {
			out = append(out, p.Ship.Pos)
		}
	})
	return out
}

// updateTurret aims at the nearest candidate inside the firing arc and
// shoots once the cooldown has passed.
func (s *State) updateTurret(t *Turret) {
	p := s.Roster.Get(t.Owner)
	b, ok := s.BaseOf(p)
	if !ok {
		return
	}
	t.Pivot = b.Body.Pos.Add(physics.Vec2{X: t.Mount.X, Y: t.Mount.Y})

	rest := physics.DegToRad(t.Mount.Angle)
	arc := physics.DegToRad(s.Cfg.Turret.AngleRangeDeg)
	var inArc []physics.Vec2
	for _, c := range s.turretCandidates(t.Owner) {
		if math.Abs(physics.ShortestBetween(rest, physics.Between(t.Pivot, c))) <= arc {
			inArc = append(inArc, c)
		}
	}
	i, _ := nearest(t.Pivot, inArc)
	if i < 0 {
		return
	}
	t.Rotation = physics.Between(t.Pivot, inArc[i])
	if s.Now-t.LastShot < s.Cfg.Turret.FireRateMs {
		return
	}
	vel := physics.VelocityFromRotation(t.Rotation, s.Cfg.Ship.BulletSpeed)
	if s.fire(t.Owner, t.Pivot, vel, s.Cfg.Turret.BulletLifetimeMs) {
		t.LastShot = s.Now
	}
}
