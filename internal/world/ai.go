package world

import (
	"math"

	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/physics"
)

type aiTarget struct {
	pos       physics.Vec2
	shootable bool
}

// steerAIPlayer flies an AI-controlled ship toward the nearest mineral or
// hostile, shooting when a hostile lines up with its nose.
func (s *State) steerAIPlayer(p *Player, dt float64) {
	var targets []aiTarget
	s.Minerals.Each(func(_ ecs.EntityID, m *Mineral) {
		targets = append(targets, aiTarget{pos: m.Body.Pos})
	})
	s.Asteroids.Each(func(_ ecs.EntityID, a *Asteroid) {
		targets = append(targets, aiTarget{pos: a.Body.Pos, shootable: true})
	})
	s.Aliens.Each(func(_ ecs.EntityID, a *Alien) {
		targets = append(targets, aiTarget{pos: a.Body.Pos, shootable: true})
	})
	s.Bosses.Each(func(_ ecs.EntityID, b *Boss) {
		targets = append(targets, aiTarget{pos: b.Body.Pos, shootable: true})
	})

	pts := make([]physics.Vec2, len(targets))
	for i, t := range targets {
		pts[i] = t.pos
	}
	idx, dist := nearest(p.Ship.Pos, pts)

	goal, hasTarget := p.Home, false
	if b, ok := s.BaseOf(p); ok {
		goal = b.Body.Pos
	}
	if idx >= 0 {
		goal, hasTarget = targets[idx].pos, true
	}

	avoiding := steer(&p.Ship, goal, hasTarget, s.avoidForPlayer(p.Number, false), s.steerParams(s.Cfg.Ship.Acceleration), dt)
	if avoiding || idx < 0 || !targets[idx].shootable || dist > s.Cfg.AI.FireRange {
		return
	}
	off := physics.ShortestBetween(p.Ship.Rotation, physics.Between(p.Ship.Pos, goal))
	if math.Abs(off) <= physics.DegToRad(s.Cfg.AI.FireConeDeg) {
		s.FireShip(p)
	}
}

// avoidForPlayer lists what an AI craft of the given owner steers clear of:
// enemy bases and the boss, plus asteroids for harvesters.
func (s *State) avoidForPlayer(owner int, asteroids bool) []physics.Vec2 {
	var out []physics.Vec2
	s.Bases.Each(func(_ ecs.EntityID, b *Base) {
		if b.Owner != owner {
			out = append(out, b.Body.Pos)
		}
	})
	s.Bosses.Each(func(_ ecs.EntityID, b *Boss) {
		out = append(out, b.Body.Pos)
	})
	if asteroids {
		s.Asteroids.Each(func(_ ecs.EntityID, a *Asteroid) {
			out = append(out, a.Body.Pos)
		})
	}
	return out
}
