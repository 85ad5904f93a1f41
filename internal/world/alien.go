package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/physics"
)

const (
	alienTurnMinMs = 2000
	alienTurnMaxMs = 10000
)

// Alien is a roaming hostile. Heading is the travel direction; the body
// rotation spins independently.
type Alien struct {
	Body     physics.Body
	Variant  data.AlienVariant
	Heading  float64
	NextTurn float64
	NextShot float64
}

// SpawnAlien picks a weighted variant and launches it from a random edge.
func (s *State) SpawnAlien() (ecs.EntityID, bool) {
	return s.SpawnAlienVariant(s.Tables.Aliens.Pick(s.Rng))
}

func (s *State) SpawnAlienVariant(v data.AlienVariant) (ecs.EntityID, bool) {
	id, a, ok := s.Aliens.Acquire()
	if !ok {
		return 0, false
	}
	a.Variant = v
	a.Body = physics.Body{
		Pos:    s.Bounds.RandomEdgePosition(s.Rng),
		Radius: s.Cfg.Game.AlienRadius,
	}
	s.turnAlien(a)
	if v.Shoots {
		a.NextShot = s.Now + s.randFloat(v.ShootMinMs, v.ShootMaxMs)
	}
	return id, true
}

func (s *State) turnAlien(a *Alien) {
	a.Heading = s.randHeading()
	a.Body.Vel = physics.VelocityFromRotation(a.Heading, a.Variant.Speed)
	a.Body.AngularVel = physics.DegToRad(s.randFloat(-200, 200))
	a.NextTurn = s.Now + s.randFloat(alienTurnMinMs, alienTurnMaxMs)
}

// KillAlien retires an alien with an explosion. withDrop scatters the
// bullet-kill reward. Every retirement reschedules the next alien spawn.
func (s *State) KillAlien(id ecs.EntityID, withDrop bool) bool {
	a, ok := s.Aliens.Get(id)
	if !ok {
		return false
	}
	pos := a.Body.Pos
	event.Emit(s.Bus, event.Explosion{Pos: pos, Kind: "alien"})
	if withDrop {
		for i := 0; i < s.Cfg.Game.AlienDropCount; i++ {
			s.SpawnMineral(pos)
		}
	}
	s.Aliens.Release(id)
	s.ScheduleAlienSpawn()
	return true
}

func (s *State) updateAlien(a *Alien, dt float64) {
	if s.Now >= a.NextTurn {
		s.turnAlien(a)
	}
	if a.Variant.Shoots && s.Now >= a.NextShot {
		s.FireHostile(a.Body.Pos, a.Heading, a.Variant.TargetChance, 1)
		a.NextShot = s.Now + s.randFloat(a.Variant.ShootMinMs, a.Variant.ShootMaxMs)
	}
	a.Body.Step(dt)
	if s.Bounds.OutOfBounds(a.Body.Pos.X, a.Body.Pos.Y) {
		a.Body.Pos.X, a.Body.Pos.Y = s.Bounds.Wrap(a.Body.Pos.X, a.Body.Pos.Y)
	}
}
