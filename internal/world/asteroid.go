package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/physics"
)

// Asteroid is a breakable hazard with no value of its own.
type Asteroid struct {
	Body physics.Body
}

// SpawnAsteroid places an asteroid on a random edge drifting in a random
// direction. Returns false when the pool is full.
func (s *State) SpawnAsteroid() (ecs.EntityID, bool) {
	id, a, ok := s.Asteroids.Acquire()
	if !ok {
		return 0, false
	}
	heading := s.randHeading()
	a.Body = physics.Body{
		Pos:        s.Bounds.RandomEdgePosition(s.Rng),
		Vel:        physics.VelocityFromRotation(heading, s.randFloat(25, 100)),
		Rotation:   heading,
		AngularVel: physics.DegToRad(s.randFloat(-200, 200)),
		Radius:     s.Cfg.Game.AsteroidRadius,
	}
	return id, true
}

// BreakApart always leaves debris and retires the asteroid. With
// spawnsResources it first scatters minerals where it broke.
func (s *State) BreakApart(id ecs.EntityID, spawnsResources bool) bool {
	a, ok := s.Asteroids.Get(id)
	if !ok {
		return false
	}
	pos := a.Body.Pos
	event.Emit(s.Bus, event.DebrisBurst{Pos: pos})
	if spawnsResources {
		n := s.randInt(s.Cfg.Game.MineralSpawnMin, s.Cfg.Game.MineralSpawnMax)
		for i := 0; i < n; i++ {
			s.SpawnMineral(pos)
		}
	}
	return s.Asteroids.Release(id)
}

func (s *State) updateAsteroid(a *Asteroid, dt float64) {
	a.Body.Step(dt)
	if s.Bounds.OutOfBounds(a.Body.Pos.X, a.Body.Pos.Y) {
		a.Body.Pos.X, a.Body.Pos.Y = s.Bounds.Wrap(a.Body.Pos.X, a.Body.Pos.Y)
	}
}
