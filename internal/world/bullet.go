package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/physics"
)

type Bullet struct {
	Body     physics.Body
	Owner    int
	Lifespan float64 // ms left
	Born     float64 // tick the shot was fired, ms
}

// fire allocates a bullet from the owner's pool. An exhausted pool drops the
// shot.
func (s *State) fire(owner int, pos, vel physics.Vec2, lifespanMs float64) bool {
	if owner < 0 || owner > AIOwner {
		return false
	}
	_, b, ok := s.Bullets[owner].Acquire()
	if !ok {
		return false
	}
	b.Owner = owner
	b.Lifespan = lifespanMs
	b.Born = s.Now
	b.Body = physics.Body{
		Pos:      pos,
		Vel:      vel,
		Rotation: physics.Between(physics.Vec2{}, vel),
		Radius:   s.Cfg.Game.BulletRadius,
	}
	event.Emit(s.Bus, event.ShotFired{Owner: owner, Pos: pos})
	return true
}

// FireHostile shoots from the shared AI pool. With probability targetChance
// the shot is aimed from the firer toward a random live player instead of
// along heading. rangeMult stretches the lifespan.
func (s *State) FireHostile(origin physics.Vec2, heading, targetChance, rangeMult float64) bool {
	if targetChance > 0 && s.Rng.Float64() < targetChance {
		if live := s.Roster.Live(); len(live) > 0 {
			target := live[s.Rng.Intn(len(live))]
			heading = physics.Reverse(physics.Between(target.Ship.Pos, origin))
		}
	}
	if rangeMult <= 0 {
		rangeMult = 1
	}
	vel := physics.VelocityFromRotation(heading, s.Cfg.Ship.BulletSpeed)
	return s.fire(AIOwner, origin, vel, s.Cfg.Ship.BulletLifetimeMs*rangeMult)
}

// ReleaseBullet retires a bullet. Stale refs are ignored.
func (s *State) ReleaseBullet(r Ref) bool {
	if r.Kind != KindBullet || r.Slot < 0 || r.Slot > AIOwner {
		return false
	}
	return s.Bullets[r.Slot].Release(r.ID)
}

// updateBullet ages and moves one bullet. Aging starts on the tick after the
// shot was fired. Bullets wrap at the field edge unless they are further out
// than the grace margin.
func (s *State) updateBullet(pool *ecs.Pool[Bullet], id ecs.EntityID, b *Bullet, dt float64) {
	if b.Born != s.Now {
		b.Lifespan -= s.Delta
	}
	if b.Lifespan <= 0 {
		pool.Release(id)
		return
	}
	b.Body.Step(dt)
	x, y := b.Body.Pos.X, b.Body.Pos.Y
	if s.Bounds.OutOfBounds(x, y) {
		if s.Bounds.Overshoot(x, y) > s.Cfg.World.EdgeSize {
			pool.Release(id)
			return
		}
		b.Body.Pos.X, b.Body.Pos.Y = s.Bounds.Wrap(x, y)
	}
}
