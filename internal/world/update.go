package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
)

// UpdateEntities runs one tick of per-entity behavior for everything live.
// dt is in seconds.
func (s *State) UpdateEntities(dt float64) {
	s.Roster.Each(func(p *Player) {
		s.updatePlayer(p, dt)
	})
	s.Bases.Each(func(_ ecs.EntityID, b *Base) {
		s.updateBase(b, dt)
	})
	for _, pool := range s.Bullets {
		pool.Each(func(id ecs.EntityID, b *Bullet) {
			s.updateBullet(pool, id, b, dt)
		})
	}
	s.Asteroids.Each(func(_ ecs.EntityID, a *Asteroid) {
		s.updateAsteroid(a, dt)
	})
	s.Minerals.Each(func(_ ecs.EntityID, m *Mineral) {
		s.updateMineral(m, dt)
	})
	s.Aliens.Each(func(_ ecs.EntityID, a *Alien) {
		s.updateAlien(a, dt)
	})
	s.Bosses.Each(func(_ ecs.EntityID, b *Boss) {
		s.updateBoss(b, dt)
	})
	s.Harvesters.Each(func(_ ecs.EntityID, h *Harvester) {
		s.updateHarvester(h, dt)
	})
	s.Turrets.Each(func(_ ecs.EntityID, t *Turret) {
		s.updateTurret(t)
	})
}
