package world

import (
	"math"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/physics"
)

type Boss struct {
	Body     physics.Body
	Health   int
	NextShot float64
}

// SpawnBoss drops the boss in from above the field centre. Health grows with
// each appearance unless a script decides it.
func (s *State) SpawnBoss() (ecs.EntityID, bool) {
	id, b, ok := s.Bosses.Acquire()
	if !ok {
		return 0, false
	}
	s.Wave.BossAppearances++
	n := s.Wave.BossAppearances

	health, scripted := 0, false
	if s.Rules != nil {
		health, scripted = s.Rules.BossHealth(n)
	}
	if !scripted {
		health = s.Cfg.Boss.Health + (n-1)*s.Cfg.Boss.HealthPerAppearance
	}

	b.Health = health
	b.Body = physics.Body{
		Pos:      physics.Vec2{X: s.Bounds.Width / 2, Y: -s.Cfg.Boss.Radius},
		Vel:      physics.Vec2{Y: s.Cfg.Boss.DescendSpeed},
		Rotation: math.Pi / 2,
		Radius:   s.Cfg.Boss.Radius,
	}
	b.NextShot = s.Now
	s.Log.Info("boss spawned", zap.Int("health", health), zap.Int("appearance", n))
	return id, true
}

// DamageBoss subtracts n health. At zero the boss explodes, scatters
// minerals and the wave moves to the destroyed phase.
func (s *State) DamageBoss(id ecs.EntityID, n int) bool {
	b, ok := s.Bosses.Get(id)
	if !ok {
		return false
	}
	b.Health -= n
	if b.Health > 0 {
		return true
	}
	pos := b.Body.Pos
	event.Emit(s.Bus, event.Explosion{Pos: pos, Kind: "boss"})
	count := s.randInt(s.Cfg.Boss.MineralSpawnMin, s.Cfg.Boss.MineralSpawnMax)
	for i := 0; i < count; i++ {
		s.SpawnMineral(pos)
	}
	s.Bosses.Release(id)
	s.SetBossPhase(BossDestroyed)
	return true
}

// BossArrived reports whether the boss has reached its firing position.
func (s *State) BossArrived(b *Boss) bool {
	return b.Body.Pos.Y >= s.Bounds.Height/2
}

func (s *State) updateBoss(b *Boss, dt float64) {
	if s.Wave.BossPhase == BossSet {
		b.Body.Stop()
		if s.Now >= b.NextShot {
			heading := b.Body.Rotation + s.randFloat(-math.Pi/4, math.Pi/4)
			s.FireHostile(b.Body.Pos, heading, s.Cfg.Boss.TargetChance, s.Cfg.Boss.RangeMultiplier)
			b.NextShot = s.Now + s.randFloat(s.Cfg.Boss.ShootMinMs, s.Cfg.Boss.ShootMaxMs)
		}
		return
	}
	b.Body.Step(dt)
}
