package system

import (
	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/core/ecs"
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

// DirectorSystem owns wave progression. Each tick it eliminates spent
// players, walks the boss state machine, spawns from the wave budget and
// closes the wave once the field is clear. Phase 2 (Director).
type DirectorSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewDirectorSystem(ws *world.State, log *zap.Logger) *DirectorSystem {
	return &DirectorSystem{world: ws, log: log}
}

func (s *DirectorSystem) Phase() coresys.Phase { return coresys.PhaseDirector }

func (s *DirectorSystem) Update(_ coresys.Tick) {
	s.eliminate()
	s.advanceBoss()

	w := &s.world.Wave
	if !w.InProgress {
		if s.world.Now < w.IntermissionUntil {
			return
		}
		s.startWave(w.Number + 1)
	}
	if w.BossPhase == world.BossDormant {
		s.spawn()
	}
	if s.complete() {
		w.InProgress = false
		w.IntermissionUntil = s.world.Now + s.world.Cfg.Wave.IntermissionMs
		s.log.Info("wave complete", zap.Int("wave", w.Number))
	}
}

// eliminate destroys every player out of energy or ships.
func (s *DirectorSystem) eliminate() {
	var out []*world.Player
	s.world.Roster.Each(func(p *world.Player) {
		if p.Energy <= 0 || p.Ships <= 0 {
			out = append(out, p)
		}
	})
	for _, p := range out {
		s.world.DestroyPlayer(p)
	}
}

// Budget returns the spawn budget for wave n, from the rules script when
// it answers and from config otherwise.
func (s *DirectorSystem) Budget(n int) (asteroids, aliens int) {
	if r := s.world.Rules; r != nil {
		if a, b, ok := r.WaveBudget(n); ok {
			return a, b
		}
	}
	wc := s.world.Cfg.Wave
	return wc.AsteroidsBase + (n-1)*wc.AsteroidsPerWave, wc.AliensBase + (n-1)*wc.AliensPerWave
}

func (s *DirectorSystem) startWave(n int) {
	asteroids, aliens := s.Budget(n)
	s.world.StartWave(n, asteroids, aliens)
}

func (s *DirectorSystem) advanceBoss() {
	ws := s.world
	switch ws.Wave.BossPhase {
	case world.BossEntering:
		ws.Bosses.Each(func(_ ecs.EntityID, b *world.Boss) {
			if ws.BossArrived(b) {
				ws.SetBossPhase(world.BossSet)
			}
		})
	case world.BossDestroyed:
		if ws.AllBasesHome() {
			ws.SetBossPhase(world.BossDormant)
			return
		}
		if ws.Now-ws.Wave.PhaseTime >= ws.Cfg.Boss.ReassembleTimeoutMs {
			ws.SnapBasesHome()
			ws.SetBossPhase(world.BossDormant)
		}
	}
}

// spawn releases asteroids and aliens from the wave budget.
func (s *DirectorSystem) spawn() {
	ws := s.world
	w := &ws.Wave
	if w.AsteroidsLeft > 0 && ws.Now >= w.NextAsteroidSpawn &&
		ws.Minerals.CountActive() < ws.Cfg.Wave.MaxActiveMinerals {
		if _, ok := ws.SpawnAsteroid(); ok {
			w.AsteroidsLeft--
			w.NextAsteroidSpawn = ws.Now + ws.Cfg.Wave.AsteroidIntervalMs
		}
	}
	if w.AliensLeft > 0 && w.NextAlienSpawn <= ws.Now {
		if _, ok := ws.SpawnAlien(); ok {
			w.AliensLeft--
			ws.ScheduleAlienSpawn()
		}
	}
}

func (s *DirectorSystem) complete() bool {
	ws := s.world
	w := ws.Wave
	return w.AsteroidsLeft == 0 && w.AliensLeft == 0 &&
		w.BossPhase == world.BossDormant &&
		ws.Asteroids.CountActive() == 0 &&
		ws.Minerals.CountActive() == 0 &&
		ws.Aliens.CountActive() == 0
}
