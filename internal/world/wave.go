package world

import (
	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
)

type BossPhase uint8

const (
	BossDormant BossPhase = iota
	BossEntering
	BossSet
	BossDestroyed
)

func (p BossPhase) String() string {
	switch p {
	case BossDormant:
		return "dormant"
	case BossEntering:
		return "entering"
	case BossSet:
		return "set"
	case BossDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Wave is the progression record. The director owns it; entity code only
// touches the boss phase on boss death and the alien spawn timer on alien
// retirement.
type Wave struct {
	Number        int
	InProgress    bool
	AsteroidsLeft int
	AliensLeft    int

	BossPhase       BossPhase
	PhaseTime       float64
	BossAppearances int

	NextAsteroidSpawn float64
	NextAlienSpawn    float64
	IntermissionUntil float64
}

// IsBossWave reports whether wave n brings the boss.
func (s *State) IsBossWave(n int) bool {
	return n > 0 && n%s.Cfg.Wave.BossEvery == 0
}

// SetBossPhase moves the boss state machine and stamps the transition time.
func (s *State) SetBossPhase(p BossPhase) {
	from := s.Wave.BossPhase
	if from == p {
		return
	}
	s.Wave.BossPhase = p
	s.Wave.PhaseTime = s.Now
	event.Emit(s.Bus, event.BossPhaseChanged{From: from.String(), To: p.String()})
	s.Log.Info("boss phase", zap.Stringer("from", from), zap.Stringer("to", p), zap.Int("wave", s.Wave.Number))
}

// BasesRetreating is true while the boss is on its way in or in position.
func (s *State) BasesRetreating() bool {
	return s.Wave.BossPhase == BossEntering || s.Wave.BossPhase == BossSet
}

// StartWave opens wave n with the given spawn budget. Boss waves also bring
// the boss in and send the bases to their retreat spots.
func (s *State) StartWave(n, asteroids, aliens int) {
	w := &s.Wave
	w.Number = n
	w.InProgress = true
	w.AsteroidsLeft = asteroids
	w.AliensLeft = aliens
	w.NextAsteroidSpawn = s.Now
	s.ScheduleAlienSpawn()

	boss := s.IsBossWave(n)
	event.Emit(s.Bus, event.WaveStarted{Wave: n, Boss: boss})
	s.Log.Info("wave started",
		zap.Int("wave", n),
		zap.Int("asteroids", asteroids),
		zap.Int("aliens", aliens),
		zap.Bool("boss", boss),
	)
	if boss {
		if _, ok := s.SpawnBoss(); ok {
			s.SetBossPhase(BossEntering)
		}
	}
}

// SnapBasesHome puts every base back on its home position.
func (s *State) SnapBasesHome() {
	s.Bases.Each(func(_ ecs.EntityID, b *Base) {
		b.Body.Pos = b.Home
	})
}

// ScheduleAlienSpawn pushes the next alien spawn a random interval out.
func (s *State) ScheduleAlienSpawn() {
	s.Wave.NextAlienSpawn = s.Now + s.randFloat(s.Cfg.Game.AlienSpawnMinMs, s.Cfg.Game.AlienSpawnMaxMs)
}
