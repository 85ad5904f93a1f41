package system

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

// StatusSystem counts ticks and logs a one-line summary of the field every
// interval of game time. Phase 5 (PostUpdate).
type StatusSystem struct {
	world      *world.State
	log        *zap.Logger
	intervalMs float64
	nextLog    float64
	tickCount  int
}

// NewStatusSystem logs every interval; zero disables the summary.
func NewStatusSystem(ws *world.State, interval time.Duration, log *zap.Logger) *StatusSystem {
	ms := float64(interval) / float64(time.Millisecond)
	return &StatusSystem{world: ws, log: log, intervalMs: ms, nextLog: ms}
}

func (s *StatusSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

// Ticks returns how many ticks have completed.
func (s *StatusSystem) Ticks() int { return s.tickCount }

func (s *StatusSystem) Update(t coresys.Tick) {
	s.tickCount++
	if s.intervalMs <= 0 || t.Now < s.nextLog {
		return
	}
	s.nextLog = t.Now + s.intervalMs

	ws := s.world
	fields := []zap.Field{
		zap.Int("tick", s.tickCount),
		zap.Int("wave", ws.Wave.Number),
		zap.Stringer("boss", ws.Wave.BossPhase),
		zap.Int("asteroids", ws.Asteroids.CountActive()),
		zap.Int("minerals", ws.Minerals.CountActive()),
		zap.Int("aliens", ws.Aliens.CountActive()),
	}
	ws.Roster.Each(func(p *world.Player) {
		fields = append(fields, zap.Dict(playerKey(p.Number),
			zap.Int("score", p.Score),
			zap.Int("energy", p.Energy),
			zap.Int("ships", p.Ships),
			zap.Int("level", p.Level),
		))
	})
	s.log.Info("status", fields...)
}

func playerKey(n int) string {
	return "player" + strconv.Itoa(n)
}
