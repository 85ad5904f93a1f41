package world

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/config"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/data"
)

type fixedRules struct {
	reward string
}

func (r fixedRules) LevelReward(int) (string, bool) { return r.reward, r.reward != "" }
func (fixedRules) WaveBudget(int) (int, int, bool)  { return 0, 0, false }
func (fixedRules) BossHealth(int) (int, bool)       { return 0, false }

func newTestState(t *testing.T, tweak func(*config.Config)) *State {
	t.Helper()
	cfg := config.Default()
	if tweak != nil {
		tweak(cfg)
	}
	return NewState(cfg, data.DefaultTables(), nil, rand.New(rand.NewSource(1)), zap.NewNop())
}

// joinAlive joins a player and skips the spawn delay.
func joinAlive(t *testing.T, s *State, slot int) *Player {
	t.Helper()
	p, err := s.Join(slot, false)
	if err != nil {
		t.Fatalf("Join(%d) error: %v", slot, err)
	}
	p.Dead = false
	p.DiedTime = 0
	return p
}

func subscribeFloat(s *State, xs *[]float64) {
	event.Subscribe(s.Bus, func(e event.FloatText) {
		*xs = append(*xs, e.Pos.X)
	})
}
