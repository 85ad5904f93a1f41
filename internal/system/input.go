package system

import (
	"go.uber.org/zap"

	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

type joinRequest struct {
	slot int
	ai   bool
}

// InputSystem drains queued join requests and turns each human player's
// current intent into ship motion. Phase 0 (Input).
type InputSystem struct {
	world   *world.State
	pending []joinRequest
	log     *zap.Logger
}

func NewInputSystem(ws *world.State, log *zap.Logger) *InputSystem {
	return &InputSystem{world: ws, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// QueueJoin asks for slot to be joined on the next tick.
func (s *InputSystem) QueueJoin(slot int, ai bool) {
	s.pending = append(s.pending, joinRequest{slot: slot, ai: ai})
}

// Pending reports how many join requests wait for the next tick.
func (s *InputSystem) Pending() int { return len(s.pending) }

func (s *InputSystem) Update(t coresys.Tick) {
	for _, req := range s.pending {
		if _, err := s.world.Join(req.slot, req.ai); err != nil {
			s.log.Debug("join refused",
				zap.Int("slot", req.slot),
				zap.Bool("ai", req.ai),
				zap.Error(err),
			)
		}
	}
	s.pending = s.pending[:0]

	dt := t.Seconds()
	s.world.Roster.Each(func(p *world.Player) {
		if !p.AI && !p.Dead {
			s.world.ApplyIntent(p, dt)
		}
	})
}
