package system

import (
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

// EventSystem rotates the event bus and delivers last tick's events.
// Phase 1 (PreUpdate).
type EventSystem struct {
	world *world.State
}

func NewEventSystem(ws *world.State) *EventSystem {
	return &EventSystem{world: ws}
}

func (s *EventSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventSystem) Update(_ coresys.Tick) {
	s.world.Bus.SwapBuffers()
	s.world.Bus.DispatchAll()
}
