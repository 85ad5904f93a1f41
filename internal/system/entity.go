package system

import (
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

// EntitySystem advances every live entity by one tick. Phase 3 (Update).
type EntitySystem struct {
	world *world.State
}

func NewEntitySystem(ws *world.State) *EntitySystem {
	return &EntitySystem{world: ws}
}

func (s *EntitySystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *EntitySystem) Update(t coresys.Tick) {
	s.world.UpdateEntities(t.Seconds())
}
