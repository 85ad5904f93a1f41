package system

import (
	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/collision"
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

// broadphaseCell is about twice the largest regular collider radius.
const broadphaseCell = 64

// CollisionSystem runs the overlap pass after movement. Phase 4 (Collision).
type CollisionSystem struct {
	world *world.State
	pass  *collision.Pass
	log   *zap.Logger
}

func NewCollisionSystem(ws *world.State, table *collision.Table, log *zap.Logger) *CollisionSystem {
	// Retreated bases park BaseRadius*3 outside the field; the margin keeps
	// them out of the clamped border cells.
	margin := ws.Cfg.Game.BaseRadius*4 + ws.Cfg.World.EdgeSize
	return &CollisionSystem{
		world: ws,
		pass:  collision.NewPass(table, ws.Bounds, margin, broadphaseCell),
		log:   log,
	}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ coresys.Tick) {
	if n := s.pass.Run(s.world); n > 0 {
		s.log.Debug("collisions resolved", zap.Int("count", n))
	}
}
