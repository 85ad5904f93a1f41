package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/physics"
)

// Harvester is an autonomous mineral collector. While Dead it stays in its
// pool but neither moves nor collides, and it relaunches from its base.
type Harvester struct {
	Body     physics.Body
	Owner    int
	Dead     bool
	DiedTime float64
}

// harvesterSpawn is the launch spot just below the base, wherever the base
// currently is.
func (s *State) harvesterSpawn(p *Player) physics.Vec2 {
	at := p.Home
	if b, ok := s.BaseOf(p); ok {
		at = b.Body.Pos
	}
	return physics.Vec2{X: at.X, Y: at.Y + s.Cfg.Harvester.BaseSpawnAdjustY}
}

// baseAway reports whether p's base is parked off the field.
func (s *State) baseAway(p *Player) bool {
	b, ok := s.BaseOf(p)
	return ok && s.Bounds.OutOfBounds(b.Body.Pos.X, b.Body.Pos.Y)
}

// addHarvester grants p a new harvester that launches shortly after.
func (s *State) addHarvester(p *Player) {
	id, h, ok := s.Harvesters.Acquire()
	if !ok {
		return
	}
	cfg := s.Cfg.Harvester
	h.Owner = p.Number
	h.Body = physics.Body{
		Pos:         s.harvesterSpawn(p),
		Drag:        cfg.Drag,
		AngularDrag: physics.DegToRad(cfg.AngularDrag),
		MaxSpeed:    cfg.MaxVelocity,
		Radius:      cfg.Radius,
	}
	h.Dead = true
	h.DiedTime = s.Now - (cfg.DeadTimeMs - cfg.LaunchDelayMs)
	p.Harvesters = append(p.Harvesters, id)
}

// HarvesterDied sends a harvester back to its base to wait out the respawn
// delay. A harvester already down is left alone.
func (s *State) HarvesterDied(id ecs.EntityID) bool {
	h, ok := s.Harvesters.Get(id)
	if !ok || h.Dead {
		return false
	}
	event.Emit(s.Bus, event.Explosion{Pos: h.Body.Pos, Kind: "harvester"})
	if p := s.Roster.Get(h.Owner); p != nil {
		h.Body.Reset(s.harvesterSpawn(p))
	} else {
		h.Body.Stop()
	}
	h.Dead = true
	h.DiedTime = s.Now
	return true
}

func (s *State) updateHarvester(h *Harvester, dt float64) {
	p := s.Roster.Get(h.Owner)
	if p == nil {
		return
	}
	if h.Dead {
		// Relaunch waits for the base to come back onto the field.
		if h.DiedTime+s.Cfg.Harvester.DeadTimeMs <= s.Now && !s.baseAway(p) {
			h.Body.Reset(s.harvesterSpawn(p))
			h.Dead = false
			h.DiedTime = 0
		}
		return
	}

	var minerals []physics.Vec2
	s.Minerals.Each(func(_ ecs.EntityID, m *Mineral) {
		minerals = append(minerals, m.Body.Pos)
	})
	goal, hasTarget := p.Home, false
	if b, ok := s.BaseOf(p); ok {
		goal = b.Body.Pos
	}
	if i, _ := nearest(h.Body.Pos, minerals); i >= 0 {
		goal, hasTarget = minerals[i], true
	}

	steer(&h.Body, goal, hasTarget, s.avoidForPlayer(h.Owner, true), s.steerParams(s.Cfg.Harvester.Acceleration), dt)
	h.Body.Step(dt)
	if s.Bounds.OutOfBounds(h.Body.Pos.X, h.Body.Pos.Y) {
		h.Body.Pos.X, h.Body.Pos.Y = s.Bounds.Wrap(h.Body.Pos.X, h.Body.Pos.Y)
	}
}
