package world

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/physics"
)

var (
	ErrInvalidSlot  = errors.New("invalid player slot")
	ErrSlotTaken    = errors.New("player slot already joined")
	ErrJoinCooldown = errors.New("join cooldown active")
	ErrNoBase       = errors.New("no base available")
)

// Intent is the logical control state for one ship, already decoded from
// whatever device drives it.
type Intent struct {
	Turn   float64 // -1 (left) .. 1 (right)
	Thrust float64 // 0 .. 1
	Fire   bool
}

// Player is one joined participant. The ship is not pooled: a player owns
// exactly one ship body for its whole time in the roster.
type Player struct {
	Number int
	AI     bool

	Ship      physics.Body
	Dead      bool
	DiedTime  float64
	LastFired float64 // earliest time the next shot may leave, ms
	Intent    Intent

	Score    int
	Energy   int
	Ships    int
	Level    int
	BonusAcc int // points toward the next bonus

	Base       ecs.EntityID
	Home       physics.Vec2
	Harvesters []ecs.EntityID
	Turrets    []ecs.EntityID
	// Mounts left to hand out, pre-shuffled at join.
	Mounts []data.TurretMount
}

// StartPosition returns the base location for a player slot.
func (s *State) StartPosition(slot int) physics.Vec2 {
	w, h := s.Cfg.World.Width, s.Cfg.World.Height
	switch slot {
	case 0:
		return physics.Vec2{X: 400, Y: 300}
	case 1:
		return physics.Vec2{X: w - 400, Y: h - 300}
	case 2:
		return physics.Vec2{X: 400, Y: h - 200}
	default:
		return physics.Vec2{X: w - 400, Y: 200}
	}
}

// Join adds a player to the roster with a fresh base. The ship appears
// after the join spawn delay.
func (s *State) Join(slot int, ai bool) (*Player, error) {
	switch {
	case slot < 0 || slot >= MaxPlayers:
		return nil, ErrInvalidSlot
	case s.Roster.Get(slot) != nil:
		return nil, ErrSlotTaken
	case s.Now < s.NextJoinTime:
		return nil, ErrJoinCooldown
	}

	home := s.StartPosition(slot)
	baseID, ok := s.spawnBase(slot, home)
	if !ok {
		return nil, ErrNoBase
	}

	ship := s.Cfg.Ship
	p := &Player{
		Number: slot,
		AI:     ai,
		Ship: physics.Body{
			Pos:         home,
			Drag:        ship.Drag,
			AngularDrag: physics.DegToRad(ship.AngularDrag),
			MaxSpeed:    ship.MaxVelocity,
			Radius:      ship.Radius,
			Rotation:    -math.Pi / 2,
		},
		Dead:     true,
		DiedTime: s.Now - (ship.DeadTimeMs - ship.JoinSpawnDelayMs),
		Energy:   s.Cfg.Game.StartingEnergy,
		Ships:    s.Cfg.Game.StartingShips,
		Base:     baseID,
		Home:     home,
		Mounts:   s.Tables.Mounts.All(),
	}
	s.Rng.Shuffle(len(p.Mounts), func(i, j int) {
		p.Mounts[i], p.Mounts[j] = p.Mounts[j], p.Mounts[i]
	})
	s.Roster.add(p)

	event.Emit(s.Bus, event.PlayerJoined{Player: slot, AI: ai})
	s.Log.Info("player joined", zap.Int("player", slot), zap.Bool("ai", ai))
	return p, nil
}

// ApplyIntent turns the current intent into ship motion and fire requests.
func (s *State) ApplyIntent(p *Player, dt float64) {
	if p.Dead {
		return
	}
	in := p.Intent
	if in.Turn != 0 {
		p.Ship.AngularVel = physics.DegToRad(s.Cfg.Ship.TurnRate) * clamp(in.Turn, -1, 1)
	}
	if in.Thrust > 0 {
		p.Ship.Thrust(s.Cfg.Ship.Acceleration*clamp(in.Thrust, 0, 1), dt)
	}
	if in.Fire {
		s.FireShip(p)
	}
}

// FireShip launches a bullet from the player's own pool when the fire rate
// allows. Ship velocity is inherited.
func (s *State) FireShip(p *Player) bool {
	if p.Dead || s.Now <= p.LastFired {
		return false
	}
	vel := p.Ship.Vel.Add(physics.VelocityFromRotation(p.Ship.Rotation, s.Cfg.Ship.BulletSpeed))
	if !s.fire(p.Number, p.Ship.Pos, vel, s.Cfg.Ship.BulletLifetimeMs) {
		return false
	}
	p.LastFired = s.Now + s.Cfg.Ship.FireRateMs
	return true
}

func (s *State) updatePlayer(p *Player, dt float64) {
	if p.Dead {
		if p.DiedTime+s.Cfg.Ship.DeadTimeMs <= s.Now {
			s.respawn(p)
		}
		return
	}
	if p.AI {
		s.steerAIPlayer(p, dt)
	}
	p.Ship.Step(dt)
	if s.Bounds.OutOfBounds(p.Ship.Pos.X, p.Ship.Pos.Y) {
		p.Ship.Pos.X, p.Ship.Pos.Y = s.Bounds.Wrap(p.Ship.Pos.X, p.Ship.Pos.Y)
	}
}

func (s *State) respawn(p *Player) {
	p.Dead = false
	p.DiedTime = 0
	event.Emit(s.Bus, event.PlayerRespawned{Player: p.Number, Pos: p.Ship.Pos})
}

// ScoreUpdate credits points and grants one bonus per threshold crossed.
// The accumulator keeps the remainder. Float text is anchored at the ship,
// or at the base when the points came from a death or the ship is down.
func (s *State) ScoreUpdate(p *Player, points int, showFloatText, causedByDeath bool) {
	p.Score += points
	p.BonusAcc += points

	if showFloatText {
		pos := p.Ship.Pos
		if causedByDeath || p.Dead {
			if b, ok := s.BaseOf(p); ok {
				pos = b.Body.Pos
			}
		}
		event.Emit(s.Bus, event.FloatText{Player: p.Number, Pos: pos, Value: points})
	}

	threshold := s.Cfg.Game.PointsForBonus
	for p.BonusAcc >= threshold {
		p.BonusAcc -= threshold
		s.grantBonus(p)
	}
}

func (s *State) grantBonus(p *Player) {
	p.Level++
	reward, ok := "", false
	if s.Rules != nil {
		reward, ok = s.Rules.LevelReward(p.Level)
	}
	if !ok {
		reward = s.Tables.Rewards.Get(p.Level)
	}

	if reward == data.RewardTurret && len(p.Mounts) == 0 {
		reward = data.RewardHarvester
	}
	switch reward {
	case data.RewardTurret:
		mount := p.Mounts[0]
		p.Mounts = p.Mounts[1:]
		s.addTurret(p, mount)
	default:
		reward = data.RewardHarvester
		s.addHarvester(p)
	}

	event.Emit(s.Bus, event.BonusGranted{Player: p.Number, Level: p.Level, Reward: reward})
	s.Log.Info("bonus granted",
		zap.Int("player", p.Number),
		zap.Int("level", p.Level),
		zap.String("reward", reward),
	)
}

// EnergyUpdate applies delta without clamping; the director eliminates
// players at or below zero on its next pass.
func (s *State) EnergyUpdate(p *Player, delta int) {
	p.Energy += delta
}

// PlayerDied takes one ship and parks the player at home until the respawn
// delay passes. Calling it on a dead player does nothing.
func (s *State) PlayerDied(p *Player) {
	if p.Dead {
		return
	}
	event.Emit(s.Bus, event.Explosion{Pos: p.Ship.Pos, Kind: "ship"})
	p.Ships--
	p.Ship.Reset(p.Home)
	p.Dead = true
	p.DiedTime = s.Now
	event.Emit(s.Bus, event.PlayerDied{Player: p.Number, ShipsLeft: p.Ships})
	s.Log.Debug("player died", zap.Int("player", p.Number), zap.Int("ships", p.Ships))
}

// DestroyPlayer removes an eliminated player: base, harvesters and turrets
// go back to their pools, the roster slot frees and the join cooldown arms.
func (s *State) DestroyPlayer(p *Player) {
	s.Bases.Release(p.Base)
	for _, id := range p.Harvesters {
		s.Harvesters.Release(id)
	}
	for _, id := range p.Turrets {
		s.Turrets.Release(id)
	}
	p.Harvesters = nil
	p.Turrets = nil
	p.Dead = true

	s.NextJoinTime = s.Now + s.Cfg.Game.RejoinCooldownMs
	s.Roster.remove(p.Number)

	event.Emit(s.Bus, event.PlayerEliminated{Player: p.Number, Score: p.Score})
	s.Log.Info("player eliminated",
		zap.Int("player", p.Number),
		zap.Int("score", p.Score),
		zap.Int("energy", p.Energy),
		zap.Int("ships", p.Ships),
	)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
