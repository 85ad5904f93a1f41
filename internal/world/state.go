package world

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/config"
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/core/event"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/physics"
)

const (
	MaxPlayers = 4
	// AIOwner is the bullet owner index shared by aliens and the boss.
	AIOwner = MaxPlayers
)

// Rules are optional scripted overrides for progression. Every method
// reports ok=false to defer to the built-in tables.
type Rules interface {
	LevelReward(level int) (string, bool)
	WaveBudget(wave int) (asteroids, aliens int, ok bool)
	BossHealth(appearance int) (int, bool)
}

// State is the simulation context: pools, roster, wave record and clock.
// Accessed only from the simulation goroutine, no locks.
type State struct {
	Cfg    *config.Config
	Tables *data.Tables
	Rules  Rules
	Bus    *event.Bus
	Log    *zap.Logger
	Rng    *rand.Rand
	Bounds physics.Bounds

	Now   float64 // game clock, ms
	Delta float64 // last tick delta, ms

	Bullets    [MaxPlayers + 1]*ecs.Pool[Bullet]
	Asteroids  *ecs.Pool[Asteroid]
	Minerals   *ecs.Pool[Mineral]
	Aliens     *ecs.Pool[Alien]
	Bosses     *ecs.Pool[Boss]
	Bases      *ecs.Pool[Base]
	Harvesters *ecs.Pool[Harvester]
	Turrets    *ecs.Pool[Turret]

	Roster Roster
	Wave   Wave

	// NextJoinTime gates joins after any elimination.
	NextJoinTime float64
}

// NewState builds a context with every pool pre-allocated. rules may be nil.
func NewState(cfg *config.Config, tables *data.Tables, rules Rules, rng *rand.Rand, log *zap.Logger) *State {
	s := &State{
		Cfg:        cfg,
		Tables:     tables,
		Rules:      rules,
		Bus:        event.NewBus(),
		Log:        log,
		Rng:        rng,
		Bounds:     physics.Bounds{Width: cfg.World.Width, Height: cfg.World.Height},
		Asteroids:  ecs.NewPool[Asteroid](cfg.Pools.Asteroids),
		Minerals:   ecs.NewPool[Mineral](cfg.Pools.Minerals),
		Aliens:     ecs.NewPool[Alien](cfg.Pools.Aliens),
		Bosses:     ecs.NewPool[Boss](1),
		Bases:      ecs.NewPool[Base](MaxPlayers),
		Harvesters: ecs.NewPool[Harvester](cfg.Pools.Harvesters),
		Turrets:    ecs.NewPool[Turret](cfg.Pools.Turrets),
	}
	for i := 0; i < MaxPlayers; i++ {
		s.Bullets[i] = ecs.NewPool[Bullet](cfg.Pools.BulletsPerPlayer)
	}
	s.Bullets[AIOwner] = ecs.NewPool[Bullet](cfg.Pools.AIBullets)
	s.Wave.IntermissionUntil = cfg.Wave.IntermissionMs
	return s
}

// Advance moves the clock. Called once per tick before any system runs.
func (s *State) Advance(now, delta float64) {
	s.Now = now
	s.Delta = delta
}

// randFloat returns a uniform value in [lo, hi).
func (s *State) randFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.Rng.Float64()*(hi-lo)
}

// randInt returns a uniform integer in [lo, hi].
func (s *State) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Rng.Intn(hi-lo+1)
}

func (s *State) randHeading() float64 {
	return s.randFloat(-math.Pi, math.Pi)
}

// BaseOf resolves a player's base. ok is false when the player has none.
func (s *State) BaseOf(p *Player) (*Base, bool) {
	if p == nil {
		return nil, false
	}
	return s.Bases.Get(p.Base)
}
