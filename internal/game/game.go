// Package game is the entry point an embedding shell drives: one Update per
// frame, join requests keyed by input device, control intents per slot and
// a HUD snapshot.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/collision"
	"github.com/spaceharvest/server/internal/config"
	"github.com/spaceharvest/server/internal/core/event"
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/scripting"
	"github.com/spaceharvest/server/internal/system"
	"github.com/spaceharvest/server/internal/world"
)

var (
	ErrUnknownDevice = errors.New("unknown input device")
	ErrNotJoined     = errors.New("slot has no player")
)

// Game wires the simulation state to the phased system runner.
type Game struct {
	world  *world.State
	runner *coresys.Runner
	input  *system.InputSystem
	status *system.StatusSystem
	engine *scripting.Engine
	log    *zap.Logger
}

// New builds a game from already loaded tables. rules may be nil.
func New(cfg *config.Config, tables *data.Tables, rules world.Rules, log *zap.Logger) *Game {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ws := world.NewState(cfg, tables, rules, rand.New(rand.NewSource(seed)), log)

	g := &Game{
		world:  ws,
		runner: coresys.NewRunner(),
		input:  system.NewInputSystem(ws, log),
		status: system.NewStatusSystem(ws, cfg.Demo.StatusInterval, log),
		log:    log,
	}
	g.runner.Register(g.input)
	g.runner.Register(system.NewEventSystem(ws))
	g.runner.Register(system.NewDirectorSystem(ws, log))
	g.runner.Register(system.NewEntitySystem(ws))
	g.runner.Register(system.NewCollisionSystem(ws, collision.NewDefaultTable(), log))
	g.runner.Register(g.status)

	log.Info("simulation ready",
		zap.Float64("width", cfg.World.Width),
		zap.Float64("height", cfg.World.Height),
		zap.Int64("seed", seed),
	)
	return g
}

// Load reads the balancing tables and progression scripts named by cfg and
// builds a game on top of them. Close releases the script engine.
func Load(cfg *config.Config, log *zap.Logger) (*Game, error) {
	tables, err := data.LoadTables(cfg.Data.YAMLDir, log)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}
	engine, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	g := New(cfg, tables, engine, log)
	g.engine = engine
	return g, nil
}

func (g *Game) Close() {
	if g.engine != nil {
		g.engine.Close()
		g.engine = nil
	}
}

// Update runs one frame. timeMs is the absolute game clock, deltaMs the
// time since the previous frame.
func (g *Game) Update(timeMs, deltaMs float64) {
	g.world.Advance(timeMs, deltaMs)
	g.runner.Tick(coresys.Tick{Now: timeMs, Delta: deltaMs})
}

// Join queues a join for the slot the device maps to. The player appears on
// the next Update, subject to the rejoin cooldown.
func (g *Game) Join(d Device) (int, error) {
	slot, err := d.Slot()
	if err != nil {
		return 0, err
	}
	g.input.QueueJoin(slot, d.AI())
	return slot, nil
}

// SetIntent replaces the control intent of a joined player.
func (g *Game) SetIntent(slot int, in world.Intent) error {
	p := g.world.Roster.Get(slot)
	if p == nil {
		return fmt.Errorf("slot %d: %w", slot, ErrNotJoined)
	}
	p.Intent = in
	return nil
}

// World exposes the simulation state for read-only inspection.
func (g *Game) World() *world.State { return g.world }

// Ticks returns how many updates have run.
func (g *Game) Ticks() int { return g.status.Ticks() }

// Subscribe registers fn for events of type T. Handlers run at the start of
// the tick after the event was raised.
func Subscribe[T any](g *Game, fn func(T)) {
	event.Subscribe(g.world.Bus, fn)
}
