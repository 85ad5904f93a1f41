package system

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/collision"
	"github.com/spaceharvest/server/internal/config"
	"github.com/spaceharvest/server/internal/core/ecs"
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/data"
	"github.com/spaceharvest/server/internal/physics"
	"github.com/spaceharvest/server/internal/world"
)

func newTestWorld(t *testing.T, tweak func(*config.Config)) *world.State {
	t.Helper()
	cfg := config.Default()
	if tweak != nil {
		tweak(cfg)
	}
	return world.NewState(cfg, data.DefaultTables(), nil, rand.New(rand.NewSource(3)), zap.NewNop())
}

// step advances the clock and runs one director tick.
func step(ws *world.State, d *DirectorSystem, now float64) {
	ws.Advance(now, 100)
	d.Update(coresys.Tick{Now: now, Delta: 100})
}

// clearField retires every hostile, hazard and mineral, killing any boss.
func clearField(ws *world.State) {
	ws.Asteroids.ReleaseAll()
	ws.Minerals.ReleaseAll()
	ws.Aliens.ReleaseAll()
	ws.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		ws.DamageBoss(id, b.Health)
	})
	ws.Minerals.ReleaseAll()
}

func TestFirstWaveWaitsForIntermission(t *testing.T) {
	ws := newTestWorld(t, nil)
	d := NewDirectorSystem(ws, zap.NewNop())

	step(ws, d, ws.Cfg.Wave.IntermissionMs-1)
	if ws.Wave.Number != 0 || ws.Wave.InProgress {
		t.Fatalf("wave %d started during the intermission", ws.Wave.Number)
	}
	step(ws, d, ws.Cfg.Wave.IntermissionMs)
	if ws.Wave.Number != 1 || !ws.Wave.InProgress {
		t.Fatalf("wave = %d in progress %v, want 1 true", ws.Wave.Number, ws.Wave.InProgress)
	}
	if ws.Asteroids.CountActive() != 1 {
		t.Errorf("first asteroid not spawned on wave start")
	}
	if ws.Wave.AsteroidsLeft != 3 || ws.Wave.AliensLeft != 1 {
		t.Errorf("budget left = %d/%d, want 3/1", ws.Wave.AsteroidsLeft, ws.Wave.AliensLeft)
	}
}

func TestBudgetFromRules(t *testing.T) {
	ws := newTestWorld(t, nil)
	d := NewDirectorSystem(ws, zap.NewNop())
	if a, b := d.Budget(3); a != 8 || b != 3 {
		t.Errorf("config budget(3) = %d,%d, want 8,3", a, b)
	}
	ws.Rules = budgetRules{asteroids: 2, aliens: 9}
	if a, b := d.Budget(3); a != 2 || b != 9 {
		t.Errorf("scripted budget(3) = %d,%d, want 2,9", a, b)
	}
}

type budgetRules struct {
	asteroids, aliens int
}

func (budgetRules) LevelReward(int) (string, bool)    { return "", false }
func (r budgetRules) WaveBudget(int) (int, int, bool) { return r.asteroids, r.aliens, true }
func (budgetRules) BossHealth(int) (int, bool)        { return 0, false }

func TestWaveBudgetDrainsBeforeNextWave(t *testing.T) {
	ws := newTestWorld(t, nil)
	d := NewDirectorSystem(ws, zap.NewNop())

	prev, asteroidsLeft, aliensLeft := 0, 0, 0
	for now := 0.0; now < 600000 && ws.Wave.Number < 6; now += 100 {
		step(ws, d, now)
		if ws.Wave.Number != prev {
			if prev > 0 && (asteroidsLeft != 0 || aliensLeft != 0) {
				t.Fatalf("wave %d started with wave %d budget %d/%d unspent",
					ws.Wave.Number, prev, asteroidsLeft, aliensLeft)
			}
			prev = ws.Wave.Number
		}
		asteroidsLeft, aliensLeft = ws.Wave.AsteroidsLeft, ws.Wave.AliensLeft
		clearField(ws)
	}
	if ws.Wave.Number < 6 {
		t.Fatalf("reached wave %d only", ws.Wave.Number)
	}
	if ws.Wave.BossAppearances != 1 {
		t.Errorf("boss appearances = %d, want 1", ws.Wave.BossAppearances)
	}
}

func TestBossWaveSuspendsSpawning(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) { c.Wave.BossEvery = 1 })
	d := NewDirectorSystem(ws, zap.NewNop())
	ws.Join(0, false)

	now := ws.Cfg.Wave.IntermissionMs
	step(ws, d, now)
	if ws.Wave.BossPhase != world.BossEntering || ws.Bosses.CountActive() != 1 {
		t.Fatalf("phase %v bosses %d, want entering 1", ws.Wave.BossPhase, ws.Bosses.CountActive())
	}
	for i := 0; i < 100; i++ {
		now += 100
		step(ws, d, now)
	}
	if ws.Asteroids.CountActive() != 0 || ws.Aliens.CountActive() != 0 {
		t.Fatal("spawned hazards while the boss was entering")
	}

	var bossID ecs.EntityID
	ws.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		bossID = id
		b.Body.Pos.Y = ws.Bounds.Height / 2
	})
	now += 100
	step(ws, d, now)
	if ws.Wave.BossPhase != world.BossSet {
		t.Fatalf("phase %v after arrival, want set", ws.Wave.BossPhase)
	}

	ws.Bases.Each(func(_ ecs.EntityID, b *world.Base) {
		b.Body.Pos = b.Retreat
	})
	ws.DamageBoss(bossID, 1000)
	ws.Minerals.ReleaseAll()
	killedAt := now

	now += 100
	step(ws, d, now)
	if ws.Wave.BossPhase != world.BossDestroyed {
		t.Fatalf("phase %v with bases away, want destroyed", ws.Wave.BossPhase)
	}
	if ws.Asteroids.CountActive() != 0 {
		t.Fatal("spawned hazards before the bases reassembled")
	}

	now = killedAt + ws.Cfg.Boss.ReassembleTimeoutMs
	step(ws, d, now)
	if ws.Wave.BossPhase != world.BossDormant {
		t.Fatalf("phase %v after the reassemble timeout, want dormant", ws.Wave.BossPhase)
	}
	if !ws.AllBasesHome() {
		t.Error("bases not snapped home on timeout")
	}
	if ws.Asteroids.CountActive() != 1 {
		t.Errorf("asteroids = %d after dormant, want 1", ws.Asteroids.CountActive())
	}
}

func TestBossDormantWhenBasesHome(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) { c.Wave.BossEvery = 1 })
	d := NewDirectorSystem(ws, zap.NewNop())
	step(ws, d, ws.Cfg.Wave.IntermissionMs)
	ws.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		ws.DamageBoss(id, b.Health)
	})
	step(ws, d, ws.Cfg.Wave.IntermissionMs+100)
	if ws.Wave.BossPhase != world.BossDormant {
		t.Errorf("phase %v with every base home, want dormant", ws.Wave.BossPhase)
	}
}

func TestWaveWaitsForMinerals(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) {
		c.Wave.AsteroidsBase = 1
		c.Wave.AliensBase = 0
	})
	d := NewDirectorSystem(ws, zap.NewNop())
	now := ws.Cfg.Wave.IntermissionMs
	step(ws, d, now)
	ws.Asteroids.ReleaseAll()
	ws.SpawnMineral(physics.Vec2{X: 10, Y: 10})

	now += 100
	step(ws, d, now)
	if !ws.Wave.InProgress {
		t.Fatal("wave closed with a mineral still on the field")
	}
	ws.Minerals.ReleaseAll()
	now += 100
	step(ws, d, now)
	if ws.Wave.InProgress {
		t.Fatal("wave did not close on a clear field")
	}
	if want := now + ws.Cfg.Wave.IntermissionMs; ws.Wave.IntermissionUntil != want {
		t.Errorf("IntermissionUntil = %v, want %v", ws.Wave.IntermissionUntil, want)
	}
}

func TestAsteroidSpawnHeldByMineralCap(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) { c.Wave.MaxActiveMinerals = 2 })
	d := NewDirectorSystem(ws, zap.NewNop())
	ws.SpawnMineral(physics.Vec2{X: 10, Y: 10})
	ws.SpawnMineral(physics.Vec2{X: 10, Y: 10})

	step(ws, d, ws.Cfg.Wave.IntermissionMs)
	if ws.Asteroids.CountActive() != 0 {
		t.Error("asteroid spawned over the mineral cap")
	}
}

func TestEliminationEndToEnd(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) { c.Game.PointsForBonus = 100 })
	d := NewDirectorSystem(ws, zap.NewNop())
	p, err := ws.Join(1, false)
	if err != nil {
		t.Fatal(err)
	}
	p.Dead = false
	ws.ScoreUpdate(p, 300, false, false)
	base := p.Base
	owned := append(append([]ecs.EntityID(nil), p.Harvesters...), p.Turrets...)
	if len(p.Harvesters) == 0 || len(p.Turrets) == 0 {
		t.Fatalf("setup: harvesters %d turrets %d", len(p.Harvesters), len(p.Turrets))
	}

	p.Energy = 1
	ws.EnergyUpdate(p, -1)
	if ws.Roster.Get(1) == nil {
		t.Fatal("EnergyUpdate eliminated the player directly")
	}

	step(ws, d, 5000)
	if ws.Roster.Get(1) != nil {
		t.Fatal("player still in roster after the director pass")
	}
	if ws.Bases.Alive(base) {
		t.Error("base not released")
	}
	for _, id := range owned {
		if ws.Harvesters.Alive(id) || ws.Turrets.Alive(id) {
			t.Error("owned entity not released")
		}
	}
	if want := 5000 + ws.Cfg.Game.RejoinCooldownMs; ws.NextJoinTime != want {
		t.Errorf("NextJoinTime = %v, want %v", ws.NextJoinTime, want)
	}
}

func TestEliminationOnShips(t *testing.T) {
	ws := newTestWorld(t, nil)
	d := NewDirectorSystem(ws, zap.NewNop())
	p, _ := ws.Join(0, false)
	q, _ := ws.Join(2, false)
	p.Ships = 0

	step(ws, d, 100)
	if ws.Roster.Get(0) != nil {
		t.Error("player without ships survived")
	}
	if ws.Roster.Get(2) != q {
		t.Error("healthy player eliminated")
	}
}

func TestAIPlayerClearsWaveNearEnemyBase(t *testing.T) {
	ws := newTestWorld(t, func(c *config.Config) {
		c.Wave.AsteroidsBase, c.Wave.AsteroidsPerWave = 0, 0
		c.Wave.AliensBase, c.Wave.AliensPerWave = 0, 0
	})
	runner := coresys.NewRunner()
	runner.Register(NewInputSystem(ws, zap.NewNop()))
	runner.Register(NewEventSystem(ws))
	runner.Register(NewDirectorSystem(ws, zap.NewNop()))
	runner.Register(NewEntitySystem(ws))
	runner.Register(NewCollisionSystem(ws, collision.NewDefaultTable(), zap.NewNop()))

	bot, _ := ws.Join(0, true)
	if _, err := ws.Join(2, false); err != nil {
		t.Fatalf("Join(2) error: %v", err)
	}
	enemy := ws.StartPosition(2)
	bot.Dead = false
	bot.Ship.Pos = physics.Vec2{X: enemy.X, Y: enemy.Y - 180}

	id, _ := ws.SpawnMineral(physics.Vec2{X: 800, Y: 420})
	m, _ := ws.Minerals.Get(id)
	m.Body.Vel = physics.Vec2{}

	for now := 16.0; now <= 15000; now += 16 {
		ws.Advance(now, 16)
		runner.Tick(coresys.Tick{Now: now, Delta: 16})
		if ws.Wave.Number >= 2 {
			break
		}
	}
	if ws.Wave.Number < 2 {
		t.Fatalf("wave %d after 15s, minerals left %d, ship at %+v", ws.Wave.Number, ws.Minerals.CountActive(), bot.Ship.Pos)
	}
	if bot.Score == 0 {
		t.Error("AI ship never collected the mineral")
	}
}
