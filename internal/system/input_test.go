package system

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spaceharvest/server/internal/collision"
	coresys "github.com/spaceharvest/server/internal/core/system"
	"github.com/spaceharvest/server/internal/world"
)

func TestInputDrainsJoinQueue(t *testing.T) {
	ws := newTestWorld(t, nil)
	in := NewInputSystem(ws, zap.NewNop())

	in.QueueJoin(2, true)
	in.QueueJoin(2, false)
	in.QueueJoin(7, false)
	if in.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", in.Pending())
	}
	in.Update(coresys.Tick{Now: 16, Delta: 16})

	if in.Pending() != 0 {
		t.Errorf("queue not drained: %d left", in.Pending())
	}
	if ws.Roster.Count() != 1 {
		t.Fatalf("roster = %d players, want 1", ws.Roster.Count())
	}
	if p := ws.Roster.Get(2); p == nil || !p.AI {
		t.Error("first request for slot 2 did not win")
	}
}

func TestInputAppliesHumanIntent(t *testing.T) {
	ws := newTestWorld(t, nil)
	in := NewInputSystem(ws, zap.NewNop())
	human, _ := ws.Join(0, false)
	bot, _ := ws.Join(1, true)
	human.Dead, bot.Dead = false, false
	human.Intent = world.Intent{Thrust: 1}
	bot.Intent = world.Intent{Thrust: 1}

	in.Update(coresys.Tick{Now: 100, Delta: 100})
	if human.Ship.Vel.Len() == 0 {
		t.Error("human thrust intent ignored")
	}
	if bot.Ship.Vel.Len() != 0 {
		t.Error("intent applied to an AI player")
	}
}

func TestRunnerOrder(t *testing.T) {
	ws := newTestWorld(t, nil)
	status := NewStatusSystem(ws, time.Second, zap.NewNop())
	runner := coresys.NewRunner()
	runner.Register(status)
	runner.Register(NewCollisionSystem(ws, collision.NewDefaultTable(), zap.NewNop()))
	runner.Register(NewEntitySystem(ws))
	runner.Register(NewDirectorSystem(ws, zap.NewNop()))
	runner.Register(NewEventSystem(ws))
	runner.Register(NewInputSystem(ws, zap.NewNop()))

	for now := 16.0; now <= 5000; now += 16 {
		ws.Advance(now, 16)
		runner.Tick(coresys.Tick{Now: now, Delta: 16})
	}
	if status.Ticks() != 312 {
		t.Errorf("Ticks() = %d, want 312", status.Ticks())
	}
	if ws.Wave.Number != 1 {
		t.Errorf("wave = %d after 5s, want 1", ws.Wave.Number)
	}
}
