package world

import (
	"math"
	"testing"

	"github.com/spaceharvest/server/internal/physics"
)

func testSteerParams() steerParams {
	return steerParams{
		avoidRange:    250,
		closeRange:    200,
		idleRange:     40,
		turnRate:      4.2,
		closeTurnRate: 6,
		avoidTurnRate: 4.2,
		accel:         1200,
		speedRatio:    0.25,
	}
}

func TestNearest(t *testing.T) {
	from := physics.Vec2{}
	tests := []struct {
		name  string
		pts   []physics.Vec2
		want  int
		wantD float64
	}{
		{"empty", nil, -1, 0},
		{"single", []physics.Vec2{{X: 3, Y: 4}}, 0, 5},
		{"closest wins", []physics.Vec2{{X: 10}, {X: 0, Y: 2}, {X: 5}}, 1, 2},
		{"tie keeps first", []physics.Vec2{{X: 7}, {X: -7}, {Y: 7}}, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, d := nearest(from, tt.pts)
			if i != tt.want || math.Abs(d-tt.wantD) > 1e-9 {
				t.Errorf("nearest() = %d, %v, want %d, %v", i, d, tt.want, tt.wantD)
			}
		})
	}
}

func TestSteerTowardTarget(t *testing.T) {
	body := physics.Body{Pos: physics.Vec2{X: 100, Y: 100}}
	target := physics.Vec2{X: 1000, Y: 100}

	if steer(&body, target, true, nil, testSteerParams(), 0.016) {
		t.Fatal("steer() reported avoidance with nothing to avoid")
	}
	if body.Rotation != 0 {
		t.Errorf("rotation = %v, want 0", body.Rotation)
	}
	want := 1200 * 0.25 * 0.016
	if math.Abs(body.Vel.X-want) > 1e-9 || body.Vel.Y != 0 {
		t.Errorf("velocity = %+v, want (%v,0)", body.Vel, want)
	}
}

func TestSteerTurnRate(t *testing.T) {
	p := testSteerParams()
	far := physics.Body{Pos: physics.Vec2{}}
	steer(&far, physics.Vec2{Y: 1000}, true, nil, p, 0.1)
	if math.Abs(far.Rotation-0.42) > 1e-9 {
		t.Errorf("far turn = %v, want 0.42", far.Rotation)
	}

	close := physics.Body{Pos: physics.Vec2{}}
	steer(&close, physics.Vec2{Y: 100}, true, nil, p, 0.1)
	if math.Abs(close.Rotation-0.6) > 1e-9 {
		t.Errorf("close turn = %v, want 0.6", close.Rotation)
	}
}

func TestSteerAvoidanceTurnsAndThrustsAway(t *testing.T) {
	body := physics.Body{Pos: physics.Vec2{X: 500, Y: 500}, Rotation: math.Pi}
	avoid := []physics.Vec2{{X: 400, Y: 500}, {X: 500, Y: 900}}

	if !steer(&body, physics.Vec2{X: 0, Y: 500}, true, avoid, testSteerParams(), 1) {
		t.Fatal("steer() did not avoid a point inside the avoid range")
	}
	if math.Abs(body.Rotation) > 1e-9 {
		t.Errorf("rotation = %v, want 0 (away from the threat)", body.Rotation)
	}
	if math.Abs(body.Vel.X-300) > 1e-9 || math.Abs(body.Vel.Y) > 1e-9 {
		t.Errorf("velocity = %+v, want (300,0) away from the threat", body.Vel)
	}
}

func TestSteerEscapesAvoidRange(t *testing.T) {
	p := testSteerParams()
	threat := physics.Vec2{X: 400, Y: 500}
	body := physics.Body{
		Pos:      physics.Vec2{X: 500, Y: 500},
		Rotation: math.Pi,
		Drag:     130,
		MaxSpeed: 200,
	}

	for i := 0; i < 300; i++ {
		steer(&body, physics.Vec2{X: 900, Y: 500}, true, []physics.Vec2{threat}, p, 0.016)
		body.Step(0.016)
	}
	if d := body.Pos.Dist(threat); d < p.avoidRange {
		t.Errorf("still %.1f from the threat after 300 ticks, want >= %v", d, p.avoidRange)
	}
}

func TestSteerAvoidRangeIsStrict(t *testing.T) {
	body := physics.Body{Pos: physics.Vec2{}}
	avoid := []physics.Vec2{{X: 250}}
	if steer(&body, physics.Vec2{X: 1000}, true, avoid, testSteerParams(), 0.016) {
		t.Error("point exactly at the avoid range triggered avoidance")
	}
}

func TestSteerIdlesAtHome(t *testing.T) {
	body := physics.Body{Pos: physics.Vec2{X: 100, Y: 100}}
	steer(&body, physics.Vec2{X: 120, Y: 100}, false, nil, testSteerParams(), 0.016)
	if body.Vel != (physics.Vec2{}) {
		t.Errorf("idle craft thrusted: %+v", body.Vel)
	}

	steer(&body, physics.Vec2{X: 300, Y: 100}, false, nil, testSteerParams(), 0.016)
	if body.Vel.X <= 0 {
		t.Error("craft away from home did not head back")
	}
}

func TestAIPlayerFiresWhenAligned(t *testing.T) {
	s := newTestState(t, nil)
	p, _ := s.Join(0, true)
	p.Dead = false
	p.Ship.Pos = physics.Vec2{X: 700, Y: 400}
	p.Ship.Rotation = 0
	s.Now = 1000

	id, _ := s.SpawnAsteroid()
	a, _ := s.Asteroids.Get(id)
	a.Body.Pos = physics.Vec2{X: 900, Y: 400}

	s.steerAIPlayer(p, 0.016)
	if s.Bullets[0].CountActive() != 1 {
		t.Errorf("AI did not shoot an aligned asteroid")
	}
}

func TestAIPlayerHoldsFireOnMinerals(t *testing.T) {
	s := newTestState(t, nil)
	p, _ := s.Join(0, true)
	p.Dead = false
	p.Ship.Pos = physics.Vec2{X: 700, Y: 400}
	s.Now = 1000
	s.SpawnMineral(physics.Vec2{X: 800, Y: 400})

	s.steerAIPlayer(p, 0.016)
	if s.Bullets[0].CountActive() != 0 {
		t.Error("AI shot at a mineral")
	}
}

func TestAIShipLeavesEnemyBaseRange(t *testing.T) {
	s := newTestState(t, nil)
	p, _ := s.Join(0, true)
	if _, err := s.Join(2, false); err != nil {
		t.Fatalf("Join(2) error: %v", err)
	}
	enemy := s.StartPosition(2)
	p.Dead = false
	p.Ship.Pos = physics.Vec2{X: enemy.X, Y: enemy.Y - 200}

	now := 0.0
	for i := 0; i < 1875; i++ {
		now += 16
		s.Advance(now, 16)
		s.UpdateEntities(0.016)
	}
	if d := p.Ship.Pos.Dist(enemy); d < s.Cfg.AI.AvoidRange {
		t.Errorf("AI ship %.1f from the enemy base after 30s, want >= %v", d, s.Cfg.AI.AvoidRange)
	}
}
