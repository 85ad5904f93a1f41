package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, script string) *Engine {
	t.Helper()
	dir := t.TempDir()
	if script != "" {
		prog := filepath.Join(dir, "progression")
		if err := os.MkdirAll(prog, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(prog, "rules.lua"), []byte(script), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	e, err := NewEngine(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestEngineRules(t *testing.T) {
	e := newTestEngine(t, `
function level_reward(level)
  if level == 1 then return "turret" end
  return nil
end
function wave_budget(wave)
  return { asteroids = wave * 3, aliens = wave }
end
function boss_health(n)
  return 10 * n
end
`)
	if r, ok := e.LevelReward(1); !ok || r != "turret" {
		t.Errorf("LevelReward(1) = %q, %v", r, ok)
	}
	if _, ok := e.LevelReward(2); ok {
		t.Error("LevelReward(2) should defer when script returns nil")
	}
	if a, b, ok := e.WaveBudget(4); !ok || a != 12 || b != 4 {
		t.Errorf("WaveBudget(4) = %d, %d, %v", a, b, ok)
	}
	if h, ok := e.BossHealth(3); !ok || h != 30 {
		t.Errorf("BossHealth(3) = %d, %v", h, ok)
	}
}

func TestEngineMissingFunctions(t *testing.T) {
	e := newTestEngine(t, "")
	if _, ok := e.LevelReward(1); ok {
		t.Error("LevelReward without script reported ok")
	}
	if _, _, ok := e.WaveBudget(1); ok {
		t.Error("WaveBudget without script reported ok")
	}
	if _, ok := e.BossHealth(1); ok {
		t.Error("BossHealth without script reported ok")
	}
}

func TestEngineRuntimeErrorFallsBack(t *testing.T) {
	e := newTestEngine(t, `
function wave_budget(wave)
  error("boom")
end
`)
	if _, _, ok := e.WaveBudget(1); ok {
		t.Error("WaveBudget after runtime error reported ok")
	}
}

func TestEngineLoadError(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "progression")
	if err := os.MkdirAll(prog, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(prog, "bad.lua"), []byte("function ("), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewEngine(dir, zap.NewNop()); err == nil {
		t.Error("NewEngine() with syntax error succeeded")
	}
}

func TestShippedScripts(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "..", "scripts"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine(scripts) error: %v", err)
	}
	defer e.Close()

	if a, b, ok := e.WaveBudget(1); !ok || a != 4 || b != 1 {
		t.Errorf("WaveBudget(1) = %d, %d, %v", a, b, ok)
	}
	if _, b, ok := e.WaveBudget(5); !ok || b != 0 {
		t.Errorf("boss wave aliens = %d, %v, want 0", b, ok)
	}
	if h, ok := e.BossHealth(2); !ok || h != 75 {
		t.Errorf("BossHealth(2) = %d, %v", h, ok)
	}
}
