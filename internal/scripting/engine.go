package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the progression rules.
// Single-goroutine access only (simulation loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory yields an engine with no rule overrides.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"progression"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// call invokes a global Lua function with one numeric argument and returns
// its single result. ok is false when the function is not defined or fails.
func (e *Engine) call(name string, arg int) (lua.LValue, bool) {
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, false
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(arg)); err != nil {
		e.log.Error("lua call failed", zap.String("fn", name), zap.Error(err))
		return lua.LNil, false
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	return ret, true
}

// LevelReward asks level_reward(level) which reward to grant. ok is false
// when the script does not decide, so the caller falls back to its table.
func (e *Engine) LevelReward(level int) (string, bool) {
	ret, ok := e.call("level_reward", level)
	if !ok {
		return "", false
	}
	s, isStr := ret.(lua.LString)
	if !isStr || s == "" {
		return "", false
	}
	return string(s), true
}

// WaveBudget asks wave_budget(wave) for {asteroids=, aliens=}.
func (e *Engine) WaveBudget(wave int) (asteroids, aliens int, ok bool) {
	ret, ok := e.call("wave_budget", wave)
	if !ok {
		return 0, 0, false
	}
	tbl, isTbl := ret.(*lua.LTable)
	if !isTbl {
		if ret != lua.LNil {
			e.log.Warn("wave_budget returned non-table", zap.String("type", ret.Type().String()))
		}
		return 0, 0, false
	}
	return int(lua.LVAsNumber(tbl.RawGetString("asteroids"))),
		int(lua.LVAsNumber(tbl.RawGetString("aliens"))), true
}

// BossHealth asks boss_health(appearance) for the health of the n-th boss
// (1-based).
func (e *Engine) BossHealth(appearance int) (int, bool) {
	ret, ok := e.call("boss_health", appearance)
	if !ok {
		return 0, false
	}
	n, isNum := ret.(lua.LNumber)
	if !isNum || n <= 0 {
		return 0, false
	}
	return int(n), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
