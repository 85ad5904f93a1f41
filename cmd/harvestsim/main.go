package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spaceharvest/server/internal/config"
	"github.com/spaceharvest/server/internal/game"
	"github.com/spaceharvest/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m         Space Harvest  headless sim       \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Simulation loop ───────────────────────────────────────────────

func run() error {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	g, err := game.Load(cfg, log)
	if err != nil {
		return err
	}
	defer g.Close()

	ws := g.World()
	printSection("Balancing data")
	printStat("Alien variants", ws.Tables.Aliens.Count())
	printStat("Mineral tiers", ws.Tables.Minerals.Count())
	printStat("Level rewards", ws.Tables.Rewards.Count())
	printStat("Turret mounts", ws.Tables.Mounts.Count())
	fmt.Println()

	bots := cfg.Demo.AIPlayers
	if bots > world.MaxPlayers {
		bots = world.MaxPlayers
	}
	for slot := 0; slot < bots; slot++ {
		if _, err := g.Join(game.AIToggle(slot)); err != nil {
			return fmt.Errorf("join ai %d: %w", slot, err)
		}
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if cfg.Demo.Duration > 0 {
		timer := time.NewTimer(cfg.Demo.Duration)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(cfg.World.TickRate)
	defer ticker.Stop()

	printSection("Running")
	printReady(fmt.Sprintf("Game loop started (tick: %s, ai players: %d)", cfg.World.TickRate, bots))
	fmt.Println()

	// The game clock advances a fixed step per tick so a run is repeatable
	// for a given seed regardless of scheduling jitter.
	step := float64(cfg.World.TickRate) / float64(time.Millisecond)
	now := 0.0
	for {
		select {
		case <-ticker.C:
			now += step
			g.Update(now, step)
		case <-deadline:
			log.Info("demo duration reached", zap.Duration("duration", cfg.Demo.Duration))
			logSummary(log, g)
			return nil
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			logSummary(log, g)
			return nil
		}
	}
}

func logSummary(log *zap.Logger, g *game.Game) {
	hud := g.HUD()
	log.Info("final state",
		zap.Int("ticks", g.Ticks()),
		zap.Int("wave", hud.Wave),
		zap.String("boss", hud.BossPhase),
	)
	for _, p := range hud.Players {
		log.Info("player",
			zap.Int("slot", p.Slot),
			zap.Bool("ai", p.AI),
			zap.Int("score", p.Score),
			zap.Int("level", p.Level),
			zap.Int("energy", p.Energy),
			zap.Int("ships", p.Ships),
		)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
