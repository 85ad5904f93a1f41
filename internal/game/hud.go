package game

import (
	"github.com/spaceharvest/server/internal/world"
)

// PlayerHUD is what the shell draws for one player. Energy is reported raw
// and may briefly read negative before the director eliminates the player.
type PlayerHUD struct {
	Slot   int
	AI     bool
	Dead   bool
	Score  int
	Energy int
	Ships  int
	Level  int
}

type HUD struct {
	Wave      int
	BossPhase string
	Players   []PlayerHUD
}

// HUD snapshots the display state in slot order.
func (g *Game) HUD() HUD {
	ws := g.world
	h := HUD{
		Wave:      ws.Wave.Number,
		BossPhase: ws.Wave.BossPhase.String(),
	}
	ws.Roster.Each(func(p *world.Player) {
		h.Players = append(h.Players, PlayerHUD{
			Slot:   p.Number,
			AI:     p.AI,
			Dead:   p.Dead,
			Score:  p.Score,
			Energy: p.Energy,
			Ships:  p.Ships,
			Level:  p.Level,
		})
	})
	return h
}
