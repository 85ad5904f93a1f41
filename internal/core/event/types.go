package event

import "github.com/spaceharvest/server/internal/physics"

// Visual and audio hooks for the shell. None of these feed back into the
// simulation.

type DebrisBurst struct {
	Pos physics.Vec2
}

type Explosion struct {
	Pos  physics.Vec2
	Kind string // "ship", "alien", "boss", "harvester"
}

type FloatText struct {
	Player int
	Pos    physics.Vec2
	Value  int
}

type ShotFired struct {
	Owner int
	Pos   physics.Vec2
}

// Roster and progression events.

type PlayerJoined struct {
	Player int
	AI     bool
}

type PlayerDied struct {
	Player    int
	ShipsLeft int
}

type PlayerRespawned struct {
	Player int
	Pos    physics.Vec2
}

type PlayerEliminated struct {
	Player int
	Score  int
}

type BonusGranted struct {
	Player int
	Level  int
	Reward string
}

type WaveStarted struct {
	Wave int
	Boss bool
}

type BossPhaseChanged struct {
	From string
	To   string
}
