package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain join queue, apply control intents
	PhasePreUpdate               // 1: dispatch last tick's events
	PhaseDirector                // 2: elimination, wave/boss state, spawning
	PhaseUpdate                  // 3: per-entity behavior
	PhaseCollision               // 4: overlap detection and resolution
	PhasePostUpdate              // 5: bookkeeping, status
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseDirector:
		return "director"
	case PhaseUpdate:
		return "update"
	case PhaseCollision:
		return "collision"
	case PhasePostUpdate:
		return "post-update"
	}
	return "unknown"
}

// Tick carries the game clock into each system. Now and Delta are in
// milliseconds.
type Tick struct {
	Now   float64
	Delta float64
}

// Seconds returns Delta in seconds for kinematics.
func (t Tick) Seconds() float64 { return t.Delta / 1000 }

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(t Tick)
}
