package world

// Roster owns the joined players, indexed by player number.
type Roster struct {
	players [MaxPlayers]*Player
}

// Get returns the player in slot n, or nil.
func (r *Roster) Get(n int) *Player {
	if n < 0 || n >= MaxPlayers {
		return nil
	}
	return r.players[n]
}

// Each visits joined players in slot order.
func (r *Roster) Each(fn func(p *Player)) {
	for _, p := range r.players {
		if p != nil {
			fn(p)
		}
	}
}

func (r *Roster) Count() int {
	n := 0
	for _, p := range r.players {
		if p != nil {
			n++
		}
	}
	return n
}

// Live returns players whose ship is currently in play.
func (r *Roster) Live() []*Player {
	var out []*Player
	for _, p := range r.players {
		if p != nil && !p.Dead {
			out = append(out, p)
		}
	}
	return out
}

func (r *Roster) add(p *Player) {
	r.players[p.Number] = p
}

func (r *Roster) remove(n int) {
	if n >= 0 && n < MaxPlayers {
		r.players[n] = nil
	}
}
