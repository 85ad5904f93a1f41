package world

import (
	"github.com/spaceharvest/server/internal/core/ecs"
)

// Kind tags every collidable entity type.
type Kind uint8

const (
	KindShip Kind = iota
	KindBase
	KindBullet
	KindAsteroid
	KindMineral
	KindAlien
	KindBoss
	KindHarvester
	KindTurret
	kindCount
)

// KindCount is the number of entity kinds.
const KindCount = int(kindCount)

var kindNames = [...]string{"ship", "base", "bullet", "asteroid", "mineral", "alien", "boss", "harvester", "turret"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Ref is a non-owning handle to any entity. For ships Slot is the player
// number and ID is unused; for bullets Slot is the owner pool index.
type Ref struct {
	Kind Kind
	ID   ecs.EntityID
	Slot int
}

func ShipRef(player int) Ref                   { return Ref{Kind: KindShip, Slot: player} }
func BulletRef(owner int, id ecs.EntityID) Ref { return Ref{Kind: KindBullet, ID: id, Slot: owner} }
func EntityRef(k Kind, id ecs.EntityID) Ref    { return Ref{Kind: k, ID: id} }

// Ship resolves a ship ref to its live player.
func (s *State) Ship(r Ref) (*Player, bool) {
	if r.Kind != KindShip {
		return nil, false
	}
	p := s.Roster.Get(r.Slot)
	if p == nil || p.Dead {
		return nil, false
	}
	return p, true
}

func (s *State) Bullet(r Ref) (*Bullet, bool) {
	if r.Kind != KindBullet || r.Slot < 0 || r.Slot > AIOwner {
		return nil, false
	}
	return s.Bullets[r.Slot].Get(r.ID)
}

func (s *State) Asteroid(r Ref) (*Asteroid, bool) {
	if r.Kind != KindAsteroid {
		return nil, false
	}
	return s.Asteroids.Get(r.ID)
}

func (s *State) Mineral(r Ref) (*Mineral, bool) {
	if r.Kind != KindMineral {
		return nil, false
	}
	return s.Minerals.Get(r.ID)
}

func (s *State) Alien(r Ref) (*Alien, bool) {
	if r.Kind != KindAlien {
		return nil, false
	}
	return s.Aliens.Get(r.ID)
}

func (s *State) Boss(r Ref) (*Boss, bool) {
	if r.Kind != KindBoss {
		return nil, false
	}
	return s.Bosses.Get(r.ID)
}

func (s *State) Base(r Ref) (*Base, bool) {
	if r.Kind != KindBase {
		return nil, false
	}
	return s.Bases.Get(r.ID)
}

// Harvester resolves a harvester ref. Harvesters waiting to respawn stay in
// their pool but are not reachable through refs.
func (s *State) Harvester(r Ref) (*Harvester, bool) {
	if r.Kind != KindHarvester {
		return nil, false
	}
	h, ok := s.Harvesters.Get(r.ID)
	if !ok || h.Dead {
		return nil, false
	}
	return h, true
}
