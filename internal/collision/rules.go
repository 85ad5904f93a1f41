package collision

import (
	"github.com/spaceharvest/server/internal/world"
)

// NewDefaultTable registers every gameplay overlap rule.
func NewDefaultTable() *Table {
	t := NewTable()

	t.On(world.KindAsteroid, world.KindBullet, asteroidHitByBullet)
	t.On(world.KindAlien, world.KindBullet, alienHitByBullet)
	t.On(world.KindBoss, world.KindBullet, bossHitByBullet)
	t.On(world.KindShip, world.KindBullet, shipHitByBullet)
	t.On(world.KindBase, world.KindBullet, baseHitByBullet)
	t.On(world.KindHarvester, world.KindBullet, harvesterHitByBullet)

	t.On(world.KindShip, world.KindAsteroid, shipHitAsteroid)
	t.On(world.KindShip, world.KindMineral, shipCollectsMineral)
	t.On(world.KindShip, world.KindAlien, shipHitAlien)
	t.On(world.KindShip, world.KindBoss, shipHitBoss)
	t.On(world.KindShip, world.KindBase, shipHitBase)

	t.On(world.KindBase, world.KindAsteroid, baseHitByAsteroid)
	t.On(world.KindBase, world.KindAlien, baseHitByAlien)
	t.On(world.KindBase, world.KindMineral, baseCollectsMineral)

	t.On(world.KindAlien, world.KindAsteroid, alienHitAsteroid)
	t.On(world.KindAlien, world.KindMineral, alienEatsMineral)

	t.On(world.KindHarvester, world.KindMineral, harvesterCollectsMineral)
	t.On(world.KindHarvester, world.KindAsteroid, harvesterWrecked)
	t.On(world.KindHarvester, world.KindAlien, harvesterWrecked)
	t.On(world.KindHarvester, world.KindBoss, harvesterWrecked)
	t.On(world.KindHarvester, world.KindBase, harvesterHitBase)
	return t
}

// playerBullet resolves r as a live bullet fired by a player or turret.
func playerBullet(w *world.State, r world.Ref) (*world.Bullet, bool) {
	b, ok := w.Bullet(r)
	if !ok || b.Owner == world.AIOwner {
		return nil, false
	}
	return b, true
}

// penalize charges the owner of base an energy penalty.
func penalize(w *world.State, base *world.Base, amount int) {
	if p := w.Roster.Get(base.Owner); p != nil {
		w.EnergyUpdate(p, amount)
	}
}

func asteroidHitByBullet(w *world.State, subject, other world.Ref) bool {
	if _, ok := w.Asteroid(subject); !ok {
		return false
	}
	if _, ok := w.Bullet(other); !ok {
		return false
	}
	w.ReleaseBullet(other)
	return w.BreakApart(subject.ID, true)
}

func alienHitByBullet(w *world.State, subject, other world.Ref) bool {
	if _, ok := w.Alien(subject); !ok {
		return false
	}
	if _, ok := playerBullet(w, other); !ok {
		return false
	}
	w.ReleaseBullet(other)
	return w.KillAlien(subject.ID, true)
}

func bossHitByBullet(w *world.State, subject, other world.Ref) bool {
	if _, ok := w.Boss(subject); !ok {
		return false
	}
	if _, ok := playerBullet(w, other); !ok {
		return false
	}
	w.ReleaseBullet(other)
	return w.DamageBoss(subject.ID, 1)
}

func shipHitByBullet(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	b, ok := w.Bullet(other)
	if !ok || b.Owner == p.Number {
		return false
	}
	w.ReleaseBullet(other)
	w.PlayerDied(p)
	return true
}

func baseHitByBullet(w *world.State, subject, other world.Ref) bool {
	base, ok := w.Base(subject)
	if !ok {
		return false
	}
	b, ok := w.Bullet(other)
	if !ok || b.Owner == base.Owner {
		return false
	}
	w.ReleaseBullet(other)
	penalize(w, base, w.Cfg.Game.BaseHitByBulletPenalty)
	return true
}

func harvesterHitByBullet(w *world.State, subject, other world.Ref) bool {
	h, ok := w.Harvester(subject)
	if !ok {
		return false
	}
	b, ok := w.Bullet(other)
	if !ok || b.Owner == h.Owner {
		return false
	}
	w.ReleaseBullet(other)
	return w.HarvesterDied(subject.ID)
}

func shipHitAsteroid(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	if _, ok := w.Asteroid(other); !ok {
		return false
	}
	w.BreakApart(other.ID, true)
	w.PlayerDied(p)
	return true
}

func shipCollectsMineral(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	return w.CollectMineral(p, other.ID, true, false)
}

func shipHitAlien(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	if _, ok := w.Alien(other); !ok {
		return false
	}
	w.KillAlien(other.ID, false)
	w.PlayerDied(p)
	return true
}

func shipHitBoss(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	if _, ok := w.Boss(other); !ok {
		return false
	}
	w.PlayerDied(p)
	return true
}

func shipHitBase(w *world.State, subject, other world.Ref) bool {
	p, ok := w.Ship(subject)
	if !ok {
		return false
	}
	base, ok := w.Base(other)
	if !ok || base.Owner == p.Number {
		return false
	}
	w.PlayerDied(p)
	penalize(w, base, w.Cfg.Game.BaseHitByPlayerPenalty)
	return true
}

func baseHitByAsteroid(w *world.State, subject, other world.Ref) bool {
	base, ok := w.Base(subject)
	if !ok {
		return false
	}
	if !w.BreakApart(other.ID, false) {
		return false
	}
	penalize(w, base, w.Cfg.Game.BaseHitByAsteroidPenalty)
	return true
}

func baseHitByAlien(w *world.State, subject, other world.Ref) bool {
	base, ok := w.Base(subject)
	if !ok {
		return false
	}
	if !w.KillAlien(other.ID, false) {
		return false
	}
	penalize(w, base, w.Cfg.Game.BaseHitByAlienPenalty)
	return true
}

func baseCollectsMineral(w *world.State, subject, other world.Ref) bool {
	base, ok := w.Base(subject)
	if !ok {
		return false
	}
	return w.CollectMineral(w.Roster.Get(base.Owner), other.ID, true, true)
}

// alienHitAsteroid smashes the asteroid. Invulnerable variants fly on.
func alienHitAsteroid(w *world.State, subject, other world.Ref) bool {
	a, ok := w.Alien(subject)
	if !ok {
		return false
	}
	if !w.BreakApart(other.ID, false) {
		return false
	}
	if a.Variant.Vulnerable {
		w.KillAlien(subject.ID, false)
	}
	return true
}

func alienEatsMineral(w *world.State, subject, other world.Ref) bool {
	if _, ok := w.Alien(subject); !ok {
		return false
	}
	return w.MineralDone(other.ID)
}

func harvesterCollectsMineral(w *world.State, subject, other world.Ref) bool {
	h, ok := w.Harvester(subject)
	if !ok {
		return false
	}
	return w.CollectMineral(w.Roster.Get(h.Owner), other.ID, false, false)
}

// harvesterWrecked covers every hazard that simply destroys a harvester.
func harvesterWrecked(w *world.State, subject, other world.Ref) bool {
	if _, ok := w.Harvester(subject); !ok {
		return false
	}
	var live bool
	switch other.Kind {
	case world.KindAsteroid:
		_, live = w.Asteroid(other)
	case world.KindAlien:
		_, live = w.Alien(other)
	case world.KindBoss:
		_, live = w.Boss(other)
	}
	if !live {
		return false
	}
	return w.HarvesterDied(subject.ID)
}

func harvesterHitBase(w *world.State, subject, other world.Ref) bool {
	h, ok := w.Harvester(subject)
	if !ok {
		return false
	}
	base, ok := w.Base(other)
	if !ok || base.Owner == h.Owner {
		return false
	}
	w.HarvesterDied(subject.ID)
	penalize(w, base, w.Cfg.Game.BaseHitByPlayerPenalty)
	return true
}
