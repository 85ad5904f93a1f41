package collision

import (
	"github.com/spaceharvest/server/internal/core/ecs"
	"github.com/spaceharvest/server/internal/physics"
	"github.com/spaceharvest/server/internal/world"
)

type collider struct {
	ref    world.Ref
	pos    physics.Vec2
	radius float64
}

// Contact is one overlapping pair found by a pass.
type Contact struct {
	A, B world.Ref
}

// Pass finds overlapping colliders with a uniform grid and feeds every pair
// that has a rule through the table. All buffers are reused across ticks.
type Pass struct {
	table     *Table
	grid      *physics.Grid[int]
	colliders []collider
	stamp     []int
	buf       []int
	contacts  []Contact
}

// NewPass sizes the broad-phase grid for the field. margin covers entities
// parked or drifting just outside it.
func NewPass(table *Table, bounds physics.Bounds, margin, cell float64) *Pass {
	return &Pass{
		table: table,
		grid:  physics.NewGrid[int](bounds, margin, cell),
	}
}

// gather snapshots every collidable entity in a fixed order so contact
// order is deterministic for a given world.
func (p *Pass) gather(w *world.State) {
	p.colliders = p.colliders[:0]
	add := func(r world.Ref, b *physics.Body) {
		p.colliders = append(p.colliders, collider{ref: r, pos: b.Pos, radius: b.Radius})
	}
	w.Roster.Each(func(pl *world.Player) {
		if !pl.Dead {
			add(world.ShipRef(pl.Number), &pl.Ship)
		}
	})
	w.Bases.Each(func(id ecs.EntityID, b *world.Base) {
		add(world.EntityRef(world.KindBase, id), &b.Body)
	})
	for owner, pool := range w.Bullets {
		pool.Each(func(id ecs.EntityID, b *world.Bullet) {
			add(world.BulletRef(owner, id), &b.Body)
		})
	}
	w.Asteroids.Each(func(id ecs.EntityID, a *world.Asteroid) {
		add(world.EntityRef(world.KindAsteroid, id), &a.Body)
	})
	w.Minerals.Each(func(id ecs.EntityID, m *world.Mineral) {
		add(world.EntityRef(world.KindMineral, id), &m.Body)
	})
	w.Aliens.Each(func(id ecs.EntityID, a *world.Alien) {
		add(world.EntityRef(world.KindAlien, id), &a.Body)
	})
	w.Bosses.Each(func(id ecs.EntityID, b *world.Boss) {
		add(world.EntityRef(world.KindBoss, id), &b.Body)
	})
	w.Harvesters.Each(func(id ecs.EntityID, h *world.Harvester) {
		if !h.Dead {
			add(world.EntityRef(world.KindHarvester, id), &h.Body)
		}
	})
}

// Detect returns every overlapping pair with a registered rule. The slice
// is owned by the pass and valid until the next call.
func (p *Pass) Detect(w *world.State) []Contact {
	p.gather(w)
	p.grid.Clear()
	for i, c := range p.colliders {
		p.grid.InsertCircle(c.pos, c.radius, i)
	}
	if cap(p.stamp) < len(p.colliders) {
		p.stamp = make([]int, len(p.colliders))
	}
	p.stamp = p.stamp[:len(p.colliders)]
	for i := range p.stamp {
		p.stamp[i] = -1
	}

	p.contacts = p.contacts[:0]
	for i, a := range p.colliders {
		p.buf = p.grid.QueryBuf(a.pos, a.radius, p.buf[:0])
		for _, j := range p.buf {
			if j <= i || p.stamp[j] == i {
				continue
			}
			p.stamp[j] = i
			b := p.colliders[j]
			if !p.table.Has(a.ref.Kind, b.ref.Kind) {
				continue
			}
			r := a.radius + b.radius
			if a.pos.DistSq(b.pos) >= r*r {
				continue
			}
			p.contacts = append(p.contacts, Contact{A: a.ref, B: b.ref})
		}
	}
	return p.contacts
}

// Run detects and resolves one tick of overlaps. It returns how many
// resolutions had an effect.
func (p *Pass) Run(w *world.State) int {
	n := 0
	for _, c := range p.Detect(w) {
		if p.table.Resolve(w, c.A, c.B) {
			n++
		}
	}
	return n
}
