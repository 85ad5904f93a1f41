package ecs

// EntityID encodes a 32-bit index in the lower bits and a 32-bit generation
// in the upper bits. Generation increments on release to invalidate stale refs.
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// Pool is a fixed-capacity arena of pre-allocated T slots with generational
// handles and a free list. Acquire fails once every slot is in use; nothing is
// allocated after construction.
type Pool[T any] struct {
	slots       []T
	generations []uint32
	active      []bool
	freeList    []uint32
	count       int
}

// NewPool pre-allocates capacity slots. Generations start at 1 so the zero
// EntityID never names a live slot.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{
		slots:       make([]T, capacity),
		generations: make([]uint32, capacity),
		active:      make([]bool, capacity),
		freeList:    make([]uint32, 0, capacity),
	}
	for i := capacity - 1; i >= 0; i-- {
		p.generations[i] = 1
		p.freeList = append(p.freeList, uint32(i))
	}
	return p
}

// Acquire takes a free slot, zeroes it and returns its handle. ok is false
// when the pool is exhausted.
func (p *Pool[T]) Acquire() (EntityID, *T, bool) {
	if len(p.freeList) == 0 {
		return 0, nil, false
	}
	idx := p.freeList[len(p.freeList)-1]
	p.freeList = p.freeList[:len(p.freeList)-1]
	var zero T
	p.slots[idx] = zero
	p.active[idx] = true
	p.count++
	return NewEntityID(idx, p.generations[idx]), &p.slots[idx], true
}

// Release returns the slot to the free list. Releasing a stale or already
// released handle is a no-op and reports false.
func (p *Pool[T]) Release(id EntityID) bool {
	if !p.Alive(id) {
		return false
	}
	idx := id.Index()
	p.active[idx] = false
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
	p.count--
	return true
}

func (p *Pool[T]) Alive(id EntityID) bool {
	idx := id.Index()
	if int(idx) >= len(p.slots) {
		return false
	}
	return p.active[idx] && p.generations[idx] == id.Generation()
}

// Get resolves a handle. Stale handles return false.
func (p *Pool[T]) Get(id EntityID) (*T, bool) {
	if !p.Alive(id) {
		return nil, false
	}
	return &p.slots[id.Index()], true
}

func (p *Pool[T]) CountActive() int { return p.count }
func (p *Pool[T]) Cap() int         { return len(p.slots) }

// Each visits active slots in index order. Slots released during the walk
// are skipped; slots acquired during the walk may or may not be visited.
func (p *Pool[T]) Each(fn func(id EntityID, v *T)) {
	for i := range p.slots {
		if !p.active[i] {
			continue
		}
		fn(NewEntityID(uint32(i), p.generations[i]), &p.slots[i])
	}
}

// ReleaseAll empties the pool, invalidating every outstanding handle.
func (p *Pool[T]) ReleaseAll() {
	for i := range p.slots {
		if p.active[i] {
			p.Release(NewEntityID(uint32(i), p.generations[i]))
		}
	}
}
