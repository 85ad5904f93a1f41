package ecs

import "testing"

type rock struct {
	hp int
}

func TestPoolAcquireUntilExhausted(t *testing.T) {
	p := NewPool[rock](3)
	for i := 0; i < 3; i++ {
		if _, _, ok := p.Acquire(); !ok {
			t.Fatalf("Acquire() #%d failed", i)
		}
	}
	if _, v, ok := p.Acquire(); ok || v != nil {
		t.Fatalf("Acquire() on full pool = (%v, %v), want (nil, false)", v, ok)
	}
	if got := p.CountActive(); got != 3 {
		t.Errorf("CountActive() = %d, want 3", got)
	}
}

func TestPoolReleaseInvalidatesHandle(t *testing.T) {
	p := NewPool[rock](1)
	id, v, _ := p.Acquire()
	v.hp = 5

	if !p.Release(id) {
		t.Fatal("first Release() = false")
	}
	if p.Release(id) {
		t.Error("second Release() = true, want false")
	}
	if _, ok := p.Get(id); ok {
		t.Error("Get() on released handle succeeded")
	}

	id2, v2, ok := p.Acquire()
	if !ok {
		t.Fatal("Acquire() after release failed")
	}
	if id2.Index() != id.Index() || id2 == id {
		t.Errorf("reused slot id = %v, old = %v", id2, id)
	}
	if v2.hp != 0 {
		t.Errorf("reacquired slot not zeroed: hp = %d", v2.hp)
	}
	if p.Release(id) {
		t.Error("stale handle released the new occupant")
	}
	if !p.Alive(id2) {
		t.Error("new occupant not alive")
	}
}

func TestPoolZeroIDNeverAlive(t *testing.T) {
	p := NewPool[rock](2)
	p.Acquire()
	if p.Alive(0) {
		t.Error("zero EntityID reported alive")
	}
}

func TestPoolEach(t *testing.T) {
	p := NewPool[rock](4)
	var ids []EntityID
	for i := 0; i < 4; i++ {
		id, v, _ := p.Acquire()
		v.hp = i
		ids = append(ids, id)
	}
	p.Release(ids[1])

	seen := 0
	p.Each(func(id EntityID, v *rock) {
		seen++
		if id == ids[2] {
			p.Release(ids[3])
		}
	})
	if seen != 2 {
		t.Errorf("Each visited %d, want 2", seen)
	}
	if p.CountActive() != 2 {
		t.Errorf("CountActive() = %d, want 2", p.CountActive())
	}

	p.ReleaseAll()
	if p.CountActive() != 0 {
		t.Errorf("after ReleaseAll CountActive() = %d", p.CountActive())
	}
}
