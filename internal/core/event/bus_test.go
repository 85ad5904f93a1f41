package event

import "testing"

func TestBusDeliversNextTick(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e PlayerDied) { got = append(got, e.Player) })

	Emit(b, PlayerDied{Player: 2})
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatalf("event delivered in the tick it was emitted: %v", got)
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("after swap got %v, want [2]", got)
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Errorf("event delivered twice: %v", got)
	}
}

func TestBusOrdering(t *testing.T) {
	b := NewBus()
	var trace []string
	Subscribe(b, func(WaveStarted) { trace = append(trace, "wave") })
	Subscribe(b, func(BossPhaseChanged) { trace = append(trace, "boss") })

	Emit(b, BossPhaseChanged{From: "dormant", To: "entering"})
	Emit(b, WaveStarted{Wave: 5, Boss: true})
	Emit(b, WaveStarted{Wave: 6})
	if n := Pending[WaveStarted](b); n != 2 {
		t.Errorf("Pending[WaveStarted] = %d, want 2", n)
	}

	b.SwapBuffers()
	b.DispatchAll()
	want := []string{"wave", "wave", "boss"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %s, want %s", i, trace[i], want[i])
		}
	}
}

func TestBusNoHandler(t *testing.T) {
	b := NewBus()
	Emit(b, DebrisBurst{})
	b.SwapBuffers()
	b.DispatchAll()
}
