package system

import "testing"

type probe struct {
	name  string
	phase Phase
	trace *[]string
}

func (p probe) Phase() Phase { return p.phase }
func (p probe) Update(Tick)  { *p.trace = append(*p.trace, p.name) }

func TestRunnerPhaseOrder(t *testing.T) {
	var trace []string
	r := NewRunner()
	r.Register(probe{"collide", PhaseCollision, &trace})
	r.Register(probe{"director", PhaseDirector, &trace})
	r.Register(probe{"input", PhaseInput, &trace})
	r.Register(probe{"update-a", PhaseUpdate, &trace})
	r.Register(probe{"update-b", PhaseUpdate, &trace})

	r.Tick(Tick{Now: 16, Delta: 16})
	want := []string{"input", "director", "update-a", "update-b", "collide"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %s, want %s", i, trace[i], want[i])
		}
	}

	trace = trace[:0]
	r.TickPhase(PhaseUpdate, Tick{})
	if len(trace) != 2 || trace[0] != "update-a" {
		t.Errorf("TickPhase(update) = %v", trace)
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (Tick{Delta: 250}).Seconds(); got != 0.25 {
		t.Errorf("Seconds() = %v, want 0.25", got)
	}
}
