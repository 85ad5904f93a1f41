package collision

import (
	"github.com/spaceharvest/server/internal/world"
)

// Resolver applies the outcome of subject touching other. It returns false
// when nothing happened, e.g. one side was already retired or the pair is
// immune (own bullet, own base).
type Resolver func(w *world.State, subject, other world.Ref) bool

type pair struct {
	a, b world.Kind
}

// Table maps unordered kind pairs to resolvers. Built once at startup and
// read-only afterwards.
type Table struct {
	rules map[pair]Resolver
}

func NewTable() *Table {
	return &Table{rules: make(map[pair]Resolver)}
}

// On registers fn for subject kind a touching kind b. Registering the same
// ordered pair twice replaces the earlier resolver.
func (t *Table) On(a, b world.Kind, fn Resolver) {
	t.rules[pair{a, b}] = fn
}

// Has reports whether either ordering of the pair has a rule.
func (t *Table) Has(a, b world.Kind) bool {
	if _, ok := t.rules[pair{a, b}]; ok {
		return true
	}
	_, ok := t.rules[pair{b, a}]
	return ok
}

// Resolve dispatches an overlap. When only the reverse ordering is
// registered the arguments are swapped so the resolver always sees
// (subject, other) in the order it was registered with.
func (t *Table) Resolve(w *world.State, x, y world.Ref) bool {
	if fn, ok := t.rules[pair{x.Kind, y.Kind}]; ok {
		return fn(w, x, y)
	}
	if fn, ok := t.rules[pair{y.Kind, x.Kind}]; ok {
		return fn(w, y, x)
	}
	return false
}

// Len returns the number of registered ordered pairs.
func (t *Table) Len() int {
	return len(t.rules)
}
