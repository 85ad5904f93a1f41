package data

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// AlienVariant is one roaming hostile type. Speeds are pixels/s, intervals ms.
type AlienVariant struct {
	Name         string  `yaml:"name"`
	Frame        int     `yaml:"frame"`
	Weight       int     `yaml:"weight"`
	Speed        float64 `yaml:"speed"`
	Vulnerable   bool    `yaml:"vulnerable"` // an asteroid crash destroys it
	Shoots       bool    `yaml:"shoots"`
	ShootMinMs   float64 `yaml:"shoot_min_ms"`
	ShootMaxMs   float64 `yaml:"shoot_max_ms"`
	TargetChance float64 `yaml:"target_chance"`
}

type alienListFile struct {
	Aliens []AlienVariant `yaml:"aliens"`
}

// AlienTable holds alien variants in file order with their spawn weights.
type AlienTable struct {
	variants []AlienVariant
	byName   map[string]int
	total    int
}

func newAlienTable(variants []AlienVariant) (*AlienTable, error) {
	t := &AlienTable{byName: make(map[string]int, len(variants))}
	for _, v := range variants {
		if v.Weight <= 0 {
			return nil, fmt.Errorf("alien %q: weight must be positive", v.Name)
		}
		if v.Shoots && v.ShootMinMs > v.ShootMaxMs {
			return nil, fmt.Errorf("alien %q: shoot_min_ms > shoot_max_ms", v.Name)
		}
		t.byName[v.Name] = len(t.variants)
		t.variants = append(t.variants, v)
		t.total += v.Weight
	}
	if len(t.variants) == 0 {
		return nil, fmt.Errorf("no alien variants")
	}
	return t, nil
}

// Get returns the variant with the given name.
func (t *AlienTable) Get(name string) (AlienVariant, bool) {
	i, ok := t.byName[name]
	if !ok {
		return AlienVariant{}, false
	}
	return t.variants[i], true
}

// Count returns the number of variants.
func (t *AlienTable) Count() int {
	return len(t.variants)
}

// Pick draws a variant by weight.
func (t *AlienTable) Pick(rng *rand.Rand) AlienVariant {
	n := rng.Intn(t.total)
	for _, v := range t.variants {
		if n < v.Weight {
			return v
		}
		n -= v.Weight
	}
	return t.variants[len(t.variants)-1]
}

// LoadAlienTable loads alien variants from a YAML file.
func LoadAlienTable(path string) (*AlienTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alien_list: %w", err)
	}
	var f alienListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse alien_list: %w", err)
	}
	t, err := newAlienTable(f.Aliens)
	if err != nil {
		return nil, fmt.Errorf("alien_list: %w", err)
	}
	return t, nil
}

// DefaultAlienTable is the stock satellite/probe/eye set.
func DefaultAlienTable() *AlienTable {
	t, _ := newAlienTable([]AlienVariant{
		{Name: "satellite", Frame: 0, Weight: 50, Speed: 100, Vulnerable: true},
		{Name: "probe", Frame: 1, Weight: 30, Speed: 150, Vulnerable: true, Shoots: true, ShootMinMs: 1500, ShootMaxMs: 4000, TargetChance: 0.25},
		{Name: "eye", Frame: 2, Weight: 20, Speed: 75, Shoots: true, ShootMinMs: 1000, ShootMaxMs: 3000, TargetChance: 0.6},
	})
	return t
}
