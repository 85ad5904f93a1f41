package data

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// MineralTier is one resource value class. Chance is the tier's share of
// spawns (0.0-1.0).
type MineralTier struct {
	Name   string  `yaml:"name"`
	Frame  int     `yaml:"frame"`
	Value  int     `yaml:"value"`
	Chance float64 `yaml:"chance"`
}

type mineralListFile struct {
	Tiers []MineralTier `yaml:"tiers"`
}

// MineralTable holds tiers from most to least common with cumulative bounds.
type MineralTable struct {
	tiers      []MineralTier
	cumulative []float64
}

func newMineralTable(tiers []MineralTier) (*MineralTable, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("no mineral tiers")
	}
	t := &MineralTable{tiers: tiers, cumulative: make([]float64, len(tiers))}
	sum := 0.0
	for i, tier := range tiers {
		if tier.Chance <= 0 || tier.Value <= 0 {
			return nil, fmt.Errorf("tier %q: chance and value must be positive", tier.Name)
		}
		sum += tier.Chance
		t.cumulative[i] = sum
	}
	if math.Abs(sum-1) > 1e-6 {
		return nil, fmt.Errorf("tier chances sum to %v, want 1", sum)
	}
	t.cumulative[len(t.cumulative)-1] = 1
	return t, nil
}

// Pick maps a roll in [0,1) onto a tier using the cumulative table.
func (t *MineralTable) Pick(roll float64) MineralTier {
	for i, c := range t.cumulative {
		if roll < c {
			return t.tiers[i]
		}
	}
	return t.tiers[len(t.tiers)-1]
}

// Tiers returns the table in file order.
func (t *MineralTable) Tiers() []MineralTier {
	return t.tiers
}

// Count returns the number of tiers.
func (t *MineralTable) Count() int {
	return len(t.tiers)
}

// LoadMineralTable loads mineral tiers from a YAML file.
func LoadMineralTable(path string) (*MineralTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mineral_list: %w", err)
	}
	var f mineralListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse mineral_list: %w", err)
	}
	t, err := newMineralTable(f.Tiers)
	if err != nil {
		return nil, fmt.Errorf("mineral_list: %w", err)
	}
	return t, nil
}

func DefaultMineralTable() *MineralTable {
	t, _ := newMineralTable([]MineralTier{
		{Name: "copper", Frame: 0, Value: 100, Chance: 0.40},
		{Name: "silver", Frame: 1, Value: 250, Chance: 0.30},
		{Name: "gold", Frame: 2, Value: 500, Chance: 0.20},
		{Name: "crystal", Frame: 3, Value: 1000, Chance: 0.10},
	})
	return t
}
