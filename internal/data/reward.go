package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	RewardTurret    = "turret"
	RewardHarvester = "harvester"
)

type levelRewardEntry struct {
	Level  int    `yaml:"level"`
	Reward string `yaml:"reward"`
}

type levelRewardFile struct {
	Rewards []levelRewardEntry `yaml:"rewards"`
	// Default applies to levels not listed.
	Default string `yaml:"default"`
}

// LevelRewardTable maps a level number to the reward granted on reaching it.
type LevelRewardTable struct {
	rewards map[int]string
	def     string
}

// Get returns the reward for a level, falling back to the table default.
func (t *LevelRewardTable) Get(level int) string {
	if r, ok := t.rewards[level]; ok {
		return r
	}
	return t.def
}

func (t *LevelRewardTable) Count() int {
	return len(t.rewards)
}

func validReward(r string) bool {
	return r == RewardTurret || r == RewardHarvester
}

// LoadLevelRewardTable loads the level reward schedule from a YAML file.
func LoadLevelRewardTable(path string) (*LevelRewardTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level_rewards: %w", err)
	}
	var f levelRewardFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse level_rewards: %w", err)
	}
	t := &LevelRewardTable{rewards: make(map[int]string, len(f.Rewards)), def: RewardHarvester}
	if f.Default != "" {
		if !validReward(f.Default) {
			return nil, fmt.Errorf("level_rewards: unknown default reward %q", f.Default)
		}
		t.def = f.Default
	}
	for _, e := range f.Rewards {
		if !validReward(e.Reward) {
			return nil, fmt.Errorf("level_rewards: level %d: unknown reward %q", e.Level, e.Reward)
		}
		t.rewards[e.Level] = e.Reward
	}
	return t, nil
}

// DefaultLevelRewardTable alternates turret and harvester for the first
// eight levels.
func DefaultLevelRewardTable() *LevelRewardTable {
	t := &LevelRewardTable{rewards: make(map[int]string, 8), def: RewardHarvester}
	for lvl := 1; lvl <= 8; lvl++ {
		if lvl%2 == 1 {
			t.rewards[lvl] = RewardTurret
		} else {
			t.rewards[lvl] = RewardHarvester
		}
	}
	return t
}
