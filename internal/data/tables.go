package data

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// Tables bundles every balancing table the simulation reads.
type Tables struct {
	Aliens   *AlienTable
	Minerals *MineralTable
	Rewards  *LevelRewardTable
	Mounts   *MountTable
}

// DefaultTables returns the built-in tables.
func DefaultTables() *Tables {
	return &Tables{
		Aliens:   DefaultAlienTable(),
		Minerals: DefaultMineralTable(),
		Rewards:  DefaultLevelRewardTable(),
		Mounts:   DefaultMountTable(),
	}
}

// LoadTables reads every table from dir. A missing file keeps the built-in
// table; any other read or parse error is returned.
func LoadTables(dir string, log *zap.Logger) (*Tables, error) {
	t := DefaultTables()

	if err := loadOptional(filepath.Join(dir, "alien_list.yaml"), log, func(p string) error {
		tbl, err := LoadAlienTable(p)
		if err == nil {
			t.Aliens = tbl
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadOptional(filepath.Join(dir, "mineral_list.yaml"), log, func(p string) error {
		tbl, err := LoadMineralTable(p)
		if err == nil {
			t.Minerals = tbl
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadOptional(filepath.Join(dir, "level_rewards.yaml"), log, func(p string) error {
		tbl, err := LoadLevelRewardTable(p)
		if err == nil {
			t.Rewards = tbl
		}
		return err
	}); err != nil {
		return nil, err
	}
	if err := loadOptional(filepath.Join(dir, "turret_mounts.yaml"), log, func(p string) error {
		tbl, err := LoadMountTable(p)
		if err == nil {
			t.Mounts = tbl
		}
		return err
	}); err != nil {
		return nil, err
	}

	log.Info("balancing tables loaded",
		zap.Int("alien_variants", t.Aliens.Count()),
		zap.Int("mineral_tiers", t.Minerals.Count()),
		zap.Int("level_rewards", t.Rewards.Count()),
		zap.Int("turret_mounts", t.Mounts.Count()),
	)
	return t, nil
}

func loadOptional(path string, log *zap.Logger, load func(string) error) error {
	err := load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("table file missing, using built-in", zap.String("file", path))
		return nil
	}
	return err
}
