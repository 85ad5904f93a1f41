package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TurretMount is a turret slot relative to the base centre. Angle is the
// resting heading in degrees; the firing arc is centred on it.
type TurretMount struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

type turretMountFile struct {
	Mounts []TurretMount `yaml:"mounts"`
}

type MountTable struct {
	mounts []TurretMount
}

// All returns a copy of the mounts so callers can shuffle it.
func (t *MountTable) All() []TurretMount {
	out := make([]TurretMount, len(t.mounts))
	copy(out, t.mounts)
	return out
}

func (t *MountTable) Count() int {
	return len(t.mounts)
}

// LoadMountTable loads base turret mount positions from a YAML file.
func LoadMountTable(path string) (*MountTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read turret_mounts: %w", err)
	}
	var f turretMountFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse turret_mounts: %w", err)
	}
	return &MountTable{mounts: f.Mounts}, nil
}

// DefaultMountTable places four turrets at the corners of the base, each
// facing outward.
func DefaultMountTable() *MountTable {
	return &MountTable{mounts: []TurretMount{
		{X: -32, Y: -32, Angle: -135},
		{X: 32, Y: -32, Angle: -45},
		{X: 32, Y: 32, Angle: 45},
		{X: -32, Y: 32, Angle: 135},
	}}
}
