package game

import (
	"fmt"

	"github.com/spaceharvest/server/internal/world"
)

// DeviceKind identifies where a join request came from.
type DeviceKind uint8

const (
	DeviceKeyboard DeviceKind = iota // always player 0
	DeviceGamepad                    // Index is the pad number and player slot
	DeviceAIToggle                   // Index is the slot to fill with an AI player
)

func (k DeviceKind) String() string {
	switch k {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceGamepad:
		return "gamepad"
	case DeviceAIToggle:
		return "ai"
	}
	return "unknown"
}

// Device is the identity of an input source asking to join.
type Device struct {
	Kind  DeviceKind
	Index int
}

func Keyboard() Device         { return Device{Kind: DeviceKeyboard} }
func Gamepad(n int) Device     { return Device{Kind: DeviceGamepad, Index: n} }
func AIToggle(slot int) Device { return Device{Kind: DeviceAIToggle, Index: slot} }

// Slot maps the device onto a player slot.
func (d Device) Slot() (int, error) {
	switch d.Kind {
	case DeviceKeyboard:
		return 0, nil
	case DeviceGamepad, DeviceAIToggle:
		if d.Index < 0 || d.Index >= world.MaxPlayers {
			return 0, fmt.Errorf("%s %d: %w", d.Kind, d.Index, world.ErrInvalidSlot)
		}
		return d.Index, nil
	}
	return 0, fmt.Errorf("device kind %d: %w", d.Kind, ErrUnknownDevice)
}

// AI reports whether the device joins a computer-controlled player.
func (d Device) AI() bool { return d.Kind == DeviceAIToggle }
