package input

import (
	"fmt"
	"strings"

	"github.com/golangdaddy/desertbus/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Action is a logical control the driver can hold down
type Action string

const (
	Left  Action = "left"
	Right Action = "right"
	Up    Action = "up"
)

// Actions lists every action the game polls
var Actions = []Action{Left, Right, Up}

// Bindings maps each action to the physical keys that trigger it
type Bindings map[Action][]ebiten.Key

// DefaultBindings binds the arrow keys with WASD as alternates
func DefaultBindings() Bindings {
	return Bindings{
		Up:    {ebiten.KeyArrowUp, ebiten.KeyW},
		Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: {ebiten.KeyArrowRight, ebiten.KeyD},
	}
}

// Names returns the bindings as key names, the form used in config files
func (b Bindings) Names() map[string][]string {
	names := make(map[string][]string, len(b))
	for action, keys := range b {
		for _, k := range keys {
			names[string(action)] = append(names[string(action)], k.String())
		}
	}
	return names
}

// ParseBindings reads action → key name lists such as {"up": ["ArrowUp", "W"]}.
// Actions that are not mentioned keep their default keys.
func ParseBindings(names map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, keyNames := range names {
		action := Action(strings.ToLower(name))
		if _, ok := b[action]; !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		if len(keyNames) == 0 {
			return nil, fmt.Errorf("action %q has no keys", name)
		}

		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
			keys = append(keys, k)
		}
		b[action] = keys
	}
	return b, nil
}

// Keyboard answers "is this action held" against a set of bindings
type Keyboard struct {
	bindings Bindings
	pressed  func(ebiten.Key) bool
}

// NewKeyboard polls the live keyboard through ebiten
func NewKeyboard(bindings Bindings) *Keyboard {
	return &Keyboard{
		bindings: bindings,
		pressed:  ebiten.IsKeyPressed,
	}
}

// IsDown reports whether any key bound to a is held
func (kb *Keyboard) IsDown(a Action) bool {
	for _, k := range kb.bindings[a] {
		if kb.pressed(k) {
			return true
		}
	}
	return false
}

// Controls snapshots the held actions for this frame
func (kb *Keyboard) Controls() sim.Controls {
	return sim.Controls{
		Accelerate: kb.IsDown(Up),
		SteerLeft:  kb.IsDown(Left),
		SteerRight: kb.IsDown(Right),
	}
}
