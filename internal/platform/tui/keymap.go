package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// holdMS is how long a key counts as held after its last key message.
// Terminals send no key-up, so a release is synthesized once the window
// passes without an auto-repeat refreshing it.
const holdMS = 200

var keyNames = map[string]core.Key{
	"up":    core.KeyUp,
	"down":  core.KeyDown,
	"left":  core.KeyLeft,
	"right": core.KeyRight,
	" ":     core.KeySpace,
	"space": core.KeySpace,
	"enter": core.KeyEnter,
	"esc":   core.KeyEscape,
	"w":     core.KeyW,
	"a":     core.KeyA,
	"s":     core.KeyS,
	"d":     core.KeyD,
	"p":     core.KeyP,
	"r":     core.KeyR,
	"f":     core.KeyF,
	"q":     core.KeyQ,
}

// KeyMapper translates Bubble Tea messages to core events and tracks held
// keys so it can emit releases.
type KeyMapper struct {
	hold int
	held map[core.Key]int // Ticks left before release
}

// NewKeyMapper creates a mapper for the given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	return &KeyMapper{
		hold: core.TicksMS(holdMS, tickRate),
		held: make(map[core.Key]int),
	}
}

// Lookup maps a key message to a core key.
func Lookup(msg tea.KeyMsg) (core.Key, bool) {
	k, ok := keyNames[strings.ToLower(msg.String())]
	return k, ok
}

// Press maps msg to a key-down event and (re)starts its hold window.
func (km *KeyMapper) Press(msg tea.KeyMsg) (core.Event, bool) {
	k, ok := Lookup(msg)
	if !ok {
		return core.Event{}, false
	}
	km.held[k] = km.hold
	return core.Press(k), true
}

// Expire advances every hold window by one tick and returns a release for
// each key whose window ran out.
func (km *KeyMapper) Expire() []core.Event {
	var out []core.Event
	for k, left := range km.held {
		left--
		if left > 0 {
			km.held[k] = left
			continue
		}
		delete(km.held, k)
		out = append(out, core.Release(k))
	}
	return out
}

// Held reports whether k is inside its hold window.
func (km *KeyMapper) Held(k core.Key) bool {
	_, ok := km.held[k]
	return ok
}

// Mouse maps a button press to a click at the logical position of the cell.
func Mouse(msg tea.MouseMsg, scr *core.Screen) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Event{}, false
	}
	var b core.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = core.MouseLeft
	case tea.MouseButtonMiddle:
		b = core.MouseMiddle
	case tea.MouseButtonRight:
		b = core.MouseRight
	default:
		return core.Event{}, false
	}
	p := scr.ToLogical(msg.X, msg.Y)
	return core.Click(b, p.X, p.Y), true
}
