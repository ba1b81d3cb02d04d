package core

// Key is a physical key abstracted from the platform's key codes.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyR
	KeyF
	KeyQ
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyP:
		return "P"
	case KeyR:
		return "R"
	case KeyF:
		return "F"
	case KeyQ:
		return "Q"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes input event types.
type EventKind int

const (
	KeyPressed EventKind = iota
	KeyReleased
	MouseClicked
)

// MouseButton identifies the clicked button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// Event is one input event delivered to the active state.
type Event struct {
	Kind   EventKind
	Key    Key         // for KeyPressed and KeyReleased
	Button MouseButton // for MouseClicked
	Pos    Vec         // logical pixel position for MouseClicked
}

// Press builds a key-down event.
func Press(k Key) Event {
	return Event{Kind: KeyPressed, Key: k}
}

// Release builds a key-up event.
func Release(k Key) Event {
	return Event{Kind: KeyReleased, Key: k}
}

// Click builds a mouse-button-down event at a logical pixel position.
func Click(b MouseButton, x, y float64) Event {
	return Event{Kind: MouseClicked, Button: b, Pos: Vec{x, y}}
}

// Pressed reports whether e is a key-down event for any of keys.
func (e Event) Pressed(keys ...Key) bool {
	if e.Kind != KeyPressed {
		return false
	}
	for _, k := range keys {
		if e.Key == k {
			return true
		}
	}
	return false
}

// KeyState tracks which keys are currently held, built from press and
// release events. Games use it for continuous movement.
type KeyState struct {
	held map[Key]bool
}

// NewKeyState creates an empty key state.
func NewKeyState() KeyState {
	return KeyState{held: make(map[Key]bool)}
}

// Apply updates the held set from an event. Other event kinds are ignored.
func (s *KeyState) Apply(e Event) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	switch e.Kind {
	case KeyPressed:
		s.held[e.Key] = true
	case KeyReleased:
		delete(s.held, e.Key)
	}
}

// Down returns true if any of the given keys is held.
func (s KeyState) Down(keys ...Key) bool {
	for _, k := range keys {
		if s.held[k] {
			return true
		}
	}
	return false
}

// Clear releases every key.
func (s *KeyState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Axis returns -1, 0 or 1 from a pair of opposing key groups.
func (s KeyState) Axis(neg, pos []Key) int {
	v := 0
	if s.Down(neg...) {
		v--
	}
	if s.Down(pos...) {
		v++
	}
	return v
}

// Key groups shared by the games.
var (
	LeftKeys  = []Key{KeyLeft, KeyA}
	RightKeys = []Key{KeyRight, KeyD}
	UpKeys    = []Key{KeyUp, KeyW}
	DownKeys  = []Key{KeyDown, KeyS}
)

// IsRestart reports whether e asks to restart a finished game.
func IsRestart(e Event) bool {
	return e.Pressed(KeySpace, KeyEnter, KeyR)
}
