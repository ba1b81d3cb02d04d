package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

var keyMap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:     core.KeyUp,
	ebiten.KeyArrowDown:   core.KeyDown,
	ebiten.KeyArrowLeft:   core.KeyLeft,
	ebiten.KeyArrowRight:  core.KeyRight,
	ebiten.KeySpace:       core.KeySpace,
	ebiten.KeyEnter:       core.KeyEnter,
	ebiten.KeyNumpadEnter: core.KeyEnter,
	ebiten.KeyEscape:      core.KeyEscape,
	ebiten.KeyW:           core.KeyW,
	ebiten.KeyA:           core.KeyA,
	ebiten.KeyS:           core.KeyS,
	ebiten.KeyD:           core.KeyD,
	ebiten.KeyP:           core.KeyP,
	ebiten.KeyR:           core.KeyR,
	ebiten.KeyF:           core.KeyF,
	ebiten.KeyQ:           core.KeyQ,
}

var buttonMap = map[ebiten.MouseButton]core.MouseButton{
	ebiten.MouseButtonLeft:   core.MouseLeft,
	ebiten.MouseButtonMiddle: core.MouseMiddle,
	ebiten.MouseButtonRight:  core.MouseRight,
}

// translateKeys maps ebiten keys that went down or up this tick.
func translateKeys(pressed, released []ebiten.Key) []core.Event {
	var events []core.Event
	for _, k := range pressed {
		if ck, ok := keyMap[k]; ok {
			events = append(events, core.Press(ck))
		}
	}
	for _, k := range released {
		if ck, ok := keyMap[k]; ok {
			events = append(events, core.Release(ck))
		}
	}
	return events
}

// Input collects per-tick events from ebiten's input state.
type Input struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// Poll returns key and mouse events since the previous tick. The layout
// is the logical playfield, so cursor positions are already logical pixels.
func (in *Input) Poll() []core.Event {
	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])
	events := translateKeys(in.pressed, in.released)

	for b, cb := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			events = append(events, core.Click(cb, float64(x), float64(y)))
		}
	}
	return events
}
