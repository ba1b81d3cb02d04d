// Package state defines the screen contract shared by the menu and every
// game, and the manager that owns the single active screen.
package state

import "github.com/vovakirdan/retro-arcade/internal/core"

// State is a screen driven by the main loop: the menu or one game.
type State interface {
	// HandleInput consumes one input event. It must not block or render.
	HandleInput(ev core.Event)

	// Update advances the state by one fixed tick.
	Update()

	// Draw renders the current state. It has no logic side effects.
	Draw(dst core.Surface)

	// Reset reinitializes every mutable field to a fresh start.
	Reset()

	// Active reports whether the state is the manager's current state.
	Active() bool

	// SetActive is called by the Manager on transitions.
	SetActive(active bool)
}

// Base carries the active flag. Embed it to satisfy Active and SetActive.
type Base struct {
	active bool
}

// Active reports whether the state is current.
func (b *Base) Active() bool {
	return b.active
}

// SetActive sets the active flag.
func (b *Base) SetActive(active bool) {
	b.active = active
}
