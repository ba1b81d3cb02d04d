package state

import "github.com/vovakirdan/retro-arcade/internal/core"

// Manager owns the single current State and dispatches the loop to it.
// It holds no game rules. It is not safe for concurrent use; one loop
// goroutine drives it.
type Manager struct {
	current  State
	home     State
	quitting bool

	// OnSwitch, when set, is called after every transition.
	OnSwitch func(s State)
}

// NewManager creates a manager with no active state.
func NewManager() *Manager {
	return &Manager{}
}

// SetState resets s, marks it active and makes it the dispatch target.
// The previous state, if different, is marked inactive.
func (m *Manager) SetState(s State) {
	if s == nil {
		return
	}
	if m.current != nil && m.current != s {
		m.current.SetActive(false)
	}
	s.Reset()
	s.SetActive(true)
	m.current = s
	if m.OnSwitch != nil {
		m.OnSwitch(s)
	}
}

// Current returns the active state, or nil before the first SetState.
func (m *Manager) Current() State {
	return m.current
}

// SetHome records the state Home returns to, usually the menu.
func (m *Manager) SetHome(s State) {
	m.home = s
}

// Home switches to the home state. Without one it is a no-op.
func (m *Manager) Home() {
	if m.home != nil {
		m.SetState(m.home)
	}
}

// Quit asks the platform loop to stop after the current tick.
func (m *Manager) Quit() {
	m.quitting = true
}

// Quitting reports whether Quit was called.
func (m *Manager) Quitting() bool {
	return m.quitting
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(ev core.Event) {
	if m.current != nil {
		m.current.HandleInput(ev)
	}
}

// Update advances the current state by one tick.
func (m *Manager) Update() {
	if m.current != nil {
		m.current.Update()
	}
}

// Draw renders the current state.
func (m *Manager) Draw(dst core.Surface) {
	if m.current != nil {
		m.current.Draw(dst)
	}
}

// Tick runs one loop iteration: drain events, update, draw.
func (m *Manager) Tick(events []core.Event, dst core.Surface) {
	for _, ev := range events {
		m.HandleInput(ev)
	}
	m.Update()
	if dst != nil {
		m.Draw(dst)
	}
}
