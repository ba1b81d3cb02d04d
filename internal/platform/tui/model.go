package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/app"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/logging"
)

// Model is the Bubble Tea model that drives one Arcade.
type Model struct {
	arcade  *app.Arcade
	screen  *core.Screen
	painter *Painter
	keys    *KeyMapper
	rate    int
	pending []core.Event
	done    bool
}

// NewModel creates a model rendering into a width x height terminal.
func NewModel(a *app.Arcade, width, height int, painter *Painter) *Model {
	if painter == nil {
		painter = NewPainter(nil)
	}
	rate := a.Env.Runtime.Rate()
	return &Model{
		arcade:  a,
		screen:  core.NewScreen(width, height),
		painter: painter,
		keys:    NewKeyMapper(rate),
		rate:    rate,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.rate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.done = true
			return m, tea.Quit
		case "ctrl+s":
			m.saveScreenshot()
			return m, nil
		}
		if ev, ok := m.keys.Press(msg); ok {
			m.pending = append(m.pending, ev)
		}

	case tea.MouseMsg:
		if ev, ok := Mouse(msg, m.screen); ok {
			m.pending = append(m.pending, ev)
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case TickMsg:
		return m.tick()
	}
	return m, nil
}

// tick feeds queued input and synthesized releases to the arcade and
// advances it once.
func (m *Model) tick() (tea.Model, tea.Cmd) {
	events := append(m.keys.Expire(), m.pending...)
	m.pending = m.pending[:0]

	m.arcade.Step(events, nil)
	if m.arcade.Done() {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.rate)
}

// View renders the current state.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	m.arcade.Manager.Draw(m.screen)
	return m.painter.Render(m.screen)
}

// saveScreenshot writes the plain-text frame under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logging.With("tui").Warn("cannot create screenshot directory", "error", err)
		return
	}
	m.arcade.Manager.Draw(m.screen)
	name := fmt.Sprintf("arcade_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		logging.With("tui").Warn("cannot save screenshot", "error", err)
	}
}

// Run drives a in the local terminal until the player quits. Logs go to
// logFile while the alternate screen is active.
func Run(a *app.Arcade, width, height int, logFile string) error {
	if logFile != "" {
		closer, err := logging.ToFile(logFile)
		if err == nil {
			defer closer.Close()
		}
	}

	p := tea.NewProgram(
		NewModel(a, width, height, nil),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
