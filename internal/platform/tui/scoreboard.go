package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const (
	sidebarWidth = 18
	maxRuns      = 100
)

// ScoreboardKeys are the scoreboard bindings.
type ScoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next}, {k.Quit}}
}

func defaultScoreboardKeys() ScoreboardKeys {
	return ScoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// Scoreboard browses the best table and the run history per game.
type Scoreboard struct {
	games   []registry.GameInfo
	cursor  int
	best    map[string]int
	history *storage.Store
	runs    []storage.ScoreEntry
	err     error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeys
	width  int
	height int
}

// NewScoreboard opens on game (or the first game when empty). history may
// be nil, in which case only best scores are shown.
func NewScoreboard(best map[string]int, history *storage.Store, game string, width, height int) *Scoreboard {
	m := &Scoreboard{
		games:   registry.List(),
		best:    best,
		history: history,
		help:    help.New(),
		keys:    defaultScoreboardKeys(),
		width:   width,
		height:  height,
	}
	for i, g := range m.games {
		if g.ID == game {
			m.cursor = i
		}
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *Scoreboard) newTable() table.Model {
	dateWidth := max(12, min(20, m.width-sidebarWidth-30))
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Game returns the id of the selected game.
func (m *Scoreboard) Game() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// Runs returns the history rows currently in the table.
func (m *Scoreboard) Runs() []storage.ScoreEntry {
	return m.runs
}

func (m *Scoreboard) load() {
	m.runs, m.err = nil, nil
	if m.history != nil && len(m.games) > 0 {
		m.runs, m.err = m.history.TopScores(m.Game(), maxRuns)
	}
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *Scoreboard) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init implements tea.Model.
func (m *Scoreboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Scoreboard) View() string {
	var b strings.Builder

	title := "HIGH SCORES"
	if id := m.Game(); id != "" {
		title = fmt.Sprintf("HIGH SCORES - %s   best %d", registry.Title(id), m.best[id])
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	var side strings.Builder
	for i, g := range m.games {
		line := "  " + g.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + g.Title)
		}
		side.WriteString(line)
		side.WriteByte('\n')
	}
	sidebar := boxStyle.Width(sidebarWidth).Render(strings.TrimRight(side.String(), "\n"))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", boxStyle.Render(m.body())))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Scoreboard) body() string {
	switch {
	case m.err != nil:
		return mutedStyle.Render("Cannot read history: " + m.err.Error())
	case m.history == nil:
		return mutedStyle.Italic(true).Render("Run history is disabled.\nSet scores.history in arcade.yaml.")
	case len(m.runs) == 0:
		return mutedStyle.Italic(true).Render("No runs recorded yet.")
	}
	return m.table.View()
}

// RunScoreboard shows the scoreboard in the local terminal.
func RunScoreboard(best map[string]int, history *storage.Store, game string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboard(best, history, game, width, height), tea.WithAltScreen()).Run()
	return err
}
