// Package menu implements the home state: a list of games with their best
// scores plus a Quit entry.
package menu

import (
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/state"
)

// Layout constants.
const (
	listTop   = 150
	rowHeight = 40
	rowWidth  = 520
)

// Item is one selectable menu row. A nil Game is the Quit entry.
type Item struct {
	Title string
	Game  registry.Game
}

// Menu is the game picker.
type Menu struct {
	state.Base

	title  string
	items  []Item
	cursor int
	env    registry.Env
}

// New builds a menu for games in the given order. A trailing Quit entry
// is appended.
func New(title string, games []registry.Game, env registry.Env) *Menu {
	items := make([]Item, 0, len(games)+1)
	for _, g := range games {
		items = append(items, Item{Title: g.Title(), Game: g})
	}
	items = append(items, Item{Title: "Quit"})
	return &Menu{title: title, items: items, env: env.Normalize()}
}

// Items returns the menu rows.
func (m *Menu) Items() []Item {
	return m.items
}

// Cursor returns the highlighted row.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Reset keeps the cursor so returning from a game lands on it.
func (m *Menu) Reset() {}

// Update is a no-op; the menu has no simulation.
func (m *Menu) Update() {}

func rowRect(i int) core.Rect {
	return core.NewRect((core.ScreenWidth-rowWidth)/2, float64(listTop+i*rowHeight), rowWidth, rowHeight)
}

// HandleInput moves the cursor with Up/Down (wrapping), selects with
// Enter/Space or a click, and quits with Esc or Q.
func (m *Menu) HandleInput(ev core.Event) {
	n := len(m.items)
	switch {
	case ev.Kind == core.MouseClicked && ev.Button == core.MouseLeft:
		for i := range m.items {
			if rowRect(i).Contains(ev.Pos.X, ev.Pos.Y) {
				m.cursor = i
				m.activate()
				return
			}
		}
	case ev.Pressed(core.UpKeys...):
		m.cursor = (m.cursor - 1 + n) % n
	case ev.Pressed(core.DownKeys...):
		m.cursor = (m.cursor + 1) % n
	case ev.Pressed(core.KeyEnter, core.KeySpace):
		m.activate()
	case ev.Pressed(core.KeyEscape, core.KeyQ):
		m.env.Manager.Quit()
	}
}

func (m *Menu) activate() {
	item := m.items[m.cursor]
	m.env.Sound.Play(core.SoundSelect)
	if item.Game == nil {
		m.env.Manager.Quit()
		return
	}
	m.env.Manager.SetState(item.Game)
}

// Draw renders the title, the rows and the best score of each game.
func (m *Menu) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)
	dst.Text(m.title, core.ScreenWidth/2, 50, core.TextTitle, core.AlignCenter, core.ColorAccent)

	for i, item := range m.items {
		r := rowRect(i)
		c := core.ColorText
		if i == m.cursor {
			c = core.ColorHighlight
			dst.StrokeRect(r, 2, core.ColorHighlight)
		}
		dst.Text(item.Title, r.X+16, r.Y+4, core.TextMenu, core.AlignLeft, c)
		if item.Game != nil {
			best := m.env.Scores.Get(item.Game.ID())
			dst.Text(strconv.Itoa(best), r.Right()-16, r.Y+8, core.TextHUD, core.AlignRight, core.ColorWarning)
		}
	}

	dst.Text("ARROWS select   ENTER play   ESC quit", core.ScreenWidth/2, core.ScreenHeight-40, core.TextHUD, core.AlignCenter, core.ColorGrid)
}
