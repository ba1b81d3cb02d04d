package menu

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/games/kit/kittest"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// stub is a minimal game.
type stub struct {
	kit.Session
	id     string
	resets int
}

func (s *stub) ID() string             { return s.id }
func (s *stub) Title() string          { return "Stub " + s.id }
func (s *stub) Reset()                 { s.resets++ }
func (s *stub) Update()                {}
func (s *stub) HandleInput(core.Event) {}
func (s *stub) Draw(core.Surface)      {}

func newMenu(t *testing.T) (*Menu, []*stub, kittest.Fixture) {
	t.Helper()
	fx := kittest.New(1)
	a := &stub{Session: kit.NewSession("a", fx.Env), id: "a"}
	b := &stub{Session: kit.NewSession("b", fx.Env), id: "b"}
	m := New("ARCADE", []registry.Game{a, b}, fx.Env)
	fx.Env.Manager.SetHome(m)
	fx.Env.Manager.SetState(m)
	return m, []*stub{a, b}, fx
}

func TestItemsEndWithQuit(t *testing.T) {
	m, _, _ := newMenu(t)

	items := m.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if items[0].Title != "Stub a" || items[2].Title != "Quit" || items[2].Game != nil {
		t.Errorf("items = %+v", items)
	}
}

func TestCursorWraps(t *testing.T) {
	m, _, _ := newMenu(t)

	m.HandleInput(core.Press(core.KeyUp))
	if m.Cursor() != 2 {
		t.Errorf("cursor = %d after Up from the top, want 2", m.Cursor())
	}
	m.HandleInput(core.Press(core.KeyDown))
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d after Down from the bottom, want 0", m.Cursor())
	}
}

func TestEnterStartsGame(t *testing.T) {
	m, games, fx := newMenu(t)

	m.HandleInput(core.Press(core.KeyDown))
	m.HandleInput(core.Press(core.KeyEnter))

	if fx.Env.Manager.Current() != games[1] {
		t.Fatal("Enter must switch to the highlighted game")
	}
	if games[1].resets != 1 || !games[1].Active() {
		t.Errorf("game resets = %d active = %v, want reset once and active", games[1].resets, games[1].Active())
	}
	if m.Active() {
		t.Error("menu must be inactive while a game runs")
	}
	if fx.Sound.Played[core.SoundSelect] != 1 {
		t.Error("selection must play the select sound")
	}

	fx.Env.Manager.Home()
	if fx.Env.Manager.Current() != m || m.Cursor() != 1 {
		t.Errorf("Home must return to the menu with the cursor kept, cursor = %d", m.Cursor())
	}
}

func TestClickStartsGame(t *testing.T) {
	m, games, fx := newMenu(t)
	c := rowRect(0).Center()

	m.HandleInput(core.Click(core.MouseLeft, c.X, c.Y))

	if fx.Env.Manager.Current() != games[0] {
		t.Error("click must start the clicked game")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
	}{
		{"escape", []core.Event{core.Press(core.KeyEscape)}},
		{"q", []core.Event{core.Press(core.KeyQ)}},
		{"quit entry", []core.Event{core.Press(core.KeyUp), core.Press(core.KeyEnter)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, fx := newMenu(t)
			for _, ev := range tt.events {
				m.HandleInput(ev)
			}
			if !fx.Env.Manager.Quitting() {
				t.Error("menu must request quit")
			}
		})
	}
}

func TestDrawShowsBestScores(t *testing.T) {
	m, _, fx := newMenu(t)
	fx.Scores.Best["a"] = 4242

	scr := kittest.Draw(m)

	if got := scr.String(); !strings.Contains(got, "4242") {
		t.Errorf("menu must show the best score:\n%s", got)
	}
}
