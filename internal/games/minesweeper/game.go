// Package minesweeper implements Minesweeper with a safe first reveal.
package minesweeper

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Layout constants.
const (
	CellSize = 32
	originY  = 120 // Leaves a strip for the HUD
)

// timeScoreBase is the win score before elapsed seconds are subtracted.
const timeScoreBase = 1000

var numberColors = [...]core.Color{
	core.ColorBlue, core.ColorGreen, core.ColorRed, core.ColorPurple,
	core.ColorOrange, core.ColorCyan, core.ColorBlack, core.ColorGrid,
}

// Game implements Minesweeper.
type Game struct {
	kit.Session
	cfg config.MinesweeperConfig

	board  *Board
	cursor Pos
	first  bool // No cell revealed yet
}

func init() {
	registry.Register("minesweeper", 9, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Minesweeper game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("minesweeper", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "minesweeper" }

// Title returns the display name.
func (g *Game) Title() string { return "Minesweeper" }

// Reset lays a fresh minefield.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Minesweeper
	g.Begin(0)

	g.board = NewBoard(g.cfg.Rows, g.cfg.Cols)
	g.board.PlaceMines(g.Rng, g.cfg.Mines)
	g.cursor = Pos{}
	g.first = true
}

func (g *Game) originX() float64 {
	return float64(core.ScreenWidth-g.cfg.Cols*CellSize) / 2
}

func (g *Game) cellRect(p Pos) core.Rect {
	return core.NewRect(g.originX()+float64(p.C*CellSize), originY+float64(p.R*CellSize), CellSize, CellSize)
}

// cellAt maps a pixel to a cell.
func (g *Game) cellAt(v core.Vec) (Pos, bool) {
	x, y := v.X-g.originX(), v.Y-originY
	if x < 0 || y < 0 {
		return Pos{}, false
	}
	p := Pos{int(y) / CellSize, int(x) / CellSize}
	return p, g.board.In(p)
}

// HandleInput reveals with left click, Space or Enter and flags with
// right click or F.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}

	if ev.Kind == core.MouseClicked {
		p, ok := g.cellAt(ev.Pos)
		if !ok {
			return
		}
		g.cursor = p
		switch ev.Button {
		case core.MouseLeft:
			g.reveal(p)
		case core.MouseRight:
			g.toggleFlag(p)
		}
		return
	}

	switch {
	case ev.Pressed(core.KeySpace, core.KeyEnter):
		g.reveal(g.cursor)
	case ev.Pressed(core.KeyF):
		g.toggleFlag(g.cursor)
	case ev.Pressed(core.LeftKeys...):
		g.moveCursor(0, -1)
	case ev.Pressed(core.RightKeys...):
		g.moveCursor(0, 1)
	case ev.Pressed(core.UpKeys...):
		g.moveCursor(-1, 0)
	case ev.Pressed(core.DownKeys...):
		g.moveCursor(1, 0)
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor.R = core.Clamp(g.cursor.R+dr, 0, g.board.Rows-1)
	g.cursor.C = core.Clamp(g.cursor.C+dc, 0, g.board.Cols-1)
}

func (g *Game) reveal(p Pos) {
	cell := g.board.At(p)
	if cell.Revealed || cell.Flagged {
		return
	}
	if g.first {
		g.first = false
		if cell.Mine {
			g.board.Relocate(g.Rng, p)
		}
	}

	cell.Revealed = true
	if cell.Mine {
		g.board.RevealMines()
		g.Env.Sound.Play(core.SoundExplosion)
		g.GameOver()
		return
	}

	g.Env.Sound.Play(core.SoundSelect)
	if cell.Neighbors == 0 {
		g.board.Cascade(p)
	}
	if g.board.Cleared() {
		g.Score = max(0, timeScoreBase-g.elapsed())
		g.Win()
	}
}

func (g *Game) toggleFlag(p Pos) {
	if cell := g.board.At(p); !cell.Revealed {
		cell.Flagged = !cell.Flagged
	}
}

// elapsed returns whole seconds of play; the clock starts on the first reveal.
func (g *Game) elapsed() int {
	return g.Seconds(g.Tick)
}

// Update advances the clock.
func (g *Game) Update() {
	if !g.Running() || g.first {
		return
	}
	g.Tick++
}

// Draw renders the minefield.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for r := range g.board.Rows {
		for c := range g.board.Cols {
			p := Pos{r, c}
			cell := g.board.At(p)
			rect := g.cellRect(p)
			switch {
			case cell.Revealed && cell.Mine:
				dst.FillRect(rect, core.ColorDanger)
				core.FillCircle(dst, rect.Center(), CellSize/4, core.ColorBlack)
			case cell.Revealed:
				dst.FillRect(rect, core.ColorText)
				if cell.Neighbors > 0 {
					dst.Text(strconv.Itoa(cell.Neighbors), rect.Center().X, rect.Y+4, core.TextHUD, core.AlignCenter, numberColors[cell.Neighbors-1])
				}
			default:
				dst.FillRect(rect, core.ColorGrid)
				if cell.Flagged {
					ctr := rect.Center()
					dst.Line(core.Vec{X: ctr.X - 5, Y: ctr.Y + 8}, core.Vec{X: ctr.X - 5, Y: ctr.Y - 8}, 2, core.ColorBlack)
					dst.FillPolygon([]core.Vec{
						{X: ctr.X - 5, Y: ctr.Y - 8}, {X: ctr.X + 7, Y: ctr.Y - 3}, {X: ctr.X - 5, Y: ctr.Y + 2},
					}, core.ColorDanger)
				}
			}
			dst.StrokeRect(rect, 1, core.ColorBackground)
		}
	}
	if !g.Finished() {
		dst.StrokeRect(g.cellRect(g.cursor), 2, core.ColorWarning)
	}

	g.DrawHUD(dst, fmt.Sprintf("TIME %d   MINES %d", g.elapsed(), g.cfg.Mines-g.board.Flags()))
	g.DrawOverlay(dst)
}
