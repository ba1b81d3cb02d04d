// Package tetris implements falling-block Tetris with levels, a next-piece
// preview and a ghost piece.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Board geometry.
const (
	BoardW   = 10
	BoardH   = 20
	CellSize = 30
	originX  = (core.ScreenWidth - BoardW*CellSize) / 2
	originY  = (core.ScreenHeight - BoardH*CellSize) / 2
)

// Cell is one locked board square.
type Cell struct {
	Set   bool
	Color core.Color
}

// Board holds locked cells indexed [row][col].
type Board [BoardH][BoardW]Cell

// Game implements Tetris.
type Game struct {
	kit.Session
	cfg config.TetrisConfig

	board   Board
	current Piece
	next    Kind
	lines   int
	level   int

	dropTicker int
}

func init() {
	registry.Register("tetris", 2, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Tetris game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("tetris", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a fresh run.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Tetris
	g.Begin(0)

	g.board = Board{}
	g.lines = 0
	g.level = 1
	g.dropTicker = 0
	g.next = g.randomKind()
	g.spawn()
}

func (g *Game) randomKind() Kind {
	return Kind(g.Rng.Intn(int(kindCount)))
}

// spawn promotes the preview piece. A blocked spawn ends the game.
func (g *Game) spawn() {
	g.current = newPiece(g.next)
	g.next = g.randomKind()
	if !g.fits(g.current) {
		g.GameOver()
	}
}

// fits reports whether p lies inside the board on empty cells.
func (g *Game) fits(p Piece) bool {
	ok := true
	p.Shape.Cells(func(x, y int) {
		bx, by := p.X+x, p.Y+y
		if bx < 0 || bx >= BoardW || by < 0 || by >= BoardH || g.board[by][bx].Set {
			ok = false
		}
	})
	return ok
}

// HandleInput moves, rotates and drops the current piece.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}
	switch {
	case ev.Pressed(core.LeftKeys...):
		g.shift(-1)
	case ev.Pressed(core.RightKeys...):
		g.shift(1)
	case ev.Pressed(core.UpKeys...):
		g.rotate()
	case ev.Pressed(core.KeySpace):
		g.hardDrop()
	}
}

func (g *Game) shift(dx int) bool {
	if p := g.current.moved(dx, 0); g.fits(p) {
		g.current = p
		return true
	}
	return false
}

// rotate turns the piece clockwise, kicking one cell off a wall or stack.
func (g *Game) rotate() bool {
	r := g.current.rotated()
	for _, dx := range []int{0, -1, 1} {
		if p := r.moved(dx, 0); g.fits(p) {
			g.current = p
			return true
		}
	}
	return false
}

func (g *Game) hardDrop() {
	g.current = g.ghost()
	g.lock()
}

// ghost returns where the current piece would land.
func (g *Game) ghost() Piece {
	p := g.current
	for g.fits(p.moved(0, 1)) {
		p = p.moved(0, 1)
	}
	return p
}

// dropInterval returns the gravity period in ticks.
func (g *Game) dropInterval() int {
	if g.Keys.Down(core.DownKeys...) {
		return g.Ticks(g.cfg.FastDropMS)
	}
	ms := max(g.cfg.MinDropMS, g.cfg.DropIntervalMS-(g.level-1)*g.cfg.LevelSpeedupMS)
	return g.Ticks(ms)
}

// Update applies gravity.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++

	g.dropTicker++
	if g.dropTicker < g.dropInterval() {
		return
	}
	g.dropTicker = 0

	if p := g.current.moved(0, 1); g.fits(p) {
		g.current = p
		return
	}
	g.lock()
}

// lock merges the piece into the board, clears lines and spawns the next.
func (g *Game) lock() {
	g.current.Shape.Cells(func(x, y int) {
		cell := &g.board[g.current.Y+y][g.current.X+x]
		cell.Set = true
		cell.Color = g.current.Kind.Color()
	})
	g.dropTicker = 0

	if n := g.clearLines(); n > 0 {
		g.lines += n
		g.level = g.lines/max(1, g.cfg.LinesPerLevel) + 1
		g.AddScore(n * g.cfg.LineScore)
	}
	g.spawn()
}

// clearLines removes full rows, shifting the rest down, and returns how
// many were removed.
func (g *Game) clearLines() int {
	cleared := 0
	dst := BoardH - 1
	for y := BoardH - 1; y >= 0; y-- {
		full := true
		for x := range BoardW {
			if !g.board[y][x].Set {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		g.board[dst] = g.board[y]
		dst--
	}
	for ; dst >= 0; dst-- {
		g.board[dst] = [BoardW]Cell{}
	}
	return cleared
}

func cellRect(x, y int) core.Rect {
	return core.NewRect(float64(originX+x*CellSize), float64(originY+y*CellSize), CellSize, CellSize)
}

// Draw renders the well, preview and HUD.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	well := core.NewRect(originX, originY, BoardW*CellSize, BoardH*CellSize)
	dst.FillRect(well, core.ColorBlack)

	for y := range BoardH {
		for x := range BoardW {
			if c := g.board[y][x]; c.Set {
				dst.FillRect(cellRect(x, y).Inset(1), c.Color)
			}
		}
	}

	if !g.Finished() {
		ghost := g.ghost()
		ghost.Shape.Cells(func(x, y int) {
			dst.StrokeRect(cellRect(ghost.X+x, ghost.Y+y).Inset(2), 1, core.ColorGrid)
		})
		g.current.Shape.Cells(func(x, y int) {
			dst.FillRect(cellRect(g.current.X+x, g.current.Y+y).Inset(1), g.current.Kind.Color())
		})
	}
	dst.StrokeRect(well, 2, core.ColorGrid)

	// Preview panel to the right of the well
	px := float64(originX + BoardW*CellSize + 40)
	dst.Text("NEXT", px, 60, core.TextHUD, core.AlignLeft, core.ColorText)
	NewShape(g.next).Cells(func(x, y int) {
		dst.FillRect(core.NewRect(px+float64(x*20), 100+float64(y*20), 20, 20).Inset(1), g.next.Color())
	})
	dst.Text(fmt.Sprintf("LINES %d", g.lines), px, 200, core.TextHUD, core.AlignLeft, core.ColorText)
	dst.Text(fmt.Sprintf("LEVEL %d", g.level), px, 240, core.TextHUD, core.AlignLeft, core.ColorText)

	g.DrawHUD(dst, "")
	g.DrawOverlay(dst)
}
