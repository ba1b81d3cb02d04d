// Package memory implements the card-matching game Concentration.
package memory

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// CellSize is the on-screen size of one card slot.
const CellSize = 120

// Card is one face of a pair.
type Card struct {
	Value   int
	Flipped bool
	Matched bool
}

// Game implements Memory.
type Game struct {
	kit.Session
	cfg config.MemoryConfig

	cards   []Card
	first   int    // Index of the first flipped card, -1 if none
	pending [2]int // Mismatched pair waiting to flip back
	lock    int    // Ticks until input unlocks
	cursor  int
	moves   int
	matches int
}

func init() {
	registry.Register("memory", 8, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Memory game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	g := &Game{Session: kit.NewSession("memory", env)}
	g.ScoreName = "MOVES"
	g.BestText = bestMoves
	return g
}

// winPoints is the stored score of a win in moves; fewer moves store more.
func winPoints(moves int) int {
	return max(0, 1000-moves*10)
}

// bestMoves turns stored points back into the move count of that win.
func bestMoves(stored int) string {
	if stored <= 0 {
		return "-"
	}
	return strconv.Itoa((1000 - stored) / 10)
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memory" }

// Title returns the display name.
func (g *Game) Title() string { return "Memory" }

// Reset deals a shuffled board.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Memory
	g.Begin(0)

	n := g.cfg.Rows * g.cfg.Cols
	g.cards = make([]Card, n)
	for i := range g.cards {
		g.cards[i] = Card{Value: i / 2}
	}
	g.Rng.Shuffle(n, func(i, j int) {
		g.cards[i], g.cards[j] = g.cards[j], g.cards[i]
	})
	g.first = -1
	g.lock = 0
	g.cursor = 0
	g.moves = 0
	g.matches = 0
}

func (g *Game) origin() core.Vec {
	return core.Vec{
		X: float64(core.ScreenWidth-g.cfg.Cols*CellSize) / 2,
		Y: float64(core.ScreenHeight-g.cfg.Rows*CellSize)/2 + 20,
	}
}

// cardRect returns the slot of card i.
func (g *Game) cardRect(i int) core.Rect {
	o := g.origin()
	r, c := i/g.cfg.Cols, i%g.cfg.Cols
	return core.NewRect(o.X+float64(c*CellSize), o.Y+float64(r*CellSize), CellSize, CellSize)
}

// indexAt maps a pixel to a card index, or -1.
func (g *Game) indexAt(p core.Vec) int {
	o := g.origin()
	if p.X < o.X || p.Y < o.Y {
		return -1
	}
	c := int(p.X-o.X) / CellSize
	r := int(p.Y-o.Y) / CellSize
	if r >= g.cfg.Rows || c >= g.cfg.Cols {
		return -1
	}
	return r*g.cfg.Cols + c
}

// HandleInput flips cards by click or by cursor and Enter.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}

	switch {
	case ev.Kind == core.MouseClicked && ev.Button == core.MouseLeft:
		if i := g.indexAt(ev.Pos); i >= 0 {
			g.cursor = i
			g.flip(i)
		}
	case ev.Pressed(core.KeyEnter, core.KeySpace):
		g.flip(g.cursor)
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
	r := core.Clamp(g.cursor/g.cfg.Cols+dr, 0, g.cfg.Rows-1)
	c := core.Clamp(g.cursor%g.cfg.Cols+dc, 0, g.cfg.Cols-1)
	g.cursor = r*g.cfg.Cols + c
}

// flip turns card i face up and resolves the pair when it is the second.
func (g *Game) flip(i int) {
	if g.lock > 0 {
		return
	}
	card := &g.cards[i]
	if card.Flipped || card.Matched {
		return
	}
	card.Flipped = true

	if g.first < 0 {
		g.first = i
		g.Env.Sound.Play(core.SoundSelect)
		return
	}

	g.moves++
	g.Score = g.moves
	first := &g.cards[g.first]
	if first.Value == card.Value {
		first.Matched = true
		card.Matched = true
		g.matches++
		g.Env.Sound.Play(core.SoundScore)
		if g.matches == len(g.cards)/2 {
			g.WinWith(winPoints(g.moves))
		}
	} else {
		g.pending = [2]int{g.first, i}
		g.lock = max(1, g.Ticks(g.cfg.MismatchDelayMS))
	}
	g.first = -1
}

// Update counts down the mismatch lock.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++

	if g.lock > 0 {
		g.lock--
		if g.lock == 0 {
			g.cards[g.pending[0]].Flipped = false
			g.cards[g.pending[1]].Flipped = false
		}
	}
}

var palette = []core.Color{
	core.ColorAccent, core.ColorHighlight, core.ColorSuccess, core.ColorWarning,
	core.ColorDanger, core.ColorPaddle, core.ColorEnemy, core.ColorText,
}

// drawFace draws value as a colored shape; the shape cycles every palette length.
func drawFace(dst core.Surface, r core.Rect, value int) {
	c := palette[value%len(palette)]
	inner := r.Inset(24)
	center := inner.Center()
	switch value % 4 {
	case 0:
		dst.FillEllipse(inner, c)
	case 1:
		dst.FillRect(inner, c)
	case 2:
		dst.FillPolygon([]core.Vec{
			{X: center.X, Y: inner.Y}, {X: inner.Right(), Y: inner.Bottom()}, {X: inner.X, Y: inner.Bottom()},
		}, c)
	default:
		dst.FillPolygon([]core.Vec{
			{X: center.X, Y: inner.Y}, {X: inner.Right(), Y: center.Y},
			{X: center.X, Y: inner.Bottom()}, {X: inner.X, Y: center.Y},
		}, c)
	}
}

// Draw renders the board.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for i, card := range g.cards {
		r := g.cardRect(i).Inset(4)
		switch {
		case card.Matched:
			dst.FillRect(r, core.ColorGrid)
			drawFace(dst, r, card.Value)
			dst.StrokeRect(r, 2, core.ColorSuccess)
		case card.Flipped:
			dst.FillRect(r, core.ColorBlack)
			drawFace(dst, r, card.Value)
			dst.StrokeRect(r, 2, core.ColorText)
		default:
			dst.FillRect(r, core.ColorGrid)
			dst.StrokeRect(r, 2, core.ColorAccent)
		}
		if i == g.cursor && !g.Finished() {
			dst.StrokeRect(g.cardRect(i).Inset(1), 2, core.ColorWarning)
		}
	}

	g.DrawHUD(dst, fmt.Sprintf("PAIRS %d/%d", g.matches, len(g.cards)/2))
	g.DrawOverlay(dst)
}
