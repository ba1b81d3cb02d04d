package minesweeper

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit/kittest"
)

func newGame(t *testing.T, seed int64) (*Game, kittest.Fixture) {
	t.Helper()
	fx := kittest.New(seed)
	g := New(fx.Env)
	g.Reset()
	return g, fx
}

// layMines replaces the board with one holding mines only at ps.
func layMines(g *Game, ps ...Pos) {
	g.board = NewBoard(g.cfg.Rows, g.cfg.Cols)
	for _, p := range ps {
		g.board.At(p).Mine = true
	}
	g.board.Count()
	g.first = false
}

func countMines(b *Board) int {
	n := 0
	for r := range b.Rows {
		for c := range b.Cols {
			if b.Cells[r][c].Mine {
				n++
			}
		}
	}
	return n
}

func clickCell(g *Game, b core.MouseButton, p Pos) {
	c := g.cellRect(p).Center()
	g.HandleInput(core.Click(b, c.X, c.Y))
}

func TestReset(t *testing.T) {
	g, _ := newGame(t, 1)

	if g.Status().Terminal() {
		t.Fatal("fresh game must not be terminal")
	}
	if g.board.Rows != 12 || g.board.Cols != 16 {
		t.Errorf("board = %dx%d, want 12x16", g.board.Rows, g.board.Cols)
	}
	if n := countMines(g.board); n != 30 {
		t.Errorf("mines = %d, want 30", n)
	}
	field := core.Playfield()
	for _, p := range []Pos{{0, 0}, {11, 15}} {
		if !g.cellRect(p).Within(field) {
			t.Errorf("cell %+v outside the field", p)
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	b := NewBoard(3, 3)
	b.At(Pos{0, 0}).Mine = true
	b.At(Pos{2, 2}).Mine = true
	b.Count()

	tests := []struct {
		p    Pos
		want int
	}{
		{Pos{1, 1}, 2},
		{Pos{0, 1}, 1},
		{Pos{0, 2}, 0},
		{Pos{2, 1}, 1},
	}
	for _, tt := range tests {
		if got := b.At(tt.p).Neighbors; got != tt.want {
			t.Errorf("neighbors at %+v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, _ := newGame(t, seed)
		var mine Pos
		for r := range g.board.Rows {
			for c := range g.board.Cols {
				if g.board.Cells[r][c].Mine {
					mine = Pos{r, c}
				}
			}
		}

		clickCell(g, core.MouseLeft, mine)

		if g.Over {
			t.Fatalf("seed %d: first reveal hit a mine", seed)
		}
		if g.board.At(mine).Mine {
			t.Fatalf("seed %d: mine must be moved off the first cell", seed)
		}
		if n := countMines(g.board); n != 30 {
			t.Fatalf("seed %d: mines = %d after relocation, want 30", seed, n)
		}
	}
}

func TestCascadeStopsAtNumbers(t *testing.T) {
	g, _ := newGame(t, 1)
	layMines(g, Pos{0, 5})

	clickCell(g, core.MouseLeft, Pos{11, 0})

	if !g.board.At(Pos{0, 0}).Revealed {
		t.Error("zero region must be revealed")
	}
	if c := g.board.At(Pos{0, 4}); !c.Revealed || c.Neighbors != 1 {
		t.Errorf("border cell %+v must be revealed with count 1", c)
	}
	if g.board.At(Pos{0, 5}).Revealed {
		t.Error("cascade must not reveal the mine")
	}
	if !g.Won {
		t.Error("revealing every safe cell must win")
	}
}

func TestCascadeDoesNotCrossFlags(t *testing.T) {
	g, _ := newGame(t, 1)
	g.cfg.Rows, g.cfg.Cols = 1, 5
	layMines(g, Pos{0, 4})
	g.board.At(Pos{0, 1}).Flagged = true

	g.reveal(Pos{0, 0})

	for c, want := range []bool{true, false, false, false, false} {
		if got := g.board.At(Pos{0, c}).Revealed; got != want {
			t.Errorf("cell %d revealed = %v, want %v", c, got, want)
		}
	}
	if g.Finished() {
		t.Error("flagged safe cells keep the game running")
	}
}

func TestFlagToggle(t *testing.T) {
	g, _ := newGame(t, 1)
	layMines(g, Pos{5, 5})
	p := Pos{5, 5}

	clickCell(g, core.MouseRight, p)
	if !g.board.At(p).Flagged {
		t.Fatal("right click must flag")
	}
	clickCell(g, core.MouseLeft, p)
	if g.board.At(p).Revealed || g.Over {
		t.Error("flagged cell must not reveal")
	}

	g.cursor = p
	kittest.Tap(g, core.KeyF)
	if g.board.At(p).Flagged {
		t.Error("F must toggle the flag off")
	}

	q := Pos{5, 6}
	g.reveal(q)
	g.toggleFlag(q)
	if g.board.At(q).Flagged {
		t.Error("revealed cells cannot be flagged")
	}
}

func TestMineEndsGame(t *testing.T) {
	g, fx := newGame(t, 1)
	layMines(g, Pos{3, 3}, Pos{7, 7})

	g.cursor = Pos{3, 3}
	kittest.Tap(g, core.KeyEnter)

	if !g.Over {
		t.Fatal("revealing a mine must end the game")
	}
	if !g.board.At(Pos{7, 7}).Revealed {
		t.Error("every mine must be shown")
	}
	if fx.Sound.Played[core.SoundExplosion] != 1 {
		t.Error("mine must play the explosion sound")
	}
}

func TestWinScoreFromElapsedTime(t *testing.T) {
	g, fx := newGame(t, 1)
	g.cfg.Rows, g.cfg.Cols = 2, 2
	layMines(g, Pos{0, 0})
	g.reveal(Pos{0, 1})

	kittest.Run(g, 42*60)
	g.reveal(Pos{1, 0})
	g.reveal(Pos{1, 1})

	if !g.Won {
		t.Fatal("clearing the board must win")
	}
	if g.Score != 958 {
		t.Errorf("score = %d, want 958", g.Score)
	}
	if fx.Scores.Best["minesweeper"] != 958 {
		t.Errorf("stored = %d, want 958", fx.Scores.Best["minesweeper"])
	}
}

func TestClockStartsOnFirstReveal(t *testing.T) {
	g, _ := newGame(t, 1)
	kittest.Run(g, 120)
	if g.elapsed() != 0 {
		t.Errorf("elapsed = %d before the first reveal, want 0", g.elapsed())
	}
}

func TestCursorClamped(t *testing.T) {
	g, _ := newGame(t, 1)
	for range 20 {
		kittest.Tap(g, core.KeyLeft)
		kittest.Tap(g, core.KeyUp)
	}
	if g.cursor != (Pos{}) {
		t.Errorf("cursor = %+v, want clamped to the corner", g.cursor)
	}
	for range 30 {
		kittest.Tap(g, core.KeyRight)
		kittest.Tap(g, core.KeyDown)
	}
	if g.cursor != (Pos{11, 15}) {
		t.Errorf("cursor = %+v, want clamped to the far corner", g.cursor)
	}
}

func TestPlaceMinesDistinct(t *testing.T) {
	b := NewBoard(4, 4)
	b.PlaceMines(rand.New(rand.NewSource(5)), 15)
	if n := countMines(b); n != 15 {
		t.Errorf("mines = %d, want 15", n)
	}
}

func TestDrawSmoke(t *testing.T) {
	g, _ := newGame(t, 1)
	layMines(g, Pos{0, 0})
	g.board.At(Pos{0, 1}).Flagged = true
	g.reveal(Pos{5, 5})
	kittest.Draw(g)
}
