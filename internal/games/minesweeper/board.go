package minesweeper

import "math/rand"

// Cell is one square of the minefield.
type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int
}

// Pos addresses a cell by row and column.
type Pos struct {
	R, C int
}

// Board is a rows x cols minefield.
type Board struct {
	Rows, Cols int
	Cells      [][]Cell
}

// NewBoard returns an empty board.
func NewBoard(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, Cells: cells}
}

// At returns the cell at p.
func (b *Board) At(p Pos) *Cell {
	return &b.Cells[p.R][p.C]
}

// In reports whether p lies on the board.
func (b *Board) In(p Pos) bool {
	return p.R >= 0 && p.R < b.Rows && p.C >= 0 && p.C < b.Cols
}

// neighbors returns the up to eight cells around p.
func (b *Board) neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Pos{p.R + dr, p.C + dc}
			if (dr != 0 || dc != 0) && b.In(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// PlaceMines puts n mines on distinct random cells.
func (b *Board) PlaceMines(rng *rand.Rand, n int) {
	for placed := 0; placed < n; {
		p := Pos{rng.Intn(b.Rows), rng.Intn(b.Cols)}
		if c := b.At(p); !c.Mine {
			c.Mine = true
			placed++
		}
	}
	b.Count()
}

// Relocate moves the mine at p to a random mine-free cell other than p.
func (b *Board) Relocate(rng *rand.Rand, p Pos) {
	b.At(p).Mine = false
	for {
		q := Pos{rng.Intn(b.Rows), rng.Intn(b.Cols)}
		if q != p && !b.At(q).Mine {
			b.At(q).Mine = true
			break
		}
	}
	b.Count()
}

// Count recomputes every cell's neighbor mine count.
func (b *Board) Count() {
	for r := range b.Rows {
		for c := range b.Cols {
			p := Pos{r, c}
			n := 0
			for _, q := range b.neighbors(p) {
				if b.At(q).Mine {
					n++
				}
			}
			b.At(p).Neighbors = n
		}
	}
}

// Cascade reveals the connected zero region around p with an explicit
// stack, including its numbered border. Flagged cells are never revealed
// or crossed.
func (b *Board) Cascade(p Pos) {
	stack := []Pos{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range b.neighbors(cur) {
			c := b.At(n)
			if c.Revealed || c.Flagged || c.Mine {
				continue
			}
			c.Revealed = true
			if c.Neighbors == 0 {
				stack = append(stack, n)
			}
		}
	}
}

// RevealMines uncovers every mine.
func (b *Board) RevealMines() {
	for r := range b.Rows {
		for c := range b.Cols {
			if b.Cells[r][c].Mine {
				b.Cells[r][c].Revealed = true
			}
		}
	}
}

// Cleared reports whether every safe cell is revealed.
func (b *Board) Cleared() bool {
	for r := range b.Rows {
		for c := range b.Cols {
			if cell := b.Cells[r][c]; !cell.Mine && !cell.Revealed {
				return false
			}
		}
	}
	return true
}

// Flags counts flagged cells.
func (b *Board) Flags() int {
	n := 0
	for r := range b.Rows {
		for c := range b.Cols {
			if b.Cells[r][c].Flagged {
				n++
			}
		}
	}
	return n
}
