package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Kind identifies a tetromino.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

// Shape is a square occupancy matrix indexed [row][col].
type Shape [][]bool

var shapes = [kindCount][]string{
	KindI: {"....", "####", "....", "...."},
	KindO: {"##", "##"},
	KindT: {".#.", "###", "..."},
	KindS: {".##", "##.", "..."},
	KindZ: {"##.", ".##", "..."},
	KindJ: {"#..", "###", "..."},
	KindL: {"..#", "###", "..."},
}

var colors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorPurple,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// Color returns the fixed color of the kind.
func (k Kind) Color() core.Color {
	return colors[k]
}

func (k Kind) String() string {
	return string("IOTSZJL"[k])
}

// NewShape parses the spawn orientation of a kind.
func NewShape(k Kind) Shape {
	rows := shapes[k]
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Rotate returns the shape turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for y := range n {
		out[y] = make([]bool, n)
		for x := range n {
			out[y][x] = s[n-1-x][y]
		}
	}
	return out
}

// Cells calls fn for every occupied cell offset.
func (s Shape) Cells(fn func(x, y int)) {
	for y, row := range s {
		for x, on := range row {
			if on {
				fn(x, y)
			}
		}
	}
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int // Board position of the shape's top-left corner
}

func newPiece(k Kind) Piece {
	s := NewShape(k)
	return Piece{Kind: k, Shape: s, X: (BoardW - len(s)) / 2, Y: 0}
}

func (p Piece) moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

func (p Piece) rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
