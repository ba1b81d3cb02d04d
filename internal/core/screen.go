package core

import (
	"math"
	"strings"
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering games in a terminal.
// It implements Surface by rasterizing logical-pixel shapes onto its cell
// grid, so games draw the same way for the desktop and the terminal.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// Glyphs used when rasterizing shapes.
const (
	GlyphFill   = '█'
	GlyphRound  = '●'
	GlyphStroke = '•'
)

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
	}
	s.allocate()
	s.Clear(ColorBackground)
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorBackground)
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: c}
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given cell, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at cell (x, y).
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// DrawBox draws a box outline over the cell rectangle using box-drawing
// characters.
func (s *Screen) DrawBox(x0, y0, x1, y1 int, c Color) {
	if x1 <= x0 || y1 <= y0 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.Set(x, y, GlyphFill, c)
			}
		}
		return
	}
	s.Set(x0, y0, '┌', c)
	s.Set(x1, y0, '┐', c)
	s.Set(x0, y1, '└', c)
	s.Set(x1, y1, '┘', c)
	for x := x0 + 1; x < x1; x++ {
		s.Set(x, y0, '─', c)
		s.Set(x, y1, '─', c)
	}
	for y := y0 + 1; y < y1; y++ {
		s.Set(x0, y, '│', c)
		s.Set(x1, y, '│', c)
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// cellW and cellH are the logical pixel sizes of one character cell.
func (s *Screen) cellW() float64 { return float64(ScreenWidth) / float64(s.width) }
func (s *Screen) cellH() float64 { return float64(ScreenHeight) / float64(s.height) }

// ToCell maps a logical pixel position to the cell containing it.
func (s *Screen) ToCell(p Vec) (int, int) {
	return int(math.Floor(p.X / s.cellW())), int(math.Floor(p.Y / s.cellH()))
}

// ToLogical maps a cell to the logical pixel at its center.
func (s *Screen) ToLogical(x, y int) Vec {
	return Vec{(float64(x) + 0.5) * s.cellW(), (float64(y) + 0.5) * s.cellH()}
}

// cellSpan returns the inclusive range of cells whose centers fall inside r.
// ok is false when no center is covered (shapes smaller than one cell).
func (s *Screen) cellSpan(r Rect) (x0, y0, x1, y1 int, ok bool) {
	cw, ch := s.cellW(), s.cellH()
	x0 = int(math.Ceil(r.X/cw - 0.5))
	y0 = int(math.Ceil(r.Y/ch - 0.5))
	x1 = int(math.Ceil(r.Right()/cw-0.5)) - 1
	y1 = int(math.Ceil(r.Bottom()/ch-0.5)) - 1
	return x0, y0, x1, y1, x1 >= x0 && y1 >= y0
}

// FillRect fills every cell whose center lies inside r.
func (s *Screen) FillRect(r Rect, c Color) {
	x0, y0, x1, y1, ok := s.cellSpan(r)
	if !ok {
		x, y := s.ToCell(r.Center())
		s.Set(x, y, GlyphFill, c)
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, GlyphFill, c)
		}
	}
}

// StrokeRect outlines r with box-drawing characters.
func (s *Screen) StrokeRect(r Rect, _ float64, c Color) {
	x0, y0, x1, y1, ok := s.cellSpan(r)
	if !ok {
		x, y := s.ToCell(r.Center())
		s.Set(x, y, GlyphStroke, c)
		return
	}
	s.DrawBox(x0, y0, x1, y1, c)
}

// FillEllipse fills the cells whose centers lie inside the ellipse
// inscribed in r.
func (s *Screen) FillEllipse(r Rect, c Color) {
	center := r.Center()
	rx, ry := r.W/2, r.H/2
	x0, y0, x1, y1, _ := s.cellSpan(r)
	drawn := false
	if rx > 0 && ry > 0 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := s.ToLogical(x, y)
				dx, dy := (p.X-center.X)/rx, (p.Y-center.Y)/ry
				if dx*dx+dy*dy <= 1 {
					s.Set(x, y, GlyphFill, c)
					drawn = true
				}
			}
		}
	}
	if !drawn {
		x, y := s.ToCell(center)
		s.Set(x, y, GlyphRound, c)
	}
}

// FillPolygon fills the cells whose centers lie inside the polygon.
func (s *Screen) FillPolygon(pts []Vec, c Color) {
	if len(pts) < 3 {
		return
	}
	bounds := polygonBounds(pts)
	x0, y0, x1, y1, _ := s.cellSpan(bounds)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if pointInPolygon(s.ToLogical(x, y), pts) {
				s.Set(x, y, GlyphFill, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := s.ToCell(bounds.Center())
		s.Set(x, y, GlyphFill, c)
	}
}

// StrokePolygon draws each polygon edge as a line.
func (s *Screen) StrokePolygon(pts []Vec, width float64, c Color) {
	for i := range pts {
		s.Line(pts[i], pts[(i+1)%len(pts)], width, c)
	}
}

// Line rasterizes a segment with Bresenham's algorithm in cell space.
func (s *Screen) Line(a, b Vec, _ float64, c Color) {
	x0, y0 := s.ToCell(a)
	x1, y1 := s.ToCell(b)
	dx, dy := Abs(x1-x0), -Abs(y1-y0)
	sx, sy := Sign(x1-x0), Sign(y1-y0)
	e := dx + dy
	for {
		s.Set(x0, y0, GlyphStroke, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Text writes a single line of text. The row is the one containing the
// vertical middle of the line box.
func (s *Screen) Text(text string, x, y float64, size TextSize, align Align, c Color) {
	col, row := s.ToCell(Vec{x, y + size.Px()/2})
	n := len([]rune(text))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	s.DrawText(col, row, text, c)
}

func polygonBounds(pts []Vec) Rect {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// pointInPolygon uses the even-odd ray casting rule.
func pointInPolygon(p Vec, pts []Vec) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

var _ Surface = (*Screen)(nil)
