package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Painter turns a Screen into styled terminal text. Each SSH session gets
// its own Painter bound to the session's renderer so color profiles match
// the remote terminal.
type Painter struct {
	styles [256]lipgloss.Style
}

// NewPainter builds the palette styles. A nil renderer uses the default
// renderer for the local terminal.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	bg := lipgloss.Color(strconv.Itoa(int(core.ColorBackground.ANSI())))
	p := &Painter{}
	for i := range p.styles {
		fg := lipgloss.Color(strconv.Itoa(int(core.Color(i).ANSI())))
		p.styles[i] = r.NewStyle().Foreground(fg).Background(bg)
	}
	return p
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			c := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != c {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.styles[c].Render(run.String()))
		}
	}
	return sb.String()
}
