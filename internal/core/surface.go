package core

// TextSize selects one of the fixed font sizes.
type TextSize int

const (
	TextHUD   TextSize = iota // 24px, scores and hints
	TextMenu                  // 32px, menu entries
	TextTitle                 // 64px, titles and banners
)

// Px returns the nominal pixel height of the text size.
func (s TextSize) Px() float64 {
	switch s {
	case TextMenu:
		return 32
	case TextTitle:
		return 64
	default:
		return 24
	}
}

// Align controls how text is positioned horizontally relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the 2D drawing target consumed by Draw.
// Coordinates are logical pixels on the 800x600 playfield.
// Implementations clip anything outside their bounds.
type Surface interface {
	// Clear fills the whole surface.
	Clear(c Color)

	// FillRect and StrokeRect draw filled or outlined rectangles.
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)

	// FillEllipse draws the ellipse inscribed in r.
	FillEllipse(r Rect, c Color)

	// FillPolygon and StrokePolygon draw closed polygons.
	FillPolygon(pts []Vec, c Color)
	StrokePolygon(pts []Vec, width float64, c Color)

	// Line draws a segment from a to b.
	Line(a, b Vec, width float64, c Color)

	// Text draws a single line; y is the top of the line box.
	Text(s string, x, y float64, size TextSize, align Align, c Color)
}

// FillCircle draws a filled circle centered on c.
func FillCircle(dst Surface, center Vec, radius float64, c Color) {
	dst.FillEllipse(RectAround(center, radius*2, radius*2), c)
}

// Overlay dims the playfield and prints a centered banner with a subtitle,
// the shared game-over/win screen.
func Overlay(dst Surface, title, subtitle string, c Color) {
	box := RectAround(Vec{ScreenWidth / 2, ScreenHeight / 2}, 520, 220)
	dst.FillRect(box, ColorBlack)
	dst.StrokeRect(box, 2, c)
	dst.Text(title, ScreenWidth/2, box.Y+30, TextTitle, AlignCenter, c)
	if subtitle != "" {
		dst.Text(subtitle, ScreenWidth/2, box.Y+110, TextHUD, AlignCenter, ColorText)
	}
	dst.Text("SPACE restart   ESC menu", ScreenWidth/2, box.Y+160, TextHUD, AlignCenter, ColorAccent)
}
