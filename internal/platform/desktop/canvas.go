// Package desktop runs the arcade in an ebiten window with optional wav
// sound effects.
package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// ellipseSegments is the polygon resolution of non-circular ellipses.
const ellipseSegments = 32

// Canvas implements core.Surface on an ebiten image.
type Canvas struct {
	dst   *ebiten.Image
	faces map[core.TextSize]font.Face
	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// loadFaces builds one Go Mono face per text size.
func loadFaces() (map[core.TextSize]font.Face, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("desktop: parse font: %w", err)
	}
	faces := make(map[core.TextSize]font.Face)
	for _, size := range []core.TextSize{core.TextHUD, core.TextMenu, core.TextTitle} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size.Px() * 0.8,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("desktop: font face %v: %w", size.Px(), err)
		}
		faces[size] = face
	}
	return faces, nil
}

// NewCanvas loads the fonts. Target sets the image to draw on.
func NewCanvas() (*Canvas, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Canvas{
		faces: faces,
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// Target points the canvas at the frame being drawn.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

func (c *Canvas) StrokeRect(r core.Rect, width float64, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), col.RGBA(), false)
}

func (c *Canvas) FillEllipse(r core.Rect, col core.Color) {
	center := r.Center()
	if r.W == r.H {
		vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(r.W/2), col.RGBA(), true)
		return
	}
	pts := make([]core.Vec, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = core.Vec{X: center.X + math.Cos(a)*r.W/2, Y: center.Y + math.Sin(a)*r.H/2}
	}
	c.FillPolygon(pts, col)
}

func (c *Canvas) FillPolygon(pts []core.Vec, col core.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	rgba := col.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(rgba.R) / 0xff
		c.vs[i].ColorG = float32(rgba.G) / 0xff
		c.vs[i].ColorB = float32(rgba.B) / 0xff
		c.vs[i].ColorA = float32(rgba.A) / 0xff
	}
	c.dst.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (c *Canvas) StrokePolygon(pts []core.Vec, width float64, col core.Color) {
	for i, p := range pts {
		c.Line(p, pts[(i+1)%len(pts)], width, col)
	}
}

func (c *Canvas) Line(a, b core.Vec, width float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col.RGBA(), true)
}

// Text draws s with y at the top of the line box.
func (c *Canvas) Text(s string, x, y float64, size core.TextSize, align core.Align, col core.Color) {
	face, ok := c.faces[size]
	if !ok {
		face = c.faces[core.TextHUD]
	}
	w := font.MeasureString(face, s).Ceil()
	switch align {
	case core.AlignCenter:
		x -= float64(w) / 2
	case core.AlignRight:
		x -= float64(w)
	}
	baseline := int(y) + face.Metrics().Ascent.Ceil()
	text.Draw(c.dst, s, face, int(x), baseline, col.RGBA())
}
