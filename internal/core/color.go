package core

import "image/color"

// Color is a palette entry. Desktop rendering uses its RGBA value and the
// terminal uses the nearest ANSI 256-color code.
type Color uint8

// Palette shared by the menu and every game.
const (
	ColorBackground Color = iota
	ColorText
	ColorAccent
	ColorHighlight
	ColorSuccess
	ColorWarning
	ColorDanger
	ColorBlack
	ColorWhite
	ColorGrid
	ColorPaddle
	ColorBall
	ColorPlayer
	ColorEnemy
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorPurple
	ColorRed
	colorCount
)

var rgba = [colorCount]color.RGBA{
	ColorBackground: {30, 30, 30, 255},
	ColorText:       {230, 230, 230, 255},
	ColorAccent:     {0, 188, 212, 255},
	ColorHighlight:  {255, 64, 129, 255},
	ColorSuccess:    {0, 230, 118, 255},
	ColorWarning:    {255, 193, 7, 255},
	ColorDanger:     {255, 82, 82, 255},
	ColorBlack:      {0, 0, 0, 255},
	ColorWhite:      {255, 255, 255, 255},
	ColorGrid:       {50, 50, 50, 255},
	ColorPaddle:     {0, 188, 212, 255},
	ColorBall:       {255, 255, 255, 255},
	ColorPlayer:     {0, 230, 118, 255},
	ColorEnemy:      {255, 82, 82, 255},
	ColorCyan:       {0, 240, 240, 255},
	ColorBlue:       {0, 0, 240, 255},
	ColorOrange:     {240, 160, 0, 255},
	ColorYellow:     {240, 240, 0, 255},
	ColorGreen:      {0, 240, 0, 255},
	ColorPurple:     {160, 0, 240, 255},
	ColorRed:        {240, 0, 0, 255},
}

var ansi = [colorCount]uint8{
	ColorBackground: 235,
	ColorText:       254,
	ColorAccent:     38,
	ColorHighlight:  204,
	ColorSuccess:    42,
	ColorWarning:    214,
	ColorDanger:     203,
	ColorBlack:      16,
	ColorWhite:      231,
	ColorGrid:       239,
	ColorPaddle:     38,
	ColorBall:       231,
	ColorPlayer:     42,
	ColorEnemy:      203,
	ColorCyan:       51,
	ColorBlue:       21,
	ColorOrange:     214,
	ColorYellow:     226,
	ColorGreen:      46,
	ColorPurple:     129,
	ColorRed:        196,
}

// RGBA returns the color's 8-bit RGBA value.
func (c Color) RGBA() color.RGBA {
	if c >= colorCount {
		return rgba[ColorText]
	}
	return rgba[c]
}

// ANSI returns the ANSI 256-color code used by terminal renderers.
func (c Color) ANSI() uint8 {
	if c >= colorCount {
		return ansi[ColorText]
	}
	return ansi[c]
}
