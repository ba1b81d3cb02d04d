package desktop

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/retro-arcade/internal/app"
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Game adapts an Arcade to ebiten.Game.
type Game struct {
	arcade *app.Arcade
	canvas *Canvas
	input  Input
}

// NewGame wraps a.
func NewGame(a *app.Arcade) (*Game, error) {
	canvas, err := NewCanvas()
	if err != nil {
		return nil, err
	}
	return &Game{arcade: a, canvas: canvas}, nil
}

// Update runs one tick. ebiten calls it TPS times per second.
func (g *Game) Update() error {
	g.arcade.Step(g.input.Poll(), nil)
	if g.arcade.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.arcade.Manager.Draw(g.canvas)
}

// Layout keeps the logical playfield regardless of window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}

// Run opens the window and blocks until the player quits or closes it.
func Run(a *app.Arcade, win config.WindowConfig) error {
	g, err := NewGame(a)
	if err != nil {
		return err
	}

	scale := win.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(core.ScreenWidth*scale), int(core.ScreenHeight*scale))
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(win.Fullscreen)
	ebiten.SetTPS(a.Env.Runtime.Rate())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
