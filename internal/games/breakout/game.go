// Package breakout implements brick-breaking Breakout.
package breakout

import (
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Layout constants.
const (
	PaddleHeight = 15
	PaddleY      = core.ScreenHeight - 40
	BallRadius   = 8

	brickHeight  = 25
	brickPadding = 5
	brickTop     = brickPadding + 50
)

var rowColors = []core.Color{
	core.ColorDanger, core.ColorWarning, core.ColorSuccess,
	core.ColorAccent, core.ColorHighlight, core.ColorText,
}

// Game implements Breakout.
type Game struct {
	kit.Session
	cfg config.BreakoutConfig

	paddle core.Rect
	ball   Ball
	bricks []Brick
}

func init() {
	registry.Register("breakout", 3, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Breakout game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("breakout", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Reset starts a fresh run.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Breakout
	g.Begin(g.cfg.Lives)

	g.paddle = core.NewRect((core.ScreenWidth-g.cfg.PaddleWidth)/2, PaddleY, g.cfg.PaddleWidth, PaddleHeight)
	g.bricks = g.buildBricks()
	g.serve(1)
}

// buildBricks lays out the wall, one color per row.
func (g *Game) buildBricks() []Brick {
	rows, cols := g.cfg.Rows, g.cfg.Cols
	width := float64((core.ScreenWidth - (cols+1)*brickPadding) / cols)

	bricks := make([]Brick, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			bricks = append(bricks, Brick{
				Box: core.NewRect(
					float64(brickPadding+c*(int(width)+brickPadding)),
					float64(brickTop+r*(brickHeight+brickPadding)),
					width, brickHeight,
				),
				Color: rowColors[r%len(rowColors)],
			})
		}
	}
	return bricks
}

// serve puts the ball at the middle of the field, heading up.
func (g *Game) serve(dir float64) {
	speed := g.cfg.BallSpeed
	g.ball = Ball{
		Box: core.NewRect(core.ScreenWidth/2, core.ScreenHeight/2, BallRadius*2, BallRadius*2),
		VX:  speed * dir,
		VY:  -speed,
	}
}

// HandleInput tracks held paddle keys.
func (g *Game) HandleInput(ev core.Event) {
	g.Intercept(ev, g.Reset)
}

// Update moves the paddle and ball and resolves collisions.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++

	g.paddle.X += float64(g.Keys.Axis(core.LeftKeys, core.RightKeys)) * g.cfg.PaddleSpeed
	g.paddle = g.paddle.ClampInto(core.Playfield())

	g.ball.Move()

	if CheckWallCollision(&g.ball) == CollisionBottom {
		g.loseLife()
		return
	}

	if CheckPaddleCollision(&g.ball, g.paddle, g.cfg.MaxBallSpeed) {
		g.Env.Sound.Play(core.SoundSelect)
	}

	// At most one brick per tick
	if i := CheckBrickCollision(&g.ball, g.bricks); i >= 0 {
		g.bricks = slices.Delete(g.bricks, i, i+1)
		g.ball.VY = -g.ball.VY
		g.AddScore(g.cfg.BrickScore)
		if len(g.bricks) == 0 {
			g.Win()
		}
	}
}

func (g *Game) loseLife() {
	g.Lives--
	if g.Lives <= 0 {
		g.Lives = 0
		g.GameOver()
		return
	}
	g.Env.Sound.Play(core.SoundExplosion)

	dir := 1.0
	if g.Rng.Intn(2) == 0 {
		dir = -1
	}
	g.serve(dir)
}

// Draw renders the wall, paddle and ball.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for _, b := range g.bricks {
		dst.FillRect(b.Box, b.Color)
	}
	dst.FillRect(g.paddle, core.ColorAccent)
	dst.FillEllipse(g.ball.Box, core.ColorWhite)

	g.DrawHUD(dst, "")
	g.DrawOverlay(dst)
}
