// Package pong implements Pong against a CPU paddle.
// The player controls the left paddle, the CPU the right one.
package pong

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Layout constants.
const (
	PaddleWidth  = 15
	PaddleHeight = 90
	PaddleOffset = 20 // Distance from the side edge
	BallSize     = 15
)

// Game implements Pong.
type Game struct {
	kit.Session
	cfg config.PongConfig

	left, right core.Rect
	ball        core.Rect
	vx, vy      float64

	scoreLeft  int // Player
	scoreRight int // CPU
}

func init() {
	registry.Register("pong", 4, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Pong game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("pong", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pong" }

// Title returns the display name.
func (g *Game) Title() string { return "Pong" }

// Reset starts a new match.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Pong
	g.Begin(0)

	y := float64(core.ScreenHeight-PaddleHeight) / 2
	g.left = core.NewRect(PaddleOffset, y, PaddleWidth, PaddleHeight)
	g.right = core.NewRect(core.ScreenWidth-PaddleOffset-PaddleWidth, y, PaddleWidth, PaddleHeight)
	g.scoreLeft = 0
	g.scoreRight = 0
	g.serve()
}

// serve centers the ball with a random diagonal.
func (g *Game) serve() {
	g.ball = core.RectAround(core.Vec{X: core.ScreenWidth / 2, Y: core.ScreenHeight / 2}, BallSize, BallSize)
	g.vx = g.cfg.BallSpeed * g.randomSign()
	g.vy = g.cfg.BallSpeed * g.randomSign()
}

func (g *Game) randomSign() float64 {
	if g.Rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// HandleInput tracks held paddle keys.
func (g *Game) HandleInput(ev core.Event) {
	g.Intercept(ev, g.Reset)
}

// Update moves both paddles and the ball, and scores exits.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++
	field := core.Playfield()

	g.left.Y += float64(g.Keys.Axis(core.UpKeys, core.DownKeys)) * g.cfg.PaddleSpeed
	g.left = g.left.ClampInto(field)

	g.updateCPU()
	g.right = g.right.ClampInto(field)

	g.ball.X += g.vx
	g.ball.Y += g.vy

	if g.ball.Y <= 0 || g.ball.Bottom() >= core.ScreenHeight {
		g.vy = -g.vy
	}

	if g.vx < 0 && g.ball.Intersects(g.left) || g.vx > 0 && g.ball.Intersects(g.right) {
		g.vx = core.Clamp(g.vx*-g.cfg.SpeedUp, -g.cfg.MaxBallSpeed, g.cfg.MaxBallSpeed)
		g.Env.Sound.Play(core.SoundSelect)
	}

	switch {
	case g.ball.X <= 0:
		g.scoreRight++
		g.Env.Sound.Play(core.SoundScore)
		g.serve()
	case g.ball.Right() >= core.ScreenWidth:
		g.scoreLeft++
		g.Score = g.scoreLeft
		g.Env.Sound.Play(core.SoundScore)
		g.serve()
	}

	switch {
	case g.scoreLeft >= g.cfg.WinScore:
		g.Win()
	case g.scoreRight >= g.cfg.WinScore:
		g.GameOver()
	}
}

// updateCPU tracks the ball, a little slower than the player can move.
func (g *Game) updateCPU() {
	speed := g.cfg.PaddleSpeed - g.cfg.AIHandicap
	switch target, center := g.ball.Center().Y, g.right.Center().Y; {
	case target < center:
		g.right.Y -= speed
	case target > center:
		g.right.Y += speed
	}
}

// Draw renders the court.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	dst.Line(core.Vec{X: core.ScreenWidth / 2}, core.Vec{X: core.ScreenWidth / 2, Y: core.ScreenHeight}, 2, core.ColorGrid)
	dst.FillRect(g.left, core.ColorPaddle)
	dst.FillRect(g.right, core.ColorEnemy)
	dst.FillEllipse(g.ball, core.ColorBall)

	dst.Text(fmt.Sprintf("%d   %d", g.scoreLeft, g.scoreRight), core.ScreenWidth/2, 18, core.TextHUD, core.AlignCenter, core.ColorText)
	dst.Text(fmt.Sprintf("BEST %d", g.Best()), 10, 6, core.TextHUD, core.AlignLeft, core.ColorGrid)

	switch {
	case g.Won:
		core.Overlay(dst, "YOU WIN!", fmt.Sprintf("%d - %d", g.scoreLeft, g.scoreRight), core.ColorSuccess)
	case g.Over:
		core.Overlay(dst, "YOU LOSE!", fmt.Sprintf("%d - %d", g.scoreLeft, g.scoreRight), core.ColorDanger)
	default:
		g.DrawOverlay(dst)
	}
}
