// Package flappy implements a Flappy Bird style side scroller.
package flappy

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Bird geometry.
const (
	BirdX    = 100
	BirdSize = 30
)

// Game implements Flappy.
type Game struct {
	kit.Session
	cfg        config.FlappyConfig
	difficulty config.Difficulty

	bird      core.Rect
	velocity  float64
	ready     bool // Waiting for the first flap
	pipes     *PipeManager
	spawnTick int // Ticks until the next pipe
}

func init() {
	registry.Register("flappy", 6, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Flappy game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("flappy", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy Bird" }

// Reset starts a fresh run in the get-ready phase.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Flappy
	g.difficulty = config.NewDifficulty(g.cfg.Difficulty)
	g.Begin(0)

	g.bird = core.NewRect(BirdX, core.ScreenHeight/2, BirdSize, BirdSize)
	g.velocity = 0
	g.ready = true
	g.pipes = NewPipeManager(g.Rng)
	g.spawnTick = g.Ticks(g.cfg.PipeIntervalMS)
}

// HandleInput flaps on Space or Up.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}
	if ev.Pressed(core.KeySpace, core.KeyUp, core.KeyW) {
		g.ready = false
		g.velocity = g.cfg.JumpImpulse
		g.Env.Sound.Play(core.SoundJump)
	}
}

// Update applies gravity, scrolls pipes and checks collisions.
func (g *Game) Update() {
	if !g.Running() || g.ready {
		return
	}
	g.Tick++

	g.velocity = math.Min(g.velocity+g.cfg.Gravity, g.cfg.MaxFallSpeed)
	g.bird.Y += g.velocity

	g.spawnTick--
	if g.spawnTick <= 0 {
		g.spawnTick = g.Ticks(g.cfg.PipeIntervalMS)
		g.pipes.Spawn(g.cfg.PipeWidth, g.difficulty.Gap(g.cfg.PipeGap, minGap, g.Score))
	}

	speed := g.difficulty.Speed(g.cfg.PipeSpeed, g.Score)
	if n := g.pipes.Update(g.bird.X, speed); n > 0 {
		g.AddScore(n)
	}

	if g.pipes.Collides(g.bird) || g.bird.Y < 0 || g.bird.Bottom() > core.ScreenHeight {
		g.GameOver()
	}
}

// Draw renders pipes and the bird.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for _, p := range g.pipes.Pipes() {
		for _, r := range []core.Rect{p.TopRect(), p.BottomRect()} {
			dst.FillRect(r, core.ColorSuccess)
			dst.StrokeRect(r, 2, core.ColorGrid)
		}
	}

	dst.FillRect(g.bird, core.ColorWarning)
	dst.StrokeRect(g.bird, 1, core.ColorText)

	g.DrawHUD(dst, "")
	if g.ready && !g.Paused {
		dst.Text("GET READY", core.ScreenWidth/2, 180, core.TextTitle, core.AlignCenter, core.ColorAccent)
		dst.Text("SPACE to flap", core.ScreenWidth/2, 260, core.TextHUD, core.AlignCenter, core.ColorText)
	}
	g.DrawOverlay(dst)
}
