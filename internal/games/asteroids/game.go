// Package asteroids implements Asteroids with screen wrap and waves.
package asteroids

import (
	"fmt"
	"math"
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// safeSpawn keeps new rocks away from the ship.
const safeSpawn = 120

// Game implements Asteroids.
type Game struct {
	kit.Session
	cfg config.AsteroidsConfig

	ship         Ship
	bullets      []Bullet
	asteroids    []Asteroid
	wave         int
	shotCooldown int
	invincible   int // Ticks of invulnerability left
}

func init() {
	registry.Register("asteroids", 7, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates an Asteroids game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("asteroids", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// Reset starts a fresh run at wave 1.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Asteroids
	g.Begin(g.cfg.Lives)

	g.centerShip()
	g.bullets = nil
	g.asteroids = nil
	g.wave = 0
	g.shotCooldown = 0
	g.invincible = g.Ticks(g.cfg.InvincibleMS)
	g.nextWave()
}

func (g *Game) centerShip() {
	g.ship = Ship{
		Pos:   core.Vec{X: core.ScreenWidth / 2, Y: core.ScreenHeight / 2},
		Angle: -math.Pi / 2,
	}
}

// nextWave spawns StartCount large rocks plus one per cleared wave.
func (g *Game) nextWave() {
	g.wave++
	for range g.cfg.StartCount + g.wave - 1 {
		g.asteroids = append(g.asteroids, newAsteroid(g.Rng, g.spawnPoint(), 3, g.cfg.AsteroidSpeed))
	}
}

// spawnPoint picks a random point outside the ship's safe radius.
func (g *Game) spawnPoint() core.Vec {
	var p core.Vec
	for range 32 {
		p = core.Vec{X: float64(g.Rng.Intn(core.ScreenWidth)), Y: float64(g.Rng.Intn(core.ScreenHeight))}
		if wrappedDistSq(p, g.ship.Pos) > safeSpawn*safeSpawn {
			break
		}
	}
	return p
}

// HandleInput fires on Space; rotation and thrust are read while held.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}
	if ev.Pressed(core.KeySpace) {
		g.shoot()
	}
}

func (g *Game) shoot() {
	if g.shotCooldown > 0 {
		return
	}
	g.shotCooldown = g.Ticks(g.cfg.ShotCooldownMS)
	g.bullets = append(g.bullets, Bullet{
		Pos:  g.ship.Pos.Add(core.FromAngle(g.ship.Angle, ShipSize+5)),
		Vel:  core.FromAngle(g.ship.Angle, g.cfg.BulletSpeed),
		Life: g.cfg.BulletLifetime,
	})
	g.Env.Sound.Play(core.SoundShoot)
}

// Update advances one tick.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++

	if g.shotCooldown > 0 {
		g.shotCooldown--
	}
	if g.invincible > 0 {
		g.invincible--
	}

	g.moveShip()
	g.moveBullets()
	for i := range g.asteroids {
		g.asteroids[i].Pos = wrap(g.asteroids[i].Pos.Add(g.asteroids[i].Vel))
	}
	g.resolveShots()
	if len(g.asteroids) == 0 {
		g.nextWave()
	}
	g.checkShip()
}

func (g *Game) moveShip() {
	g.ship.Angle += float64(g.Keys.Axis(core.LeftKeys, core.RightKeys)) * g.cfg.RotationDeg * math.Pi / 180
	if g.Keys.Down(core.UpKeys...) {
		g.ship.Vel = g.ship.Vel.Add(core.FromAngle(g.ship.Angle, g.cfg.Thrust))
	}
	g.ship.Vel = g.ship.Vel.Scale(g.cfg.Friction)
	if speed := g.ship.Vel.Len(); speed > g.cfg.MaxSpeed {
		g.ship.Vel = g.ship.Vel.Scale(g.cfg.MaxSpeed / speed)
	}
	g.ship.Pos = wrap(g.ship.Pos.Add(g.ship.Vel))
}

func (g *Game) moveBullets() {
	for i := range g.bullets {
		g.bullets[i].Pos = wrap(g.bullets[i].Pos.Add(g.bullets[i].Vel))
		g.bullets[i].Life--
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		return b.Life <= 0
	})
}

// resolveShots removes each bullet with the first rock it hits, splitting
// rocks larger than size 1.
func (g *Game) resolveShots() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		for i, a := range g.asteroids {
			if !core.CirclesOverlap(b.Pos, a.Pos, a.Radius()+BulletRadius) {
				continue
			}
			g.asteroids = slices.Delete(g.asteroids, i, i+1)
			g.Score += g.cfg.PointsPerSize * a.Size
			g.Env.Sound.Play(core.SoundExplosion)
			if a.Size > 1 {
				for range 2 {
					g.asteroids = append(g.asteroids, newAsteroid(g.Rng, a.Pos, a.Size-1, g.cfg.AsteroidSpeed))
				}
			}
			return true
		}
		return false
	})
}

// checkShip costs a life on contact unless the ship is invincible.
func (g *Game) checkShip() {
	if g.invincible > 0 {
		return
	}
	for _, a := range g.asteroids {
		reach := ShipSize*0.6 + a.Radius()
		if wrappedDistSq(g.ship.Pos, a.Pos) >= reach*reach {
			continue
		}
		g.Lives--
		g.Env.Sound.Play(core.SoundExplosion)
		if g.Lives <= 0 {
			g.Lives = 0
			g.GameOver()
			return
		}
		g.centerShip()
		g.invincible = g.Ticks(g.cfg.InvincibleMS)
		return
	}
}

// Draw renders rocks, bullets and the ship.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	for _, a := range g.asteroids {
		dst.StrokePolygon(a.Outline(g.Tick), 2, core.ColorText)
	}
	for _, b := range g.bullets {
		core.FillCircle(dst, b.Pos, BulletRadius, core.ColorBall)
	}

	blink := g.invincible > 0 && (g.invincible/6)%2 == 0
	if !blink || g.Finished() {
		dst.FillPolygon(g.ship.Outline(), core.ColorPaddle)
	}
	if g.invincible > 0 {
		dst.StrokePolygon(g.ship.Outline(), 2, core.ColorWarning)
	}

	g.DrawHUD(dst, fmt.Sprintf("WAVE %d", g.wave))
	g.DrawOverlay(dst)
}
