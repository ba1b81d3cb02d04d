// Package invaders implements Space Invaders with a triple-shot pickup and
// a score-driven difficulty ramp.
package invaders

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Layout constants.
const (
	EnemyW       = 40
	EnemyH       = 30
	EnemyPadding = 15
	formationTop = 50

	PlayerW = 50
	PlayerH = 20
	PlayerY = core.ScreenHeight - 50

	BulletW = 4
	BulletH = 10

	PickupSize  = 16
	PickupSpeed = 3
	spreadVX    = 2 // Side bullets of a triple shot
)

// Bullet is a player or enemy projectile.
type Bullet struct {
	Box core.Rect
	VX  float64
	VY  float64
}

func (b *Bullet) move() {
	b.Box.X += b.VX
	b.Box.Y += b.VY
}

// Game implements Invaders.
type Game struct {
	kit.Session
	cfg        config.InvadersConfig
	difficulty config.Difficulty

	player        core.Rect
	enemies       []core.Rect
	direction     float64 // +1 right, -1 left
	bullets       []Bullet
	enemyBullets  []Bullet
	pickups       []core.Rect
	shotCooldown  int // Ticks until the player may fire
	enemyFireTick int // Ticks until the next enemy shot
	tripleTicks   int // Remaining triple-shot time
}

func init() {
	registry.Register("invaders", 5, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates an Invaders game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("invaders", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Reset starts a fresh run.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Invaders
	g.difficulty = config.NewDifficulty(g.cfg.Difficulty)
	g.Begin(g.cfg.Lives)

	g.player = core.NewRect((core.ScreenWidth-PlayerW)/2, PlayerY, PlayerW, PlayerH)
	g.enemies = buildFormation(g.cfg.Rows, g.cfg.Cols)
	g.direction = 1
	g.bullets = nil
	g.enemyBullets = nil
	g.pickups = nil
	g.shotCooldown = 0
	g.enemyFireTick = g.Ticks(g.cfg.EnemyFireMS)
	g.tripleTicks = 0
}

// buildFormation lays the enemies out centered, rows top to bottom.
func buildFormation(rows, cols int) []core.Rect {
	startX := float64(core.ScreenWidth-cols*(EnemyW+EnemyPadding)) / 2
	enemies := make([]core.Rect, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			enemies = append(enemies, core.NewRect(
				startX+float64(c*(EnemyW+EnemyPadding)),
				float64(formationTop+r*(EnemyH+EnemyPadding)),
				EnemyW, EnemyH,
			))
		}
	}
	return enemies
}

// HandleInput fires on Space; movement keys are read while held.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}
	if ev.Pressed(core.KeySpace, core.KeyUp, core.KeyW) {
		g.shoot()
	}
}

// shoot fires one bullet, or three while triple shot is active.
func (g *Game) shoot() {
	if g.shotCooldown > 0 {
		return
	}
	g.shotCooldown = g.Ticks(g.cfg.ShotCooldownMS)

	x := g.player.Center().X - BulletW/2
	box := core.NewRect(x, g.player.Y-BulletH, BulletW, BulletH)
	g.bullets = append(g.bullets, Bullet{Box: box, VY: -g.cfg.BulletSpeed})
	if g.tripleTicks > 0 {
		g.bullets = append(g.bullets,
			Bullet{Box: box, VX: -spreadVX, VY: -g.cfg.BulletSpeed},
			Bullet{Box: box, VX: spreadVX, VY: -g.cfg.BulletSpeed},
		)
	}
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
	if g.tripleTicks > 0 {
		g.tripleTicks--
	}

	g.player.X += float64(g.Keys.Axis(core.LeftKeys, core.RightKeys)) * g.cfg.PlayerSpeed
	g.player = g.player.ClampInto(core.Playfield())

	g.updateBullets()
	if g.marchFormation() {
		g.GameOver()
		return
	}
	g.resolveHits()
	g.updatePickups()
	g.enemyFire()
	if g.updateEnemyBullets() {
		return
	}

	if len(g.enemies) == 0 {
		g.Win()
	}
}

func (g *Game) updateBullets() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		return b.Box.Bottom() < 0 || b.Box.Right() < 0 || b.Box.X > core.ScreenWidth
	})
	for i := range g.bullets {
		g.bullets[i].move()
	}
}

// enemySpeed ramps the march speed with the score.
func (g *Game) enemySpeed() float64 {
	return g.difficulty.Speed(g.cfg.EnemySpeed, g.Score)
}

// marchFormation moves the formation sideways, reversing and dropping at
// the edges. It reports whether the formation reached the player's row.
func (g *Game) marchFormation() bool {
	dx := g.enemySpeed() * g.direction
	edge := false
	for i := range g.enemies {
		g.enemies[i].X += dx
		if g.enemies[i].Right() >= core.ScreenWidth || g.enemies[i].X <= 0 {
			edge = true
		}
	}
	if !edge {
		return false
	}

	g.direction = -g.direction
	reached := false
	for i := range g.enemies {
		g.enemies[i].Y += g.cfg.DropStep
		if g.enemies[i].Bottom() >= g.player.Y {
			reached = true
		}
	}
	return reached
}

// resolveHits removes each bullet with the first enemy it overlaps.
func (g *Game) resolveHits() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		for i, e := range g.enemies {
			if b.Box.Intersects(e) {
				g.enemies = slices.Delete(g.enemies, i, i+1)
				g.kill(e)
				return true
			}
		}
		return false
	})
}

// kill scores an enemy and may drop a triple-shot pickup.
func (g *Game) kill(e core.Rect) {
	g.Env.Sound.Play(core.SoundExplosion)
	g.Score += g.cfg.KillScore
	if g.Rng.Float64() < g.cfg.TripleShotChance {
		g.pickups = append(g.pickups, core.RectAround(e.Center(), PickupSize, PickupSize))
	}
}

func (g *Game) updatePickups() {
	g.pickups = slices.DeleteFunc(g.pickups, func(p core.Rect) bool {
		return p.Y > core.ScreenHeight
	})
	for i := len(g.pickups) - 1; i >= 0; i-- {
		g.pickups[i].Y += PickupSpeed
		if g.pickups[i].Intersects(g.player) {
			g.pickups = slices.Delete(g.pickups, i, i+1)
			g.tripleTicks = g.Ticks(g.cfg.TripleShotMS)
			g.Env.Sound.Play(core.SoundSelect)
		}
	}
}

// enemyFire drops a bullet from a random enemy on the fire interval.
func (g *Game) enemyFire() {
	g.enemyFireTick--
	if g.enemyFireTick > 0 || len(g.enemies) == 0 {
		return
	}
	g.enemyFireTick = g.Ticks(g.cfg.EnemyFireMS)

	shooter := g.enemies[g.Rng.Intn(len(g.enemies))]
	g.enemyBullets = append(g.enemyBullets, Bullet{
		Box: core.NewRect(shooter.Center().X-BulletW/2, shooter.Bottom(), BulletW, BulletH),
		VY:  g.cfg.EnemyBulletSpeed,
	})
}

// updateEnemyBullets moves enemy fire and reports whether it ended the run.
func (g *Game) updateEnemyBullets() bool {
	hit := false
	g.enemyBullets = slices.DeleteFunc(g.enemyBullets, func(b Bullet) bool {
		return b.Box.Y > core.ScreenHeight
	})
	for i := len(g.enemyBullets) - 1; i >= 0; i-- {
		g.enemyBullets[i].move()
		if g.enemyBullets[i].Box.Intersects(g.player) {
			g.enemyBullets = slices.Delete(g.enemyBullets, i, i+1)
			hit = true
		}
	}
	if !hit {
		return false
	}

	g.Lives--
	g.Env.Sound.Play(core.SoundExplosion)
	if g.Lives <= 0 {
		g.Lives = 0
		g.GameOver()
		return true
	}
	return false
}

// Draw renders the formation, player and projectiles.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	p := g.player
	ship := []core.Vec{{X: p.Center().X, Y: p.Y}, {X: p.X, Y: p.Bottom()}, {X: p.Right(), Y: p.Bottom()}}
	dst.FillPolygon(ship, core.ColorPlayer)

	for _, e := range g.enemies {
		dst.FillRect(e, core.ColorEnemy)
		dst.FillRect(core.NewRect(e.X+8, e.Y+8, 5, 5), core.ColorBackground)
		dst.FillRect(core.NewRect(e.Right()-13, e.Y+8, 5, 5), core.ColorBackground)
	}
	for _, b := range g.bullets {
		dst.FillRect(b.Box, core.ColorAccent)
	}
	for _, b := range g.enemyBullets {
		dst.FillRect(b.Box, core.ColorDanger)
	}
	for _, pu := range g.pickups {
		dst.FillEllipse(pu, core.ColorWarning)
	}

	extra := ""
	if g.tripleTicks > 0 {
		extra = fmt.Sprintf("TRIPLE %ds", g.tripleTicks/g.Env.Runtime.Rate()+1)
	}
	g.DrawHUD(dst, extra)
	g.DrawOverlay(dst)
}
