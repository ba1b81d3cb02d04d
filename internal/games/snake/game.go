// Package snake implements grid Snake with power-ups.
package snake

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Grid geometry.
const (
	CellSize = 20
	GridW    = core.ScreenWidth / CellSize  // 40
	GridH    = core.ScreenHeight / CellSize // 30
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

func (p Point) step(d Direction) Point {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

func (p Point) inside() bool {
	return p.X >= 0 && p.X < GridW && p.Y >= 0 && p.Y < GridH
}

func (p Point) rect() core.Rect {
	return core.NewRect(float64(p.X*CellSize), float64(p.Y*CellSize), CellSize, CellSize)
}

// Game implements Snake.
type Game struct {
	kit.Session
	cfg config.SnakeConfig

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered turn applied on the next move
	turned    bool      // A turn is already buffered for this step
	food      Point
	foodEaten int

	intervalMS int
	moveTicker int

	powerUp *PowerUp
	last    Kind // Most recent pickup, shown in the HUD
}

func init() {
	registry.Register("snake", 1, func(env registry.Env) registry.Game {
		return New(env)
	})
}

// New creates a Snake game. Call Reset before the first Update.
func New(env registry.Env) *Game {
	return &Game{Session: kit.NewSession("snake", env)}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a fresh run.
func (g *Game) Reset() {
	g.cfg = g.Env.Games().Snake
	g.Begin(0)

	g.snake = []Point{{5, 5}, {4, 5}, {3, 5}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.turned = false
	g.foodEaten = 0
	g.intervalMS = g.cfg.MoveIntervalMS
	g.moveTicker = 0
	g.powerUp = nil
	g.last = KindNone
	g.spawnFood()
}

// HandleInput buffers direction changes.
func (g *Game) HandleInput(ev core.Event) {
	if g.Intercept(ev, g.Reset) {
		return
	}
	if ev.Kind != core.KeyPressed {
		return
	}

	var dir Direction
	switch {
	case ev.Pressed(core.UpKeys...):
		dir = DirUp
	case ev.Pressed(core.DownKeys...):
		dir = DirDown
	case ev.Pressed(core.LeftKeys...):
		dir = DirLeft
	case ev.Pressed(core.RightKeys...):
		dir = DirRight
	default:
		return
	}
	g.turn(dir)
}

// turn buffers one turn per step and refuses to reverse onto the neck.
func (g *Game) turn(dir Direction) {
	if g.turned || dir == g.direction || isOpposite(dir, g.direction) {
		return
	}
	g.nextDir = dir
	g.turned = true
}

func isOpposite(d1, d2 Direction) bool {
	return (d1+2)%4 == d2
}

// Update advances one tick.
func (g *Game) Update() {
	if !g.Running() {
		return
	}
	g.Tick++

	g.updatePowerUps()

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.moveSnake()
	}
}

// moveInterval returns the ticks between moves.
func (g *Game) moveInterval() int {
	return max(1, g.Ticks(g.intervalMS))
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir
	g.turned = false

	newHead := g.snake[0].step(g.direction)

	if !newHead.inside() {
		g.GameOver()
		return
	}

	// The whole body counts, tail included.
	if g.isSnakeAt(newHead) {
		g.GameOver()
		return
	}

	g.snake = append([]Point{newHead}, g.snake...)

	// Eating grows the snake on this move: the tail stays put.
	switch {
	case newHead == g.food:
		g.foodEaten++
		g.intervalMS = max(g.cfg.MinIntervalMS, g.intervalMS-g.cfg.SpeedupMS)
		g.AddScore(g.cfg.FoodScore)
		g.spawnFood()
	case g.powerUp != nil && newHead == g.powerUp.Pos:
		g.collect(*g.powerUp)
		g.powerUp = nil
	default:
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// freeCells lists every cell not covered by the snake, food or power-up.
func (g *Game) freeCells() []Point {
	taken := make(map[Point]bool, len(g.snake)+2)
	for _, seg := range g.snake {
		taken[seg] = true
	}
	taken[g.food] = true
	if g.powerUp != nil {
		taken[g.powerUp.Pos] = true
	}

	free := make([]Point, 0, GridW*GridH-len(taken))
	for y := range GridH {
		for x := range GridW {
			if p := (Point{x, y}); !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// spawnFood places food on a random free cell.
func (g *Game) spawnFood() {
	g.food = Point{-1, -1}
	free := g.freeCells()
	if len(free) == 0 {
		g.Win()
		return
	}
	g.food = free[g.Rng.Intn(len(free))]
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Draw renders the board.
func (g *Game) Draw(dst core.Surface) {
	dst.Clear(core.ColorBackground)

	if g.food.inside() {
		core.FillCircle(dst, g.food.rect().Center(), CellSize/2-2, core.ColorDanger)
	}
	if g.powerUp != nil {
		g.powerUp.draw(dst, g.Tick)
	}

	for i, seg := range g.snake {
		c := core.ColorPlayer
		if i == 0 {
			c = core.ColorSuccess
		}
		dst.FillRect(seg.rect().Inset(1), c)
	}

	extra := fmt.Sprintf("SPEED %dms", g.intervalMS)
	if g.last != KindNone {
		extra = fmt.Sprintf("%s  LAST %s", extra, g.last)
	}
	g.DrawHUD(dst, extra)
	g.DrawOverlay(dst)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
