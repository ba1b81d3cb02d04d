package flappy

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Gap centers are drawn from [gapCenterMin, gapCenterMax].
const (
	gapCenterMin = 150
	gapCenterMax = 450
	minGap       = 110
)

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X      float64 // Left edge
	GapY   float64 // Top of the gap
	Gap    float64 // Height of the passable gap
	Width  float64
	Passed bool // Whether the bird has passed this pipe (for scoring)
}

// TopRect returns the collision rectangle for the top portion of the pipe.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.GapY)
}

// BottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p Pipe) BottomRect() core.Rect {
	bottomY := p.GapY + p.Gap
	return core.NewRect(p.X, bottomY, p.Width, core.ScreenHeight-bottomY)
}

// Hits reports whether r touches either half of the pipe.
func (p Pipe) Hits(r core.Rect) bool {
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}

// PipeManager handles spawning, movement, and removal of pipes.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
}

// NewPipeManager creates an empty pipe manager drawing from rng.
func NewPipeManager(rng *rand.Rand) *PipeManager {
	return &PipeManager{pipes: make([]Pipe, 0, 8), rng: rng}
}

// Spawn adds a pipe at the right edge with a random gap center.
func (pm *PipeManager) Spawn(width float64, gap int) {
	center := float64(gapCenterMin + pm.rng.Intn(gapCenterMax-gapCenterMin+1))
	pm.pipes = append(pm.pipes, Pipe{
		X:     core.ScreenWidth,
		GapY:  center - float64(gap)/2,
		Gap:   float64(gap),
		Width: width,
	})
}

// Update scrolls pipes left, drops off-screen ones and returns how many
// pipes the bird at birdX passed this tick.
func (pm *PipeManager) Update(birdX, speed float64) int {
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X -= speed
		if !p.Passed && p.X+p.Width < birdX {
			p.Passed = true
			passed++
		}
	}
	pm.pipes = slices.DeleteFunc(pm.pipes, func(p Pipe) bool {
		return p.X+p.Width < 0
	})
	return passed
}

// Collides reports whether r hits any pipe.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.pipes {
		if p.Hits(r) {
			return true
		}
	}
	return false
}

// Pipes returns the current pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
