package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const (
	ShipSize     = 15
	BulletRadius = 3
	outlinePts   = 8
)

// Ship is the player's craft. Angle is in radians, 0 pointing right.
type Ship struct {
	Pos   core.Vec
	Vel   core.Vec
	Angle float64
}

// Nose returns the tip of the ship.
func (s Ship) Nose() core.Vec {
	return s.Pos.Add(core.FromAngle(s.Angle, ShipSize))
}

// Outline returns the ship triangle.
func (s Ship) Outline() []core.Vec {
	return []core.Vec{
		s.Nose(),
		s.Pos.Add(core.FromAngle(s.Angle+2.5, ShipSize)),
		s.Pos.Add(core.FromAngle(s.Angle-2.5, ShipSize)),
	}
}

// Bullet is a ship projectile that expires after Life ticks.
type Bullet struct {
	Pos  core.Vec
	Vel  core.Vec
	Life int
}

// Asteroid is a drifting rock. Size 3 is the largest; size 1 is destroyed
// outright when hit.
type Asteroid struct {
	Pos    core.Vec
	Vel    core.Vec
	Size   int
	Angles [outlinePts]float64 // Outline vertex jitter
	Spin   float64
}

// Radius returns the collision radius.
func (a Asteroid) Radius() float64 {
	return 8 + 8*float64(a.Size)
}

// Outline returns the rock polygon rotated by tick.
func (a Asteroid) Outline(tick uint64) []core.Vec {
	r := a.Radius()
	rot := float64(tick) * a.Spin
	pts := make([]core.Vec, outlinePts)
	for i, ang := range a.Angles {
		base := 2 * math.Pi * float64(i) / outlinePts
		pts[i] = a.Pos.Add(core.FromAngle(base+ang+rot, r))
	}
	return pts
}

// newAsteroid creates a rock at pos with a random heading.
func newAsteroid(rng *rand.Rand, pos core.Vec, size int, baseSpeed float64) Asteroid {
	heading := rng.Float64() * 2 * math.Pi
	speed := baseSpeed * (0.5 + rng.Float64())
	a := Asteroid{
		Pos:  pos,
		Vel:  core.FromAngle(heading, speed),
		Size: size,
		Spin: (rng.Float64() - 0.5) * 0.04,
	}
	for i := range a.Angles {
		a.Angles[i] = (rng.Float64() - 0.5) * 0.5
	}
	return a
}

// wrap keeps p on the torus.
func wrap(p core.Vec) core.Vec {
	return core.Vec{X: core.Wrap(p.X, core.ScreenWidth), Y: core.Wrap(p.Y, core.ScreenHeight)}
}

// wrappedDistSq is the squared shortest distance between a and b across edges.
func wrappedDistSq(a, b core.Vec) float64 {
	d := core.Vec{
		X: core.WrappedDelta(a.X, b.X, core.ScreenWidth),
		Y: core.WrappedDelta(a.Y, b.Y, core.ScreenHeight),
	}
	return d.LenSq()
}
