package breakout

import "github.com/vovakirdan/retro-arcade/internal/core"

// Ball is the ball's bounding box and velocity per tick.
type Ball struct {
	Box    core.Rect
	VX, VY float64
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.Box.X += b.VX
	b.Box.Y += b.VY
}

// Center returns the ball's center.
func (b *Ball) Center() core.Vec {
	return b.Box.Center()
}

// Brick is one destructible block.
type Brick struct {
	Box   core.Rect
	Color core.Color
}

// CollisionSide identifies which boundary the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionSides
	CollisionTop
	CollisionBottom
)

// CheckWallCollision bounces the ball off the side and top walls.
// It reports CollisionBottom when the ball touched the floor, which costs a
// life instead of bouncing.
func CheckWallCollision(ball *Ball) CollisionSide {
	side := CollisionNone
	if ball.Box.X <= 0 || ball.Box.Right() >= core.ScreenWidth {
		ball.VX = -ball.VX
		side = CollisionSides
	}
	if ball.Box.Y <= 0 {
		ball.VY = -ball.VY
		side = CollisionTop
	}
	if ball.Box.Bottom() >= core.ScreenHeight {
		side = CollisionBottom
	}
	return side
}

// CheckPaddleCollision sends the ball upward off the paddle. The horizontal
// velocity gains twice the normalized hit offset, clamped to maxVX.
// Returns true if a collision occurred.
func CheckPaddleCollision(ball *Ball, paddle core.Rect, maxVX float64) bool {
	if !ball.Box.Intersects(paddle) {
		return false
	}

	ball.VY = -core.Abs(ball.VY)

	// -1 at the left edge, +1 at the right edge
	offset := (ball.Center().X - paddle.Center().X) / (paddle.W / 2)
	ball.VX = core.Clamp(ball.VX+offset*2, -maxVX, maxVX)
	return true
}

// CheckBrickCollision returns the index of the first brick the ball
// overlaps, or -1.
func CheckBrickCollision(ball *Ball, bricks []Brick) int {
	for i, b := range bricks {
		if ball.Box.Intersects(b.Box) {
			return i
		}
	}
	return -1
}
