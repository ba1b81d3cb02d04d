package breakout

import (
	"hash/fnv"
	"math"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	PaddleX    float64
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	BricksLeft int
	GameOver   bool
	Won        bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.Tick,
		Score:      g.Score,
		Lives:      g.Lives,
		PaddleX:    g.paddle.X,
		BallX:      g.ball.Box.X,
		BallY:      g.ball.Box.Y,
		BallVX:     g.ball.VX,
		BallVY:     g.ball.VY,
		BricksLeft: len(g.bricks),
		GameOver:   g.Over,
		Won:        g.Won,
	}
}

// Hash computes a hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v uint64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	write(snap.Tick)
	write(uint64(snap.Score))
	write(uint64(snap.Lives))
	write(math.Float64bits(snap.PaddleX))
	write(math.Float64bits(snap.BallX))
	write(math.Float64bits(snap.BallY))
	write(math.Float64bits(snap.BallVX))
	write(math.Float64bits(snap.BallVY))
	write(uint64(snap.BricksLeft))
	if snap.GameOver {
		write(1)
	}
	if snap.Won {
		write(2)
	}
	return h.Sum64()
}
