package pong

// Snapshot captures the match state for determinism tests.
type Snapshot struct {
	Tick       uint64
	LeftY      float64
	RightY     float64
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	ScoreLeft  int
	ScoreRight int
	Won        bool
	GameOver   bool
}

// Snapshot returns the current match snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.Tick,
		LeftY:      g.left.Y,
		RightY:     g.right.Y,
		BallX:      g.ball.X,
		BallY:      g.ball.Y,
		BallVX:     g.vx,
		BallVY:     g.vy,
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		Won:        g.Won,
		GameOver:   g.Over,
	}
}
