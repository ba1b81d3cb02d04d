package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit/kittest"
)

func newGame(t *testing.T, seed int64) (*Game, kittest.Fixture) {
	t.Helper()
	fx := kittest.New(seed)
	g := New(fx.Env)
	g.Reset()
	return g, fx
}

func TestReset(t *testing.T) {
	g, _ := newGame(t, 1)

	if g.Status().Terminal() {
		t.Fatal("fresh match must not be terminal")
	}
	field := core.Playfield()
	for name, r := range map[string]core.Rect{"left": g.left, "right": g.right, "ball": g.ball} {
		if !r.Within(field) {
			t.Errorf("%s out of the field: %+v", name, r)
		}
	}
	if math.Abs(g.vx) != 5 || math.Abs(g.vy) != 5 {
		t.Errorf("serve velocity = (%v,%v), want magnitude 5", g.vx, g.vy)
	}
}

func TestLeftEdgeScoresForRight(t *testing.T) {
	g, fx := newGame(t, 2)
	g.ball = core.NewRect(2, 300, BallSize, BallSize)
	g.vx, g.vy = -5, 0
	g.left.Y = 0 // out of the way

	g.Update()

	if g.scoreRight != 1 || g.scoreLeft != 0 {
		t.Errorf("score = %d-%d, want 0-1", g.scoreLeft, g.scoreRight)
	}
	center := g.ball.Center()
	if center.X != core.ScreenWidth/2 || center.Y != core.ScreenHeight/2 {
		t.Errorf("ball not re-centered: %+v", center)
	}
	if math.Abs(g.vx) != 5 || math.Abs(g.vy) != 5 {
		t.Errorf("velocity = (%v,%v), want re-served at base speed", g.vx, g.vy)
	}
	if fx.Sound.Played[core.SoundScore] != 1 {
		t.Error("score sound not played")
	}
}

func TestRightEdgeScoresForPlayer(t *testing.T) {
	g, _ := newGame(t, 2)
	g.ball = core.NewRect(core.ScreenWidth-BallSize-2, 300, BallSize, BallSize)
	g.vx, g.vy = 5, 0
	g.right.Y = 0

	g.Update()

	if g.scoreLeft != 1 || g.Status().Score != 1 {
		t.Errorf("player score = %d (status %d), want 1", g.scoreLeft, g.Status().Score)
	}
}

func TestPaddleHitSpeedsUp(t *testing.T) {
	g, _ := newGame(t, 3)
	g.ball = core.NewRect(g.left.Right()+1, g.left.Y+30, BallSize, BallSize)
	g.vx, g.vy = -5, 0

	g.Update()

	if want := 5 * 1.05; math.Abs(g.vx-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", g.vx, want)
	}
}

func TestBallSpeedCap(t *testing.T) {
	g, _ := newGame(t, 3)
	g.ball = core.NewRect(g.left.Right()+1, g.left.Y+30, BallSize, BallSize)
	g.vx, g.vy = -14.9, 0

	g.Update()

	if g.vx != 15 {
		t.Errorf("vx = %v, want capped at 15", g.vx)
	}
}

func TestCPUTracksBall(t *testing.T) {
	g, _ := newGame(t, 4)
	g.ball = core.NewRect(400, 10, BallSize, BallSize)
	g.vx, g.vy = 0, 0
	y := g.right.Y

	g.Update()

	if want := y - (g.cfg.PaddleSpeed - g.cfg.AIHandicap); g.right.Y != want {
		t.Errorf("cpu y = %v, want %v", g.right.Y, want)
	}
}

func TestPlayerPaddleClamped(t *testing.T) {
	g, _ := newGame(t, 4)
	g.HandleInput(core.Press(core.KeyUp))
	for range 200 {
		g.Update()
	}
	if g.left.Y != 0 {
		t.Errorf("paddle y = %v, want clamped to 0", g.left.Y)
	}
}

func TestMatchEnd(t *testing.T) {
	tests := []struct {
		name    string
		left    int
		right   int
		wantWon bool
	}{
		{"player wins", 9, 3, true},
		{"cpu wins", 4, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, fx := newGame(t, 5)
			g.scoreLeft, g.scoreRight = tc.left, tc.right
			g.Score = tc.left
			g.left.Y, g.right.Y = 0, 0
			if tc.wantWon {
				g.ball = core.NewRect(core.ScreenWidth-BallSize-2, 300, BallSize, BallSize)
				g.vx = 5
			} else {
				g.ball = core.NewRect(2, 300, BallSize, BallSize)
				g.vx = -5
			}
			g.vy = 0

			g.Update()

			if g.Won != tc.wantWon || g.Over == tc.wantWon {
				t.Errorf("won=%v over=%v, want won=%v", g.Won, g.Over, tc.wantWon)
			}
			if got := fx.Scores.Attempts; len(got) != 1 || got[0] != g.scoreLeft {
				t.Errorf("saved attempts = %v, want the player's %d", got, g.scoreLeft)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	g1, _ := newGame(t, 77)
	g2, _ := newGame(t, 77)
	for range 3000 {
		g1.Update()
		g2.Update()
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Error("same seed must give the same match")
	}
}

func TestDrawSmoke(t *testing.T) {
	g, _ := newGame(t, 1)
	kittest.Draw(g)
	g.Win()
	kittest.Draw(g)
}
