package kit

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/kit/kittest"
)

// homeState is a minimal state recording that it became current.
type homeState struct {
	Session
	resets int
}

func (h *homeState) HandleInput(core.Event) {}
func (h *homeState) Update()                {}
func (h *homeState) Draw(core.Surface)      {}
func (h *homeState) Reset()                 { h.resets++ }

func newSession(t *testing.T) (*Session, kittest.Fixture) {
	t.Helper()
	fx := kittest.New(1)
	fx.Scores.Best["test"] = 70
	s := NewSession("test", fx.Env)
	s.Begin(3)
	return &s, fx
}

func TestBeginClearsRun(t *testing.T) {
	s, _ := newSession(t)
	s.Score, s.Tick, s.Paused, s.Over = 50, 99, true, true

	s.Begin(2)

	if s.Score != 0 || s.Tick != 0 || s.Paused || s.Over || s.Won {
		t.Errorf("Begin left state behind: %+v", s.Status())
	}
	if s.Lives != 2 {
		t.Errorf("Lives = %d, want 2", s.Lives)
	}
	if s.Best() != 70 {
		t.Errorf("Best = %d, want 70", s.Best())
	}
}

func TestSameSeedSameRolls(t *testing.T) {
	a, _ := newSession(t)
	b, _ := newSession(t)
	for range 10 {
		if a.Rng.Int() != b.Rng.Int() {
			t.Fatal("sessions with the same seed diverged")
		}
	}
}

func TestTicksAndSeconds(t *testing.T) {
	s, _ := newSession(t)
	if got := s.Ticks(1000); got != 60 {
		t.Errorf("Ticks(1000) = %d, want 60", got)
	}
	if got := s.Ticks(1); got != 1 {
		t.Errorf("Ticks(1) = %d, want 1", got)
	}
	if got := s.Seconds(150); got != 2 {
		t.Errorf("Seconds(150) = %d, want 2", got)
	}
}

func TestPauseToggle(t *testing.T) {
	s, _ := newSession(t)

	if !s.Intercept(core.Press(core.KeyP), nil) || !s.Paused {
		t.Fatal("P should pause")
	}
	if !s.Intercept(core.Press(core.KeyLeft), nil) {
		t.Error("input must be swallowed while paused")
	}
	s.Intercept(core.Press(core.KeyP), nil)
	if s.Paused || !s.Running() {
		t.Error("second P should resume")
	}
	if s.Intercept(core.Press(core.KeyLeft), nil) {
		t.Error("gameplay keys pass through while running")
	}
	if !s.Keys.Down(core.KeyLeft) {
		t.Error("held keys should be tracked")
	}
}

func TestEscapeGoesHome(t *testing.T) {
	s, fx := newSession(t)
	home := &homeState{}
	fx.Env.Manager.SetHome(home)

	if !s.Intercept(core.Press(core.KeyEscape), nil) {
		t.Fatal("Esc should be consumed")
	}
	if fx.Env.Manager.Current() != home || home.resets != 1 {
		t.Error("Esc should switch to the home state")
	}
}

func TestRestartOnlyWhenFinished(t *testing.T) {
	s, _ := newSession(t)
	restarts := 0
	restart := func() { restarts++ }

	s.Intercept(core.Press(core.KeySpace), restart)
	if restarts != 0 {
		t.Fatal("Space must not restart a running game")
	}

	s.GameOver()
	s.Intercept(core.Press(core.KeyLeft), restart)
	s.Intercept(core.Press(core.KeyR), restart)
	if restarts != 1 {
		t.Errorf("restarts = %d, want 1", restarts)
	}
}

func TestFinishSavesOnce(t *testing.T) {
	s, fx := newSession(t)
	s.Score = 120

	s.GameOver()
	s.GameOver()
	s.Win()

	if !s.Over || s.Won {
		t.Errorf("first finish must stick: %+v", s.Status())
	}
	if len(fx.Scores.Attempts) != 1 {
		t.Errorf("save attempts = %d, want 1", len(fx.Scores.Attempts))
	}
	if s.Best() != 120 || fx.Scores.Best["test"] != 120 {
		t.Errorf("best = %d, want 120", s.Best())
	}
	if fx.Sound.Played[core.SoundGameOver] != 1 {
		t.Error("game over sound should play once")
	}
}

func TestWinWithStoresOtherScore(t *testing.T) {
	s, fx := newSession(t)
	s.Score = 12

	s.WinWith(880)

	if !s.Won || s.Score != 12 {
		t.Errorf("status = %+v", s.Status())
	}
	if fx.Scores.Best["test"] != 880 {
		t.Errorf("stored = %d, want 880", fx.Scores.Best["test"])
	}
}

func TestLowerScoreKeepsBest(t *testing.T) {
	s, fx := newSession(t)
	s.Score = 30
	s.GameOver()

	if fx.Scores.Best["test"] != 70 || s.Best() != 70 {
		t.Error("a lower score must not replace the best")
	}
}

func TestHUDAndOverlay(t *testing.T) {
	s, _ := newSession(t)
	s.Score = 40

	scr := core.NewScreen(80, 24)
	s.DrawHUD(scr, "LEVEL 2")
	if !strings.Contains(scr.String(), "SCORE 40") || !strings.Contains(scr.String(), "LEVEL 2") {
		t.Errorf("HUD missing score:\n%s", scr.String())
	}
	if !strings.Contains(scr.String(), "LIVES 3") {
		t.Errorf("HUD missing lives:\n%s", scr.String())
	}

	s.GameOver()
	scr = core.NewScreen(80, 24)
	s.DrawOverlay(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Errorf("overlay missing:\n%s", scr.String())
	}
}
