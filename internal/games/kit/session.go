// Package kit holds the bookkeeping every game shares: the run flags,
// pause and restart handling, the seeded RNG, high-score saving and the HUD.
package kit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/state"
)

// Session is embedded by games. It satisfies the Active/SetActive half of
// state.State and implements Status.
type Session struct {
	state.Base

	Env  registry.Env
	Rng  *rand.Rand
	Keys core.KeyState
	Tick uint64

	Score  int
	Lives  int
	Paused bool
	Over   bool
	Won    bool

	// ScoreName and BestText customize the HUD for games whose stored
	// score is not the number they display.
	ScoreName string
	BestText  func(best int) string

	id    string
	best  int
	saved bool
}

// NewSession normalizes env and binds the session to a high-score key.
func NewSession(id string, env registry.Env) Session {
	env = env.Normalize()
	return Session{Env: env, id: id, Keys: core.NewKeyState()}
}

// Begin clears the run. Games call it first thing in Reset.
func (s *Session) Begin(lives int) {
	seed := s.Env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.Rng = rand.New(rand.NewSource(seed))
	s.Keys.Clear()
	s.Tick = 0
	s.Score = 0
	s.Lives = lives
	s.Paused = false
	s.Over = false
	s.Won = false
	s.saved = false
	s.best = s.Env.Scores.Get(s.id)
}

// Key returns the high-score key.
func (s *Session) Key() string {
	return s.id
}

// Best returns the stored best score as of the last Begin or save.
func (s *Session) Best() int {
	return s.best
}

// Status implements registry.Game.
func (s *Session) Status() core.Status {
	return core.Status{
		Score:    s.Score,
		Lives:    s.Lives,
		GameOver: s.Over,
		Won:      s.Won,
		Paused:   s.Paused,
	}
}

// Finished reports whether the run reached a terminal state.
func (s *Session) Finished() bool {
	return s.Over || s.Won
}

// Running reports whether Update should advance gameplay.
func (s *Session) Running() bool {
	return !s.Paused && !s.Finished()
}

// Ticks converts milliseconds to ticks at the session's rate.
func (s *Session) Ticks(ms int) int {
	return core.TicksMS(ms, s.Env.Runtime.Rate())
}

// Seconds converts ticks to whole seconds.
func (s *Session) Seconds(ticks uint64) int {
	return int(ticks) / s.Env.Runtime.Rate()
}

// Intercept handles the keys shared by every game: Esc returns to the
// menu, P toggles pause and restart keys restart a finished run. It also
// tracks held keys. It returns true when the event must not reach gameplay.
func (s *Session) Intercept(ev core.Event, restart func()) bool {
	s.Keys.Apply(ev)

	switch {
	case ev.Pressed(core.KeyEscape):
		s.Env.Manager.Home()
		return true
	case s.Finished():
		if core.IsRestart(ev) {
			s.Env.Sound.Play(core.SoundSelect)
			restart()
		}
		return true
	case ev.Pressed(core.KeyP):
		s.Paused = !s.Paused
		s.Keys.Clear()
		return true
	case s.Paused:
		return true
	}
	return false
}

// AddScore increases the score and plays the score sound.
func (s *Session) AddScore(points int) {
	s.Score += points
	s.Env.Sound.Play(core.SoundScore)
}

// GameOver ends the run as a loss and saves the score.
func (s *Session) GameOver() {
	s.finish(false, s.Score)
}

// Win ends the run as a win and saves the score.
func (s *Session) Win() {
	s.finish(true, s.Score)
}

// WinWith ends the run as a win, saving stored instead of the displayed
// score. Games whose natural score is lower-is-better use it.
func (s *Session) WinWith(stored int) {
	s.finish(true, stored)
}

// finish runs once per run.
func (s *Session) finish(won bool, stored int) {
	if s.saved {
		return
	}
	s.saved = true
	s.Over = !won
	s.Won = won
	s.Keys.Clear()

	if won {
		s.Env.Sound.Play(core.SoundScore)
	} else {
		s.Env.Sound.Play(core.SoundGameOver)
	}
	if s.Env.Scores.Save(s.id, stored) {
		s.best = stored
	}
}

// DrawHUD prints the score and best on the left, lives on the right.
func (s *Session) DrawHUD(dst core.Surface, extra string) {
	name, best := "SCORE", fmt.Sprint(s.best)
	if s.ScoreName != "" {
		name = s.ScoreName
	}
	if s.BestText != nil {
		best = s.BestText(s.best)
	}
	left := fmt.Sprintf("%s %d   BEST %s", name, s.Score, best)
	if extra != "" {
		left += "   " + extra
	}
	dst.Text(left, 10, 6, core.TextHUD, core.AlignLeft, core.ColorText)
	if s.Lives > 0 {
		dst.Text(fmt.Sprintf("LIVES %d", s.Lives), core.ScreenWidth-10, 6, core.TextHUD, core.AlignRight, core.ColorText)
	}
}

// DrawOverlay draws the pause, game-over or win banner when one applies.
func (s *Session) DrawOverlay(dst core.Surface) {
	switch {
	case s.Won:
		core.Overlay(dst, "YOU WIN", fmt.Sprintf("Score %d", s.Score), core.ColorSuccess)
	case s.Over:
		core.Overlay(dst, "GAME OVER", fmt.Sprintf("Score %d", s.Score), core.ColorDanger)
	case s.Paused:
		dst.Text("PAUSED", core.ScreenWidth/2, core.ScreenHeight/2-32, core.TextTitle, core.AlignCenter, core.ColorWarning)
		dst.Text("P resume   ESC menu", core.ScreenWidth/2, core.ScreenHeight/2+40, core.TextHUD, core.AlignCenter, core.ColorText)
	}
}
