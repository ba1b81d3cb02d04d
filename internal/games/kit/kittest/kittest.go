// Package kittest provides a seeded game environment with recording
// collaborators for game tests.
package kittest

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/state"
)

// Scores is an in-memory core.Scores that remembers every save attempt.
type Scores struct {
	Best     map[string]int
	Attempts []int
}

// Get returns the best score for name.
func (s *Scores) Get(name string) int {
	return s.Best[name]
}

// Save records the attempt and keeps strict improvements.
func (s *Scores) Save(name string, score int) bool {
	s.Attempts = append(s.Attempts, score)
	if score <= s.Best[name] {
		return false
	}
	s.Best[name] = score
	return true
}

// Sound counts played effects.
type Sound struct {
	Played map[core.SoundID]int
}

// Play records id.
func (s *Sound) Play(id core.SoundID) {
	s.Played[id]++
}

// Fixture bundles an Env with its recorders.
type Fixture struct {
	Env    registry.Env
	Scores *Scores
	Sound  *Sound
}

// New builds a fixture with a fixed seed and the default config.
func New(seed int64) Fixture {
	return NewWith(seed, config.Default())
}

// NewWith builds a fixture with a fixed seed and a custom config.
func NewWith(seed int64, cfg config.Config) Fixture {
	scores := &Scores{Best: make(map[string]int)}
	sound := &Sound{Played: make(map[core.SoundID]int)}
	env := registry.Env{
		Manager: state.NewManager(),
		Scores:  scores,
		Sound:   sound,
		Config:  config.NewLive(cfg),
		Runtime: core.RuntimeConfig{TickRate: core.DefaultTickRate, Seed: seed},
	}
	return Fixture{Env: env, Scores: scores, Sound: sound}
}

// Run calls Update n times.
func Run(s state.State, n int) {
	for range n {
		s.Update()
	}
}

// Tap presses and releases k.
func Tap(s state.State, k core.Key) {
	s.HandleInput(core.Press(k))
	s.HandleInput(core.Release(k))
}

// Draw renders s to a terminal-sized screen and returns it.
func Draw(s state.State) *core.Screen {
	scr := core.NewScreen(80, 24)
	s.Draw(scr)
	return scr
}
