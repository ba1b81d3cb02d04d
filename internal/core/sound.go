package core

// SoundID names one of the arcade's sound effects.
type SoundID string

const (
	SoundSelect    SoundID = "select"
	SoundShoot     SoundID = "shoot"
	SoundJump      SoundID = "jump"
	SoundExplosion SoundID = "explosion"
	SoundGameOver  SoundID = "gameover"
	SoundScore     SoundID = "score"
)

// AllSounds lists every sound id in load order.
var AllSounds = []SoundID{SoundSelect, SoundShoot, SoundJump, SoundExplosion, SoundGameOver, SoundScore}

// Sound is the fire-and-forget audio trigger used by game logic.
// Play never blocks and never reports errors.
type Sound interface {
	Play(id SoundID)
}

// NopSound is the default Sound when no audio backend is injected.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(SoundID) {}

// Scores is the high-score table as seen by games.
type Scores interface {
	// Get returns the best score for name, or 0.
	Get(name string) int
	// Save stores score if it beats the current best and reports whether it did.
	Save(name string, score int) bool
}

// NopScores is the default Scores when no store is injected.
type NopScores struct{}

// Get always returns 0.
func (NopScores) Get(string) int { return 0 }

// Save never stores anything.
func (NopScores) Save(string, int) bool { return false }
