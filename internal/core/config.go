package core

import "time"

// DefaultTickRate is the fixed simulation rate in ticks per second.
const DefaultTickRate = 60

// RuntimeConfig contains configuration passed to games at construction.
// Games use it to derive tick-based timers and to seed their RNG.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rate returns the tick rate, falling back to the default for zero values.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// Ticks converts a duration to a whole number of ticks (at least one for
// positive durations).
func (c RuntimeConfig) Ticks(d time.Duration) int {
	return TicksMS(int(d/time.Millisecond), c.Rate())
}

// TicksMS converts milliseconds to ticks at the given rate, rounding to the
// nearest tick. Positive durations never round down to zero.
func TicksMS(ms, rate int) int {
	if ms <= 0 {
		return 0
	}
	t := (ms*rate + 500) / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// Status represents the observable state of a game.
// Platforms read it to save run history and tests read it to check rules.
type Status struct {
	Score    int  // Current score
	Lives    int  // Remaining lives, 0 for games without lives
	GameOver bool // Whether the game has ended in a loss
	Won      bool // Whether the game has ended in a win
	Paused   bool // Whether the game is paused
}

// Terminal reports whether the game reached game over or a win.
func (s Status) Terminal() bool {
	return s.GameOver || s.Won
}
