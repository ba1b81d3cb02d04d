package config

import "sync"

// Live holds the current configuration for readers on the game loop while
// a watcher swaps in reloaded versions.
type Live struct {
	mu      sync.RWMutex
	cfg     Config
	version int
}

// NewLive wraps an initial configuration.
func NewLive(cfg Config) *Live {
	return &Live{cfg: cfg}
}

// Current returns a copy of the active configuration.
func (l *Live) Current() Config {
	if l == nil {
		return Default()
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Version increases by one on every Store.
func (l *Live) Version() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.version
}

// Store replaces the active configuration.
func (l *Live) Store(cfg Config) {
	l.mu.Lock()
	l.cfg = cfg
	l.version++
	l.mu.Unlock()
}

// Games is shorthand for Current().Games.
func (l *Live) Games() GamesConfig {
	return l.Current().Games
}
