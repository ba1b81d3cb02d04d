// Package highscore keeps the best score per game. The table is loaded in
// full when opened and rewritten in full on every improvement. Storage
// failures are logged and never reach the caller.
package highscore

import (
	"maps"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/logging"
)

// Backend persists the whole table.
type Backend interface {
	Load() (map[string]int, error)
	Write(table map[string]int) error
}

// History receives every finished run, improvement or not.
type History interface {
	Record(name string, score int) error
}

// Store is the in-memory table plus its backend.
// The mutex only matters for the SSH server, where sessions share a Store.
type Store struct {
	mu      sync.Mutex
	scores  map[string]int
	backend Backend
	history History
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithHistory records every Save call into h.
func WithHistory(h History) Option {
	return func(s *Store) {
		s.history = h
	}
}

// WithLogger replaces the component logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open loads the table from backend. A nil backend keeps the table in
// memory only. Load failures leave the table empty.
func Open(backend Backend, opts ...Option) *Store {
	s := &Store{
		scores:  make(map[string]int),
		backend: backend,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.With("highscore")
	}

	if backend == nil {
		return s
	}
	loaded, err := backend.Load()
	if err != nil {
		s.logger.Warn("could not load high scores, starting fresh", "error", err)
		return s
	}
	for name, score := range loaded {
		if score < 0 {
			s.logger.Warn("ignoring negative high score", "game", name, "score", score)
			continue
		}
		s.scores[name] = score
	}
	return s
}

// Get returns the best score for name, or 0 if absent.
func (s *Store) Get(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores[name]
}

// Save stores score and rewrites the backend iff it beats the current best.
// It reports whether the score was a new best.
func (s *Store) Save(name string, score int) bool {
	s.record(name, score)

	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.scores[name] {
		return false
	}
	s.scores[name] = score

	if s.backend != nil {
		if err := s.backend.Write(maps.Clone(s.scores)); err != nil {
			s.logger.Error("could not save high scores", "game", name, "error", err)
		}
	}
	return true
}

// All returns a copy of the whole table.
func (s *Store) All() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.scores)
}

func (s *Store) record(name string, score int) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(name, score); err != nil {
		s.logger.Warn("could not record run", "game", name, "error", err)
	}
}

var _ core.Scores = (*Store)(nil)
