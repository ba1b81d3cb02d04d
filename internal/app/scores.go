package app

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/highscore"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Scores is the high-score store plus the database it may hold open.
type Scores struct {
	*highscore.Store
	db *storage.Store
}

// OpenScores opens the configured backend. The sqlite database is opened
// when it backs the table or when run history is enabled.
func OpenScores(cfg config.ScoresConfig) (*Scores, error) {
	s := &Scores{}
	if cfg.Backend == "sqlite" || cfg.History {
		db, err := storage.Open(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("app: scores: %w", err)
		}
		s.db = db
	}

	var backend highscore.Backend
	switch cfg.Backend {
	case "sqlite":
		backend = s.db.Highscores()
	default:
		path, err := storage.ExpandHome(cfg.File)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("app: scores: %w", err)
		}
		backend = highscore.NewFileBackend(path)
	}

	var opts []highscore.Option
	if cfg.History && s.db != nil {
		opts = append(opts, highscore.WithHistory(s.db))
	}
	s.Store = highscore.Open(backend, opts...)
	return s, nil
}

// History returns the run log, or nil when history is disabled.
func (s *Scores) History() *storage.Store {
	return s.db
}

// Close releases the database.
func (s *Scores) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
