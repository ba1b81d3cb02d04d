// Package logging owns the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once   sync.Once
	out    = &switchWriter{w: os.Stderr}
	logger *log.Logger
)

// switchWriter lets SetOutput redirect loggers that were already derived
// from the process logger, since sub-loggers copy their writer.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func root() *log.Logger {
	once.Do(func() {
		logger = log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "arcade",
		})
	})
	return logger
}

// Default returns the process logger.
func Default() *log.Logger {
	return root()
}

// With returns a sub-logger whose prefix names a component. Sub-loggers
// copy the level at creation, so create them after SetLevel.
func With(component string) *log.Logger {
	return root().WithPrefix("arcade/" + component)
}

// SetLevel parses and applies a level name. Unknown names keep the current
// level and return the parse error.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	root().SetLevel(lvl)
	return nil
}

// SetOutput redirects every logger derived from the process logger.
func SetOutput(w io.Writer) {
	out.set(w)
}

// ToFile redirects logging to path, creating parent directories. The
// returned closer restores stderr. Terminal frontends use it so log lines
// do not corrupt the alternate screen.
func ToFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return closerFunc(func() error {
		SetOutput(os.Stderr)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
