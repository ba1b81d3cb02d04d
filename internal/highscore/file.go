package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileBackend stores the table as a flat TOML document, one
// `game = score` pair per line.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a backend for path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// Load reads the file. A missing file is an empty table, not an error.
func (f *FileBackend) Load() (map[string]int, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", f.Path, err)
	}

	table := make(map[string]int)
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("highscore: cannot parse %s: %w", f.Path, err)
	}
	return table, nil
}

// Write replaces the file atomically through a temp file and rename.
func (f *FileBackend) Write(table map[string]int) error {
	data, err := toml.Marshal(table)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode table: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*.toml")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", f.Path, err)
	}
	return nil
}
