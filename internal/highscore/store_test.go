package highscore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// memBackend counts writes and can be made to fail.
type memBackend struct {
	table   map[string]int
	writes  int
	loadErr error
	saveErr error
}

func (m *memBackend) Load() (map[string]int, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make(map[string]int, len(m.table))
	for k, v := range m.table {
		out[k] = v
	}
	return out, nil
}

func (m *memBackend) Write(table map[string]int) error {
	m.writes++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.table = table
	return nil
}

type runLog struct{ runs []int }

func (r *runLog) Record(_ string, score int) error {
	r.runs = append(r.runs, score)
	return nil
}

func quietLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func TestGetAbsentIsZero(t *testing.T) {
	s := Open(nil)
	assert.Equal(t, 0, s.Get("snake"))
}

func TestSaveOnlyOnStrictImprovement(t *testing.T) {
	tests := []struct {
		name      string
		first     int
		second    int
		wantSaved bool
		wantBest  int
	}{
		{"lower keeps first", 100, 50, false, 100},
		{"equal keeps first", 100, 100, false, 100},
		{"higher replaces", 100, 150, true, 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &memBackend{}
			s := Open(b)

			require.True(t, s.Save("tetris", tc.first))
			assert.Equal(t, tc.wantSaved, s.Save("tetris", tc.second))
			assert.Equal(t, tc.wantBest, s.Get("tetris"))
			assert.Equal(t, tc.wantBest, b.table["tetris"], "backend holds the best score")

			wantWrites := 1
			if tc.wantSaved {
				wantWrites = 2
			}
			assert.Equal(t, wantWrites, b.writes, "backend is written only on improvement")
		})
	}
}

func TestSaveZeroIsNotAnImprovement(t *testing.T) {
	b := &memBackend{}
	s := Open(b)
	assert.False(t, s.Save("pong", 0))
	assert.Equal(t, 0, b.writes)
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	l, buf := quietLogger()
	s := Open(&memBackend{loadErr: errors.New("boom")}, WithLogger(l))

	assert.Empty(t, s.All())
	assert.Contains(t, buf.String(), "could not load high scores")
	assert.True(t, s.Save("snake", 10))
}

func TestWriteFailureIsDropped(t *testing.T) {
	l, buf := quietLogger()
	s := Open(&memBackend{saveErr: errors.New("disk full")}, WithLogger(l))

	assert.True(t, s.Save("snake", 10))
	assert.Equal(t, 10, s.Get("snake"), "in-memory best survives a failed write")
	assert.Contains(t, buf.String(), "could not save high scores")
}

func TestHistoryRecordsEveryRun(t *testing.T) {
	h := &runLog{}
	s := Open(nil, WithHistory(h))

	s.Save("flappy", 5)
	s.Save("flappy", 3)
	s.Save("flappy", 9)

	assert.Equal(t, []int{5, 3, 9}, h.runs)
	assert.Equal(t, 9, s.Get("flappy"))
}

func TestAllReturnsCopy(t *testing.T) {
	s := Open(nil)
	s.Save("memory", 800)

	all := s.All()
	all["memory"] = 1
	assert.Equal(t, 800, s.Get("memory"))
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscores.toml")
	want := map[string]int{"snake": 120, "tetris": 2300, "minesweeper": 912}

	require.NoError(t, NewFileBackend(path).Write(want))

	got, err := NewFileBackend(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "snake = 120", "file stays human-readable")
}

func TestFileBackendMissingFileIsEmpty(t *testing.T) {
	got, err := NewFileBackend(filepath.Join(t.TempDir(), "none.toml")).Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorruptFileIsTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.toml")
	require.NoError(t, os.WriteFile(path, []byte("snake = = ]]"), 0o600))

	_, err := NewFileBackend(path).Load()
	assert.Error(t, err)

	l, _ := quietLogger()
	s := Open(NewFileBackend(path), WithLogger(l))
	assert.Empty(t, s.All())

	// The next improvement rewrites the file with a valid table.
	require.True(t, s.Save("snake", 30))
	got, err := NewFileBackend(path).Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"snake": 30}, got)
}

func TestStoreReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.toml")

	first := Open(NewFileBackend(path))
	first.Save("breakout", 600)
	first.Save("asteroids", 1400)
	first.Save("breakout", 200)

	second := Open(NewFileBackend(path))
	assert.Equal(t, first.All(), second.All())
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer db.Close()

	first := Open(db.Highscores(), WithHistory(db))
	first.Save("invaders", 3200)
	first.Save("invaders", 100)
	first.Save("pong", 10)

	second := Open(db.Highscores())
	assert.Equal(t, map[string]int{"invaders": 3200, "pong": 10}, second.All())

	runs, err := db.TopScores("invaders", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2, "history keeps every run")
}
