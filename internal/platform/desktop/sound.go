package desktop

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/logging"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const sampleRate = 44100

// Sound plays <dir>/<id>.wav clips. Missing clips are skipped.
type Sound struct {
	ctx    *audio.Context
	clips  map[core.SoundID][]byte
	volume float64
	logger *log.Logger
}

// loadClips decodes every clip found in dir to PCM at sampleRate.
func loadClips(dir string, logger *log.Logger) map[core.SoundID][]byte {
	clips := make(map[core.SoundID][]byte)
	for _, id := range core.AllSounds {
		path := filepath.Join(dir, string(id)+".wav")
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("sound file missing", "id", id, "path", path)
			continue
		}
		if err != nil {
			logger.Warn("cannot read sound", "id", id, "error", err)
			continue
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			logger.Warn("cannot decode sound", "id", id, "error", err)
			continue
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			logger.Warn("cannot decode sound", "id", id, "error", err)
			continue
		}
		clips[id] = pcm
	}
	return clips
}

// NewSound loads the configured clips. A disabled config returns a no-op.
func NewSound(cfg config.SoundConfig) core.Sound {
	if !cfg.Enabled {
		return core.NopSound{}
	}
	logger := logging.With("sound")
	dir, err := storage.ExpandHome(cfg.Dir)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return core.NopSound{}
	}
	clips := loadClips(dir, logger)
	if len(clips) == 0 {
		return core.NopSound{}
	}
	logger.Debug("sounds loaded", "count", len(clips), "dir", dir)
	return &Sound{
		ctx:    audio.NewContext(sampleRate),
		clips:  clips,
		volume: core.Clamp(cfg.Volume, 0, 1),
		logger: logger,
	}
}

// Play starts id without waiting for it to finish.
func (s *Sound) Play(id core.SoundID) {
	pcm, ok := s.clips[id]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
}
