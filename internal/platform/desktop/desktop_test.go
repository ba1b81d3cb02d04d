package desktop

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestTranslateKeys(t *testing.T) {
	events := translateKeys(
		[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyF12, ebiten.KeyNumpadEnter},
		[]ebiten.Key{ebiten.KeySpace},
	)
	assert.Equal(t, []core.Event{
		core.Press(core.KeyLeft),
		core.Press(core.KeyEnter),
		core.Release(core.KeySpace),
	}, events)
}

// monoWAV builds a 16-bit mono PCM file with n silent samples.
func monoWAV(n int) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	binary.Write(&b, le, uint32(36+n*2))
	b.WriteString("WAVEfmt ")
	binary.Write(&b, le, uint32(16))
	binary.Write(&b, le, uint16(1)) // PCM
	binary.Write(&b, le, uint16(1)) // mono
	binary.Write(&b, le, uint32(sampleRate))
	binary.Write(&b, le, uint32(sampleRate*2))
	binary.Write(&b, le, uint16(2))
	binary.Write(&b, le, uint16(16))
	b.WriteString("data")
	binary.Write(&b, le, uint32(n*2))
	b.Write(make([]byte, n*2))
	return b.Bytes()
}

func TestLoadClipsSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jump.wav"), monoWAV(441), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoot.wav"), []byte("not a wav"), 0o600))

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	clips := loadClips(dir, logger)
	require.Len(t, clips, 1)
	assert.NotEmpty(t, clips[core.SoundJump])
	assert.Contains(t, logs.String(), "sound file missing")
	assert.Contains(t, logs.String(), "cannot decode sound")
}

func TestDisabledSoundIsNop(t *testing.T) {
	s := NewSound(config.SoundConfig{Enabled: false, Dir: t.TempDir()})
	assert.Equal(t, core.NopSound{}, s)

	s = NewSound(config.SoundConfig{Enabled: true, Dir: t.TempDir(), Volume: 1})
	assert.Equal(t, core.NopSound{}, s)
}
