package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config document name searched for on disk.
const FileName = "arcade.yaml"

// Source records where a loaded config came from.
type Source struct {
	Path     string // Empty for embedded or hardcoded defaults
	Embedded bool
}

// String describes the source for logs.
func (s Source) String() string {
	switch {
	case s.Path != "":
		return s.Path
	case s.Embedded:
		return "embedded default"
	default:
		return "hardcoded default"
	}
}

// Load loads the arcade configuration.
// Search order: customPath -> ~/.arcade/arcade.yaml -> ./configs/arcade.yaml
// -> embedded default -> hardcoded Default().
// Files are decoded over the defaults, so a partial document only
// overrides the keys it sets. A broken custom path is an error; broken
// files found by searching are skipped.
func Load(customPath string) (Config, Source, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return Default(), Source{}, err
		}
		return cfg, Source{Path: customPath}, nil
	}

	for _, path := range SearchPaths() {
		if cfg, err := parseFile(path); err == nil {
			return cfg, Source{Path: path}, nil
		}
	}

	if cfg, err := Parse(defaultArcadeYAML); err == nil {
		return cfg, Source{Embedded: true}, nil
	}
	return Default(), Source{}, nil
}

// SearchPaths lists the on-disk locations Load tries, in order.
func SearchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func parseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", filename)
}

// LoadDotEnv loads KEY=value pairs from .env files into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: cannot load env files: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values from ARCADE_* environment variables.
// Unparsable values are reported and ignored.
func ApplyEnv(cfg *Config) error {
	var bad []string

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = n
		}
	}
	flt := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				bad = append(bad, key)
				return
			}
			*dst = b
		}
	}

	num("ARCADE_TICK_RATE", &cfg.Loop.TickRate)
	flt("ARCADE_WINDOW_SCALE", &cfg.Window.Scale)
	str("ARCADE_SCORES_BACKEND", &cfg.Scores.Backend)
	str("ARCADE_SCORES_FILE", &cfg.Scores.File)
	str("ARCADE_SCORES_DB", &cfg.Scores.DB)
	boolean("ARCADE_SCORES_HISTORY", &cfg.Scores.History)
	boolean("ARCADE_SOUND_ENABLED", &cfg.Sound.Enabled)
	str("ARCADE_SOUND_DIR", &cfg.Sound.Dir)
	flt("ARCADE_SOUND_VOLUME", &cfg.Sound.Volume)
	str("ARCADE_LOG_LEVEL", &cfg.Log.Level)
	str("ARCADE_LOG_FILE", &cfg.Log.File)

	if len(bad) > 0 {
		return fmt.Errorf("%w: unparsable environment %s", ErrInvalid, strings.Join(bad, ", "))
	}
	return nil
}

// Overlay applies the ARCADE_* overrides and the difficulty preset to a copy
// of cfg and validates the result. Unparsable variables are skipped and
// reported through warn. On a validation error cfg is returned unchanged.
func Overlay(cfg Config, preset DifficultyPreset, warn func(error)) (Config, error) {
	out := cfg
	if err := ApplyEnv(&out); err != nil && warn != nil {
		warn(err)
	}
	ApplyPreset(&out, preset)
	if err := out.Validate(); err != nil {
		return cfg, err
	}
	return out, nil
}
