// Package config loads engine settings for the command-line binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"xfchess-engine/engine"
	"xfchess-engine/game"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	SecsPerMove float64 `yaml:"secs_per_move"`
	// MaxDepth caps the search depth; 0 means no cap.
	MaxDepth int `yaml:"max_depth"`
	TTSizeMB int `yaml:"tt_size_mb"`
	// LogInfo enables a UCI info line per completed iteration.
	LogInfo bool `yaml:"log_info"`
}

func Default() Config {
	return Config{
		SecsPerMove: game.DefaultSecsPerMove,
		TTSizeMB:    engine.DefaultTTSizeMB,
		LogInfo:     true,
	}
}

// Load reads a YAML file. Keys missing from the file keep their defaults.
func Load(filename string) (Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SecsPerMove <= 0 {
		return fmt.Errorf("%w: secs_per_move must be positive, got %v", ErrInvalid, c.SecsPerMove)
	}
	if c.MaxDepth < 0 || c.MaxDepth >= engine.MaxPly {
		return fmt.Errorf("%w: max_depth must be in [0, %d), got %d", ErrInvalid, engine.MaxPly, c.MaxDepth)
	}
	if c.TTSizeMB < 1 || c.TTSizeMB > 1024 {
		return fmt.Errorf("%w: tt_size_mb must be in [1, 1024], got %d", ErrInvalid, c.TTSizeMB)
	}
	return nil
}

// Budget is the per-move search time.
func (c Config) Budget() time.Duration {
	return time.Duration(c.SecsPerMove * float64(time.Second))
}

// Apply copies the search settings onto g.
func (c Config) Apply(g *game.Game) {
	g.SecsPerMove = c.SecsPerMove
	g.MaxDepth = c.MaxDepth
	g.TTSizeMB = c.TTSizeMB
}
