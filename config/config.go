// Package config loads the engine settings shared by every command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"teeko/game"
	"teeko/meta"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type SelfPlay struct {
	Games    int    `yaml:"games"`
	MaxTurns int    `yaml:"max_turns"`
	Openings int    `yaml:"openings"`
	OutDir   string `yaml:"out_dir"`
}

type Config struct {
	Depth      int      `yaml:"depth"`
	PhaseAware bool     `yaml:"phase_aware"`
	Addr       string   `yaml:"addr"`
	Piece      string   `yaml:"piece"` // "b", "r" or "" for a random colour
	SelfPlay   SelfPlay `yaml:"selfplay"`
}

// Directory holds recorded experiments unless the config names another one.
var Directory = filepath.Join(xdg.DataHome, "teeko")

func Default() Config {
	return Config{
		Depth:      meta.SEARCH_DEPTH,
		PhaseAware: true,
		Addr:       meta.ADDR,
		SelfPlay: SelfPlay{
			Games:    meta.GAMES,
			MaxTurns: meta.MAX_TURNS,
			OutDir:   filepath.Join(Directory, "experiments"),
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, c.Depth)
	}
	if _, err := c.Cell(); err != nil {
		return err
	}
	if c.SelfPlay.Games < 1 {
		return fmt.Errorf("%w: selfplay.games must be positive, got %d", ErrInvalidConfig, c.SelfPlay.Games)
	}
	if c.SelfPlay.MaxTurns < 1 {
		return fmt.Errorf("%w: selfplay.max_turns must be positive, got %d", ErrInvalidConfig, c.SelfPlay.MaxTurns)
	}
	if c.SelfPlay.Openings < 0 {
		return fmt.Errorf("%w: selfplay.openings cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Cell returns the configured piece, or Empty when none is set.
func (c Config) Cell() (game.Cell, error) {
	switch c.Piece {
	case "":
		return game.Empty, nil
	case game.PieceAMarker:
		return game.PieceA, nil
	case game.PieceBMarker:
		return game.PieceB, nil
	default:
		return game.Empty, fmt.Errorf("%w: unknown piece %q", ErrInvalidConfig, c.Piece)
	}
}
