package config

import (
	"errors"
	"fmt"
	"os"

	"ladderfall/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the command line tool's configuration.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Simulation Simulation `yaml:"simulation"`
}

// Simulation describes a batch of games played back to back.
type Simulation struct {
	Players    int      `yaml:"players"`
	Names      []string `yaml:"names,omitempty"`
	Games      int      `yaml:"games"`
	Goroutines int      `yaml:"goroutines"`
	MaxTurns   int      `yaml:"max_turns"`
	Seed       uint64   `yaml:"seed"` // 0 picks a seed from the clock
	BonusTurns bool     `yaml:"bonus_turns"`
	OutputDir  string   `yaml:"output_dir,omitempty"` // CSV results are written here when set
	TopN       int      `yaml:"top_n"`
}

func Default() *Config {
	return &Config{
		LogLevel: zerolog.InfoLevel.String(),
		Simulation: Simulation{
			Players:    meta.PLAYERS,
			Games:      meta.GAMES,
			Goroutines: meta.GO_ROUTINES,
			MaxTurns:   meta.MAX_TURNS,
			TopN:       meta.TOP_N,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return c.Simulation.Validate()
}

func (s Simulation) Validate() error {
	switch {
	case s.Players < meta.MIN_PLAYERS || s.Players > meta.MAX_PLAYERS:
		return fmt.Errorf("%w: players must be between %d and %d, got %d", ErrInvalid, meta.MIN_PLAYERS, meta.MAX_PLAYERS, s.Players)
	case len(s.Names) > s.Players:
		return fmt.Errorf("%w: %d names for %d players", ErrInvalid, len(s.Names), s.Players)
	case s.Games < 1:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, s.Games)
	case s.Goroutines < 1:
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalid, s.Goroutines)
	case s.MaxTurns < 1:
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalid, s.MaxTurns)
	case s.TopN < 0:
		return fmt.Errorf("%w: top_n must not be negative, got %d", ErrInvalid, s.TopN)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
