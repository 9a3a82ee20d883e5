// Package config loads the lvroute TOML configuration and builds the
// process logger from it.
//
// Example file:
//
//	[solver]
//	threshold      = 15
//	exact_enabled  = true
//	max_passes     = 1000
//	policy         = "first"   # or "best"
//	time_limit_ms  = 2000
//
//	[log]
//	level = "info"
//	file  = "logs/lvroute.log"
//
//	[batch]
//	workers      = 8
//	metrics_file = "lvroute.prom"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvroute/tsp"
)

// ErrInvalidConfig is returned for values that fail validation after decode.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the TOML document.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Log    LogConfig    `toml:"log"`
	Batch  BatchConfig  `toml:"batch"`
}

// SolverConfig mirrors tsp.Config in file-friendly units.
type SolverConfig struct {
	Threshold    int     `toml:"threshold"`
	ExactEnabled bool    `toml:"exact_enabled"`
	MaxPasses    int     `toml:"max_passes"`
	Policy       string  `toml:"policy"`
	Eps          float64 `toml:"eps"`
	Scale        float64 `toml:"scale"`
	HeldKarpMaxN int     `toml:"held_karp_max_n"`
	MaxNodes     int64   `toml:"max_nodes"`
	TimeLimitMs  int64   `toml:"time_limit_ms"`
}

// LogConfig drives SetupLogger.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"` // empty: stderr only
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// BatchConfig configures the CLI batch runner.
type BatchConfig struct {
	Workers     int     `toml:"workers"`
	MetricsFile string  `toml:"metrics_file"`
	SpeedKmh    float64 `toml:"speed_kmh"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Threshold:    tsp.DefaultThreshold,
			ExactEnabled: true,
			MaxPasses:    tsp.DefaultMaxPasses,
			Policy:       tsp.FirstImprovement.String(),
			Eps:          tsp.DefaultEps,
			Scale:        tsp.DefaultScale,
			HeldKarpMaxN: tsp.DefaultHeldKarpMaxN,
			MaxNodes:     tsp.DefaultMaxNodes,
			TimeLimitMs:  tsp.DefaultTimeLimit.Milliseconds(),
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Batch: BatchConfig{
			Workers:  8,
			SpeedKmh: 30,
		},
	}
}

// Load decodes path over Default(). Keys absent from the file keep their
// defaults; keys present are taken verbatim, zero included.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes TOML text over Default().
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields that have no meaningful out-of-range reading.
func (c *Config) Validate() error {
	if _, err := c.Solver.policy(); err != nil {
		return err
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("%w: batch.workers must be > 0, got %d", ErrInvalidConfig, c.Batch.Workers)
	}
	if c.Solver.TimeLimitMs < 0 {
		return fmt.Errorf("%w: solver.time_limit_ms must be >= 0", ErrInvalidConfig)
	}
	// The remaining solver bounds are enforced by tsp.NewOptimizer.
	return nil
}

func (s SolverConfig) policy() (tsp.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s.Policy)) {
	case "", "first":
		return tsp.FirstImprovement, nil
	case "best":
		return tsp.BestImprovement, nil
	default:
		return 0, fmt.Errorf("%w: unknown solver.policy %q", ErrInvalidConfig, s.Policy)
	}
}

// Options converts the solver section into tsp options.
func (s SolverConfig) Options() []tsp.Option {
	p, err := s.policy()
	if err != nil {
		p = tsp.FirstImprovement
	}

	return []tsp.Option{
		tsp.WithThreshold(s.Threshold),
		tsp.WithExact(s.ExactEnabled),
		tsp.WithMaxPasses(s.MaxPasses),
		tsp.WithPolicy(p),
		tsp.WithEps(s.Eps),
		tsp.WithScale(s.Scale),
		tsp.WithHeldKarpMaxN(s.HeldKarpMaxN),
		tsp.WithMaxNodes(s.MaxNodes),
		tsp.WithTimeLimit(time.Duration(s.TimeLimitMs) * time.Millisecond),
	}
}
