// Package config loads and validates the YAML configuration of the
// seatgrid CLI and service: solver defaults, listen address, and named
// hall presets. Serve mode can hot-reload presets on file change.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/seatgrid/arrange"
	"github.com/katalvlaran/seatgrid/grid"
)

// Config is the root document.
type Config struct {
	// Listen is the serve-mode address, host:port.
	Listen string `json:"listen,omitempty"`

	// Solver overrides the randomized engine defaults.
	Solver Solver `json:"solver,omitempty"`

	// Halls are named room presets selectable by CLI flag or request
	// field.
	Halls []Hall `json:"halls,omitempty"`
}

// Solver mirrors arrange.Options minus the seed, which is always
// per-request.
type Solver struct {
	AttemptLimit int `json:"attemptLimit,omitempty"`
	MaxRetries   int `json:"maxRetries,omitempty"`
	Workers      int `json:"workers,omitempty"`
}

// Hall is one named room preset.
type Hall struct {
	Name   string         `json:"name"`
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Counts map[string]int `json:"counts"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Listen: ":8080",
		Solver: Solver{
			AttemptLimit: arrange.DefaultAttemptLimit,
			MaxRetries:   arrange.DefaultMaxRetries,
		},
	}
}

// Load reads and validates a config file, applying defaults for absent
// fields.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks solver knobs and every hall preset. Hall count requests
// go through the same gate the solvers use, so a preset that can never
// solve is rejected at load time, not at request time.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Solver.AttemptLimit < 1 {
		return fmt.Errorf("solver.attemptLimit must be positive")
	}
	if c.Solver.MaxRetries < 1 {
		return fmt.Errorf("solver.maxRetries must be positive")
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("solver.workers must be non-negative")
	}

	seen := make(map[string]struct{}, len(c.Halls))
	for _, h := range c.Halls {
		if h.Name == "" {
			return fmt.Errorf("hall with empty name")
		}
		if _, dup := seen[h.Name]; dup {
			return fmt.Errorf("duplicate hall %q", h.Name)
		}
		seen[h.Name] = struct{}{}
		if err := grid.ValidateRequest(h.Rows, h.Cols, h.GridCounts()); err != nil {
			return fmt.Errorf("hall %q: %w", h.Name, err)
		}
	}
	return nil
}

// Hall returns the preset with the given name, or false.
func (c *Config) Hall(name string) (Hall, bool) {
	for _, h := range c.Halls {
		if h.Name == name {
			return h, true
		}
	}
	return Hall{}, false
}

// Options converts the solver section into arrange.Options with the given
// per-request seed.
func (c *Config) Options(seed int64) arrange.Options {
	return arrange.Options{
		AttemptLimit: c.Solver.AttemptLimit,
		MaxRetries:   c.Solver.MaxRetries,
		Workers:      c.Solver.Workers,
		Seed:         seed,
	}
}

// GridCounts converts the preset's plain string map into grid.Counts.
func (h Hall) GridCounts() grid.Counts {
	out := make(grid.Counts, len(h.Counts))
	for cat, n := range h.Counts {
		out[grid.Category(cat)] = n
	}
	return out
}
