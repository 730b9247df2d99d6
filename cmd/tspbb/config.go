package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bnbtsp/tsp"
)

var errInvalidConfig = errors.New("invalid configuration")

var configValidate = validator.New()

// Config holds CLI defaults. A YAML file may provide any subset of it;
// explicitly set flags always win over the file.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	History HistoryConfig `yaml:"history"`
}

// SolverConfig mirrors tsp.Options plus CLI-only knobs.
type SolverConfig struct {
	Bound          string        `yaml:"bound" validate:"oneof=min-outgoing none"`
	Order          string        `yaml:"order" validate:"oneof=index nearest"`
	Timeout        time.Duration `yaml:"timeout" validate:"gte=0"`
	MaxNodes       int64         `yaml:"max_nodes" validate:"gte=0"`
	RejectDeadEnds bool          `yaml:"reject_dead_ends"`
	Verify         bool          `yaml:"verify"`
	Jobs           int           `yaml:"jobs" validate:"gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// MetricsConfig names the Prometheus textfile to write after solving.
type MetricsConfig struct {
	Out string `yaml:"out"`
}

// HistoryConfig names the SQLite run log.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

func defaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Bound:          tsp.MinOutgoingBound.String(),
			Order:          tsp.IndexOrder.String(),
			RejectDeadEnds: true,
			Jobs:           1,
		},
		Log: LogConfig{Level: "warn", Format: "text"},
	}
}

// loadConfigFile overlays the YAML file at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", errInvalidConfig, path, err)
	}

	return nil
}

// validate checks enum values and ranges.
func (c *Config) validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	return nil
}

// options converts the solver section into tsp.Options.
func (s SolverConfig) options() tsp.Options {
	opts := tsp.DefaultOptions()
	if s.Bound == tsp.NoBound.String() {
		opts.Bound = tsp.NoBound
	}
	if s.Order == tsp.NearestFirst.String() {
		opts.Order = tsp.NearestFirst
	}
	opts.TimeLimit = s.Timeout
	opts.MaxNodes = s.MaxNodes
	opts.RejectDeadEnds = s.RejectDeadEnds

	return opts
}
