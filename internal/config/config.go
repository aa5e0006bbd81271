// Package config loads pathfinder settings with priority env > file > defaults.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

// Config is the full CLI configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Search   SearchConfig   `yaml:"search"`
	Reindeer ReindeerConfig `yaml:"reindeer"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SearchConfig holds engine options shared by every command.
type SearchConfig struct {
	ReportEvery int `yaml:"report_every" validate:"gte=0"`
	MaxCost     int `yaml:"max_cost" validate:"gte=0"`
	MaxPaths    int `yaml:"max_paths" validate:"gte=0"`
}

// ReindeerConfig prices the scoring maze.
type ReindeerConfig struct {
	MoveCost int `yaml:"move_cost" validate:"gte=0"`
	TurnCost int `yaml:"turn_cost" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	costs := maze.DefaultCosts()
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Search:   SearchConfig{},
		Reindeer: ReindeerConfig{MoveCost: costs.Move, TurnCost: costs.Turn},
	}
}

// Load reads path over the defaults, applies PATHFINDER_* environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	loadFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("PATHFINDER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PATHFINDER_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv("PATHFINDER_REPORT_EVERY"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.ReportEvery = i
		}
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Logger builds a slog logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SearchOptions converts the search section into engine options.
func (c Config) SearchOptions(logger *slog.Logger) []search.Option {
	return []search.Option{
		search.WithLogger(logger),
		search.WithReportEvery(c.Search.ReportEvery),
		search.WithMaxCost(c.Search.MaxCost),
		search.WithMaxPaths(c.Search.MaxPaths),
	}
}

// Costs returns the scoring-maze prices.
func (c Config) Costs() maze.Costs {
	return maze.Costs{Move: c.Reindeer.MoveCost, Turn: c.Reindeer.TurnCost}
}
