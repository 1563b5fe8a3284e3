// Package config reads the settings shared by the snake binaries from flags,
// falling back to environment variables for their defaults.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/errorcodezero/mastodon-plays-snake/logging"
)

type Config struct {
	// Seed for the game's random source. 0 seeds from the clock.
	Seed uint64
	// HighScore seeds the high score from external storage.
	HighScore uint
	// Restore is a backup string to resume from instead of a fresh game.
	Restore string
	// TraceOut is where the tick archive is written. Empty disables it.
	TraceOut string
	// Ticks is how many autopilot ticks a headless run plays.
	Ticks int
	// Interval between autopilot ticks in the interactive driver.
	Interval time.Duration

	LogLevel  slog.Level
	LogFormat string
	// LogFile receives logs. Empty means stderr.
	LogFile string
}

// Load registers the flags on fs, parses args and validates the result.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	seed := fs.Uint64("seed", getEnvUint64OrDefault("SNAKE_SEED", 0), "Random seed (0 = seed from clock)")
	highScore := fs.Uint64("high-score", getEnvUint64OrDefault("SNAKE_HIGH_SCORE", 0), "High score restored from external storage")
	fs.StringVar(&cfg.Restore, "restore", getEnvOrDefault("SNAKE_RESTORE", ""), "Backup string to resume from")
	fs.StringVar(&cfg.TraceOut, "trace-out", getEnvOrDefault("SNAKE_TRACE_OUT", ""), "Write a parquet tick archive to this path")
	fs.IntVar(&cfg.Ticks, "ticks", getEnvIntOrDefault("SNAKE_TICKS", 100), "Autopilot ticks to play")
	fs.DurationVar(&cfg.Interval, "interval", getEnvDurationOrDefault("SNAKE_INTERVAL", 300*time.Millisecond), "Delay between autopilot ticks")
	level := fs.String("log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnvOrDefault("SNAKE_LOG_FORMAT", logging.FormatText), "Log format: text, json, pretty")
	fs.StringVar(&cfg.LogFile, "log-file", getEnvOrDefault("SNAKE_LOG_FILE", ""), "Write logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Seed = *seed
	cfg.HighScore = uint(*highScore)

	var err error
	if cfg.LogLevel, err = logging.ParseLevel(*level); err != nil {
		return Config{}, err
	}
	switch cfg.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatPretty:
	default:
		return Config{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.Ticks < 0 {
		return Config{}, fmt.Errorf("ticks must be >= 0, got %d", cfg.Ticks)
	}
	if cfg.Interval <= 0 {
		return Config{}, fmt.Errorf("interval must be > 0, got %s", cfg.Interval)
	}
	return cfg, nil
}

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) EffectiveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint64OrDefault(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
