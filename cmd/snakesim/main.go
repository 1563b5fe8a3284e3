// Command snakesim plays a game headlessly with the autopilot choosing every
// direction, optionally archives each tick to Parquet, and prints the final
// board and backup string.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/errorcodezero/mastodon-plays-snake/config"
	"github.com/errorcodezero/mastodon-plays-snake/game"
	"github.com/errorcodezero/mastodon-plays-snake/logging"
	"github.com/errorcodezero/mastodon-plays-snake/rules"
	"github.com/errorcodezero/mastodon-plays-snake/store"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	if err := run(cfg, os.Stdout, logger); err != nil {
		log.Fatalf("snakesim: %v", err)
	}
}

// Summary is what a headless run ended with.
type Summary struct {
	Ticks     int
	Eaten     int
	Resets    int
	HighScore uint
	Backup    string
}

func run(cfg config.Config, out io.Writer, logger *slog.Logger) error {
	seed := cfg.EffectiveSeed()
	rng := game.NewRand(seed)
	gcfg := game.Config{Rand: rng, Logger: logger, HighScore: cfg.HighScore}

	var g *game.Game
	if cfg.Restore != "" {
		var err error
		if g, err = game.FromBackup(cfg.Restore, gcfg); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		logger.Info("restored game", "backup", cfg.Restore, "score", g.Score())
	} else {
		g = game.NewWithConfig(gcfg)
	}
	logger.Info("starting run", "seed", seed, "ticks", cfg.Ticks, "high_score", g.HighScore())

	var rec *store.Recorder
	if cfg.TraceOut != "" {
		rec = store.NewRecorder()
	}

	sum, err := play(g, rng, cfg.Ticks, rec, logger)
	if err != nil {
		return err
	}

	if rec != nil {
		if err := store.WriteTicksParquet(cfg.TraceOut, rec.Rows()); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		logger.Info("trace written", "path", cfg.TraceOut, "rows", rec.Len())
	}

	fmt.Fprintln(out, g.Render())
	fmt.Fprintf(out, "High score: %d\n", sum.HighScore)
	fmt.Fprintf(out, "Ticks: %d  Eaten: %d  Resets: %d\n", sum.Ticks, sum.Eaten, sum.Resets)
	fmt.Fprintf(out, "Backup: %s\n", sum.Backup)
	return nil
}

func play(g *game.Game, rng game.Rand, ticks int, rec *store.Recorder, logger *slog.Logger) (Summary, error) {
	var sum Summary
	for i := 0; i < ticks; i++ {
		d := rules.Choose(g, rng)
		outcome, err := g.MoveSnake(d)
		if err != nil {
			return sum, fmt.Errorf("tick %d: %w", i, err)
		}
		sum.Ticks++
		switch {
		case outcome == game.Ate:
			sum.Eaten++
		case outcome.Reset():
			sum.Resets++
			logger.Info("episode ended", "tick", i, "reason", outcome.String(), "high_score", g.HighScore())
		}
		if rec != nil {
			rec.Record(g, d, outcome)
		}
	}
	sum.HighScore = g.HighScore()
	sum.Backup = g.Backup()
	return sum, nil
}
