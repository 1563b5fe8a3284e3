// Command snake is an interactive terminal driver for the engine. Arrow keys
// or WASD pick the next direction, "p" toggles the autopilot and "q"
// quits, printing a backup string that -restore accepts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/errorcodezero/mastodon-plays-snake/config"
	"github.com/errorcodezero/mastodon-plays-snake/game"
	"github.com/errorcodezero/mastodon-plays-snake/logging"
	"github.com/errorcodezero/mastodon-plays-snake/rules"
	"github.com/errorcodezero/mastodon-plays-snake/store"
)

var keyDirections = map[string]game.Direction{
	"up":    game.Up,
	"w":     game.Up,
	"down":  game.Down,
	"s":     game.Down,
	"left":  game.Left,
	"a":     game.Left,
	"right": game.Right,
	"d":     game.Right,
}

type TickMsg struct {
	gen int
}

type model struct {
	g        *game.Game
	rng      game.Rand
	logger   *slog.Logger
	rec      *store.Recorder
	interval time.Duration

	auto    bool
	autoGen int
	status  string
}

func newModel(g *game.Game, rng game.Rand, logger *slog.Logger, rec *store.Recorder, interval time.Duration) model {
	return model{
		g:        g,
		rng:      rng,
		logger:   logger,
		rec:      rec,
		interval: interval,
		status:   "Pick a direction.",
	}
}

func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p":
			m.auto = !m.auto
			m.autoGen++
			if m.auto {
				m.status = "Autopilot on."
				return m, tickCmd(m.interval, m.autoGen)
			}
			m.status = "Autopilot off."
			return m, nil
		}
		if d, ok := keyDirections[key]; ok {
			m.move(d)
		}
	case TickMsg:
		if !m.auto || msg.gen != m.autoGen {
			return m, nil
		}
		m.move(rules.Choose(m.g, m.rng))
		return m, tickCmd(m.interval, m.autoGen)
	}
	return m, nil
}

func (m *model) move(d game.Direction) {
	out, err := m.g.MoveSnake(d)
	if errors.Is(err, game.ErrInvalidDirection) {
		m.status = fmt.Sprintf("Can't turn %s while heading %s.", d, m.g.Heading())
		return
	}
	if err != nil {
		m.status = err.Error()
		m.logger.Error("move failed", "direction", d.String(), "err", err)
		return
	}
	if m.rec != nil {
		m.rec.Record(m.g, d, out)
	}

	switch out {
	case game.Ate:
		m.status = "Yum."
	case game.ResetBoundary:
		m.status = "Hit the wall. New game."
	case game.ResetSelfCollision:
		m.status = "Ran into yourself. New game."
	case game.ResetBoardFull:
		m.status = "Board full! New game."
	default:
		m.status = "Moved " + d.String() + "."
	}
	m.logger.Debug("tick", "direction", d.String(), "outcome", out.String(), "score", m.g.Score())
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.g.Render())
	fmt.Fprintf(&sb, "\nHigh score: %d\n\n", m.g.HighScore())

	choices := m.g.Directions()
	names := make([]string, len(choices))
	for i, d := range choices {
		names[i] = d.String()
	}
	fmt.Fprintf(&sb, "Choices: %s\n", strings.Join(names, ", "))
	sb.WriteString(m.status + "\n\n")
	sb.WriteString("Arrows/WASD move, p toggles autopilot, q quits.\n")
	return sb.String()
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Logs go to a file so they don't draw over the board.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "snake.log"
	}
	logger, closeLog, err := logging.Open(logFile, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	seed := cfg.EffectiveSeed()
	rng := game.NewRand(seed)
	gcfg := game.Config{Rand: rng, Logger: logger, HighScore: cfg.HighScore}

	var g *game.Game
	if cfg.Restore != "" {
		if g, err = game.FromBackup(cfg.Restore, gcfg); err != nil {
			log.Fatalf("Failed to restore backup: %v", err)
		}
	} else {
		g = game.NewWithConfig(gcfg)
	}
	logger.Info("starting game", "seed", seed, "backup", g.Backup())

	var rec *store.Recorder
	if cfg.TraceOut != "" {
		rec = store.NewRecorder()
	}

	p := tea.NewProgram(newModel(g, rng, logger, rec, cfg.Interval))
	if _, err := p.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}

	if rec != nil && rec.Len() > 0 {
		if err := store.WriteTicksParquet(cfg.TraceOut, rec.Rows()); err != nil {
			log.Printf("Failed to write trace: %v", err)
		} else {
			log.Printf("Trace written: %s (%d ticks)", cfg.TraceOut, rec.Len())
		}
	}

	logger.Info("game saved", "backup", g.Backup(), "high_score", g.HighScore())
	fmt.Printf("Backup: %s\n", g.Backup())
	fmt.Printf("High score: %d\n", g.HighScore())
}
