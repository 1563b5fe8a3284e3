package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDirection is returned by MoveSnake when the requested
	// direction reverses the current heading.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrMalformedBackup is returned when a backup string cannot be restored.
	ErrMalformedBackup = errors.New("malformed backup")
)

// Config controls construction of a Game.
type Config struct {
	// Rand drives snake and food placement. Required.
	Rand Rand
	// Logger receives debug events for resets and food placement.
	// Nil discards them.
	Logger *slog.Logger
	// HighScore seeds the high score, e.g. from external storage.
	HighScore uint
}

// Game is one snake board and its score counters.
type Game struct {
	rng    Rand
	logger *slog.Logger

	body      []Point // tail first, head last
	food      Point
	heading   Direction
	grid      Grid
	score     uint
	highScore uint
}

// New returns a Game with a fresh episode drawn from rng.
func New(rng Rand) *Game {
	return NewWithConfig(Config{Rand: rng})
}

// NewWithConfig returns a Game with a fresh episode.
func NewWithConfig(cfg Config) *Game {
	g := newGame(cfg)
	g.Setup()
	return g
}

// FromBackup restores a Game from a Backup string.
func FromBackup(text string, cfg Config) (*Game, error) {
	g := newGame(cfg)
	if err := g.Import(text); err != nil {
		return nil, err
	}
	return g, nil
}

func newGame(cfg Config) *Game {
	if cfg.Rand == nil {
		cfg.Rand = NewRand(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		rng:       cfg.Rand,
		logger:    logger,
		highScore: cfg.HighScore,
	}
}

// Setup starts a new episode: a single-cell snake at a random coordinate,
// fresh food and a zero score. The heading is left unchanged.
func (g *Game) Setup() {
	g.body = []Point{randomPoint(g.rng)}
	g.score = 0
	g.placeFood()
}

// placeFood relocates the food and refreshes the grid.
// It reports false when no free cell is left.
func (g *Game) placeFood() bool {
	food, ok := PlaceFood(g.rng, g.body)
	if !ok {
		return false
	}
	g.food = food
	g.logger.Debug("food placed", "food", food.String(), "length", len(g.body))
	return g.refresh()
}

// refresh rebuilds the grid and reports whether the body was consistent.
func (g *Game) refresh() bool {
	grid, ok := buildGrid(g.body, g.food)
	if !ok {
		return false
	}
	g.grid = grid
	return true
}

func (g *Game) reset(reason Outcome) Outcome {
	g.logger.Debug("episode reset",
		"reason", reason.String(),
		"score", g.score,
		"high_score", g.highScore,
		"head", g.Head().String(),
	)
	g.Setup()
	return reason
}

// Directions returns the directions MoveSnake currently accepts, in
// Up, Down, Left, Right order. A snake that has not grown yet may turn any way.
func (g *Game) Directions() []Direction {
	out := make([]Direction, 0, len(AllDirections))
	for _, d := range AllDirections {
		if g.accepts(d) {
			out = append(out, d)
		}
	}
	return out
}

func (g *Game) accepts(d Direction) bool {
	if !d.valid() {
		return false
	}
	if len(g.body) <= 1 {
		return true
	}
	return g.heading.Follows(d)
}

// MoveSnake advances the game one tick in direction d.
//
// An error wrapping ErrInvalidDirection is returned, and nothing changes, when d
// is not one of Directions(). Leaving the board, running into the body or
// filling the board are not errors: the episode restarts and the Outcome says
// why.
func (g *Game) MoveSnake(d Direction) (Outcome, error) {
	if !g.accepts(d) {
		return Advanced, fmt.Errorf("move %s while heading %s: %w", d, g.heading, ErrInvalidDirection)
	}

	next := Step(g.Head(), d)
	if !InBounds(next) {
		return g.reset(ResetBoundary), nil
	}

	if next == g.food {
		g.body = append(g.body, next)
		g.heading = d
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
		}
		if !g.placeFood() {
			return g.reset(ResetBoardFull), nil
		}
		return Ate, nil
	}

	g.body = append(g.body[1:], next)
	g.heading = d
	if !g.refresh() {
		return g.reset(ResetSelfCollision), nil
	}
	return Advanced, nil
}

// SetHighScore seeds the high score from external storage.
// It never lowers a high score already reached in this process.
func (g *Game) SetHighScore(n uint) {
	if n > g.highScore {
		g.highScore = n
	}
}

func (g *Game) Heading() Direction { return g.heading }
func (g *Game) Food() Point { return g.food }
func (g *Game) Score() uint { return g.score }
func (g *Game) HighScore() uint { return g.highScore }
func (g *Game) Grid() Grid { return g.grid }

// Body returns a copy of the snake, tail first.
func (g *Game) Body() []Point { return cloneBody(g.body) }

// Head returns the most recently added body coordinate.
func (g *Game) Head() Point {
	if len(g.body) == 0 {
		return Point{}
	}
	return g.body[len(g.body)-1]
}

// Render draws the board followed by a score line.
func (g *Game) Render() string {
	var sb strings.Builder
	sb.WriteString(g.grid.String())
	sb.WriteString("Score: ")
	sb.WriteString(strconv.FormatUint(uint64(g.score), 10))
	return sb.String()
}
