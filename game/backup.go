package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Backup serialises the game for crash recovery:
//
//	<direction>,<food_x>,<food_y>,<x0>,<y0>,<x1>,<y1>,...
//
// Body coordinates are written tail first. Scores are not stored; Import
// derives the score from the body length.
func (g *Game) Backup() string {
	var sb strings.Builder
	sb.WriteByte(g.heading.Code())
	writeCoord := func(p Point) {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
	writeCoord(g.food)
	for _, p := range g.body {
		writeCoord(p)
	}
	return sb.String()
}

// Import replaces the game state with the one encoded in text.
//
// The whole string is validated before anything changes; on error the game is
// left as it was and the error wraps ErrMalformedBackup. The high score is
// raised to the restored score if it was lower.
func (g *Game) Import(text string) error {
	heading, food, body, err := parseBackup(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	grid, ok := buildGrid(body, food)
	if !ok {
		return fmt.Errorf("%w: snake overlaps itself", ErrMalformedBackup)
	}

	g.heading = heading
	g.food = food
	g.body = body
	g.grid = grid
	g.score = uint(len(body) - 1)
	if g.score > g.highScore {
		g.highScore = g.score
	}
	return nil
}

func parseBackup(text string) (Direction, Point, []Point, error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")
	if len(tokens) < 5 || len(tokens)%2 == 0 {
		return 0, Point{}, nil, fmt.Errorf("want a direction and at least two coordinate pairs, got %d tokens", len(tokens))
	}

	heading, err := ParseDirection(tokens[0])
	if err != nil {
		return 0, Point{}, nil, err
	}

	coords := make([]Point, 0, (len(tokens)-1)/2)
	for i := 1; i < len(tokens); i += 2 {
		p, err := parseCoord(tokens[i], tokens[i+1])
		if err != nil {
			return 0, Point{}, nil, fmt.Errorf("token %d: %w", i, err)
		}
		coords = append(coords, p)
	}

	food, body := coords[0], coords[1:]
	for _, p := range body {
		if p == food {
			return 0, Point{}, nil, fmt.Errorf("food %s is on the snake", food)
		}
	}
	return heading, food, body, nil
}

func parseCoord(xs, ys string) (Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, fmt.Errorf("x coordinate %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, fmt.Errorf("y coordinate %q: %w", ys, err)
	}
	p := Point{X: x, Y: y}
	if !InBounds(p) {
		return Point{}, fmt.Errorf("coordinate %s is off the %dx%d board", p, Size, Size)
	}
	return p, nil
}
