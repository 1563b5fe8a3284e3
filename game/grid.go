package game

import "strings"

// Cell is the display state of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Food
	SnakeHead
	SnakeBody
)

// Glyph returns the symbol Render uses for c.
func (c Cell) Glyph() string {
	switch c {
	case Food:
		return "🍎"
	case SnakeHead:
		return "🟢"
	case SnakeBody:
		return "🟩"
	default:
		return "⬛"
	}
}

// Grid is the rendered board, indexed [y][x].
type Grid [Size][Size]Cell

// buildGrid recomputes a board from scratch.
//
// The body is walked head first and every coordinate marked as body. Marking a
// cell twice means the body overlaps itself; the walk stops and ok is false.
// This is the engine's self-collision check: detect on render, reset on detect.
func buildGrid(body []Point, food Point) (g Grid, ok bool) {
	if len(body) == 0 {
		return g, false
	}
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if !InBounds(p) || g[p.Y][p.X] != Empty {
			return g, false
		}
		g[p.Y][p.X] = SnakeBody
	}
	head := body[len(body)-1]
	g[head.Y][head.X] = SnakeHead
	if InBounds(food) && g[food.Y][food.X] == Empty {
		g[food.Y][food.X] = Food
	}
	return g, true
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g {
		for x := range g[y] {
			sb.WriteString(g[y][x].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
