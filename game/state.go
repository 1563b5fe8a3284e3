// Package game implements the single-player snake engine.
//
// A Game owns the snake body, the food coordinate, the current heading and the
// score counters. The board is a fixed Size x Size grid that is recomputed from
// that state after every mutation and is never the source of truth.
//
// A Game is not safe for concurrent use; the caller owns it exclusively and
// drives it one tick at a time.
package game

import "fmt"

// Size is the width and height of the board.
const Size = 6

// Point is a board coordinate.
// (0,0) is the top-left cell; Y grows downward.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InBounds reports whether p lies on the board.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Step returns the neighbour of p in direction d. The result may be off the board.
func Step(p Point, d Direction) Point {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// Outcome describes what a successful MoveSnake call did.
type Outcome uint8

const (
	Advanced Outcome = iota
	Ate
	ResetBoundary
	ResetSelfCollision
	ResetBoardFull
)

// Reset reports whether the tick ended the episode.
func (o Outcome) Reset() bool {
	return o >= ResetBoundary
}

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Ate:
		return "ate"
	case ResetBoundary:
		return "reset_boundary"
	case ResetSelfCollision:
		return "reset_self_collision"
	case ResetBoardFull:
		return "reset_board_full"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// cloneBody performs a copy of a snake body.
func cloneBody(body []Point) []Point {
	if len(body) == 0 {
		return nil
	}
	out := make([]Point, len(body))
	copy(out, body)
	return out
}
