package game

import (
	"encoding"
	"fmt"
)

// Direction is a heading the snake can move in.
type Direction uint8

var (
	_ encoding.TextMarshaler   = Direction(0)
	_ encoding.TextUnmarshaler = (*Direction)(nil)
)

const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections lists every heading in presentation order.
var AllDirections = [...]Direction{Up, Down, Left, Right}

func (d Direction) valid() bool {
	return d <= Right
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Follows reports whether next may be taken while heading in d.
// Everything except the direct reversal is allowed.
func (d Direction) Follows(next Direction) bool {
	return next.valid() && next != d.Opposite()
}

// Code is the single-letter form used in backups.
func (d Direction) Code() byte {
	switch d {
	case Up:
		return 'u'
	case Down:
		return 'd'
	case Left:
		return 'l'
	case Right:
		return 'r'
	}
	return '?'
}

// ParseDirection parses a backup direction code.
func ParseDirection(code string) (Direction, error) {
	switch code {
	case "u":
		return Up, nil
	case "d":
		return Down, nil
	case "l":
		return Left, nil
	case "r":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction code %q", code)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.valid() {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "left":
		*d = Left
	case "right":
		*d = Right
	default:
		return fmt.Errorf("invalid direction %q", b)
	}
	return nil
}
