// food.go implements random placement for the snake and its food.

package game

import "math/rand/v2"

// Rand is the randomness the engine draws from. *rand.Rand satisfies it;
// tests substitute a scripted sequence.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// randomPoint draws x then y uniformly over the board.
func randomPoint(rng Rand) Point {
	x := rng.IntN(Size)
	y := rng.IntN(Size)
	return Point{X: x, Y: y}
}

// PlaceFood picks a coordinate not occupied by body.
// Draws are uniform over the whole board and rejected while they land on the
// snake, which leaves the result uniform over the free cells.
// It returns false when body covers every cell.
func PlaceFood(rng Rand, body []Point) (Point, bool) {
	var occupied [Size][Size]bool
	free := Size * Size
	for _, p := range body {
		if !InBounds(p) || occupied[p.Y][p.X] {
			continue
		}
		occupied[p.Y][p.X] = true
		free--
	}
	if free == 0 {
		return Point{}, false
	}

	for {
		p := randomPoint(rng)
		if !occupied[p.Y][p.X] {
			return p, true
		}
	}
}
