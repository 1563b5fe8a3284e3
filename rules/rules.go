// Package rules chooses moves for a game.Game without a human in the loop.
// The demo binaries use it in place of the external vote that normally picks
// each direction.
package rules

import (
	"github.com/errorcodezero/mastodon-plays-snake/game"
)

// SafeDirections returns the accepted directions that neither leave the board
// nor run into the body after this tick's tail movement.
func SafeDirections(g *game.Game) []game.Direction {
	body := g.Body()
	head := g.Head()
	food := g.Food()

	safe := []game.Direction{}
	for _, d := range g.Directions() {
		if isSafe(game.Step(head, d), body, food) {
			safe = append(safe, d)
		}
	}
	return safe
}

func isSafe(p game.Point, body []game.Point, food game.Point) bool {
	// 1. Check Bounds
	if !game.InBounds(p) {
		return false
	}

	// 2. Check the body. The tail moves away unless this move eats.
	start := 1
	if p == food {
		start = 0
	}
	for _, bp := range body[start:] {
		if p == bp {
			return false
		}
	}
	return true
}

// Choose picks the next direction: a safe move that gets closest to the food,
// ties broken by rng. With no safe move it returns any accepted direction and
// lets the engine reset the episode.
func Choose(g *game.Game, rng game.Rand) game.Direction {
	safe := SafeDirections(g)
	if len(safe) == 0 {
		all := g.Directions()
		return all[rng.IntN(len(all))]
	}

	head := g.Head()
	food := g.Food()
	best := []game.Direction{}
	bestDist := -1
	for _, d := range safe {
		dist := manhattan(game.Step(head, d), food)
		switch {
		case bestDist < 0 || dist < bestDist:
			best = append(best[:0], d)
			bestDist = dist
		case dist == bestDist:
			best = append(best, d)
		}
	}
	return best[rng.IntN(len(best))]
}

func manhattan(a, b game.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
