package rules

import (
	"testing"

	"github.com/errorcodezero/mastodon-plays-snake/game"
)

func restore(t *testing.T, text string) *game.Game {
	t.Helper()
	g, err := game.FromBackup(text, game.Config{Rand: game.NewRand(1)})
	if err != nil {
		t.Fatalf("FromBackup(%q): %v", text, err)
	}
	return g
}

func logGame(t *testing.T, label string, g *game.Game) {
	t.Helper()
	t.Logf("=== %s ===\n%s\nheading=%s backup=%s", label, g.Render(), g.Heading(), g.Backup())
}

func sameSet(a, b []game.Direction) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[game.Direction]bool{}
	for _, d := range a {
		seen[d] = true
	}
	for _, d := range b {
		if !seen[d] {
			return false
		}
	}
	return true
}

func TestSafeDirections_Corner(t *testing.T) {
	// Head in the top-left corner heading up.
	g := restore(t, "u,5,5,0,1,0,0")
	logGame(t, "corner", g)

	got := SafeDirections(g)
	want := []game.Direction{game.Right}
	if !sameSet(got, want) {
		t.Fatalf("safe=%v want %v", got, want)
	}
}

func TestSafeDirections_TailIsSafe(t *testing.T) {
	// Square loop: moving up lands on the tail, which moves away.
	g := restore(t, "l,5,5,1,1,2,1,2,2,1,2")
	logGame(t, "loop", g)

	got := SafeDirections(g)
	want := []game.Direction{game.Up, game.Left, game.Down}
	if !sameSet(got, want) {
		t.Fatalf("safe=%v want %v", got, want)
	}
}

func TestSafeDirections_BodyBlocks(t *testing.T) {
	// Up from (1,2) would hit (1,1), which is not the tail.
	g := restore(t, "l,5,5,0,1,1,1,2,1,2,2,1,2")

	for _, d := range SafeDirections(g) {
		if d == game.Up {
			t.Fatalf("up reported safe into the body")
		}
	}
}

func TestChoose_SeeksFood(t *testing.T) {
	g := restore(t, "r,4,2,1,2,2,2")
	if got := Choose(g, game.NewRand(3)); got != game.Right {
		t.Fatalf("Choose=%s want right", got)
	}
}

func TestChoose_NoSafeMoveFallsBack(t *testing.T) {
	// Head at (0,0) heading left with the body below and to the right.
	g := restore(t, "l,5,5,0,2,0,1,1,1,1,0,0,0")
	logGame(t, "boxed", g)
	if safe := SafeDirections(g); len(safe) != 0 {
		t.Fatalf("safe=%v want none", safe)
	}

	d := Choose(g, game.NewRand(5))
	found := false
	for _, a := range g.Directions() {
		if a == d {
			found = true
		}
	}
	if !found {
		t.Fatalf("Choose=%s not in %v", d, g.Directions())
	}
}

func TestChoose_NeverErrors(t *testing.T) {
	rng := game.NewRand(77)
	g := game.New(rng)
	ate := 0
	for i := 0; i < 1000; i++ {
		out, err := g.MoveSnake(Choose(g, rng))
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if out == game.Ate {
			ate++
		}
	}
	if ate == 0 {
		t.Fatalf("autopilot never ate in 1000 ticks")
	}
	t.Logf("ate=%d high=%d", ate, g.HighScore())
}
