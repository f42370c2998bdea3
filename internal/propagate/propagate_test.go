package propagate

import (
	"testing"

	"github.com/rybkr/shikaku/internal/candidates"
	"github.com/rybkr/shikaku/internal/grid"
)

func counter() NextID {
	n := 0
	return func() int {
		n++
		return n
	}
}

func TestRunSingleClueSolvesBoard(t *testing.T) {
	g, err := grid.New(grid.Size{Height: 1, Width: 1}, []bool{true}, map[grid.Coord]int{{Y: 0, X: 0}: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	remaining := candidates.Generate(g)

	if err := Run(g, remaining, counter(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected all clues placed, remaining = %v", remaining)
	}
	if !g.IsComplete() {
		t.Fatal("expected board to be complete after propagation")
	}
}

func TestRunRule1PlacesUniqueCandidate(t *testing.T) {
	// 1x2 board, single clue of area 2: only one candidate rectangle exists.
	g, err := grid.New(grid.Size{Height: 1, Width: 2}, []bool{true, true}, map[grid.Coord]int{{Y: 0, X: 0}: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	remaining := candidates.Generate(g)
	if err := Run(g, remaining, counter(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.IsComplete() {
		t.Fatal("expected board to be complete")
	}
	if g.AssignmentAt(grid.Coord{Y: 0, X: 0}) != g.AssignmentAt(grid.Coord{Y: 0, X: 1}) {
		t.Fatal("expected both cells to share the same rectangle ID")
	}
}

func TestRunDetectsInfeasibleWhenCellUnclaimable(t *testing.T) {
	// 1x3 board, clues of area 1 at (0,0) and (0,2): cell (0,1) is active
	// but can never be covered, since both clues' only candidate is a 1x1
	// at their own position.
	active := []bool{true, true, true}
	clues := map[grid.Coord]int{{Y: 0, X: 0}: 1, {Y: 0, X: 2}: 1}
	g, err := grid.New(grid.Size{Height: 1, Width: 3}, active, clues)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	remaining := candidates.Generate(g)
	err = Run(g, remaining, counter(), nil)
	if err != ErrInfeasible {
		t.Fatalf("got %v, want ErrInfeasible", err)
	}
}

func TestRunRule2PrunesToCoveringCandidates(t *testing.T) {
	// 1x4 board, clues of area 2 at (0,0) and (0,2). (0,0) has a single
	// candidate, (0,0)-(0,1); (0,2) has two, (0,1)-(0,2) and (0,2)-(0,3).
	// Once (0,0) is placed, (0,2)'s left candidate is no longer free. If
	// rule1 visits (0,2) before (0,0), the list still holds two entries and
	// rule2 prunes it to the candidates covering (0,2), which leaves one to
	// place; otherwise rule1's filter does it. Either way the board is solved.
	active := []bool{true, true, true, true}
	clues := map[grid.Coord]int{{Y: 0, X: 0}: 2, {Y: 0, X: 2}: 2}
	g, err := grid.New(grid.Size{Height: 1, Width: 4}, active, clues)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	remaining := candidates.Generate(g)
	if err := Run(g, remaining, counter(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.IsComplete() {
		t.Fatal("expected board to be complete")
	}
}

func TestCountVectorAndSameCountVector(t *testing.T) {
	a := map[grid.Coord]int{{Y: 0, X: 0}: 3, {Y: 1, X: 1}: 1}
	b := map[grid.Coord]int{{Y: 0, X: 0}: 3, {Y: 1, X: 1}: 1}
	c := map[grid.Coord]int{{Y: 0, X: 0}: 3, {Y: 1, X: 1}: 2}

	if !sameCountVector(a, b) {
		t.Fatal("expected equal count vectors to compare equal")
	}
	if sameCountVector(a, c) {
		t.Fatal("expected differing count vectors to compare unequal")
	}
}
