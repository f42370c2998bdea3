package candidates

import (
	"testing"

	"github.com/rybkr/shikaku/internal/grid"
)

func TestDimensionsForDedupesSquare(t *testing.T) {
	dims := dimensionsFor(4)
	count := 0
	for _, d := range dims {
		if d[0] == 2 && d[1] == 2 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("2x2 should appear exactly once for area 4, got %d", count)
	}

	dims = dimensionsFor(6)
	want := map[[2]int]bool{{1, 6}: true, {6, 1}: true, {2, 3}: true, {3, 2}: true}
	if len(dims) != len(want) {
		t.Fatalf("got %v, want 4 entries for area 6", dims)
	}
	for _, d := range dims {
		if !want[d] {
			t.Fatalf("unexpected dimension pair %v for area 6", d)
		}
	}
}

func TestGenerateSingleClueFillsBoard(t *testing.T) {
	g, err := grid.New(grid.Size{Height: 1, Width: 1}, []bool{true}, map[grid.Coord]int{{Y: 0, X: 0}: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := Generate(g)
	list := result[grid.Coord{Y: 0, X: 0}]
	if len(list) != 1 {
		t.Fatalf("expected exactly one candidate, got %v", list)
	}
	want := grid.Rect{Start: grid.Coord{Y: 0, X: 0}, Size: grid.Size{Height: 1, Width: 1}}
	if list[0] != want {
		t.Fatalf("got %v, want %v", list[0], want)
	}
}

func TestGenerateExcludesRectContainingOtherClue(t *testing.T) {
	// 1x4 board, clues of area 2 at (0,0) and (0,2): the only way to fill
	// is two 1x2 rectangles, so a 1x4 candidate must never appear despite
	// area 4 being a divisor-derived dimension for neither clue here, and a
	// 1x2 candidate spanning into the other clue's cell must be rejected.
	active := []bool{true, true, true, true}
	clues := map[grid.Coord]int{{Y: 0, X: 0}: 2, {Y: 0, X: 2}: 2}
	g, err := grid.New(grid.Size{Height: 1, Width: 4}, active, clues)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := Generate(g)
	for clue, list := range result {
		for _, r := range list {
			for _, c := range r.Cells() {
				if c == clue {
					continue
				}
				if _, isClue := g.ClueAt(c); isClue {
					t.Fatalf("candidate %v for clue %s covers another clue cell %s", r, clue, c)
				}
			}
		}
	}
}

func TestGenerateExcludesOutOfBoundsAndVoid(t *testing.T) {
	// L-shaped board: void at (0,1). Clue of area 1 at (0,0) and clue of
	// area 2 at (1,0): no candidate of either clue may step out of bounds or
	// into the void cell.
	active := []bool{true, false, true, true}
	clues := map[grid.Coord]int{{Y: 0, X: 0}: 1, {Y: 1, X: 0}: 2}
	g, err := grid.New(grid.Size{Height: 2, Width: 2}, active, clues)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result := Generate(g)
	for clue, list := range result {
		for _, r := range list {
			if !r.InBounds(g.Size()) {
				t.Fatalf("candidate %v for clue %s out of bounds", r, clue)
			}
			for _, c := range r.Cells() {
				if !g.IsActive(c) {
					t.Fatalf("candidate %v for clue %s covers void cell %s", r, clue, c)
				}
			}
		}
	}
}

func TestCandidatesForDeterministicOrder(t *testing.T) {
	g, err := grid.New(grid.Size{Height: 2, Width: 3}, []bool{true, true, true, true, true, true}, map[grid.Coord]int{{Y: 0, X: 1}: 6})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := candidatesFor(g, grid.Coord{Y: 0, X: 1}, 6)
	b := candidatesFor(g, grid.Coord{Y: 0, X: 1}, 6)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic candidate count")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic ordering at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}
