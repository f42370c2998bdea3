// Package candidates implements the candidate-rectangle generator (C2):
// for each clue, enumerate every geometrically admissible rectangle.
package candidates

import (
	"sort"

	"github.com/rybkr/shikaku/internal/grid"
)

// Generate returns, for every clue on g, the deterministically ordered list
// of candidate rectangles satisfying §4.2: divisor-pair dimensions in both
// orientations, translated to cover the clue, filtered to those that stay
// in bounds, cover only active cells, and contain no other clue.
func Generate(g *grid.Grid) map[grid.Coord][]grid.Rect {
	result := make(map[grid.Coord][]grid.Rect, len(g.Clues()))
	for clue, area := range g.Clues() {
		result[clue] = candidatesFor(g, clue, area)
	}
	return result
}

// candidatesFor enumerates candidates for a single clue, following §4.2
// steps 1-4 in order.
func candidatesFor(g *grid.Grid, clue grid.Coord, area int) []grid.Rect {
	var out []grid.Rect
	seen := make(map[grid.Rect]bool)

	for _, dims := range dimensionsFor(area) {
		h, w := dims[0], dims[1]
		for dh := 0; dh < h; dh++ {
			for dw := 0; dw < w; dw++ {
				rect := grid.Rect{
					Start: grid.Coord{Y: clue.Y - dh, X: clue.X - dw},
					Size:  grid.Size{Height: h, Width: w},
				}
				if seen[rect] {
					continue
				}
				if !admissible(g, rect, clue) {
					continue
				}
				seen[rect] = true
				out = append(out, rect)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Start.Y != b.Start.Y {
			return a.Start.Y < b.Start.Y
		}
		if a.Start.X != b.Start.X {
			return a.Start.X < b.Start.X
		}
		if a.Size.Height != b.Size.Height {
			return a.Size.Height < b.Size.Height
		}
		return a.Size.Width < b.Size.Width
	})
	return out
}

// dimensionsFor returns every (height, width) pair admissible for a clue of
// the given area: one entry per unordered divisor pair (p,q), p<=q, in both
// orientations, skipping the duplicate orientation for a perfect square.
func dimensionsFor(area int) [][2]int {
	var dims [][2]int
	for p := 1; p*p <= area; p++ {
		if area%p != 0 {
			continue
		}
		q := area / p
		dims = append(dims, [2]int{p, q})
		if p != q {
			dims = append(dims, [2]int{q, p})
		}
	}
	return dims
}

// admissible reports whether rect is a valid candidate for clue: in
// bounds, covering only active cells, containing clue, and containing no
// other clue.
func admissible(g *grid.Grid, rect grid.Rect, clue grid.Coord) bool {
	size := g.Size()
	if !rect.InBounds(size) {
		return false
	}
	if !rect.Contains(clue) {
		return false
	}
	for _, c := range rect.Cells() {
		if !g.IsActive(c) {
			return false
		}
		if c == clue {
			continue
		}
		if _, isClue := g.ClueAt(c); isClue {
			return false
		}
	}
	return true
}
