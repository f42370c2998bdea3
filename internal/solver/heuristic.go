package solver

import (
	"sort"

	"github.com/rybkr/shikaku/internal/grid"
)

// selectBranchClue picks the clue to branch on next: minimum remaining
// candidates first; ties broken by the largest clue number (since a
// clue's candidates are all area-equal to its number, "largest maximum
// candidate area" reduces to "largest clue value"); remaining ties broken
// lexicographically by (y,x).
func selectBranchClue(g *grid.Grid, remaining map[grid.Coord][]grid.Rect) grid.Coord {
	keys := make([]grid.Coord, 0, len(remaining))
	for c := range remaining {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	var best grid.Coord
	bestCount := -1
	bestValue := -1
	for _, c := range keys {
		count := len(remaining[c])
		value, _ := g.ClueAt(c)
		if bestCount == -1 || count < bestCount || (count == bestCount && value > bestValue) {
			best, bestCount, bestValue = c, count, value
		}
	}
	return best
}
