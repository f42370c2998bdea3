// Package canon implements the canonicalizer (C5): a stable textual
// encoding of a board's assignment, used as solution identity (for
// de-duplicating the result set), plus the memoization key for equivalent
// sub-problems, which is built from the unassigned active cells rather
// than from the assignment.
package canon

import (
	"strconv"
	"strings"

	"github.com/rybkr/shikaku/internal/grid"
)

// voidToken is emitted for every void cell.
const voidToken = "--"

// Canonicalize walks g's cells in row-major order and emits a two-character
// token per cell: "--" for void cells, or a 2-digit zero-padded label
// assigned by first-seen order of rectangle ID (mod 100, per §4.5). Two
// assignments that are equal up to rectangle-ID renaming produce the same
// string, which is exactly what makes inserting canonical strings into a
// set a sound de-duplication mechanism.
func Canonicalize(g *grid.Grid) string {
	size := g.Size()
	var sb strings.Builder
	sb.Grow(2 * size.Area())

	labels := make(map[int]int)
	next := 0

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := grid.Coord{Y: y, X: x}
			if !g.IsActive(c) {
				sb.WriteString(voidToken)
				continue
			}
			id := g.AssignmentAt(c)
			label, ok := labels[id]
			if !ok {
				label = next % 100
				labels[id] = label
				next++
			}
			sb.WriteString(twoDigits(label))
		}
	}
	return sb.String()
}

// twoDigits zero-pads n (0-99) to exactly two characters.
func twoDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// MemoKey returns the memoization key for a partial board: the row-major
// concatenation of every unassigned active cell's coordinate, separated by
// "|". Two recursion states with identical unassigned-cell sets are
// equivalent sub-problems up to rectangle-ID renaming (§4.5, §9) — the IDs
// used for already-placed rectangles are immaterial because every
// remaining candidate check only asks "is this cell unassigned and
// active", never which ID currently owns a neighboring cell.
func MemoKey(g *grid.Grid) string {
	return CellsKey(g.UnassignedActiveCells())
}

// CellsKey renders a row-major-ordered cell list into the same delimited
// form MemoKey uses, so callers that already have the cell slice (the
// search driver, when it caches by the same set it just computed) don't
// need to recompute it from a *grid.Grid.
func CellsKey(cells []grid.Coord) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, "|")
}
