// Package grid implements the Shikaku board model: an immutable-by-convention
// snapshot of a board's dimensions, active-cell mask, clue map, and the
// rectangle-assignment array that the solver mutates during search.
package grid

import (
	"fmt"
	"strings"
)

// EmptyCell is the assignment value for a cell that has not yet been
// claimed by any rectangle.
const EmptyCell = 0

// Grid represents a Shikaku board of arbitrary height and width.
//
// active and clues are set at construction time and never mutated
// afterward, so Clone shares them by reference. assignment is the only
// field that changes across a Grid's lifecycle, and Clone always
// deep-copies it so that independent search branches never alias one
// another's writes.
type Grid struct {
	size Size

	// active is a row-major mask; active[y*width+x] is false for void cells.
	active []bool

	// clues maps an active coordinate to its positive clue value.
	clues map[Coord]int

	// assignment is row-major; 0 means unassigned, a positive value is a
	// rectangle ID. Void cells always carry 0.
	assignment []int
}

// New builds a Grid from its size, active mask, and clue map, validating
// that every clue cell is active and every clue value is >= 1. active
// must be in row-major order with length size.Area().
func New(size Size, active []bool, clues map[Coord]int) (*Grid, error) {
	if size.Height < 1 || size.Width < 1 {
		return nil, ErrInvalidSize
	}
	if len(active) != size.Area() {
		return nil, ErrInvalidActiveMask
	}

	activeCopy := make([]bool, len(active))
	copy(activeCopy, active)

	cluesCopy := make(map[Coord]int, len(clues))
	for c, v := range clues {
		if !c.InBounds(size) {
			return nil, fmt.Errorf("%w: clue at %s", ErrCoordOutOfBounds, c)
		}
		if v < 1 {
			return nil, fmt.Errorf("%w: clue at %s has value %d", ErrInvalidClueValue, c, v)
		}
		if !activeCopy[c.Y*size.Width+c.X] {
			return nil, fmt.Errorf("%w: clue at %s", ErrClueOnVoid, c)
		}
		cluesCopy[c] = v
	}

	return &Grid{
		size:       size,
		active:     activeCopy,
		clues:      cluesCopy,
		assignment: make([]int, size.Area()),
	}, nil
}

// Clone returns an independent copy of g. active and clues are shared by
// reference since neither is ever mutated after construction; assignment
// is deep-copied so the clone's writes never affect g.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	assignment := make([]int, len(g.assignment))
	copy(assignment, g.assignment)
	return &Grid{
		size:       g.size,
		active:     g.active,
		clues:      g.clues,
		assignment: assignment,
	}
}

// Size returns the board's dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// Clues returns the clue map. The returned map must not be mutated by callers.
func (g *Grid) Clues() map[Coord]int {
	return g.clues
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.size.Width + c.X
}

// IsActive reports whether c is an active (non-void) cell.
func (g *Grid) IsActive(c Coord) bool {
	if !c.InBounds(g.size) {
		return false
	}
	return g.active[g.index(c)]
}

// ClueAt returns the clue value at c and whether c carries a clue.
func (g *Grid) ClueAt(c Coord) (int, bool) {
	v, ok := g.clues[c]
	return v, ok
}

// AssignmentAt returns the rectangle ID assigned to c, or EmptyCell if c is
// unassigned or void.
func (g *Grid) AssignmentAt(c Coord) int {
	if !c.InBounds(g.size) {
		return EmptyCell
	}
	return g.assignment[g.index(c)]
}

// PlaceRectangle writes id into every cell of rect.
//
// Precondition: every cell of rect is active and currently unassigned.
// Violating this precondition is a programming error and panics rather
// than returning an error — callers that might violate the precondition
// must check first (the propagator does, via FreeAndActive; the search
// driver's cache replay stamps only rectangles lying inside a free-cell set
// it has already matched).
func (g *Grid) PlaceRectangle(rect Rect, id int) {
	if id <= 0 {
		panic(fmt.Sprintf("grid: PlaceRectangle called with non-positive id %d", id))
	}
	if !rect.InBounds(g.size) {
		panic(fmt.Sprintf("grid: PlaceRectangle with out-of-bounds rect %+v", rect))
	}
	for _, c := range rect.Cells() {
		idx := g.index(c)
		if !g.active[idx] {
			panic(fmt.Sprintf("grid: PlaceRectangle on void cell %s", c))
		}
		if g.assignment[idx] != EmptyCell {
			panic(fmt.Sprintf("grid: PlaceRectangle on already-assigned cell %s", c))
		}
		g.assignment[idx] = id
	}
}

// FreeAndActive reports whether every cell of rect is active and unassigned.
func (g *Grid) FreeAndActive(rect Rect) bool {
	if !rect.InBounds(g.size) {
		return false
	}
	for _, c := range rect.Cells() {
		idx := g.index(c)
		if !g.active[idx] || g.assignment[idx] != EmptyCell {
			return false
		}
	}
	return true
}

// UnassignedActiveCells returns every active cell that is still unassigned,
// in row-major order.
func (g *Grid) UnassignedActiveCells() []Coord {
	cells := make([]Coord, 0)
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			idx := y*g.size.Width + x
			if g.active[idx] && g.assignment[idx] == EmptyCell {
				cells = append(cells, Coord{Y: y, X: x})
			}
		}
	}
	return cells
}

// IsComplete reports whether every active cell carries a positive assignment.
func (g *Grid) IsComplete() bool {
	for i, a := range g.active {
		if a && g.assignment[i] == EmptyCell {
			return false
		}
	}
	return true
}

// ActiveCount returns the number of active cells on the board.
func (g *Grid) ActiveCount() int {
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}
	return n
}

// Format returns a human-readable grid, one line per row, '.' for void
// cells, '0'-'9' for the rectangle ID mod 10 at assigned cells, and '_'
// for unassigned active cells. This is a debugging
// aid only; internal/render implements the canonical two-character-per-cell
// renderer described in §6.
func (g *Grid) Format() string {
	var sb strings.Builder
	for y := 0; y < g.size.Height; y++ {
		for x := 0; x < g.size.Width; x++ {
			idx := y*g.size.Width + x
			switch {
			case !g.active[idx]:
				sb.WriteByte('.')
			case g.assignment[idx] == EmptyCell:
				sb.WriteByte('_')
			default:
				sb.WriteByte('0' + byte(g.assignment[idx]%10))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
