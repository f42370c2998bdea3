// Package propagate implements the fixed-point constraint propagator (C3):
// rectangle-unique placement (Rule1) and cell-forced reasoning (Rule2),
// alternated until the candidate-count vector stops changing or the board
// is proven infeasible.
package propagate

import (
	"errors"

	"github.com/rybkr/shikaku/internal/grid"
	"github.com/rybkr/shikaku/internal/tracelog"
)

// ErrInfeasible is returned when propagation proves no completion is
// possible from the current state. This is an expected outcome (§7), not a
// contract violation.
var ErrInfeasible = errors.New("propagate: no completion possible")

// NextID yields the next rectangle ID to place. The search driver owns the
// counter (§9: scoped per Solve invocation, never process-global); Run
// calls back into it each time Rule1 or Rule2 forces a placement.
type NextID func() int

// Run drives g and remaining to a fixed point, mutating both in place.
// remaining maps each still-open clue to its currently viable candidate
// list; Run removes entries as their clue gets placed and shrinks the
// others as candidates are ruled out. It returns ErrInfeasible the moment
// any rule detects a dead end; it never backtracks or discards a candidate
// to route around infeasibility (§7) — only the search driver forms
// alternatives.
func Run(g *grid.Grid, remaining map[grid.Coord][]grid.Rect, next NextID, trace *tracelog.Logger) error {
	for {
		before := countVector(remaining)

		if err := rule1(g, remaining, next, trace); err != nil {
			return err
		}
		if err := rule2(g, remaining, next, trace); err != nil {
			return err
		}

		after := countVector(remaining)
		if sameCountVector(before, after) {
			return nil
		}
	}
}

// rule1 implements rectangle-unique placement: a clue whose filtered
// candidate list (cells all currently free) has exactly one entry is
// placed immediately.
func rule1(g *grid.Grid, remaining map[grid.Coord][]grid.Rect, next NextID, trace *tracelog.Logger) error {
	for clue, list := range remaining {
		if _, stillOpen := remaining[clue]; !stillOpen {
			continue // placed by an earlier iteration of this same pass
		}

		filtered := filterFree(g, list)
		if len(filtered) == 0 {
			trace.Tracef("rule1: clue %s has no free candidates left -> infeasible", clue)
			return ErrInfeasible
		}
		if len(filtered) == 1 {
			place(g, clue, filtered[0], remaining, next, trace, "rule1")
			continue
		}
		remaining[clue] = filtered
	}
	return nil
}

// rule2 implements cell-forced reasoning: for every unassigned active cell,
// determine which clues can still claim it. A cell claimable by only one
// clue either forces that clue's single remaining candidate, or (if the
// clue still has multiple candidates) prunes its list to those covering
// the cell.
func rule2(g *grid.Grid, remaining map[grid.Coord][]grid.Rect, next NextID, trace *tracelog.Logger) error {
	cellUse := make(map[grid.Coord]map[grid.Coord][]grid.Rect)

	for clue, list := range remaining {
		for _, rect := range list {
			if !g.FreeAndActive(rect) {
				continue
			}
			for _, c := range rect.Cells() {
				if g.AssignmentAt(c) != grid.EmptyCell {
					continue
				}
				if cellUse[c] == nil {
					cellUse[c] = make(map[grid.Coord][]grid.Rect)
				}
				cellUse[c][clue] = append(cellUse[c][clue], rect)
			}
		}
	}

	for _, u := range g.UnassignedActiveCells() {
		claimants := cellUse[u]
		if len(claimants) == 0 {
			trace.Tracef("rule2: cell %s has no claimant -> infeasible", u)
			return ErrInfeasible
		}
		if len(claimants) != 1 {
			continue
		}
		for clue, covering := range claimants {
			list := remaining[clue]
			if list == nil {
				continue // already placed earlier in this pass
			}
			if len(list) == 1 {
				k := list[0]
				if !g.FreeAndActive(k) {
					trace.Tracef("rule2: clue %s's sole candidate is no longer free -> infeasible", clue)
					return ErrInfeasible
				}
				place(g, clue, k, remaining, next, trace, "rule2")
				continue
			}
			remaining[clue] = covering
		}
	}
	return nil
}

// place assigns rect a fresh ID, writes it into g, and drops clue from
// remaining.
func place(g *grid.Grid, clue grid.Coord, rect grid.Rect, remaining map[grid.Coord][]grid.Rect, next NextID, trace *tracelog.Logger, rule string) {
	id := next()
	g.PlaceRectangle(rect, id)
	delete(remaining, clue)
	trace.Tracef("%s: placed clue %s as rect %+v id=%d", rule, clue, rect, id)
}

// filterFree returns the subset of list whose cells are all currently free
// and active.
func filterFree(g *grid.Grid, list []grid.Rect) []grid.Rect {
	out := make([]grid.Rect, 0, len(list))
	for _, r := range list {
		if g.FreeAndActive(r) {
			out = append(out, r)
		}
	}
	return out
}

// countVector produces the clue-set + per-clue candidate-count snapshot
// used to detect the propagation fixed point (§4.3): candidates are only
// ever removed, so a count-based comparison suffices and avoids a full
// structural diff of the candidate lists.
func countVector(remaining map[grid.Coord][]grid.Rect) map[grid.Coord]int {
	v := make(map[grid.Coord]int, len(remaining))
	for clue, list := range remaining {
		v[clue] = len(list)
	}
	return v
}

func sameCountVector(a, b map[grid.Coord]int) bool {
	if len(a) != len(b) {
		return false
	}
	for clue, n := range a {
		if b[clue] != n {
			return false
		}
	}
	return true
}
