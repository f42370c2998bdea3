// Package solver implements the search driver (C4): it chooses a branching
// clue, recurses on each of its candidates, unions the discovered
// solutions, and memoizes sub-results keyed on equivalent sub-problems.
package solver

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/rybkr/shikaku/internal/candidates"
	"github.com/rybkr/shikaku/internal/canon"
	"github.com/rybkr/shikaku/internal/grid"
	"github.com/rybkr/shikaku/internal/propagate"
	"github.com/rybkr/shikaku/internal/tracelog"
)

// ErrContractViolation wraps a recovered panic from a precondition
// violation deep in the board model or propagator — a programming error,
// never a puzzle outcome. Infeasibility is never surfaced as a Go error;
// it simply yields an empty result set.
var ErrContractViolation = errors.New("solver: contract violation")

// solution pairs a discovered completion's canonical form with the fully
// solved board it was derived from, so ancestor recursion levels can
// reconstruct the fragment they need to cache (see fragmentsFor) without
// recomputing anything.
type solution struct {
	canonical string
	board     *grid.Grid
}

// solver carries the per-invocation mutable state a search needs: a
// monotonically increasing rectangle-ID counter and a memoization cache,
// both freshly initialized at the start of Solve and never shared across
// invocations, so concurrent Solve calls stay independent.
type solver struct {
	counter int
	cache   map[string][][]grid.Rect
	trace   *tracelog.Logger
}

func newSolver(opts *Options) *solver {
	var logger *tracelog.Logger
	if opts.Trace {
		w := opts.TraceWriter
		if w == nil {
			w = io.Discard
		}
		logger = tracelog.New(w, uuid.New().String())
	}
	return &solver{
		cache: make(map[string][][]grid.Rect),
		trace: logger,
	}
}

func (s *solver) nextID() int {
	s.counter++
	return s.counter
}

// Solve is the sole external operation of §6: it enumerates every valid
// partition of g's active region into clue-sized rectangles and returns
// their canonical forms. An empty, non-nil map means the board is
// infeasible (including when its precondition — clue areas summing to the
// active-cell count — is violated); a non-nil error means a contract
// violation was detected (a programming error, never a puzzle state).
func Solve(g *grid.Grid, opts *Options) (result map[string]struct{}, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrContractViolation, r)
		}
	}()

	sum := 0
	for _, v := range g.Clues() {
		sum += v
	}
	if sum != g.ActiveCount() {
		return map[string]struct{}{}, nil
	}

	s := newSolver(opts)
	work := g.Clone()
	remaining := candidates.Generate(work)

	s.trace.Tracef("solve: start, %d clues, %d active cells", len(remaining), work.ActiveCount())

	solutions, err := s.search(work, remaining)
	if err != nil {
		return nil, err
	}

	result = make(map[string]struct{}, len(solutions))
	for _, sol := range solutions {
		result[sol.canonical] = struct{}{}
	}
	s.trace.Tracef("solve: done, %d distinct solutions", len(result))
	return result, nil
}

// search implements §4.4 step by step: propagate to a fixed point, check
// for a solved board, consult the memoization cache, and otherwise branch
// on the MRV clue and recurse.
func (s *solver) search(g *grid.Grid, remaining map[grid.Coord][]grid.Rect) ([]solution, error) {
	if err := propagate.Run(g, remaining, s.nextID, s.trace); err != nil {
		if errors.Is(err, propagate.ErrInfeasible) {
			return nil, nil
		}
		return nil, err
	}

	if len(remaining) == 0 {
		return []solution{{canonical: canon.Canonicalize(g), board: g}}, nil
	}

	cells := g.UnassignedActiveCells()
	key := canon.CellsKey(cells)

	if fragments, ok := s.cache[key]; ok {
		s.trace.Tracef("search: cache hit for key %q (%d fragments)", key, len(fragments))
		return s.replay(g, fragments), nil
	}

	branch := selectBranchClue(g, remaining)
	s.trace.Tracef("search: branching on clue %s with %d candidates", branch, len(remaining[branch]))

	var acc []solution
	for _, rect := range remaining[branch] {
		childGrid := g.Clone()
		childRemaining := cloneRemaining(remaining)
		childRemaining[branch] = []grid.Rect{rect}

		childSolutions, err := s.search(childGrid, childRemaining)
		if err != nil {
			return nil, err
		}
		acc = append(acc, childSolutions...)
	}

	s.cache[key] = fragmentsFor(acc, cells)
	return acc, nil
}

// replay reconstructs completions for g from cached fragments: each
// fragment is a set of rectangles covering exactly the cells that were
// free when the fragment was cached, so it can be stamped onto any board
// that reaches the same free-cell set, regardless of how the rest of the
// board came to be filled (§4.5, §9). Every stamp uses freshly minted IDs
// from this invocation's own counter, sidestepping any need to reconcile
// the writer's and reader's ID numbering — canonicalization's first-seen
// relabeling makes the specific IDs irrelevant.
func (s *solver) replay(g *grid.Grid, fragments [][]grid.Rect) []solution {
	out := make([]solution, 0, len(fragments))
	for _, fragment := range fragments {
		clone := g.Clone()
		for _, rect := range fragment {
			clone.PlaceRectangle(rect, s.nextID())
		}
		out = append(out, solution{canonical: canon.Canonicalize(clone), board: clone})
	}
	return out
}

// fragmentsFor derives, from each discovered completion's fully solved
// board, the distinct rectangle sets that fill exactly cells — the set of
// cells that were free when this recursion level reached its fixed point.
// Duplicate fragments (different branches converging on the same local
// partition) are collapsed.
func fragmentsFor(solutions []solution, cells []grid.Coord) [][]grid.Rect {
	seen := make(map[string][]grid.Rect)
	for _, sol := range solutions {
		rects := grid.RectsForCells(sol.board, cells)
		seen[fragmentKey(rects)] = rects
	}
	out := make([][]grid.Rect, 0, len(seen))
	for _, rects := range seen {
		out = append(out, rects)
	}
	return out
}

func fragmentKey(rects []grid.Rect) string {
	parts := make([]string, len(rects))
	for i, r := range rects {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", r.Start.Y, r.Start.X, r.Size.Height, r.Size.Width)
	}
	return strings.Join(parts, ";")
}

// cloneRemaining makes a shallow copy of remaining: the slices it holds
// are never mutated in place (propagate always reassigns a freshly
// filtered/pruned slice rather than editing one), so sharing them between
// the parent and each branch clone is safe, matching the teacher's choice
// to exchange its "remaining"-equivalent state by value between passes.
func cloneRemaining(remaining map[grid.Coord][]grid.Rect) map[grid.Coord][]grid.Rect {
	clone := make(map[grid.Coord][]grid.Rect, len(remaining))
	for c, list := range remaining {
		clone[c] = list
	}
	return clone
}
