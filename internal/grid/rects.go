package grid

import "sort"

// RectsForCells groups cells by the rectangle ID currently assigned to
// them and reconstructs the bounding Rect of each group.
//
// Every cell in cells must already carry a positive assignment (the caller
// is expected to pass only cells known to be filled, e.g. a fully solved
// board's cell set) — RectsForCells does not validate that the grouped
// cells actually form a filled rectangle; that invariant is guaranteed
// upstream by the propagator and search driver, which only ever place
// whole rectangles.
func RectsForCells(g *Grid, cells []Coord) []Rect {
	groups := make(map[int][]Coord)
	for _, c := range cells {
		id := g.AssignmentAt(c)
		groups[id] = append(groups[id], c)
	}

	rects := make([]Rect, 0, len(groups))
	for _, coords := range groups {
		minY, minX := coords[0].Y, coords[0].X
		maxY, maxX := coords[0].Y, coords[0].X
		for _, c := range coords[1:] {
			if c.Y < minY {
				minY = c.Y
			}
			if c.Y > maxY {
				maxY = c.Y
			}
			if c.X < minX {
				minX = c.X
			}
			if c.X > maxX {
				maxX = c.X
			}
		}
		rects = append(rects, Rect{
			Start: Coord{Y: minY, X: minX},
			Size:  Size{Height: maxY - minY + 1, Width: maxX - minX + 1},
		})
	}

	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.Start.Y != b.Start.Y {
			return a.Start.Y < b.Start.Y
		}
		return a.Start.X < b.Start.X
	})
	return rects
}
