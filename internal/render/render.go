// Package render lays a canonical solution string back out as a
// human-readable, plain-text grid.
package render

import (
	"fmt"
	"strings"

	"github.com/rybkr/shikaku/internal/grid"
)

// Render lays out canonical (as produced by canon.Canonicalize) against
// g's dimensions: two characters per cell, row-major, "--" for void cells,
// otherwise the 2-digit label; cells sharing a label belong to the same
// rectangle. Returns an error if canonical's length does not match
// 2*H*W.
func Render(g *grid.Grid, canonical string) (string, error) {
	size := g.Size()
	want := 2 * size.Area()
	if len(canonical) != want {
		return "", fmt.Errorf("render: canonical string has length %d, want %d", len(canonical), want)
	}

	var sb strings.Builder
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			idx := (y*size.Width + x) * 2
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(canonical[idx : idx+2])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
