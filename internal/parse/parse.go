// Package parse reads a Shikaku board from its text format: line 1 is
// "W H", followed by H rows of W whitespace-separated tokens ("-" void,
// "0" empty active cell, a positive integer clue).
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rybkr/shikaku/internal/grid"
)

// Parse reads a Shikaku board from r in the format above and constructs a
// *grid.Grid from it.
func Parse(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("parse: missing header line")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("parse: header must be \"W H\", got %q", scanner.Text())
	}
	width, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("parse: invalid width %q: %w", header[0], err)
	}
	height, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("parse: invalid height %q: %w", header[1], err)
	}

	size := grid.Size{Height: height, Width: width}
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("parse: %w", grid.ErrInvalidSize)
	}

	active := make([]bool, size.Area())
	clues := make(map[grid.Coord]int)

	for y := 0; y < height; y++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("parse: expected %d rows, got %d", height, y)
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != width {
			return nil, fmt.Errorf("parse: row %d has %d tokens, want %d", y, len(tokens), width)
		}
		for x, tok := range tokens {
			idx := y*width + x
			switch tok {
			case "-":
				active[idx] = false
			case "0":
				active[idx] = true
			default:
				v, err := strconv.Atoi(tok)
				if err != nil || v < 1 {
					return nil, fmt.Errorf("parse: invalid token %q at row %d col %d", tok, y, x)
				}
				active[idx] = true
				clues[grid.Coord{Y: y, X: x}] = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return grid.New(size, active, clues)
}
