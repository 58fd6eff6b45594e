package aoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"tailscale.com/util/deephash"
)

// Grid is a fixed-size rectangle of cells addressed by Pt, with X
// selecting the column and Y the row. Row 0 is the first row given to
// NewGrid. A Grid is not modified after construction.
type Grid[T comparable] struct {
	cells [][]T
	w, h  int
}

// NewGrid returns a Grid holding a copy of rows. All rows must be the
// same length.
func NewGrid[T comparable](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{h: len(rows)}
	if len(rows) > 0 {
		g.w = len(rows[0])
	}
	g.cells = make([][]T, len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, y, len(row), g.w)
		}
		g.cells[y] = append([]T(nil), row...)
	}
	return g, nil
}

// GridFromString builds a rune grid from s, one row per line. A
// trailing newline is ignored.
func GridFromString(s string) (*Grid[rune], error) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return NewGrid[rune](nil)
	}
	var rows [][]rune
	for _, line := range strings.Split(s, "\n") {
		rows = append(rows, []rune(strings.TrimSuffix(line, "\r")))
	}
	return NewGrid(rows)
}

// DigitGrid builds a grid of ints from lines of decimal digits.
func DigitGrid(lines []string) (*Grid[int], error) {
	rows := make([][]int, len(lines))
	for y, line := range lines {
		rows[y] = make([]int, len(line))
		for x := 0; x < len(line); x++ {
			v, ok := digVal(line[x])
			if !ok {
				return nil, fmt.Errorf("aoc: bogus digit %q at (%d,%d)", line[x], x, y)
			}
			rows[y][x] = v
		}
	}
	return NewGrid(rows)
}

func (g *Grid[T]) Width() int  { return g.w }
func (g *Grid[T]) Height() int { return g.h }

// Size returns the width and height as a Pt.
func (g *Grid[T]) Size() Pt { return Pt{g.w, g.h} }

// Valid reports whether p is inside the grid.
func (g *Grid[T]) Valid(p Pt) bool {
	return p.X >= 0 && p.X < g.w && p.Y >= 0 && p.Y < g.h
}

// At returns the cell at column p.X, row p.Y.
func (g *Grid[T]) At(p Pt) (T, error) {
	if !g.Valid(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.w, g.h)
	}
	return g.cells[p.Y][p.X], nil
}

// AtOk is like At but reports the failure as a bool.
func (g *Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Valid(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y][p.X], true
}

// Find returns the positions of every cell equal to v.
func (g *Grid[T]) Find(v T) mapset.Set[Pt] {
	s := mapset.New[Pt]()
	for y, row := range g.cells {
		for x, c := range row {
			if c == v {
				s.Put(Pt{x, y})
			}
		}
	}
	return s
}

// FlipY returns a new grid with the rows in reverse order, so a grid
// read top-down from a file gets Y growing upward.
func (g *Grid[T]) FlipY() *Grid[T] {
	rows := make([][]T, g.h)
	for y, row := range g.cells {
		rows[g.h-1-y] = row
	}
	// Shape was already validated.
	return MustGet(NewGrid(rows))
}

// Hash returns a fingerprint of the cell contents, for spotting repeated
// states in simulations.
func (g *Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g.cells)
}

// Draw writes the grid to w, one line per row, formatting each cell
// with cell.
func (g *Grid[T]) Draw(w io.Writer, cell func(T) string) error {
	var sb strings.Builder
	for _, row := range g.cells {
		for _, c := range row {
			sb.WriteString(cell(c))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
