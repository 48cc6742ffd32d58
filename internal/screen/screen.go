// Package screen replays decoded tokens against a growable character grid.
package screen

import (
	"fmt"

	"github.com/kstenerud/ansisnap/internal/ansi"
)

// Origin records how a cell came to exist.
type Origin uint8

const (
	// Placeholder is the cell a row opens with, under the cursor.
	Placeholder Origin = iota
	// Padding is created by cursor movement past the end of a row or by
	// erasing a whole row.
	Padding
	// Written holds a character from the input, which may be any rune
	// including NUL.
	Written
)

// Cell is one grid position. Only Written cells carry a Rune.
type Cell struct {
	Rune   rune
	FG     *ansi.ColorRef
	BG     *ansi.ColorRef
	Attrs  ansi.Attr
	Origin Origin
}

// Blank reports whether the cell was never written.
func (c Cell) Blank() bool { return c.Origin != Written }

// MaxCells bounds the total number of cells a Screen may hold; growth past
// it is an error.
const MaxCells = 1 << 24

// Screen is the grid: rows of cells, both 0-based internally. Rows and
// cells grow on demand and shrink only through erase commands.
type Screen struct {
	rows  [][]Cell
	cells int
}

// newScreen returns a grid holding only the cell under the home cursor.
func newScreen() *Screen {
	return &Screen{rows: [][]Cell{make([]Cell, 1)}, cells: 1}
}

// Height returns the number of rows.
func (s *Screen) Height() int { return len(s.rows) }

// Width returns the length of the longest row.
func (s *Screen) Width() int {
	w := 0
	for _, r := range s.rows {
		w = max(w, len(r))
	}
	return w
}

// Row returns row i (0-based). The slice must not be modified.
func (s *Screen) Row(i int) []Cell { return s.rows[i] }

// Rows returns every row. The slices must not be modified.
func (s *Screen) Rows() [][]Cell { return s.rows }

// ensure grows the grid so that the 1-based position (row, col) exists.
// Nothing changes if that would exceed MaxCells.
func (s *Screen) ensure(row, col int) error {
	newRows := max(row-len(s.rows), 0)
	rowLen := 1
	if row <= len(s.rows) {
		rowLen = len(s.rows[row-1])
	}
	if newRows > MaxCells || col > MaxCells || s.cells+newRows+max(col-rowLen, 0) > MaxCells {
		return fmt.Errorf("grid would exceed %d cells at row %d, column %d", MaxCells, row, col)
	}

	for len(s.rows) < row {
		s.rows = append(s.rows, make([]Cell, 1))
		s.cells++
	}
	r := s.rows[row-1]
	for len(r) < col {
		r = append(r, Cell{Origin: Padding})
		s.cells++
	}
	s.rows[row-1] = r
	return nil
}

func (s *Screen) setRow(i int, r []Cell) {
	s.cells += len(r) - len(s.rows[i])
	s.rows[i] = r
}

// truncate keeps the first n rows.
func (s *Screen) truncate(n int) {
	for _, r := range s.rows[n:] {
		s.cells -= len(r)
	}
	s.rows = s.rows[:n]
}
