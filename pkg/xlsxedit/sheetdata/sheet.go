// Package sheetdata stores worksheet content sparsely: only rows and cells
// that exist are kept, in ascending order, together with per-column settings.
package sheetdata

import (
	"sort"

	"github.com/tiendc/go-deepcopy"
)

// Sheet is the row and column store of one worksheet.
type Sheet struct {
	rows    []*Row
	maxCol  int
	columns Columns
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{}
}

// Rows returns the rows in ascending order. The slice must not be modified.
func (s *Sheet) Rows() []*Row { return s.rows }

// Len returns the number of stored rows.
func (s *Sheet) Len() int { return len(s.rows) }

// Columns returns the column settings of the sheet.
func (s *Sheet) Columns() *Columns { return &s.columns }

// MaxRow returns the largest stored row number, or 0 for an empty sheet.
func (s *Sheet) MaxRow() int {
	if len(s.rows) == 0 {
		return 0
	}
	return s.rows[len(s.rows)-1].num
}

// MaxCol returns the largest column holding a cell, or 0. Cells are never
// removed, so the cached value only grows.
func (s *Sheet) MaxCol() int { return s.maxCol }

// ColumnBound returns the largest column holding a cell or a column setting.
func (s *Sheet) ColumnBound() int {
	return max(s.maxCol, s.columns.Max())
}

func (s *Sheet) search(row int) (int, bool) {
	n := len(s.rows)
	if n == 0 || s.rows[n-1].num < row {
		return n, false
	}
	i := sort.Search(n, func(i int) bool { return s.rows[i].num >= row })
	return i, s.rows[i].num == row
}

// Row returns the row with the given number, if stored.
func (s *Sheet) Row(row int) (*Row, bool) {
	i, ok := s.search(row)
	if !ok {
		return nil, false
	}
	return s.rows[i], true
}

// GetOrNewRow returns the row with the given number, inserting an empty one
// in order when absent. Repeated calls return the same row.
func (s *Sheet) GetOrNewRow(row int) *Row {
	i, ok := s.search(row)
	if ok {
		return s.rows[i]
	}
	r := &Row{num: row, sheet: s}
	if i == len(s.rows) {
		s.rows = append(s.rows, r)
	} else {
		s.rows = append(s.rows, nil)
		copy(s.rows[i+1:], s.rows[i:])
		s.rows[i] = r
	}
	return r
}

// RowsIn returns the stored rows numbered lo..hi (inclusive).
func (s *Sheet) RowsIn(lo, hi int) []*Row {
	i, _ := s.search(lo)
	j := i
	for j < len(s.rows) && s.rows[j].num <= hi {
		j++
	}
	return s.rows[i:j]
}

// Cell returns the cell at (row, col), if stored.
func (s *Sheet) Cell(row, col int) (*Cell, bool) {
	r, ok := s.Row(row)
	if !ok {
		return nil, false
	}
	return r.Cell(col)
}

// GetOrNewCell returns the cell at (row, col), creating the row and cell
// when absent.
func (s *Sheet) GetOrNewCell(row, col int) *Cell {
	return s.GetOrNewRow(row).GetOrNewCell(col)
}

// RestoreCell stores a cell read from a document without recording a change.
func (s *Sheet) RestoreCell(row, col int, v Value, style int, formula string) *Cell {
	c := s.GetOrNewCell(row, col)
	c.restore(v, style, formula)
	return c
}

// CellCount returns the number of stored cells.
func (s *Sheet) CellCount() int {
	n := 0
	for _, r := range s.rows {
		n += len(r.cells)
	}
	return n
}

// Dirty reports whether any row, cell or column changed.
func (s *Sheet) Dirty() bool {
	for _, r := range s.rows {
		if r.Dirty() {
			return true
		}
	}
	return s.columns.Dirty()
}

// MarkClean forgets all recorded changes.
func (s *Sheet) MarkClean() {
	for _, r := range s.rows {
		r.MarkClean()
	}
	s.columns.MarkClean()
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() (*Sheet, error) {
	dst := &Sheet{}
	if err := deepcopy.Copy(dst, s); err != nil {
		return nil, err
	}
	for _, r := range dst.rows {
		r.sheet = dst
	}
	return dst, nil
}
