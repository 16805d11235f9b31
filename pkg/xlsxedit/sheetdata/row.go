package sheetdata

import "sort"

// Row is one stored row. Cells are kept ordered by column with no
// duplicates.
type Row struct {
	num          int
	cells        []*Cell
	height       float64
	customHeight bool
	style        int
	customFormat bool
	hidden       bool
	outlineLevel uint8
	collapsed    bool
	changes      Change

	sheet *Sheet `copy:"-"`
}

// Num returns the 1-based row number.
func (r *Row) Num() int { return r.num }

// Cells returns the cells in ascending column order. The slice must not be
// modified.
func (r *Row) Cells() []*Cell { return r.cells }

// Len returns the number of stored cells.
func (r *Row) Len() int { return len(r.cells) }

// MaxCol returns the largest stored column, or 0 for an empty row.
func (r *Row) MaxCol() int {
	if len(r.cells) == 0 {
		return 0
	}
	return r.cells[len(r.cells)-1].col
}

// search returns the position of col and whether it is stored there.
func (r *Row) search(col int) (int, bool) {
	n := len(r.cells)
	if n == 0 || r.cells[n-1].col < col {
		return n, false
	}
	i := sort.Search(n, func(i int) bool { return r.cells[i].col >= col })
	return i, r.cells[i].col == col
}

// Cell returns the cell at col, if stored. The returned cell may be modified.
func (r *Row) Cell(col int) (*Cell, bool) {
	i, ok := r.search(col)
	if !ok {
		return nil, false
	}
	return r.cells[i], true
}

// GetOrNewCell returns the cell at col, inserting an empty one in order
// when absent. Repeated calls return the same cell.
func (r *Row) GetOrNewCell(col int) *Cell {
	i, ok := r.search(col)
	if ok {
		return r.cells[i]
	}
	c := &Cell{col: col}
	if i == len(r.cells) {
		r.cells = append(r.cells, c)
	} else {
		r.cells = append(r.cells, nil)
		copy(r.cells[i+1:], r.cells[i:])
		r.cells[i] = c
	}
	if r.sheet != nil && col > r.sheet.maxCol {
		r.sheet.maxCol = col
	}
	return c
}

// CellsIn returns the stored cells whose columns lie in lo..hi (1-based,
// inclusive) without visiting the others.
func (r *Row) CellsIn(lo, hi int) []*Cell {
	i, _ := r.search(lo)
	j := i
	for j < len(r.cells) && r.cells[j].col <= hi {
		j++
	}
	return r.cells[i:j]
}

// Height returns the custom height in points.
func (r *Row) Height() (float64, bool) { return r.height, r.customHeight }

// SetHeight sets a custom height in points.
func (r *Row) SetHeight(h float64) {
	r.height, r.customHeight = h, true
	r.changes |= ChangeHeight
}

// ClearHeight reverts to the default height.
func (r *Row) ClearHeight() {
	r.height, r.customHeight = 0, false
	r.changes |= ChangeHeight
}

// Style returns the row style index and whether it applies to empty cells
// of the row.
func (r *Row) Style() (int, bool) { return r.style, r.customFormat }

// SetStyle sets the row style index.
func (r *Row) SetStyle(style int) {
	r.style = style
	r.customFormat = style != 0
	r.changes |= ChangeStyle
}

// Hidden reports whether the row is hidden.
func (r *Row) Hidden() bool { return r.hidden }

// SetHidden hides or shows the row.
func (r *Row) SetHidden(hidden bool) {
	r.hidden = hidden
	r.changes |= ChangeHidden
}

// OutlineLevel returns the grouping level (0-7).
func (r *Row) OutlineLevel() uint8 { return r.outlineLevel }

// Collapsed reports whether the row's group is collapsed.
func (r *Row) Collapsed() bool { return r.collapsed }

// SetOutline sets the grouping level and collapsed flag.
func (r *Row) SetOutline(level uint8, collapsed bool) {
	r.outlineLevel, r.collapsed = level, collapsed
	r.changes |= ChangeOutline
}

// Changes reports row property changes since the last MarkClean. Cell
// changes are tracked by the cells.
func (r *Row) Changes() Change { return r.changes }

// Dirty reports whether the row or any of its cells changed.
func (r *Row) Dirty() bool {
	if r.changes != 0 {
		return true
	}
	for _, c := range r.cells {
		if c.changes != 0 {
			return true
		}
	}
	return false
}

// MarkClean forgets recorded changes of the row and its cells.
func (r *Row) MarkClean() {
	r.changes = 0
	for _, c := range r.cells {
		c.changes = 0
	}
}
