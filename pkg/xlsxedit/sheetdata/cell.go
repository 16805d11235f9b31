package sheetdata

// Cell is one stored cell. Style 0 is the default format.
type Cell struct {
	col     int
	value   Value
	style   int
	formula string
	changes Change
}

// Col returns the 1-based column of the cell.
func (c *Cell) Col() int { return c.col }

// Value returns the cell value.
func (c *Cell) Value() Value { return c.value }

// SetValue replaces the value. A formula read from the document is dropped.
func (c *Cell) SetValue(v Value) {
	c.value = v
	if c.formula != "" {
		c.formula = ""
		c.changes |= ChangeFormula
	}
	c.changes |= ChangeValue
}

// Style returns the style index of the cell.
func (c *Cell) Style() int { return c.style }

// SetStyle sets the style index of the cell.
func (c *Cell) SetStyle(style int) {
	c.style = style
	c.changes |= ChangeStyle
}

// Formula returns the formula text read from the document, if any.
// Formulas are preserved but never evaluated.
func (c *Cell) Formula() string { return c.formula }

// Clear empties the value and resets the style to the default. The cell
// itself stays in its row.
func (c *Cell) Clear() {
	c.SetValue(Value{})
	c.SetStyle(0)
}

// Changes reports what has changed since the last MarkClean.
func (c *Cell) Changes() Change { return c.changes }

// Dirty reports whether the cell changed since the last MarkClean.
func (c *Cell) Dirty() bool { return c.changes != 0 }

// MarkClean forgets recorded changes.
func (c *Cell) MarkClean() { c.changes = 0 }

// restore sets the state read from a document without recording changes.
func (c *Cell) restore(v Value, style int, formula string) {
	c.value = v
	c.style = style
	c.formula = formula
}
