package sheetdata

// Change is a set of flags telling the writer what to push back to the document.
type Change uint16

const (
	// ChangeValue marks a cell value change.
	ChangeValue Change = 1 << iota
	// ChangeStyle marks a cell, row or column style change.
	ChangeStyle
	// ChangeFormula marks a dropped cell formula.
	ChangeFormula
	// ChangeHeight marks a row height change.
	ChangeHeight
	// ChangeWidth marks a column width change.
	ChangeWidth
	// ChangeHidden marks a row or column visibility change.
	ChangeHidden
	// ChangeOutline marks an outline level or collapsed change.
	ChangeOutline
)

// Has reports whether every flag in o is set.
func (c Change) Has(o Change) bool { return c&o == o }
