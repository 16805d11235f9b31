// Package ranges applies column widths, row heights and formats to every
// member of a column, row or cell range.
package ranges

import (
	"math"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
	"github.com/xuri/excelize/v2"
)

// Applier applies settings to ranges of one sheet. Formats are interned in
// the workbook's style table once per call.
//
// A range ending at the worksheet limit ("A:XFD", "1:1048576") is clamped
// to the sheet's current extent; any other range is used as given.
type Applier struct {
	sheet *sheetdata.Sheet
	table *styles.Table
}

// New returns an Applier for sheet using the workbook style table.
func New(sheet *sheetdata.Sheet, table *styles.Table) *Applier {
	return &Applier{sheet: sheet, table: table}
}

// Columns decodes a column range and applies the bound policy.
func (a *Applier) Columns(expr string) (address.Interval, error) {
	lo, hi, err := address.ParseColumnRange(expr)
	if err != nil {
		return address.Interval{}, err
	}
	if hi >= address.MaxColumns {
		hi = a.sheet.ColumnBound()
	}
	return address.Interval{Lo: lo - 1, Hi: hi - 1}, nil
}

// Rows decodes a row range and applies the bound policy.
func (a *Applier) Rows(expr string) (address.Interval, error) {
	lo, hi, err := address.ParseRowRange(expr)
	if err != nil {
		return address.Interval{}, err
	}
	if hi >= address.MaxRows {
		hi = a.sheet.MaxRow()
	}
	return address.Interval{Lo: lo - 1, Hi: hi - 1}, nil
}

// Area decodes a cell block, clamping edges at the worksheet limits to the
// sheet's extent.
func (a *Applier) Area(expr string) (address.Area, error) {
	area, err := address.DecodeArea(expr)
	if err != nil {
		return address.Area{}, err
	}
	if area.Right == address.MaxColumns {
		area.Right = a.sheet.ColumnBound()
	}
	if area.Bottom == address.MaxRows {
		area.Bottom = a.sheet.MaxRow()
	}
	return area, nil
}

func validateWidth(width float64) error {
	if width <= 0 || width > excelize.MaxColumnWidth || math.IsNaN(width) {
		return styles.NewFormatError("column.width", width, "column width out of range")
	}
	return nil
}

func validateHeight(height float64) error {
	if height < 0 || height > excelize.MaxRowHeight || math.IsNaN(height) {
		return styles.NewFormatError("row.height", height, "row height out of range")
	}
	return nil
}

// SetColumnWidth sets the width of every column in expr.
func (a *Applier) SetColumnWidth(expr string, width float64) error {
	if err := validateWidth(width); err != nil {
		return err
	}
	iv, err := a.Columns(expr)
	if err != nil {
		return err
	}
	a.SetColumnWidthInterval(iv, width)
	return nil
}

// SetColumnWidthInterval sets the width of every column in a decoded interval.
func (a *Applier) SetColumnWidthInterval(iv address.Interval, width float64) {
	if iv.Empty() {
		return
	}
	a.sheet.Columns().Set(iv.First(), iv.Last(), func(p *sheetdata.ColumnProps) {
		p.Width = width
	})
}

// SetColumnFormat interns f once and assigns it to every column in expr.
// Cell styles are left alone.
func (a *Applier) SetColumnFormat(expr string, f models.Format) error {
	return a.SetColumnWidthWithFormat(expr, -1, f)
}

// SetColumnWidthWithFormat sets the width and format of every column in
// expr. A negative width leaves widths unchanged.
func (a *Applier) SetColumnWidthWithFormat(expr string, width float64, f models.Format) error {
	if width >= 0 {
		if err := validateWidth(width); err != nil {
			return err
		}
	}
	iv, err := a.Columns(expr)
	if err != nil {
		return err
	}
	idx, err := a.table.Intern(f)
	if err != nil {
		return err
	}
	a.SetColumnStyleInterval(iv, idx)
	if width >= 0 {
		a.SetColumnWidthInterval(iv, width)
	}
	return nil
}

// SetColumnStyleInterval assigns an interned style index to every column in iv.
func (a *Applier) SetColumnStyleInterval(iv address.Interval, style int) {
	if iv.Empty() {
		return
	}
	a.sheet.Columns().Set(iv.First(), iv.Last(), func(p *sheetdata.ColumnProps) {
		p.Style = style
	})
}

// SetColumnHidden hides or shows every column in expr.
func (a *Applier) SetColumnHidden(expr string, hidden bool) error {
	iv, err := a.Columns(expr)
	if err != nil {
		return err
	}
	if iv.Empty() {
		return nil
	}
	a.sheet.Columns().Set(iv.First(), iv.Last(), func(p *sheetdata.ColumnProps) {
		p.Hidden = hidden
	})
	return nil
}

// SetRowHeight sets the height in points of every row in expr, creating
// rows that do not exist yet.
func (a *Applier) SetRowHeight(expr string, height float64) error {
	if err := validateHeight(height); err != nil {
		return err
	}
	iv, err := a.Rows(expr)
	if err != nil {
		return err
	}
	a.SetRowHeightInterval(iv, height)
	return nil
}

// SetRowHeightInterval sets the height of every row in a decoded interval.
func (a *Applier) SetRowHeightInterval(iv address.Interval, height float64) {
	for row := iv.First(); row <= iv.Last(); row++ {
		a.sheet.GetOrNewRow(row).SetHeight(height)
	}
}

// SetRowFormat interns f once and assigns it to every row in expr.
func (a *Applier) SetRowFormat(expr string, f models.Format) error {
	iv, err := a.Rows(expr)
	if err != nil {
		return err
	}
	idx, err := a.table.Intern(f)
	if err != nil {
		return err
	}
	a.SetRowStyleInterval(iv, idx)
	return nil
}

// SetRowStyleInterval assigns an interned style index to every row in iv.
func (a *Applier) SetRowStyleInterval(iv address.Interval, style int) {
	for row := iv.First(); row <= iv.Last(); row++ {
		a.sheet.GetOrNewRow(row).SetStyle(style)
	}
}

// SetRowHidden hides or shows every row in expr.
func (a *Applier) SetRowHidden(expr string, hidden bool) error {
	iv, err := a.Rows(expr)
	if err != nil {
		return err
	}
	for row := iv.First(); row <= iv.Last(); row++ {
		a.sheet.GetOrNewRow(row).SetHidden(hidden)
	}
	return nil
}

// SetAreaFormat interns f once and assigns it to every cell of a block.
// With the default format only stored cells are touched.
func (a *Applier) SetAreaFormat(expr string, f models.Format) error {
	area, err := a.Area(expr)
	if err != nil {
		return err
	}
	idx, err := a.table.Intern(f)
	if err != nil {
		return err
	}
	a.SetAreaStyle(area, idx)
	return nil
}

// SetAreaStyle assigns an interned style index to every cell of area.
func (a *Applier) SetAreaStyle(area address.Area, style int) {
	if area.Left > area.Right || area.Top > area.Bottom {
		return
	}
	if style == 0 {
		for _, r := range a.sheet.RowsIn(area.Top, area.Bottom) {
			for _, c := range r.CellsIn(area.Left, area.Right) {
				c.SetStyle(0)
			}
		}
		return
	}
	for row := area.Top; row <= area.Bottom; row++ {
		r := a.sheet.GetOrNewRow(row)
		for col := area.Left; col <= area.Right; col++ {
			r.GetOrNewCell(col).SetStyle(style)
		}
	}
}
