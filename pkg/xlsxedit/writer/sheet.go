package writer

import (
	"fmt"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/xuri/excelize/v2"
)

// Stats counts what a flush wrote.
type Stats struct {
	Columns int
	Rows    int
	Cells   int
}

// FlushSheet writes the changed columns, rows and cells of sheet to the
// worksheet name of f. Columns go first, then rows, then cells: column and
// row styles overwrite the styles of the cells they cover, so the cells of
// restyled columns and rows are written again with their own style.
func FlushSheet(f *excelize.File, name string, sheet *sheetdata.Sheet, ids *StyleIDs) (Stats, error) {
	w := sheetWriter{f: f, name: name, sheet: sheet, ids: ids}
	if err := w.flushColumns(); err != nil {
		return w.stats, err
	}
	if err := w.flushRows(); err != nil {
		return w.stats, err
	}
	if err := w.flushCells(); err != nil {
		return w.stats, err
	}
	return w.stats, nil
}

type sheetWriter struct {
	f     *excelize.File
	name  string
	sheet *sheetdata.Sheet
	ids   *StyleIDs
	stats Stats

	// restyled columns and rows whose cells must be written again
	columns []address.Interval
	rowNums map[int]bool
}

func (w *sheetWriter) flushColumns() error {
	for _, span := range w.sheet.Columns().Spans() {
		changes := span.Changes()
		if changes == 0 {
			continue
		}
		lo, hi := columnName(span.Min), columnName(span.Max)
		cols := lo + ":" + hi
		if changes.Has(sheetdata.ChangeWidth) && span.Props.Width > 0 {
			if err := w.f.SetColWidth(w.name, lo, hi, span.Props.Width); err != nil {
				return fmt.Errorf("columns %s: %w", cols, err)
			}
		}
		if changes.Has(sheetdata.ChangeHidden) {
			if err := w.f.SetColVisible(w.name, cols, !span.Props.Hidden); err != nil {
				return fmt.Errorf("columns %s: %w", cols, err)
			}
		}
		if changes.Has(sheetdata.ChangeOutline) && span.Props.OutlineLevel > 0 {
			for col := span.Min; col <= span.Max; col++ {
				if err := w.f.SetColOutlineLevel(w.name, columnName(col), span.Props.OutlineLevel); err != nil {
					return fmt.Errorf("column %s: %w", columnName(col), err)
				}
			}
		}
		if changes.Has(sheetdata.ChangeStyle) {
			id, err := w.ids.ID(span.Props.Style)
			if err != nil {
				return err
			}
			if err := w.f.SetColStyle(w.name, cols, id); err != nil {
				return fmt.Errorf("columns %s: %w", cols, err)
			}
			w.columns = append(w.columns, address.Interval{Lo: span.Min - 1, Hi: span.Max - 1})
		}
		w.stats.Columns += span.Max - span.Min + 1
	}
	return nil
}

func (w *sheetWriter) flushRows() error {
	w.rowNums = make(map[int]bool)
	for _, row := range w.sheet.Rows() {
		changes := row.Changes()
		if changes == 0 {
			continue
		}
		num := row.Num()
		if changes.Has(sheetdata.ChangeHeight) {
			height, custom := row.Height()
			if !custom {
				height = -1
			}
			if err := w.f.SetRowHeight(w.name, num, height); err != nil {
				return fmt.Errorf("row %d: %w", num, err)
			}
		}
		if changes.Has(sheetdata.ChangeHidden) {
			if err := w.f.SetRowVisible(w.name, num, !row.Hidden()); err != nil {
				return fmt.Errorf("row %d: %w", num, err)
			}
		}
		if changes.Has(sheetdata.ChangeOutline) && row.OutlineLevel() > 0 {
			if err := w.f.SetRowOutlineLevel(w.name, num, row.OutlineLevel()); err != nil {
				return fmt.Errorf("row %d: %w", num, err)
			}
		}
		if changes.Has(sheetdata.ChangeStyle) {
			style, _ := row.Style()
			id, err := w.ids.ID(style)
			if err != nil {
				return err
			}
			if err := w.f.SetRowStyle(w.name, num, num, id); err != nil {
				return fmt.Errorf("row %d: %w", num, err)
			}
			w.rowNums[num] = true
		}
		w.stats.Rows++
	}
	return nil
}

func (w *sheetWriter) restyled(row, col int) bool {
	if w.rowNums[row] {
		return true
	}
	for _, iv := range w.columns {
		if iv.Contains(col - 1) {
			return true
		}
	}
	return false
}

func (w *sheetWriter) flushCells() error {
	for _, row := range w.sheet.Rows() {
		for _, c := range row.Cells() {
			changes := c.Changes()
			if changes == 0 && !w.restyled(row.Num(), c.Col()) {
				continue
			}
			ref, err := address.EncodeAddress(row.Num(), c.Col())
			if err != nil {
				return err
			}
			if changes.Has(sheetdata.ChangeValue) {
				if err := w.setValue(ref, c.Value()); err != nil {
					return fmt.Errorf("cell %s: %w", ref, err)
				}
			}
			if changes.Has(sheetdata.ChangeFormula) && c.Formula() == "" {
				if err := w.f.SetCellFormula(w.name, ref, ""); err != nil {
					return fmt.Errorf("cell %s: %w", ref, err)
				}
			}
			id, err := w.ids.ID(c.Style())
			if err != nil {
				return err
			}
			if err := w.f.SetCellStyle(w.name, ref, ref, id); err != nil {
				return fmt.Errorf("cell %s: %w", ref, err)
			}
			w.stats.Cells++
		}
	}
	return nil
}

func (w *sheetWriter) setValue(ref string, v sheetdata.Value) error {
	switch v.Kind {
	case sheetdata.KindString, sheetdata.KindError:
		return w.f.SetCellStr(w.name, ref, v.Text)
	case sheetdata.KindNumber:
		return w.f.SetCellDefault(w.name, ref, v.Text)
	case sheetdata.KindBool:
		b, _ := v.Bool()
		return w.f.SetCellBool(w.name, ref, b)
	default:
		return w.f.SetCellValue(w.name, ref, nil)
	}
}

func columnName(col int) string {
	name, err := address.EncodeColumn(col)
	if err != nil {
		return ""
	}
	return name
}
