package xlsxedit

import (
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/ranges"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a Workbook.
type Sheet struct {
	wb   *Workbook
	name string
	data *sheetdata.Sheet
}

// CellData is what Read returns for one cell.
type CellData struct {
	Value   sheetdata.Value
	Formula string
	Format  models.Format
}

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Data returns the sparse row and cell store of the sheet.
func (s *Sheet) Data() *sheetdata.Sheet { return s.data }

// MaxRow returns the last stored row, or 0.
func (s *Sheet) MaxRow() int { return s.data.MaxRow() }

// MaxCol returns the last column holding a cell, or 0.
func (s *Sheet) MaxCol() int { return s.data.MaxCol() }

func (s *Sheet) applier() *ranges.Applier {
	return ranges.New(s.data, s.wb.table)
}

func checkCell(row, col int) error {
	_, err := address.EncodeAddress(row, col)
	return err
}

// Read returns the value, formula and own format of the cell at ref
// ("B3"). A cell that is not stored reads as empty with the default format.
func (s *Sheet) Read(ref string) (CellData, error) {
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return CellData{}, err
	}
	return s.ReadAt(row, col)
}

// ReadAt is Read with 1-based coordinates.
func (s *Sheet) ReadAt(row, col int) (CellData, error) {
	if err := s.wb.check(); err != nil {
		return CellData{}, err
	}
	if err := checkCell(row, col); err != nil {
		return CellData{}, err
	}
	c, ok := s.data.Cell(row, col)
	if !ok {
		f, err := s.wb.table.Resolve(0)
		return CellData{Format: f}, err
	}
	f, err := s.wb.table.Resolve(c.Style())
	if err != nil {
		return CellData{}, err
	}
	return CellData{Value: c.Value(), Formula: c.Formula(), Format: f}, nil
}

// Write stores v in the cell at ref. Strings, booleans, numbers, time.Time,
// nil and sheetdata.Value are accepted. Writing a value drops the cell's
// formula and keeps its format.
func (s *Sheet) Write(ref string, v interface{}) error {
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return err
	}
	return s.WriteAt(row, col, v)
}

// WriteAt is Write with 1-based coordinates.
func (s *Sheet) WriteAt(row, col int, v interface{}) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	if err := checkCell(row, col); err != nil {
		return err
	}
	value, err := sheetdata.ValueOf(v)
	if err != nil {
		return err
	}
	if value.IsEmpty() {
		if c, ok := s.data.Cell(row, col); ok {
			c.SetValue(value)
			s.wb.touch()
		}
		return nil
	}
	s.data.GetOrNewCell(row, col).SetValue(value)
	s.wb.touch()
	return nil
}

// WriteWithFormat stores v and the format f in the cell at ref.
func (s *Sheet) WriteWithFormat(ref string, v interface{}, f models.Format) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return err
	}
	value, err := sheetdata.ValueOf(v)
	if err != nil {
		return err
	}
	style, err := s.wb.table.Intern(f)
	if err != nil {
		return err
	}
	_, exists := s.data.Cell(row, col)
	if value.IsEmpty() && style == 0 && !exists {
		return nil
	}
	c := s.data.GetOrNewCell(row, col)
	c.SetValue(value)
	c.SetStyle(style)
	s.wb.touch()
	return nil
}

// SetFormat assigns f to the cell at ref, keeping its value.
func (s *Sheet) SetFormat(ref string, f models.Format) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return err
	}
	style, err := s.wb.table.Intern(f)
	if err != nil {
		return err
	}
	c, ok := s.data.Cell(row, col)
	if !ok {
		if style == 0 {
			return nil
		}
		c = s.data.GetOrNewCell(row, col)
	}
	c.SetStyle(style)
	s.wb.touch()
	return nil
}

// Clear empties the value of the cell at ref and resets its format. The
// cell stays stored.
func (s *Sheet) Clear(ref string) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return err
	}
	if c, ok := s.data.Cell(row, col); ok {
		c.Clear()
		s.wb.touch()
	}
	return nil
}

// Format returns the format of the cell at ref itself.
func (s *Sheet) Format(ref string) (models.Format, error) {
	data, err := s.Read(ref)
	return data.Format, err
}

// EffectiveFormat returns the format a spreadsheet application shows for
// the cell at ref: the cell's own style, else the row style, else the
// column style, else the default.
func (s *Sheet) EffectiveFormat(ref string) (models.Format, error) {
	if err := s.wb.check(); err != nil {
		return models.Format{}, err
	}
	row, col, err := address.DecodeAddress(ref)
	if err != nil {
		return models.Format{}, err
	}
	return s.wb.table.Resolve(s.effectiveStyle(row, col))
}

func (s *Sheet) effectiveStyle(row, col int) int {
	if c, ok := s.data.Cell(row, col); ok && c.Style() != 0 {
		return c.Style()
	}
	if r, ok := s.data.Row(row); ok {
		if style, custom := r.Style(); custom {
			return style
		}
	}
	if props, ok := s.data.Columns().Get(col); ok {
		return props.Style
	}
	return 0
}

// SetColumnsWidth sets the width in characters of every column in expr
// ("B:D", "C", "A:XFD").
func (s *Sheet) SetColumnsWidth(expr string, width float64) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetColumnWidth(expr, width) })
}

// SetColumnsFormat assigns f to every column in expr.
func (s *Sheet) SetColumnsFormat(expr string, f models.Format) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetColumnFormat(expr, f) })
}

// SetColumnsWidthWithFormat sets the width and format of every column in expr.
func (s *Sheet) SetColumnsWidthWithFormat(expr string, width float64, f models.Format) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetColumnWidthWithFormat(expr, width, f) })
}

// SetColumnsHidden hides or shows every column in expr.
func (s *Sheet) SetColumnsHidden(expr string, hidden bool) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetColumnHidden(expr, hidden) })
}

// SetRowsHeight sets the height in points of every row in expr ("2:5", "7").
func (s *Sheet) SetRowsHeight(expr string, height float64) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetRowHeight(expr, height) })
}

// SetRowsFormat assigns f to every row in expr.
func (s *Sheet) SetRowsFormat(expr string, f models.Format) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetRowFormat(expr, f) })
}

// SetRowsHidden hides or shows every row in expr.
func (s *Sheet) SetRowsHidden(expr string, hidden bool) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetRowHidden(expr, hidden) })
}

// SetAreaFormat assigns f to every cell of a block ("B2:D10").
func (s *Sheet) SetAreaFormat(expr string, f models.Format) error {
	return s.apply(func(a *ranges.Applier) error { return a.SetAreaFormat(expr, f) })
}

func (s *Sheet) apply(fn func(*ranges.Applier) error) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	if err := fn(s.applier()); err != nil {
		return err
	}
	s.wb.touch()
	return nil
}

// RowHeight returns the custom height of a row in points.
func (s *Sheet) RowHeight(row int) (float64, bool) {
	r, ok := s.data.Row(row)
	if !ok {
		return 0, false
	}
	return r.Height()
}

// RowFormat returns the format of a row with a custom format.
func (s *Sheet) RowFormat(row int) (models.Format, bool, error) {
	r, ok := s.data.Row(row)
	if !ok {
		return models.Format{}, false, nil
	}
	style, custom := r.Style()
	if !custom {
		return models.Format{}, false, nil
	}
	f, err := s.wb.table.Resolve(style)
	return f, err == nil, err
}

// ColumnRange is a run of adjacent columns with equal settings.
type ColumnRange struct {
	// Range is the run in "B:D" form.
	Range  string
	First  int
	Last   int
	Width  float64
	Hidden bool
	// Format is nil when the columns have the default style.
	Format *models.Format
}

// ColumnsWithFormat returns the column settings inside expr grouped into
// runs of equal settings. Columns without settings are not listed.
func (s *Sheet) ColumnsWithFormat(expr string) ([]ColumnRange, error) {
	if err := s.wb.check(); err != nil {
		return nil, err
	}
	iv, err := s.applier().Columns(expr)
	if err != nil {
		return nil, err
	}

	var (
		result []ColumnRange
		props  []sheetdata.ColumnProps
	)
	for _, span := range s.data.Columns().Spans() {
		lo, hi := max(span.Min, iv.First()), min(span.Max, iv.Last())
		if lo > hi {
			continue
		}
		if n := len(result); n > 0 && result[n-1].Last+1 == lo && props[n-1] == span.Props {
			result[n-1].Last = hi
			continue
		}
		cr := ColumnRange{First: lo, Last: hi, Width: span.Props.Width, Hidden: span.Props.Hidden}
		if span.Props.Style != 0 {
			f, err := s.wb.table.Resolve(span.Props.Style)
			if err != nil {
				return nil, err
			}
			cr.Format = &f
		}
		result = append(result, cr)
		props = append(props, span.Props)
	}
	for i := range result {
		first, _ := address.EncodeColumn(result[i].First)
		last, _ := address.EncodeColumn(result[i].Last)
		result[i].Range = first + ":" + last
	}
	return result, nil
}

// DefaultRowHeight returns the height in points of rows without a custom height.
func (s *Sheet) DefaultRowHeight() (float64, error) {
	if err := s.wb.check(); err != nil {
		return 0, err
	}
	props, err := s.wb.file.GetSheetProps(s.name)
	if err != nil {
		return 0, NewIoError("read", s.name, err)
	}
	if props.DefaultRowHeight == nil || *props.DefaultRowHeight == 0 {
		return 15, nil
	}
	return *props.DefaultRowHeight, nil
}

// SetDefaultRowHeight sets the height in points of rows without a custom height.
func (s *Sheet) SetDefaultRowHeight(height float64) error {
	if err := s.wb.check(); err != nil {
		return err
	}
	if height <= 0 || height > excelize.MaxRowHeight {
		return styles.NewFormatError("sheet.default_row_height", height, "row height out of range")
	}
	custom := true
	if err := s.wb.file.SetSheetProps(s.name, &excelize.SheetPropsOptions{DefaultRowHeight: &height, CustomHeight: &custom}); err != nil {
		return NewIoError("write", s.name, err)
	}
	s.wb.touch()
	return nil
}

// CopyFrom copies the values, formats, column settings and row settings of
// src into s. src may belong to another workbook; its formats are interned
// into the style table of s. Formulas are not copied.
func (s *Sheet) CopyFrom(src *Sheet) error {
	if err := src.wb.check(); err != nil {
		return err
	}
	// Resolve every source style first so that a corrupt reference fails
	// before anything is changed.
	records := make(map[int]styles.Record)
	collect := func(style int) error {
		if _, ok := records[style]; ok || style == 0 {
			return nil
		}
		rec, err := src.wb.table.Record(style)
		if err != nil {
			return err
		}
		records[style] = rec
		return nil
	}
	for _, span := range src.data.Columns().Spans() {
		if err := collect(span.Props.Style); err != nil {
			return err
		}
	}
	for _, r := range src.data.Rows() {
		if style, custom := r.Style(); custom {
			if err := collect(style); err != nil {
				return err
			}
		}
		for _, c := range r.Cells() {
			if err := collect(c.Style()); err != nil {
				return err
			}
		}
	}

	return s.wb.Batch(func() error {
		styleOf := func(style int) int {
			if style == 0 || src.wb == s.wb {
				return style
			}
			return s.wb.table.InternRecord(records[style])
		}
		for _, span := range src.data.Columns().Spans() {
			props := span.Props
			props.Style = styleOf(props.Style)
			s.data.Columns().Set(span.Min, span.Max, func(p *sheetdata.ColumnProps) { *p = props })
		}
		for _, r := range src.data.Rows() {
			dst := s.data.GetOrNewRow(r.Num())
			if h, ok := r.Height(); ok {
				dst.SetHeight(h)
			}
			if style, custom := r.Style(); custom {
				dst.SetStyle(styleOf(style))
			}
			if r.Hidden() {
				dst.SetHidden(true)
			}
			if r.OutlineLevel() != 0 {
				dst.SetOutline(r.OutlineLevel(), r.Collapsed())
			}
			for _, c := range r.Cells() {
				cell := dst.GetOrNewCell(c.Col())
				cell.SetValue(c.Value())
				cell.SetStyle(styleOf(c.Style()))
			}
		}
		s.wb.touch()
		return nil
	})
}
