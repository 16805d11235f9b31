package xlsxedit

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/xuri/excelize/v2"
)

// writeFixture saves a document with A1="keep", B1=3.5 (bold) and D1=1+1
// and returns its path and the bold style id.
func writeFixture(t *testing.T) (string, int) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Family: "Calibri", Size: 11}})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "keep"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 3.5))
	require.NoError(t, f.SetCellStyle("Sheet1", "B1", "B1", bold))
	require.NoError(t, f.SetCellFormula("Sheet1", "D1", "1+1"))

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path, bold
}

func reopen(t *testing.T, wb *Workbook) *Workbook {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	out, err := OpenReader(&buf, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func newWorkbook(t *testing.T) (*Workbook, *Sheet) {
	t.Helper()
	wb, err := New(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)
	return wb, s
}

func boldFormat() models.Format {
	var f models.Format
	f.Font.Bold = true
	return f
}

func yellowFill() models.Format {
	var f models.Format
	f.Fill.Pattern = "solid"
	f.Fill.Foreground = models.RGBColor("FFFF00")
	return f
}

func TestOpenReadsCells(t *testing.T) {
	path, _ := writeFixture(t)
	wb, err := Open(path, Options{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, "fixture.xlsx", wb.Name())
	assert.Equal(t, StateLoaded, wb.State())
	assert.Equal(t, []string{"Sheet1"}, wb.SheetNames())

	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)

	a1, err := s.Read("A1")
	require.NoError(t, err)
	assert.Equal(t, "keep", a1.Value.Interface())

	b1, err := s.Read("B1")
	require.NoError(t, err)
	assert.Equal(t, 3.5, b1.Value.Interface())
	assert.True(t, b1.Format.Font.Bold)

	d1, err := s.Read("D1")
	require.NoError(t, err)
	assert.Equal(t, "1+1", d1.Formula)

	missing, err := s.Read("Z99")
	require.NoError(t, err)
	assert.True(t, missing.Value.IsEmpty())
	assert.Equal(t, 1, s.MaxRow())
	assert.Equal(t, 4, s.MaxCol())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Equal(t, "open", ioErr.Op)

	path := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))
	_, err = Open(path, Options{})
	assert.ErrorIs(t, err, ErrInvalidPackage)
}

func TestSingleEditKeepsRestOfDocument(t *testing.T) {
	path, bold := writeFixture(t)
	wb, err := Open(path, Options{})
	require.NoError(t, err)
	defer wb.Close()

	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)
	require.NoError(t, s.Write("A1", "new"))
	assert.Equal(t, StateModified, wb.State())

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(out))
	assert.Equal(t, StateSaved, wb.State())
	assert.Equal(t, "out.xlsx", wb.Name())

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	v, err = f.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "3.5", v)
	style, err := f.GetCellStyle("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, bold, style)

	formula, err := f.GetCellFormula("Sheet1", "D1")
	require.NoError(t, err)
	assert.Equal(t, "1+1", formula)
}

func TestWriteValueKinds(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.Write("A1", 42))
	require.NoError(t, s.Write("B1", true))
	require.NoError(t, s.Write("C1", "text"))
	require.NoError(t, s.WriteAt(1, 4, 2.5))

	s2, err := reopen(t, wb).Sheet("Sheet1")
	require.NoError(t, err)

	want := map[string]interface{}{"A1": int64(42), "B1": true, "C1": "text", "D1": 2.5}
	for ref, v := range want {
		got, err := s2.Read(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, v, got.Value.Interface(), ref)
	}
}

func TestWriteRejectsBadInput(t *testing.T) {
	_, s := newWorkbook(t)

	for _, ref := range []string{"A0", "XFE1", "1A", ""} {
		err := s.Write(ref, 1)
		assert.ErrorIs(t, err, ErrInvalidAddress, ref)
	}
	assert.Error(t, s.Write("A1", struct{}{}))
	assert.Equal(t, 0, s.Data().CellCount())
}

func TestWriteEmptyDoesNotCreateCell(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.Write("C3", nil))
	assert.Equal(t, 0, s.Data().CellCount())
	assert.Equal(t, StateLoaded, wb.State())

	require.NoError(t, s.SetFormat("C3", models.Format{}))
	assert.Equal(t, 0, s.Data().CellCount())
}

func TestWriteWithFormatAndClear(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.WriteWithFormat("B2", "title", boldFormat()))
	got, err := s.Read("B2")
	require.NoError(t, err)
	assert.Equal(t, "title", got.Value.Interface())
	assert.True(t, got.Format.Font.Bold)

	// Writing a value keeps the format.
	require.NoError(t, s.Write("B2", "renamed"))
	f, err := s.Format("B2")
	require.NoError(t, err)
	assert.True(t, f.Font.Bold)

	require.NoError(t, s.Clear("B2"))
	got, err = s.Read("B2")
	require.NoError(t, err)
	assert.True(t, got.Value.IsEmpty())
	def, err := wb.ResolveFormat(0)
	require.NoError(t, err)
	assert.Equal(t, def, got.Format)
	assert.Equal(t, 1, s.Data().CellCount())
}

func TestEffectiveFormat(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.SetColumnsFormat("B:B", yellowFill()))
	require.NoError(t, s.SetRowsFormat("4", boldFormat()))

	f, err := s.EffectiveFormat("B2")
	require.NoError(t, err)
	assert.Equal(t, "solid", f.Fill.Pattern)

	own, err := s.Format("B2")
	require.NoError(t, err)
	def, err := wb.ResolveFormat(0)
	require.NoError(t, err)
	assert.Equal(t, def, own)

	// Row format wins over the column format.
	f, err = s.EffectiveFormat("B4")
	require.NoError(t, err)
	assert.True(t, f.Font.Bold)
	assert.Empty(t, f.Fill.Pattern)

	rowFormat, ok, err := s.RowFormat(4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rowFormat.Font.Bold)
}

func TestExplicitDefaultFontInOtherNormalStyle(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetDefaultFont("Arial"))
	path := filepath.Join(t.TempDir(), "arial.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := Open(path, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)

	var calibri models.Format
	calibri.Font.Name = "Calibri"
	calibri.Font.Size = 11

	tests := []struct {
		ref    string
		format models.Format
	}{
		{"A1", calibri},
		{"A2", models.Format{}},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			require.NoError(t, s.WriteWithFormat(tt.ref, "x", tt.format))
			got, err := s.Format(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, "Calibri", got.Font.Name)
			assert.Equal(t, 11.0, got.Font.Size)

			saved, err := reopen(t, wb).Sheet("Sheet1")
			require.NoError(t, err)
			got, err = saved.Format(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, "Calibri", got.Font.Name)
		})
	}

	normal, err := wb.ResolveFormat(0)
	require.NoError(t, err)
	assert.Equal(t, "Arial", normal.Font.Name)
}

func TestColumnsWithFormat(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.SetColumnsWidthWithFormat("C:D", 20, yellowFill()))
	require.NoError(t, s.SetColumnsHidden("F", true))

	cols, err := s.ColumnsWithFormat("A:XFD")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "C:D", cols[0].Range)
	assert.Equal(t, 20.0, cols[0].Width)
	require.NotNil(t, cols[0].Format)
	assert.Equal(t, "solid", cols[0].Format.Fill.Pattern)
	assert.Equal(t, "F:F", cols[1].Range)
	assert.True(t, cols[1].Hidden)
	assert.Nil(t, cols[1].Format)

	cols, err = s.ColumnsWithFormat("D:E")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "D:D", cols[0].Range)

	s2, err := reopen(t, wb).Sheet("Sheet1")
	require.NoError(t, err)
	cols, err = s2.ColumnsWithFormat("C:D")
	require.NoError(t, err)
	require.NotEmpty(t, cols)
	assert.Equal(t, 3, cols[0].First)
	assert.Equal(t, 20.0, cols[0].Width)
	require.NotNil(t, cols[0].Format)
	assert.Equal(t, "solid", cols[0].Format.Fill.Pattern)
}

func TestRowsHeightSurvivesSave(t *testing.T) {
	wb, s := newWorkbook(t)

	require.NoError(t, s.Write("A1", "x"))
	require.NoError(t, s.SetRowsHeight("2:3", 30))
	require.NoError(t, s.SetRowsHidden("5", true))

	h, ok := s.RowHeight(3)
	assert.True(t, ok)
	assert.Equal(t, 30.0, h)

	s2, err := reopen(t, wb).Sheet("Sheet1")
	require.NoError(t, err)
	h, ok = s2.RowHeight(2)
	assert.True(t, ok)
	assert.Equal(t, 30.0, h)
	_, ok = s2.RowHeight(1)
	assert.False(t, ok)
	r, ok := s2.Data().Row(5)
	require.True(t, ok)
	assert.True(t, r.Hidden())
}

func TestRangeErrorsLeaveWorkbookUnchanged(t *testing.T) {
	wb, s := newWorkbook(t)

	assert.ErrorIs(t, s.SetColumnsWidth("A:B", 0), ErrInvalidFormat)
	assert.ErrorIs(t, s.SetRowsHeight("1", 500), ErrInvalidFormat)
	assert.ErrorIs(t, s.SetColumnsFormat("B:A", boldFormat()), ErrInvalidAddress)
	assert.ErrorIs(t, s.SetAreaFormat("A1:B", boldFormat()), ErrInvalidAddress)

	assert.Equal(t, StateLoaded, wb.State())
	assert.Empty(t, s.Data().Columns().Spans())
	assert.Equal(t, 0, s.Data().Len())
}

func TestSheetLookup(t *testing.T) {
	wb, _ := newWorkbook(t)

	s, err := wb.Sheet("SHEET1")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", s.Name())

	_, err = wb.Sheet("missing")
	var sheetErr *SheetError
	require.ErrorAs(t, err, &sheetErr)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	assert.Equal(t, "missing", sheetErr.Name)

	_, err = wb.SheetAt(2)
	assert.ErrorIs(t, err, ErrSheetNotFound)
	s, err = wb.SheetAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", s.Name())
}

func TestAddSheet(t *testing.T) {
	wb, _ := newWorkbook(t)

	data, err := wb.AddSheet("Data")
	require.NoError(t, err)
	require.NoError(t, data.Write("A1", "row"))

	_, err = wb.AddSheet("data")
	assert.Error(t, err)

	out := reopen(t, wb)
	assert.Equal(t, []string{"Sheet1", "Data"}, out.SheetNames())
	s, err := out.Sheet("Data")
	require.NoError(t, err)
	got, err := s.Read("A1")
	require.NoError(t, err)
	assert.Equal(t, "row", got.Value.Interface())
}

func TestClosedWorkbook(t *testing.T) {
	wb, err := New(Options{})
	require.NoError(t, err)
	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)

	require.NoError(t, wb.Close())
	require.NoError(t, wb.Close())
	assert.Equal(t, StateClosed, wb.State())

	_, err = wb.Sheet("Sheet1")
	assert.ErrorIs(t, err, ErrWorkbookClosed)
	assert.ErrorIs(t, s.Write("A1", 1), ErrWorkbookClosed)
	_, err = s.Read("A1")
	assert.ErrorIs(t, err, ErrWorkbookClosed)
	assert.ErrorIs(t, s.SetColumnsWidth("A", 10), ErrWorkbookClosed)
	assert.ErrorIs(t, wb.SaveAs(filepath.Join(t.TempDir(), "x.xlsx")), ErrWorkbookClosed)
	assert.ErrorIs(t, wb.Save(), ErrWorkbookClosed)
	_, err = wb.Export(DefaultOptions())
	assert.ErrorIs(t, err, ErrWorkbookClosed)
}

func TestSaveWithoutPath(t *testing.T) {
	wb, _ := newWorkbook(t)
	assert.Equal(t, "Book1.xlsx", wb.Name())
	assert.ErrorIs(t, wb.Save(), ErrNoPath)
}

func TestBatchRollsBack(t *testing.T) {
	wb, s := newWorkbook(t)
	require.NoError(t, s.Write("A1", "x"))

	boom := errors.New("boom")
	err := wb.Batch(func() error {
		require.NoError(t, s.Write("A1", "y"))
		require.NoError(t, s.Write("C9", 1))
		require.NoError(t, s.SetColumnsWidth("A:B", 20))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Read("A1")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Value.Interface())
	assert.Equal(t, 1, s.Data().CellCount())
	assert.Empty(t, s.Data().Columns().Spans())

	require.NoError(t, wb.Batch(func() error { return s.Write("A1", "z") }))
	got, err = s.Read("A1")
	require.NoError(t, err)
	assert.Equal(t, "z", got.Value.Interface())
}

func TestCopyFromOtherWorkbook(t *testing.T) {
	_, src := newWorkbook(t)
	require.NoError(t, src.WriteWithFormat("A1", "v", boldFormat()))
	require.NoError(t, src.Write("B2", 7))
	require.NoError(t, src.SetColumnsWidth("B", 12))
	require.NoError(t, src.SetRowsHeight("2", 30))

	dstWb, dst := newWorkbook(t)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, StateModified, dstWb.State())

	s, err := reopen(t, dstWb).Sheet("Sheet1")
	require.NoError(t, err)

	a1, err := s.Read("A1")
	require.NoError(t, err)
	assert.Equal(t, "v", a1.Value.Interface())
	assert.True(t, a1.Format.Font.Bold)

	b2, err := s.Read("B2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), b2.Value.Interface())

	h, ok := s.RowHeight(2)
	assert.True(t, ok)
	assert.Equal(t, 30.0, h)

	cols, err := s.ColumnsWithFormat("B")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, 12.0, cols[0].Width)
}

func TestDefaultRowHeight(t *testing.T) {
	_, s := newWorkbook(t)

	h, err := s.DefaultRowHeight()
	require.NoError(t, err)
	assert.Equal(t, 15.0, h)

	require.NoError(t, s.SetDefaultRowHeight(20))
	h, err = s.DefaultRowHeight()
	require.NoError(t, err)
	assert.Equal(t, 20.0, h)

	assert.ErrorIs(t, s.SetDefaultRowHeight(0), ErrInvalidFormat)
}

func TestExport(t *testing.T) {
	wb, s := newWorkbook(t)
	require.NoError(t, s.Write("A1", "name"))
	require.NoError(t, s.Write("B1", "qty"))
	require.NoError(t, s.Write("A2", "bolt"))
	require.NoError(t, s.WriteWithFormat("B2", 3, boldFormat()))
	require.NoError(t, s.SetRowsHeight("2", 30))
	require.NoError(t, s.SetColumnsWidth("A", 20))

	data, err := wb.Export(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Book1.xlsx", data.BookName)
	assert.Equal(t, []string{"Sheet1"}, data.SheetNames)
	assert.Empty(t, data.Styles)

	sheet := data.Sheets["Sheet1"]
	assert.Equal(t, 2, sheet.MaxRow)
	assert.Equal(t, 2, sheet.MaxCol)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "name", sheet.Rows[0].C["1"])
	assert.Equal(t, int64(3), sheet.Rows[1].C["2"])
	require.NotNil(t, sheet.Rows[1].H)
	assert.Equal(t, 30.0, *sheet.Rows[1].H)
	assert.Nil(t, sheet.Rows[1].S)

	require.Len(t, sheet.Columns, 1)
	assert.Equal(t, models.ColumnInfo{Min: 1, Max: 1, Width: 20, WidthPx: 146}, sheet.Columns[0])

	data, err = wb.Export(Options{Mode: ModeLight})
	require.NoError(t, err)
	sheet = data.Sheets["Sheet1"]
	assert.Nil(t, sheet.Columns)
	assert.Nil(t, sheet.Rows[1].H)

	data, err = wb.Export(Options{Mode: ModeVerbose})
	require.NoError(t, err)
	sheet = data.Sheets["Sheet1"]
	require.Contains(t, sheet.Rows[1].S, "2")
	style := sheet.Rows[1].S["2"]
	require.Less(t, style, len(data.Styles))
	assert.True(t, data.Styles[style].Font.Bold)
}
