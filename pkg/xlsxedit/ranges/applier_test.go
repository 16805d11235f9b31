package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
)

func newApplier() (*Applier, *sheetdata.Sheet, *styles.Table) {
	sheet := sheetdata.New()
	table := styles.NewTable()
	return New(sheet, table), sheet, table
}

func fillFormat(rgb string) models.Format {
	var f models.Format
	f.Fill.Pattern = "solid"
	f.Fill.Foreground = models.RGBColor(rgb)
	return f
}

func columnFormat(t *testing.T, sheet *sheetdata.Sheet, table *styles.Table, col int) models.Format {
	t.Helper()
	props, _ := sheet.Columns().Get(col)
	f, err := table.Resolve(props.Style)
	require.NoError(t, err)
	return f
}

func TestSetColumnFormatOverride(t *testing.T) {
	a, sheet, table := newApplier()
	f1 := fillFormat("FF0000")
	f2 := fillFormat("0000FF")

	require.NoError(t, a.SetColumnFormat("B:D", f1))
	require.NoError(t, a.SetColumnFormat("C:C", f2))

	want1, err := table.Resolve(1)
	require.NoError(t, err)
	want2, err := table.Resolve(2)
	require.NoError(t, err)

	assert.Equal(t, want1, columnFormat(t, sheet, table, 2))
	assert.Equal(t, want2, columnFormat(t, sheet, table, 3))
	assert.Equal(t, want1, columnFormat(t, sheet, table, 4))
	assert.Equal(t, models.DefaultFormat(), columnFormat(t, sheet, table, 1))
	assert.Equal(t, models.DefaultFormat(), columnFormat(t, sheet, table, 5))
	assert.Equal(t, "#0000FF", want2.Fill.Foreground.String())
}

func TestSetColumnFormatInternsOnce(t *testing.T) {
	a, sheet, table := newApplier()
	f := fillFormat("FFFF00")

	require.NoError(t, a.SetColumnFormat("A:J", f))
	require.NoError(t, a.SetColumnFormat("L", f))
	assert.Equal(t, 2, table.Len())

	for _, col := range []int{1, 5, 10, 12} {
		props, ok := sheet.Columns().Get(col)
		require.True(t, ok, "column %d", col)
		assert.Equal(t, 1, props.Style)
	}
	_, ok := sheet.Columns().Get(11)
	assert.False(t, ok)
}

func TestSetColumnWidth(t *testing.T) {
	a, sheet, _ := newApplier()

	require.NoError(t, a.SetColumnWidth("B:C", 20))
	require.NoError(t, a.SetColumnWidth("$C$1:D4", 8.5))

	tests := []struct {
		col   int
		width float64
		ok    bool
	}{
		{1, 0, false},
		{2, 20, true},
		{3, 8.5, true},
		{4, 8.5, true},
		{5, 0, false},
	}
	for _, tt := range tests {
		props, ok := sheet.Columns().Get(tt.col)
		assert.Equal(t, tt.ok, ok, "column %d", tt.col)
		assert.Equal(t, tt.width, props.Width, "column %d", tt.col)
	}
}

func TestFullWidthRangeIsClamped(t *testing.T) {
	a, sheet, _ := newApplier()
	sheet.GetOrNewCell(1, 3).SetValue(sheetdata.NumberValue(1))

	iv, err := a.Columns("A:XFD")
	require.NoError(t, err)
	assert.Equal(t, address.Interval{Lo: 0, Hi: 2}, iv)

	iv, err = a.Columns("A:ZZZ")
	require.NoError(t, err)
	assert.Equal(t, address.Interval{Lo: 0, Hi: 2}, iv)

	require.NoError(t, a.SetColumnWidth("A:XFD", 12))
	assert.Equal(t, 3, sheet.Columns().Max())

	// Ranges inside the limits are used as given.
	iv, err = a.Columns("B:H")
	require.NoError(t, err)
	assert.Equal(t, address.Interval{Lo: 1, Hi: 7}, iv)
}

func TestFullWidthRangeOnEmptySheet(t *testing.T) {
	a, sheet, _ := newApplier()

	iv, err := a.Columns("A:XFD")
	require.NoError(t, err)
	assert.True(t, iv.Empty())

	require.NoError(t, a.SetColumnWidth("A:XFD", 12))
	assert.Empty(t, sheet.Columns().Spans())

	iv, err = a.Rows("1:1048576")
	require.NoError(t, err)
	assert.True(t, iv.Empty())
}

func TestClampedAreaOnEmptySheet(t *testing.T) {
	var bold models.Format
	bold.Font.Bold = true

	tests := []struct {
		name string
		expr string
	}{
		{"full width", "A1:XFD5"},
		{"full height", "A1:C1048576"},
		{"whole sheet", "A1:XFD1048576"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, sheet, _ := newApplier()
			require.NoError(t, a.SetAreaFormat(tt.expr, bold))
			assert.Equal(t, 0, sheet.Len())
			assert.Equal(t, 0, sheet.CellCount())
		})
	}
}

func TestInvalidInputLeavesSheetUnchanged(t *testing.T) {
	tests := []struct {
		name string
		call func(*Applier) error
	}{
		{"negative width", func(a *Applier) error { return a.SetColumnWidth("A:B", -1) }},
		{"zero width", func(a *Applier) error { return a.SetColumnWidthWithFormat("A:B", 0, fillFormat("FF0000")) }},
		{"width too large", func(a *Applier) error { return a.SetColumnWidth("A:B", 256) }},
		{"height too large", func(a *Applier) error { return a.SetRowHeight("1:2", 410) }},
		{"bad column range", func(a *Applier) error { return a.SetColumnWidth("A:1", 10) }},
		{"reversed range", func(a *Applier) error { return a.SetColumnFormat("D:B", fillFormat("FF0000")) }},
		{"bad row range", func(a *Applier) error { return a.SetRowFormat("A:B", fillFormat("FF0000")) }},
		{"bad area", func(a *Applier) error { return a.SetAreaFormat("A0:B2", fillFormat("FF0000")) }},
		{"bad format", func(a *Applier) error {
			var f models.Format
			f.Font.Size = -3
			return a.SetAreaFormat("A1:B2", f)
		}},
		{"bad color", func(a *Applier) error { return a.SetRowFormat("1:3", fillFormat("XYZ")) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, sheet, table := newApplier()
			require.Error(t, tt.call(a))
			assert.Equal(t, 0, sheet.Len())
			assert.Empty(t, sheet.Columns().Spans())
			assert.Equal(t, 1, table.Len())
		})
	}
}

func TestSetRowHeightAndFormat(t *testing.T) {
	a, sheet, table := newApplier()

	require.NoError(t, a.SetRowHeight("2:4", 30))
	require.NoError(t, a.SetRowFormat("3", fillFormat("00FF00")))
	require.NoError(t, a.SetRowHidden("4", true))

	assert.Equal(t, 3, sheet.Len())
	for row := 2; row <= 4; row++ {
		r, ok := sheet.Row(row)
		require.True(t, ok)
		h, custom := r.Height()
		assert.True(t, custom)
		assert.Equal(t, 30.0, h)
		assert.Zero(t, r.Len())
	}

	r, _ := sheet.Row(3)
	style, custom := r.Style()
	assert.True(t, custom)
	f, err := table.Resolve(style)
	require.NoError(t, err)
	assert.Equal(t, "solid", f.Fill.Pattern)

	r, _ = sheet.Row(4)
	assert.True(t, r.Hidden())
	_, custom = r.Style()
	assert.False(t, custom)
}

func TestSetAreaFormat(t *testing.T) {
	a, sheet, table := newApplier()

	require.NoError(t, a.SetAreaFormat("B2:C3", fillFormat("FF00FF")))
	assert.Equal(t, 4, sheet.CellCount())
	for _, ref := range []string{"B2", "C2", "B3", "C3"} {
		row, col, err := address.DecodeAddress(ref)
		require.NoError(t, err)
		c, ok := sheet.Cell(row, col)
		require.True(t, ok, ref)
		assert.Equal(t, 1, c.Style(), ref)
	}
	assert.Equal(t, 2, table.Len())

	// Resetting to the default does not materialize new cells.
	require.NoError(t, a.SetAreaFormat("A1:D4", models.Format{}))
	assert.Equal(t, 4, sheet.CellCount())
	c, _ := sheet.Cell(2, 2)
	assert.Equal(t, 0, c.Style())
}

func TestSetColumnWidthWithFormat(t *testing.T) {
	a, sheet, _ := newApplier()

	require.NoError(t, a.SetColumnWidthWithFormat("E:F", 14, fillFormat("123456")))
	props, ok := sheet.Columns().Get(6)
	require.True(t, ok)
	assert.Equal(t, 14.0, props.Width)
	assert.Equal(t, 1, props.Style)
	require.Len(t, sheet.Columns().Spans(), 1)
}
