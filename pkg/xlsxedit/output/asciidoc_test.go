package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

func newSheet(t *testing.T) *xlsxedit.Sheet {
	t.Helper()
	wb, err := xlsxedit.New(xlsxedit.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	s, err := wb.Sheet("Sheet1")
	require.NoError(t, err)
	return s
}

func TestToAsciiDoc(t *testing.T) {
	s := newSheet(t)

	var red models.Format
	red.Font.Color = models.RGBColor("F00000")
	var highlighted models.Format
	highlighted.Font.Color = models.RGBColor("000080")
	highlighted.Fill.Pattern = "solid"
	highlighted.Fill.Foreground = models.RGBColor("FFFF10")

	require.NoError(t, s.Write("A1", "name"))
	require.NoError(t, s.Write("B1", "a|b"))
	require.NoError(t, s.WriteWithFormat("A2", "alert", red))
	require.NoError(t, s.WriteWithFormat("B2", 12, highlighted))
	require.NoError(t, s.SetColumnsWidth("B", 20))

	got, err := ToAsciiDoc(s)
	require.NoError(t, err)

	want := `[cols="843, 2000"]` + "\n" +
		"|===\n" +
		`|name|a\|b` + "\n" +
		"|[red]#alert#|[navy yellow-background]#12#\n" +
		"|===\n"
	assert.Equal(t, want, string(got))
}

func TestWriteAsciiDocEmptySheet(t *testing.T) {
	s := newSheet(t)

	var buf bytes.Buffer
	require.NoError(t, WriteAsciiDoc(&buf, s))
	assert.Equal(t, "[cols=\"\"]\n|===\n|===\n", buf.String())
}
