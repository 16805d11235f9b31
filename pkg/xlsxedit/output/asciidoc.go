package output

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/colorname"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/parser"
	"github.com/valyala/bytebufferpool"
)

const tableDelimiter = "|===\n"

// ToAsciiDoc renders the used range of a sheet as an AsciiDoc table.
func ToAsciiDoc(s *xlsxedit.Sheet) ([]byte, error) {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	if err := WriteAsciiDoc(b, s); err != nil {
		return nil, err
	}
	return append([]byte(nil), b.B...), nil
}

// WriteAsciiDoc writes the used range of a sheet as an AsciiDoc table.
// Column widths become relative widths in the cols attribute. RGB font
// and fill colors become the nearest named color role.
func WriteAsciiDoc(w io.Writer, s *xlsxedit.Sheet) error {
	widths, err := columnWidths(s)
	if err != nil {
		return err
	}

	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	b.WriteString(colsHeader(widths))
	b.WriteString(tableDelimiter)
	for row := 1; row <= s.MaxRow(); row++ {
		for col := 1; col <= len(widths); col++ {
			cell, err := s.ReadAt(row, col)
			if err != nil {
				return err
			}
			b.WriteString("|")
			b.WriteString(cellText(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(tableDelimiter)

	_, err = b.WriteTo(w)
	return err
}

func columnWidths(s *xlsxedit.Sheet) ([]float64, error) {
	widths := make([]float64, s.MaxCol())
	for i := range widths {
		widths[i] = parser.DefaultColumnWidth
	}
	cols, err := s.ColumnsWithFormat("A:XFD")
	if err != nil {
		return nil, err
	}
	for _, c := range cols {
		if c.Width <= 0 {
			continue
		}
		for col := c.First; col <= min(c.Last, len(widths)); col++ {
			widths[col-1] = c.Width
		}
	}
	return widths, nil
}

func colsHeader(widths []float64) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strconv.Itoa(int(math.Round(w * 100)))
	}
	return `[cols="` + strings.Join(parts, ", ") + `"]` + "\n"
}

func cellText(cell xlsxedit.CellData) string {
	text := strings.ReplaceAll(cell.Value.String(), "|", `\|`)

	var roles []string
	if name, ok := rgbName(cell.Format.Font.Color); ok {
		roles = append(roles, name)
	}
	if cell.Format.Fill.Pattern != "" {
		if name, ok := rgbName(cell.Format.Fill.Foreground); ok {
			roles = append(roles, name+"-background")
		}
	}
	if len(roles) == 0 {
		return text
	}
	return "[" + strings.Join(roles, " ") + "]#" + text + "#"
}

func rgbName(c models.Color) (string, bool) {
	if c.Kind != models.ColorRGB {
		return "", false
	}
	return colorname.NearestHex(c.RGB)
}
