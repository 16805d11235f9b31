package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
	"github.com/xuri/excelize/v2"
)

// CountCellXfs returns the number of cell formats (<cellXfs>/<xf>) in a
// styles part. A missing part holds no formats.
func CountCellXfs(data []byte) (int, error) {
	if data == nil {
		return 0, nil
	}
	decoder := xml.NewDecoder(bytes.NewReader(data))
	count := 0
	inCellXfs := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "cellXfs":
				inCellXfs = true
			case t.Name.Local == "xf" && inCellXfs:
				count++
				if err := decoder.Skip(); err != nil {
					return 0, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "cellXfs" {
				inCellXfs = false
			}
		}
	}

	return count, nil
}

// LoadStyles reads the first count cell formats of a workbook as style
// records, in document order. Records are kept as read, duplicates included,
// so that record i is the document's style i.
func LoadStyles(f *excelize.File, count int) ([]styles.Record, error) {
	records := make([]styles.Record, 0, count)
	for i := 0; i < count; i++ {
		st, err := f.GetStyle(i)
		if err != nil {
			return nil, fmt.Errorf("style %d: %w", i, err)
		}
		records = append(records, styles.NewRecord(styles.FormatFromStyle(st)))
	}
	return records, nil
}
