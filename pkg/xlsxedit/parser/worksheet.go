package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
)

// ReadWorksheet streams a worksheet part into a sparse sheet. Every style
// index found in the part must be below styleCount; a reference past the
// end of the style table is a CorruptDocumentError. The returned sheet has
// no recorded changes.
func ReadWorksheet(data []byte, sharedStrings []string, styleCount int) (*sheetdata.Sheet, error) {
	sheet := sheetdata.New()
	r := worksheetReader{
		decoder:       xml.NewDecoder(bytes.NewReader(data)),
		sheet:         sheet,
		sharedStrings: sharedStrings,
		styleCount:    styleCount,
	}
	if err := r.read(); err != nil {
		return nil, err
	}
	sheet.MarkClean()
	return sheet, nil
}

type worksheetReader struct {
	decoder       *xml.Decoder
	sheet         *sheetdata.Sheet
	sharedStrings []string
	styleCount    int

	row int
	col int
}

func (r *worksheetReader) read() error {
	for {
		token, err := r.decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "col":
			if err := r.readCol(se); err != nil {
				return err
			}
		case "row":
			if err := r.readRow(se); err != nil {
				return err
			}
		case "c":
			if err := r.readCell(se); err != nil {
				return err
			}
		}
	}
}

func (r *worksheetReader) style(what string, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	idx, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid style attribute %q", what, text)
	}
	if idx < 0 || idx >= r.styleCount {
		return 0, styles.NewCorruptDocumentError(what, idx, r.styleCount)
	}
	return idx, nil
}

func (r *worksheetReader) readCol(se xml.StartElement) error {
	lo, err1 := strconv.Atoi(attr(se, "min"))
	hi, err2 := strconv.Atoi(attr(se, "max"))
	if err1 != nil || err2 != nil || lo < 1 || hi < lo {
		return address.NewError(attr(se, "min")+":"+attr(se, "max"), "invalid column span")
	}
	hi = min(hi, address.MaxColumns)

	var props sheetdata.ColumnProps
	if w := attr(se, "width"); w != "" {
		props.Width, _ = strconv.ParseFloat(w, 64)
	}
	style, err := r.style(fmt.Sprintf("column %d", lo), attr(se, "style"))
	if err != nil {
		return err
	}
	props.Style = style
	props.Hidden = xmlBool(attr(se, "hidden"))
	props.OutlineLevel = outlineLevel(attr(se, "outlineLevel"))
	props.Collapsed = xmlBool(attr(se, "collapsed"))
	r.sheet.Columns().Restore(lo, hi, props)
	return nil
}

func (r *worksheetReader) readRow(se xml.StartElement) error {
	if ref := attr(se, "r"); ref != "" {
		n, err := strconv.Atoi(ref)
		if err != nil || n < 1 || n > address.MaxRows {
			return address.NewError(ref, "invalid row number")
		}
		r.row = n
	} else {
		r.row++
	}
	r.col = 0

	var (
		height       float64
		customHeight = xmlBool(attr(se, "customHeight"))
		customFormat = xmlBool(attr(se, "customFormat"))
		hidden       = xmlBool(attr(se, "hidden"))
		level        = outlineLevel(attr(se, "outlineLevel"))
		collapsed    = xmlBool(attr(se, "collapsed"))
	)
	if ht := attr(se, "ht"); ht != "" && customHeight {
		height, _ = strconv.ParseFloat(ht, 64)
	}
	style := 0
	if customFormat {
		var err error
		if style, err = r.style(fmt.Sprintf("row %d", r.row), attr(se, "s")); err != nil {
			return err
		}
	}
	if !customHeight && !customFormat && !hidden && level == 0 && !collapsed {
		return nil
	}

	row := r.sheet.GetOrNewRow(r.row)
	if customHeight {
		row.SetHeight(height)
	}
	if customFormat {
		row.SetStyle(style)
	}
	if hidden {
		row.SetHidden(true)
	}
	if level != 0 || collapsed {
		row.SetOutline(level, collapsed)
	}
	return nil
}

func (r *worksheetReader) readCell(se xml.StartElement) error {
	if ref := attr(se, "r"); ref != "" {
		row, col, err := address.DecodeAddress(ref)
		if err != nil {
			return err
		}
		r.row, r.col = row, col
	} else {
		r.col++
	}
	if r.row == 0 || r.col > address.MaxColumns {
		return address.NewError(attr(se, "r"), "cell outside of a row")
	}

	where := fmt.Sprintf("cell %s", mustEncode(r.row, r.col))
	style, err := r.style(where, attr(se, "s"))
	if err != nil {
		return err
	}

	var raw, inline, formula string
	var hasValue, hasInline bool
	for {
		token, err := r.decoder.Token()
		if err != nil {
			return err
		}
		if end, ok := token.(xml.EndElement); ok && end.Name.Local == "c" {
			break
		}
		child, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch child.Name.Local {
		case "v":
			if raw, err = readElementText(r.decoder); err != nil {
				return err
			}
			hasValue = true
		case "f":
			if formula, err = readElementText(r.decoder); err != nil {
				return err
			}
		case "is":
			if inline, err = readInlineString(r.decoder); err != nil {
				return err
			}
			hasInline = true
		default:
			if err := r.decoder.Skip(); err != nil {
				return err
			}
		}
	}

	value, err := r.cellValue(where, attr(se, "t"), raw, hasValue, inline, hasInline)
	if err != nil {
		return err
	}
	if value.IsEmpty() && style == 0 && formula == "" {
		return nil
	}
	r.sheet.RestoreCell(r.row, r.col, value, style, formula)
	return nil
}

func (r *worksheetReader) cellValue(where, typ, raw string, hasValue bool, inline string, hasInline bool) (sheetdata.Value, error) {
	switch typ {
	case "s":
		if !hasValue {
			return sheetdata.Value{}, nil
		}
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 || idx >= len(r.sharedStrings) {
			return sheetdata.Value{}, styles.NewCorruptDocumentError(where+" shared string", idx, len(r.sharedStrings))
		}
		return sheetdata.StringValue(r.sharedStrings[idx]), nil
	case "inlineStr":
		if hasInline {
			return sheetdata.StringValue(inline), nil
		}
		if hasValue {
			return sheetdata.StringValue(raw), nil
		}
		return sheetdata.Value{}, nil
	case "str", "d":
		if !hasValue {
			return sheetdata.Value{}, nil
		}
		return sheetdata.StringValue(raw), nil
	case "b":
		if !hasValue {
			return sheetdata.Value{}, nil
		}
		return sheetdata.BoolValue(raw == "1" || raw == "true"), nil
	case "e":
		if !hasValue {
			return sheetdata.Value{}, nil
		}
		return sheetdata.ErrorValue(raw), nil
	default:
		if !hasValue || raw == "" {
			return sheetdata.Value{}, nil
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return sheetdata.Value{}, fmt.Errorf("%s: invalid number %q", where, raw)
		}
		return sheetdata.Value{Kind: sheetdata.KindNumber, Text: raw}, nil
	}
}

// readInlineString reads the text of an <is> element, skipping phonetic runs.
func readInlineString(decoder *xml.Decoder) (string, error) {
	var text string
	for {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				s, err := readElementText(decoder)
				if err != nil {
					return text, err
				}
				text += s
			case "rPh":
				if err := decoder.Skip(); err != nil {
					return text, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "is" {
				return text, nil
			}
		}
	}
}

func mustEncode(row, col int) string {
	ref, err := address.EncodeAddress(row, col)
	if err != nil {
		return strconv.Itoa(row) + "," + strconv.Itoa(col)
	}
	return ref
}

func xmlBool(s string) bool {
	return s == "1" || s == "true"
}

func outlineLevel(s string) uint8 {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 7 {
		return 0
	}
	return uint8(n)
}
