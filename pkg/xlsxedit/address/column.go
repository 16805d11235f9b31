// Package address converts between spreadsheet references ("B", "C7",
// "A:ZZZ", "A1:D10") and numeric coordinates.
//
// Columns and rows are 1-based everywhere except in Interval, which holds
// zero-based offsets as used for slices.
package address

import (
	"errors"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	// MaxColumns is the largest column number a worksheet can hold (XFD).
	MaxColumns = excelize.MaxColumns
	// MaxRows is the largest row number a worksheet can hold.
	MaxRows = excelize.TotalRows
)

// maxTokenLetters bounds column tokens so their base-26 value cannot overflow.
const maxTokenLetters = 7

// EncodeColumn converts a 1-based column number to its letters (1 -> "A",
// 27 -> "AA", 16384 -> "XFD").
func EncodeColumn(col int) (string, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "", NewError(strconv.Itoa(col), "column out of range")
	}
	return name, nil
}

// columnName is EncodeColumn for callers that hold a column already known
// to be valid; anything else encodes as "".
func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

// DecodeColumn converts column letters to a 1-based column number. Lower
// case letters are accepted.
func DecodeColumn(text string) (int, error) {
	col, err := columnNumber(text)
	if err != nil {
		return 0, err
	}
	if col > MaxColumns {
		return 0, NewError(text, "column out of range")
	}
	return col, nil
}

// columnNumber decodes letters without rejecting columns past the worksheet
// limit; all of those decode as MaxColumns+1.
func columnNumber(text string) (int, error) {
	if len(text) > maxTokenLetters {
		return 0, NewError(text, "column too long")
	}
	col, err := excelize.ColumnNameToNumber(text)
	switch {
	case errors.Is(err, excelize.ErrColumnNumber):
		return MaxColumns + 1, nil
	case err != nil:
		return 0, NewError(text, "column must be letters only")
	}
	return col, nil
}
