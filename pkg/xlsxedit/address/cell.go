package address

import (
	"errors"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// EncodeAddress converts 1-based row and column numbers to a cell
// reference such as "C7".
func EncodeAddress(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", NewError(strconv.Itoa(row)+","+strconv.Itoa(col), err.Error())
	}
	return name, nil
}

// DecodeAddress splits a cell reference into its 1-based row and column.
// Absolute markers ("$C$7") are ignored.
func DecodeAddress(text string) (row, col int, err error) {
	letters, _, err := excelize.SplitCellName(text)
	if err != nil || strings.ContainsAny(text, "+-") {
		return 0, 0, NewError(text, "not a cell reference")
	}
	if len(letters) > maxTokenLetters {
		return 0, 0, NewError(text, "column out of range")
	}
	col, row, err = excelize.CellNameToCoordinates(text)
	switch {
	case errors.Is(err, excelize.ErrMaxRows):
		return 0, 0, NewError(text, "row out of range")
	case errors.Is(err, excelize.ErrColumnNumber):
		return 0, 0, NewError(text, "column out of range")
	case err != nil:
		return 0, 0, NewError(text, "not a cell reference")
	}
	return row, col, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
