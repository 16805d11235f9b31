// Package parser reads the worksheet, shared string and style parts of an
// xlsx package into the in-memory sheet and style models.
package parser

import "math"

// DefaultColumnWidth is the width in characters of a column without a
// width setting.
const DefaultColumnWidth = 8.43

// DefaultRowHeight is the height in points of a row without a custom height.
const DefaultRowHeight = 15.0

// maxDigitWidth is the pixel width of the widest digit of the default font
// (Calibri 11) at 96 DPI; columns carry five pixels of padding.
const (
	maxDigitWidth = 7
	columnPadding = 5
)

// ColumnWidthToPixels converts a column width in characters to pixels at
// 96 DPI, the way excelize sizes columns. A zero width means the default
// width.
func ColumnWidthToPixels(width float64) int {
	if width == 0 {
		width = DefaultColumnWidth
	}
	if width < 1 {
		return int(math.Ceil(width*12 + 0.5))
	}
	return int(math.Ceil(width*maxDigitWidth + 0.5 + columnPadding))
}

// RowHeightToPixels converts a row height in points to pixels at 96 DPI.
// A zero height means the default height.
func RowHeightToPixels(height float64) int {
	if height == 0 {
		height = DefaultRowHeight
	}
	return int(math.Round(height * 96 / 72))
}
