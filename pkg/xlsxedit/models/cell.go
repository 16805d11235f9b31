// Package models defines the format types shared by the editing packages and
// the data structures produced when a workbook is exported.
package models

// CellRow represents a single row of cells with optional hyperlinks.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// H is the custom row height in points, if any.
	H *float64 `json:"h,omitempty"`
	// C maps column index (string) to cell value.
	C map[string]interface{} `json:"c"`
	// S maps column index to style index for cells with a non-default style (verbose only).
	S map[string]int `json:"s,omitempty"`
	// Links maps column index to hyperlink URL (optional).
	Links map[string]string `json:"links,omitempty"`
}

// ColumnInfo describes a run of columns sharing the same settings.
type ColumnInfo struct {
	// Min is the first column (1-based).
	Min int `json:"min"`
	// Max is the last column (1-based, inclusive).
	Max int `json:"max"`
	// Width is the column width in characters (0 if not set).
	Width float64 `json:"width,omitempty"`
	// WidthPx is the column width converted to pixels.
	WidthPx int `json:"width_px,omitempty"`
	// Hidden reports whether the columns are hidden.
	Hidden bool `json:"hidden,omitempty"`
	// Style is the style index applied to the columns.
	Style int `json:"style,omitempty"`
}
