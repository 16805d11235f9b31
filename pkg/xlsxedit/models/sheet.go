package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// MaxRow is the last populated row (1-based, 0 when empty).
	MaxRow int `json:"max_row"`
	// MaxCol is the last populated column (1-based, 0 when empty).
	MaxCol int `json:"max_col"`
	// Rows contains extracted rows with cell values and links.
	Rows []CellRow `json:"rows,omitempty"`
	// Columns contains column width, visibility and style runs.
	Columns []ColumnInfo `json:"columns,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
