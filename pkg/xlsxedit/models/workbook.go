package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists the sheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to SheetData.
	Sheets map[string]SheetData `json:"sheets"`
	// Styles holds the resolved style table, indexed by style index (verbose only).
	Styles []Format `json:"styles,omitempty"`
}
