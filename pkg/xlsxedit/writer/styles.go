// Package writer pushes in-memory sheet and style changes into an excelize
// workbook so that the untouched parts of the document are written back as
// they were read.
package writer

import (
	"fmt"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
	"github.com/xuri/excelize/v2"
)

// StyleIDs maps style table indices to style ids of the excelize workbook.
// Records read from the document keep their id; records interned in memory
// are added to the document the first time they are used.
type StyleIDs struct {
	f     *excelize.File
	table *styles.Table
	ids   map[int]int
}

// NewStyleIDs returns an empty mapping for f and table.
func NewStyleIDs(f *excelize.File, table *styles.Table) *StyleIDs {
	return &StyleIDs{f: f, table: table, ids: make(map[int]int)}
}

// ID returns the document style id for the table index.
func (s *StyleIDs) ID(index int) (int, error) {
	if index < s.table.Loaded() {
		if !s.table.Valid(index) {
			return 0, styles.NewCorruptDocumentError("style index", index, s.table.Len())
		}
		return index, nil
	}
	if id, ok := s.ids[index]; ok {
		return id, nil
	}
	record, err := s.table.Record(index)
	if err != nil {
		return 0, err
	}
	id, err := s.f.NewStyle(record.Style())
	if err != nil {
		return 0, fmt.Errorf("add style %d: %w", index, err)
	}
	s.ids[index] = id
	return id, nil
}

// Added returns the number of styles added to the document.
func (s *StyleIDs) Added() int {
	return len(s.ids)
}
