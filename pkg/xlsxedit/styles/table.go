// Package styles interns cell formats into a workbook-wide, append-only
// table of canonical records and resolves style indices back to formats.
package styles

import (
	"strconv"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
)

// Table is the ordered list of style records of one workbook. Index 0 is
// the default format. Indices never change once assigned.
type Table struct {
	records []Record
	index   map[string]int
	loaded  int
}

// NewTable returns a table holding only the default record.
func NewTable() *Table {
	t := &Table{}
	t.Load(nil)
	return t
}

// Load replaces the table with the records of a document, in document
// order. Duplicate records are kept so that document indices stay valid;
// lookups resolve to the first occurrence. The default format maps to
// record 0 only when the document's normal style is that format; otherwise
// interning it appends a record of its own.
func (t *Table) Load(records []Record) {
	if len(records) == 0 {
		records = []Record{{}}
	}
	t.records = append(t.records[:0:0], records...)
	t.index = make(map[string]int, len(records))
	for i, r := range t.records {
		key := r.Key()
		if _, ok := t.index[key]; !ok {
			t.index[key] = i
		}
	}
	t.loaded = len(t.records)
}

// Intern validates f and returns the index of its record, appending a new
// record when no equal format has been stored yet.
func (t *Table) Intern(f models.Format) (int, error) {
	if err := Validate(f); err != nil {
		return 0, err
	}
	return t.InternRecord(NewRecord(f)), nil
}

// InternRecord returns the index of r, appending it when absent.
func (t *Table) InternRecord(r Record) int {
	key := r.Key()
	if idx, ok := t.index[key]; ok {
		return idx
	}
	t.records = append(t.records, r)
	idx := len(t.records) - 1
	t.index[key] = idx
	return idx
}

// Resolve returns the format stored at index.
func (t *Table) Resolve(index int) (models.Format, error) {
	r, err := t.Record(index)
	if err != nil {
		return models.Format{}, err
	}
	return r.Format(), nil
}

// Record returns the record stored at index.
func (t *Table) Record(index int) (Record, error) {
	if !t.Valid(index) {
		return Record{}, NewCorruptDocumentError("style index "+strconv.Itoa(index), index, len(t.records))
	}
	return t.records[index], nil
}

// Valid reports whether index refers to a stored record.
func (t *Table) Valid(index int) bool {
	return index >= 0 && index < len(t.records)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Loaded returns the number of records that came from the document. Records
// at or past this index were interned in memory.
func (t *Table) Loaded() int {
	return t.loaded
}

// Records returns a copy of the record list.
func (t *Table) Records() []Record {
	return append([]Record(nil), t.records...)
}
