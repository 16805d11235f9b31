package xlsxedit

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/models"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/parser"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/sheetdata"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/writer"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

// State is the lifecycle state of a Workbook.
type State int

const (
	// StateLoaded is the state right after opening or creating a workbook.
	StateLoaded State = iota
	// StateModified means there are edits that have not been saved.
	StateModified
	// StateSaved means every edit has been written.
	StateSaved
	// StateClosed means the workbook was closed and can no longer be used.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateModified:
		return "modified"
	case StateSaved:
		return "saved"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Workbook is an xlsx document held in memory. It owns the workbook-wide
// style table and one sparse store per worksheet.
//
// A Workbook is not safe for concurrent use.
type Workbook struct {
	name   string
	path   string
	file   *excelize.File
	table  *styles.Table
	ids    *writer.StyleIDs
	sheets []*Sheet
	state  State
	log    *slog.Logger
}

// Open reads the workbook at path.
func Open(path string, opts Options) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewIoError("open", path, ErrFileNotFound)
		}
		return nil, NewIoError("open", path, err)
	}
	wb, err := load(data, opts)
	if err != nil {
		return nil, err
	}
	wb.path = path
	wb.name = filepath.Base(path)
	wb.log.Debug("opened workbook", "path", path, "sheets", len(wb.sheets), "styles", wb.table.Loaded())
	return wb, nil
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader, opts Options) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewIoError("read", "", err)
	}
	return load(data, opts)
}

// New returns a workbook with one empty sheet named Sheet1.
func New(opts Options) (*Workbook, error) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, NewIoError("write", "", err)
	}
	wb, err := load(buf.Bytes(), opts)
	if err != nil {
		return nil, err
	}
	wb.name = "Book1.xlsx"
	return wb, nil
}

func load(data []byte, opts Options) (*Workbook, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewIoError("read", "", fmt.Errorf("%w: %v", ErrInvalidPackage, err))
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewIoError("read", "", err)
	}
	wb := &Workbook{
		file:  f,
		table: styles.NewTable(),
		log:   opts.logger(),
	}
	wb.ids = writer.NewStyleIDs(f, wb.table)
	if err := wb.loadParts(zr); err != nil {
		f.Close()
		return nil, err
	}
	return wb, nil
}

func (wb *Workbook) loadParts(zr *zip.Reader) error {
	pkg, err := parser.ReadPackage(zr)
	if err != nil {
		return NewIoError("read", "xl/workbook.xml", err)
	}

	if pkg.StylesPath != "" {
		data, err := pkg.Part(pkg.StylesPath)
		if err != nil {
			return NewIoError("read", pkg.StylesPath, err)
		}
		count, err := parser.CountCellXfs(data)
		if err != nil {
			return NewIoError("read", pkg.StylesPath, err)
		}
		records, err := parser.LoadStyles(wb.file, count)
		if err != nil {
			return NewIoError("read", pkg.StylesPath, err)
		}
		wb.table.Load(records)
	}

	for _, part := range pkg.Sheets {
		data, err := pkg.Part(part.Path)
		if err != nil {
			return NewIoError("read", part.Path, err)
		}
		if data == nil {
			wb.log.Warn("worksheet part missing, sheet skipped", "sheet", part.Name, "part", part.Path)
			continue
		}
		sheet, err := parser.ReadWorksheet(data, pkg.SharedStrings, wb.table.Len())
		if err != nil {
			if errors.Is(err, ErrCorruptDocument) || errors.Is(err, ErrInvalidAddress) {
				return fmt.Errorf("sheet %q: %w", part.Name, err)
			}
			return NewIoError("read", part.Path, err)
		}
		wb.log.Debug("loaded sheet", "sheet", part.Name, "rows", sheet.Len(), "cells", sheet.CellCount())
		wb.sheets = append(wb.sheets, &Sheet{wb: wb, name: part.Name, data: sheet})
	}
	return nil
}

// Name returns the file name of the workbook.
func (wb *Workbook) Name() string { return wb.name }

// State returns the lifecycle state.
func (wb *Workbook) State() State { return wb.state }

func (wb *Workbook) check() error {
	if wb.state == StateClosed {
		return ErrWorkbookClosed
	}
	return nil
}

func (wb *Workbook) touch() {
	wb.state = StateModified
}

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, s := range wb.sheets {
		names[i] = s.name
	}
	return names
}

// Sheet returns the sheet with the given name. Names are matched without
// regard to case, as spreadsheet applications do.
func (wb *Workbook) Sheet(name string) (*Sheet, error) {
	if err := wb.check(); err != nil {
		return nil, err
	}
	fold := cases.Fold()
	want := fold.String(name)
	for _, s := range wb.sheets {
		if fold.String(s.name) == want {
			return s, nil
		}
	}
	return nil, NewSheetError(name, -1)
}

// SheetAt returns the sheet at a 1-based position.
func (wb *Workbook) SheetAt(index int) (*Sheet, error) {
	if err := wb.check(); err != nil {
		return nil, err
	}
	if index < 1 || index > len(wb.sheets) {
		return nil, NewSheetError("", index)
	}
	return wb.sheets[index-1], nil
}

// AddSheet appends an empty sheet.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if err := wb.check(); err != nil {
		return nil, err
	}
	if _, err := wb.Sheet(name); err == nil {
		return nil, fmt.Errorf("sheet %q already exists", name)
	}
	if _, err := wb.file.NewSheet(name); err != nil {
		return nil, err
	}
	s := &Sheet{wb: wb, name: name, data: sheetdata.New()}
	wb.sheets = append(wb.sheets, s)
	wb.touch()
	return s, nil
}

// InternFormat returns the style index of f, adding it to the style table
// when no equal format is stored yet.
func (wb *Workbook) InternFormat(f models.Format) (int, error) {
	if err := wb.check(); err != nil {
		return 0, err
	}
	return wb.table.Intern(f)
}

// ResolveFormat returns the format stored at a style index.
func (wb *Workbook) ResolveFormat(index int) (models.Format, error) {
	if err := wb.check(); err != nil {
		return models.Format{}, err
	}
	return wb.table.Resolve(index)
}

// StyleCount returns the number of style records.
func (wb *Workbook) StyleCount() int {
	return wb.table.Len()
}

// Batch runs fn and restores the content of every sheet to its state before
// the call when fn returns an error. Style records interned by fn and sheets
// added by fn are kept.
func (wb *Workbook) Batch(fn func() error) error {
	if err := wb.check(); err != nil {
		return err
	}
	snapshots := make([]*sheetdata.Sheet, len(wb.sheets))
	for i, s := range wb.sheets {
		snapshot, err := s.data.Clone()
		if err != nil {
			return err
		}
		snapshots[i] = snapshot
	}
	sheets := append([]*Sheet(nil), wb.sheets...)
	state := wb.state

	if err := fn(); err != nil {
		for i, s := range sheets {
			s.data = snapshots[i]
		}
		if len(wb.sheets) == len(sheets) {
			wb.state = state
		}
		return err
	}
	return nil
}

// flush pushes every change to the excelize document.
func (wb *Workbook) flush() error {
	for _, s := range wb.sheets {
		if !s.data.Dirty() {
			continue
		}
		stats, err := writer.FlushSheet(wb.file, s.name, s.data, wb.ids)
		if err != nil {
			if errors.Is(err, ErrCorruptDocument) {
				return fmt.Errorf("sheet %q: %w", s.name, err)
			}
			return NewIoError("write", s.name, err)
		}
		wb.log.Debug("flushed sheet", "sheet", s.name, "columns", stats.Columns, "rows", stats.Rows, "cells", stats.Cells)
	}
	for _, s := range wb.sheets {
		s.data.MarkClean()
	}
	wb.log.Debug("styles added to document", "count", wb.ids.Added())
	return nil
}

// Save writes the workbook back to the file it was opened from.
func (wb *Workbook) Save() error {
	if err := wb.check(); err != nil {
		return err
	}
	if wb.path == "" {
		return ErrNoPath
	}
	return wb.SaveAs(wb.path)
}

// SaveAs writes the workbook to path. The workbook remembers path for
// later calls to Save.
func (wb *Workbook) SaveAs(path string) error {
	if err := wb.check(); err != nil {
		return err
	}
	if err := wb.flush(); err != nil {
		return err
	}
	if err := wb.file.SaveAs(path); err != nil {
		return NewIoError("write", path, err)
	}
	wb.path = path
	wb.name = filepath.Base(path)
	wb.state = StateSaved
	wb.log.Debug("saved workbook", "path", path)
	return nil
}

// Write writes the workbook to w.
func (wb *Workbook) Write(w io.Writer) error {
	if err := wb.check(); err != nil {
		return err
	}
	if err := wb.flush(); err != nil {
		return err
	}
	if err := wb.file.Write(w); err != nil {
		return NewIoError("write", "", err)
	}
	wb.state = StateSaved
	return nil
}

// Close releases the workbook. Unsaved edits are discarded.
func (wb *Workbook) Close() error {
	if wb.state == StateClosed {
		return nil
	}
	wb.state = StateClosed
	wb.sheets = nil
	if err := wb.file.Close(); err != nil {
		return NewIoError("close", wb.path, err)
	}
	return nil
}
