package xlsxedit

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/address"
	"github.com/ukaji3/xlsxedit-go/pkg/xlsxedit/styles"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidPackage indicates the input is not a valid xlsx package.
var ErrInvalidPackage = errors.New("invalid xlsx package")

// ErrSheetNotFound indicates a sheet name or index that does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrWorkbookClosed is returned by every operation on a closed workbook.
var ErrWorkbookClosed = errors.New("workbook is closed")

// ErrNoPath is returned by Save when the workbook was not opened from a file.
var ErrNoPath = errors.New("workbook has no file path")

var (
	// ErrInvalidAddress matches every AddressError.
	ErrInvalidAddress = address.ErrInvalidAddress
	// ErrInvalidFormat matches every FormatError.
	ErrInvalidFormat = styles.ErrInvalidFormat
	// ErrCorruptDocument matches every CorruptDocumentError.
	ErrCorruptDocument = styles.ErrCorruptDocument
)

// AddressError reports malformed or out-of-range address or range text.
type AddressError = address.Error

// FormatError reports an inconsistent format or an out-of-range width or height.
type FormatError = styles.FormatError

// CorruptDocumentError reports a reference to a style or shared string that
// does not exist.
type CorruptDocumentError = styles.CorruptDocumentError

// SheetError represents a reference to a sheet that does not exist.
type SheetError struct {
	Name  string
	Index int
}

func (e *SheetError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("sheet %q not found", e.Name)
	}
	return fmt.Sprintf("sheet index %d out of range", e.Index)
}

func (e *SheetError) Unwrap() error {
	return ErrSheetNotFound
}

// NewSheetError creates a new SheetError.
func NewSheetError(name string, index int) *SheetError {
	return &SheetError{Name: name, Index: index}
}

// IoError wraps a failure of the package layer: file access, archive or
// XML errors and excelize read/write failures.
type IoError struct {
	Op   string // "open", "read", "write"
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// NewIoError creates a new IoError.
func NewIoError(op, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Err: err}
}

// ExportError represents an error while exporting one part of a sheet.
type ExportError struct {
	SheetName string
	Component string // "cells", "links", "tables", "print_areas"
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(sheetName, component string, err error) *ExportError {
	return &ExportError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
