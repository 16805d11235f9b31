package styles

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates a format that cannot be stored in the style table.
var ErrInvalidFormat = errors.New("invalid format")

// ErrCorruptDocument indicates a style reference with no backing record.
var ErrCorruptDocument = errors.New("corrupt document")

// FormatError reports the first invalid field of a format.
type FormatError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// NewFormatError creates a new FormatError.
func NewFormatError(field string, value interface{}, reason string) *FormatError {
	return &FormatError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// CorruptDocumentError reports a style index outside the style table.
type CorruptDocumentError struct {
	What  string // what held the reference, e.g. "cell C7" or "style index"
	Index int
	Count int
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt document: %s refers to style %d, table holds %d records", e.What, e.Index, e.Count)
}

func (e *CorruptDocumentError) Unwrap() error {
	return ErrCorruptDocument
}

// NewCorruptDocumentError creates a new CorruptDocumentError.
func NewCorruptDocumentError(what string, index, count int) *CorruptDocumentError {
	return &CorruptDocumentError{
		What:  what,
		Index: index,
		Count: count,
	}
}
