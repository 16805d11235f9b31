package parser

import "errors"

// ErrPartNotFound is returned when a required package part is missing.
var ErrPartNotFound = errors.New("package part not found")
