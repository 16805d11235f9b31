package address

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress indicates a malformed or out of range column, cell or
// range reference.
var ErrInvalidAddress = errors.New("invalid address")

// Error describes why a reference could not be encoded or decoded.
type Error struct {
	Input  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Input, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrInvalidAddress
}

// NewError creates a new Error.
func NewError(input, reason string) *Error {
	return &Error{
		Input:  input,
		Reason: reason,
	}
}
