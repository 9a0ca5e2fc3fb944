package trace

import (
	"errors"
	"fmt"
)

// Domain errors for trace loading and indexing.
var (
	// ErrNotFound indicates the trace file does not exist.
	ErrNotFound = errors.New("trace: input file not found")

	// ErrDataFormat indicates a malformed row or cell value.
	ErrDataFormat = errors.New("trace: malformed data")

	// ErrOutOfRange indicates a frame index outside [0, NumStates).
	ErrOutOfRange = errors.New("trace: frame index out of range")

	// ErrParameterBounds indicates a non-positive width or height.
	ErrParameterBounds = errors.New("trace: parameter out of valid bounds")
)

// DataFormatError wraps ErrDataFormat with the position of the bad token.
// Line and Column are 1-based; Column is 0 for row-level problems.
type DataFormatError struct {
	Line   int
	Column int
	Token  string
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrDataFormat, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: line %d, column %d: %s %q", ErrDataFormat, e.Line, e.Column, e.Reason, e.Token)
}

func (e *DataFormatError) Unwrap() error {
	return ErrDataFormat
}

// OutOfRangeError reports a frame request past the end of the sequence.
type OutOfRangeError struct {
	Index     int
	NumStates int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: index %d, have %d frames", ErrOutOfRange, e.Index, e.NumStates)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// notFoundError keeps both ErrNotFound and the underlying fs error visible to
// errors.Is.
type notFoundError struct {
	Path    string
	Wrapped error
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Path)
}

func (e *notFoundError) Unwrap() []error {
	return []error{ErrNotFound, e.Wrapped}
}
