package load

import (
	"errors"
	"fmt"
)

// ErrTooFewFields is returned (wrapped in a ParseError) for a line without both an x and a y field.
var ErrTooFewFields = errors.New("too few fields (want 2)")

// ParseError is a line that could not be parsed into a sample.
type ParseError struct {
	// Line is 1-based.
	Line int
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileNotFoundError is returned when the input file does not exist.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error { return e.Err }
