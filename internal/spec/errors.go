package spec

import (
	"fmt"
)

// ReadError is returned when a spec file cannot be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read spec file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a spec file does not match the spec model.
// Field is the dotted wire path of the offending field when it is known.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("failed to parse spec file %s: field %s: %v", e.Path, e.Field, e.Err)
	}
	return fmt.Sprintf("failed to parse spec file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
