package core

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEndOfData is returned when an element ends before all of its
// required parameters were read.
var ErrUnexpectedEndOfData = errors.New("unexpected end of data")

// FormatError reports a token or byte sequence that does not match the
// grammar of the requested primitive.
type FormatError struct {
	Kind  string // "Integer", "Real", ...
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q", e.Kind, e.Input)
}

// RangeError reports a value outside the legal range of its radix or width.
type RangeError struct {
	Kind   string
	Input  string
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %q out of range: %s", e.Kind, e.Input, e.Reason)
}

// UnsupportedConfigurationError reports a descriptor setting the reader
// cannot decode. It is fatal for the rest of the metafile.
type UnsupportedConfigurationError struct {
	Setting string
	Value   any
}

func (e *UnsupportedConfigurationError) Error() string {
	return fmt.Sprintf("unsupported %s: %v", e.Setting, e.Value)
}

// CommandError wraps a decode failure with the position of the element
// that failed. Offset is the byte offset of the first byte of the element,
// recorded before any of its parameters were decoded.
type CommandError struct {
	Offset  int64
	Element string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("at command position %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("%s at command position %d: %v", e.Element, e.Offset, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
