package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"format", &FormatError{Kind: "Integer", Input: "12x"}, `invalid Integer format "12x"`},
		{"range", &RangeError{Kind: "Integer", Input: "99999", Reason: "exceeds 16 bits"}, `Integer "99999" out of range: exceeds 16 bits`},
		{"config", &UnsupportedConfigurationError{Setting: "INTEGER PRECISION", Value: 12}, "unsupported INTEGER PRECISION: 12"},
		{"command", &CommandError{Offset: 42, Element: "LINE", Err: ErrUnexpectedEndOfData}, "LINE at command position 42: unexpected end of data"},
		{"command without element", &CommandError{Offset: 7, Err: ErrUnexpectedEndOfData}, "at command position 7: unexpected end of data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := &FormatError{Kind: "Real", Input: "1..2"}
	err := fmt.Errorf("drawing.cgmt: %w", &CommandError{Offset: 3, Element: "CIRCLE", Err: inner})

	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) || fmtErr != inner {
		t.Errorf("errors.As did not reach the FormatError")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Offset != 3 {
		t.Errorf("errors.As did not reach the CommandError")
	}
	if errors.Is(err, ErrUnexpectedEndOfData) {
		t.Errorf("unrelated sentinel matched")
	}
}
