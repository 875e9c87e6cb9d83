// Package format names the two CGM encodings and maps file names and flag
// values to them.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Encoding is a CGM encoding.
type Encoding int

const (
	// Unknown indicates an unrecognized encoding.
	Unknown Encoding = iota
	// Binary indicates the Binary Encoding of ISO/IEC 8632-3.
	Binary
	// Text indicates the Clear Text Encoding of ISO/IEC 8632-4.
	Text
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case Binary:
		return "Binary"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the encoding.
func (e Encoding) Extension() string {
	switch e {
	case Binary:
		return ".cgm"
	case Text:
		return ".cgmt"
	default:
		return ""
	}
}

// Detect determines the encoding from the filename extension. Binary is the
// usual encoding of ".cgm" files; clear text metafiles conventionally use a
// separate extension. The file content is never inspected.
func Detect(filename string) Encoding {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".cgm", ".cgmb":
		return Binary
	case ".cgmt", ".ctcgm", ".txt":
		return Text
	default:
		return Unknown
	}
}

// ParseEncoding parses a user supplied encoding name such as a flag value.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "b":
		return Binary, nil
	case "text", "cleartext", "clear-text", "clear", "t":
		return Text, nil
	default:
		return Unknown, fmt.Errorf("unknown encoding %q (want binary or text)", s)
	}
}
