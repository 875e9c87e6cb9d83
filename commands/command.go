package commands

import (
	"fmt"
	"strconv"
)

// Element identifies an element by its class and id, as used by the
// binary encoding header.
type Element struct {
	Class int
	ID    int
}

// String returns the ISO element name (e.g. "LINE WIDTH"), or
// "Class c ID i" for elements without a registered name.
func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Class %d ID %d", e.Class, e.ID)
}

// Command is one decoded element. Commands are immutable once returned by
// a reader; Accept dispatches to the visitor method matching the concrete
// type and forwards ctx unchanged.
type Command interface {
	Element() Element
	Accept(v Visitor, ctx any)
}

// Element class 15, id 127 is reserved for extension in the binary encoding
// (ISO/IEC 8632-3 5.4); unsupported clear text elements are tagged with it.
const (
	reservedTextClass = 15
	reservedTextID    = 127
)

// UnsupportedCommand is a placeholder for an element the reader does not
// decode. It is never an error: binary elements keep their identity and
// raw parameter bytes, clear text elements keep their keyword and the raw
// parameter text.
type UnsupportedCommand struct {
	ElementClass int
	ElementID    int

	// Clear text only
	ElementName   string
	RawParameters string

	// Binary only
	RawData []byte
}

// NewUnsupportedBinary returns an unsupported command for a binary element
func NewUnsupportedBinary(class, id int, data []byte) *UnsupportedCommand {
	return &UnsupportedCommand{ElementClass: class, ElementID: id, RawData: data}
}

// NewUnsupportedText returns an unsupported command for a clear text element
func NewUnsupportedText(name, rawParameters string) *UnsupportedCommand {
	return &UnsupportedCommand{
		ElementClass:  reservedTextClass,
		ElementID:     reservedTextID,
		ElementName:   name,
		RawParameters: rawParameters,
	}
}

// IsTextEncoding reports whether the command came from the clear text
// encoding, in which case ElementName and RawParameters are set.
func (c *UnsupportedCommand) IsTextEncoding() bool {
	return c.ElementClass == reservedTextClass && c.ElementID == reservedTextID
}

func (c *UnsupportedCommand) Element() Element {
	return Element{Class: c.ElementClass, ID: c.ElementID}
}

func (c *UnsupportedCommand) Accept(v Visitor, ctx any) { v.VisitUnsupportedCommand(c, ctx) }

// enumName returns names[v] or a fallback carrying the raw value
func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return "Unknown(" + strconv.Itoa(v) + ")"
}

// indicatorName looks up a 1-based indicator value; unknown values are reserved
func indicatorName(names map[int]string, v int) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "Reserved"
}
