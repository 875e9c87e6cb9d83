package commands

import "github.com/tsawler/cgminfo/core"

// KnownEscapeTypes lists the escape identifiers whose data record is a
// structured data record. Records of any other escape are kept opaque.
var KnownEscapeTypes = map[int]string{
	-1: "Structured Escape",
	-2: "Structured Escape Extension",
}

// Escape is ESCAPE (6/1)
type Escape struct {
	Identifier int
	DataRecord core.StructuredDataRecord
}

// Name returns the registered name of the escape, or "Unknown"
func (c *Escape) Name() string {
	if name, ok := KnownEscapeTypes[c.Identifier]; ok {
		return name
	}
	return "Unknown"
}

func (*Escape) Element() Element            { return Element{6, 1} }
func (c *Escape) Accept(v Visitor, ctx any) { v.VisitEscape(c, ctx) }

// Message is MESSAGE (7/1)
type Message struct {
	Action  MessageAction
	Message string
}

func (*Message) Element() Element            { return Element{7, 1} }
func (c *Message) Accept(v Visitor, ctx any) { v.VisitMessage(c, ctx) }

// ApplicationData is APPLICATION DATA (7/2). The record is application
// specific and always kept opaque.
type ApplicationData struct {
	Identifier int
	DataRecord core.StructuredDataRecord
}

func (*ApplicationData) Element() Element            { return Element{7, 2} }
func (c *ApplicationData) Accept(v Visitor, ctx any) { v.VisitApplicationData(c, ctx) }

// ApplicationStructureAttribute is APPLICATION STRUCTURE ATTRIBUTE (9/1)
type ApplicationStructureAttribute struct {
	AttributeType string
	DataRecord    core.StructuredDataRecord
}

func (*ApplicationStructureAttribute) Element() Element { return Element{9, 1} }
func (c *ApplicationStructureAttribute) Accept(v Visitor, ctx any) {
	v.VisitApplicationStructureAttribute(c, ctx)
}
