// Package commands defines the decoded CGM elements.
//
// Every element a reader understands has its own type implementing
// Command. Values are produced by the binaryencoding and textencoding
// readers and are never modified afterwards; both encodings decode the
// same logical element to equal values.
//
// Consumers implement Visitor, usually by embedding NopVisitor and
// overriding the methods they care about:
//
//	type textCollector struct {
//		commands.NopVisitor
//		lines []string
//	}
//
//	func (t *textCollector) VisitText(c *commands.Text, ctx any) {
//		t.lines = append(t.lines, c.Text)
//	}
//
// Elements a reader does not decode are delivered as UnsupportedCommand
// through VisitUnsupportedCommand.
package commands
