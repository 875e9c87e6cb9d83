// Package core provides the value types and decode state shared by the CGM
// encodings.
//
// A Computer Graphics Metafile (ISO/IEC 8632) is self-describing: the byte
// width and even the type of later parameters depend on earlier descriptor
// elements. The [Descriptor] type holds that state for one parse session.
//
// # Value Types
//
//   - [Point] - a point in VDC space
//   - [Color] - an indexed or direct colour; one of [ColorIndex], [ColorRGB],
//     [ColorCMYK] or [ColorCIE]
//   - [RealPrecision] - the representation and widths of real numbers
//   - [StructuredDataRecord] - the parsed form of a data record parameter
//
// # Errors
//
// Decode failures are reported as [FormatError], [RangeError],
// [ErrUnexpectedEndOfData] or [UnsupportedConfigurationError], wrapped in a
// [CommandError] carrying the byte offset of the failing element:
//
//	var fe *core.FormatError
//	if errors.As(err, &fe) {
//	    fmt.Println("bad token:", fe.Input)
//	}
package core
