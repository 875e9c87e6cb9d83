// Package textencoding decodes metafiles in the clear text encoding of
// ISO/IEC 8632-4.
//
// The Lexer splits the input into tokens and element boundaries. The
// Reader groups tokens into elements, looks the keyword up in its command
// table and decodes the parameters against the current descriptor state:
//
//	r := textencoding.NewReader(f)
//	for {
//		cmd, err := r.ReadCommand()
//		if err != nil {
//			return err
//		}
//		if cmd == nil {
//			break
//		}
//		cmd.Accept(visitor, nil)
//	}
//
// Elements with unknown keywords are returned as
// commands.UnsupportedCommand values holding the raw parameter text.
package textencoding
