// Package binaryencoding decodes metafiles in the binary encoding of
// ISO/IEC 8632-3.
//
// Each element starts with a 16-bit header holding the element class, the
// element id and the parameter length. Long elements are split into
// partitions. The Reader joins the partitions, looks the element up in its
// command table and decodes the parameter data with the precisions held
// in its descriptor:
//
//	r := binaryencoding.NewReader(f)
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
// Elements without a decoder are returned as commands.UnsupportedCommand
// values holding the raw parameter bytes.
package binaryencoding
