// Package filters unwraps compressed metafiles.
//
// Metafiles are often stored compressed. The compression is recognized
// from the outer file name suffix, never from the content:
//
//	drawing.cgm.gz    gzip
//	drawing.cgm.zst   Zstandard
//	drawing.cgmt.lz4  LZ4 frame
//
// Detect strips the suffix so that the inner name still selects the CGM
// encoding:
//
//	f, inner := filters.Detect("drawing.cgm.gz") // Gzip, "drawing.cgm"
//	rc, err := filters.NewReader(file, f)
package filters
