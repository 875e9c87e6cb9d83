package binaryencoding

import (
	"math"
)

// params builds the parameter data of one element
type params struct {
	b []byte
}

func newParams() *params { return &params{} }

func (p *params) raw(b ...byte) *params {
	p.b = append(p.b, b...)
	return p
}

func (p *params) i8(v int) *params { return p.raw(byte(v)) }

func (p *params) i16(v int) *params { return p.raw(byte(v>>8), byte(v)) }

func (p *params) i24(v int) *params { return p.raw(byte(v>>16), byte(v>>8), byte(v)) }

func (p *params) i32(v int) *params {
	return p.raw(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// point writes two 16-bit integer VDC values
func (p *params) point(x, y int) *params { return p.i16(x).i16(y) }

func (p *params) f32(v float32) *params {
	return p.i32(int(math.Float32bits(v)))
}

func (p *params) f64(v float64) *params {
	bits := math.Float64bits(v)
	return p.i32(int(bits >> 32)).i32(int(bits & 0xFFFFFFFF))
}

// fixed32 writes a real in the default 16.16 fixed point form
func (p *params) fixed32(v float64) *params {
	whole := math.Floor(v)
	frac := (v - whole) * (1 << 16)
	return p.i16(int(whole)).i16(int(frac))
}

// str writes a string in short form, or long form for 255 bytes and more
func (p *params) str(s string) *params {
	if len(s) < 255 {
		p.raw(byte(len(s)))
		return p.raw([]byte(s)...)
	}
	p.raw(255)
	return p.i16(len(s)).raw([]byte(s)...)
}

func (p *params) bytes() []byte { return p.b }

// element encodes one element with a short form header, or a single long
// form partition when the data does not fit
func element(class, id int, data []byte) []byte {
	if len(data) >= 31 {
		return longElement(class, id, data)
	}
	header := class<<12 | id<<5 | len(data)
	out := []byte{byte(header >> 8), byte(header)}
	out = append(out, data...)
	if len(data)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

// longElement encodes one element with a long form header and one
// partition per part
func longElement(class, id int, parts ...[]byte) []byte {
	header := class<<12 | id<<5 | 31
	out := []byte{byte(header >> 8), byte(header)}
	for i, part := range parts {
		word := len(part)
		if i < len(parts)-1 {
			word |= 0x8000
		}
		out = append(out, byte(word>>8), byte(word))
		out = append(out, part...)
		if len(part)%2 != 0 {
			out = append(out, 0)
		}
	}
	return out
}

// metafile joins encoded elements
func metafile(elements ...[]byte) []byte {
	var out []byte
	for _, el := range elements {
		out = append(out, el...)
	}
	return out
}
