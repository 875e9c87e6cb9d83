package textencoding

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// TokenState tells what ended a token
type TokenState int

const (
	// EndOfToken means a separator ended the token; the element continues
	EndOfToken TokenState = iota
	// EndOfElement means an element terminator (";" or "/") was read
	EndOfElement
	// EndOfFile means the input is exhausted
	EndOfFile
)

// String returns the state name
func (s TokenState) String() string {
	switch s {
	case EndOfToken:
		return "EndOfToken"
	case EndOfElement:
		return "EndOfElement"
	case EndOfFile:
		return "EndOfFile"
	default:
		return "Unknown"
	}
}

// Token is one parameter of a clear text element. Quoted is set when any
// part of the value came from a string literal, so an empty quoted string
// can be told apart from an empty separator slot.
type Token struct {
	Value  string
	Quoted bool
}

// Lexer splits clear text encoded CGM (ISO/IEC 8632-4) into tokens.
// Bytes are decoded as ISO 8859-1.
type Lexer struct {
	reader *bufio.Reader
	pos    int64

	// single byte pushback used after a closing string delimiter
	pushback    byte
	hasPushback bool
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far
func (l *Lexer) Offset() int64 {
	return l.pos
}

// readByte reads a single byte and advances position
func (l *Lexer) readByte() (byte, error) {
	if l.hasPushback {
		l.hasPushback = false
		l.pos++
		return l.pushback, nil
	}
	b, err := l.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	l.pos++
	return b, nil
}

// unreadByte pushes b back; only one byte of lookahead is ever needed
func (l *Lexer) unreadByte(b byte) {
	l.pushback = b
	l.hasPushback = true
	l.pos--
}

// NextToken reads the next token and reports what ended it. At EndOfFile
// the token holds whatever was accumulated before the input ran out.
// Read errors other than io.EOF are returned as is.
func (l *Lexer) NextToken() (Token, TokenState, error) {
	var sb strings.Builder
	var quoted bool

	token := func() Token {
		return Token{Value: sb.String(), Quoted: quoted}
	}
	appendByte := func(b byte) {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
	}

	for {
		c, err := l.readByte()
		if err == io.EOF {
			return token(), EndOfFile, nil
		}
		if err != nil {
			return token(), EndOfFile, err
		}

		switch c {
		// null characters
		case '_', '$':

		case ';', '/':
			return token(), EndOfElement, nil

		// soft separators; parentheses around points count as well
		case ' ', '\r', '\n', '\t', '(', ')':
			if sb.Len() > 0 || quoted {
				return token(), EndOfToken, nil
			}

		// hard separator
		case ',':
			return token(), EndOfToken, nil

		case '\'', '"':
			quoted = true
			eof, err := l.readString(c, appendByte)
			if err != nil {
				return token(), EndOfFile, err
			}
			if eof {
				return token(), EndOfFile, nil
			}

		// comments are equivalent to a soft separator
		case '%':
			for {
				c, err = l.readByte()
				if err == io.EOF {
					return token(), EndOfFile, nil
				}
				if err != nil {
					return token(), EndOfFile, err
				}
				if c == '%' {
					break
				}
			}
			return token(), EndOfToken, nil

		default:
			appendByte(c)
		}
	}
}

// readString consumes a string up to its closing delimiter. A doubled
// delimiter stands for one literal delimiter. It reports eof when the
// input ends inside the string or right after its closing delimiter.
func (l *Lexer) readString(delim byte, appendByte func(byte)) (eof bool, err error) {
	for {
		c, err := l.readByte()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if c != delim {
			appendByte(c)
			continue
		}

		next, err := l.readByte()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if next == delim {
			appendByte(c)
			continue
		}
		l.unreadByte(next)
		return false, nil
	}
}
