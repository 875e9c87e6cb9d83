package textencoding

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// errEndOfDefaults signals ENDMFDEFAULTS to the enclosing BEGMFDEFAULTS
var errEndOfDefaults = errors.New("end of metafile defaults replacement")

// Option configures a Reader
type Option func(*Reader)

// WithLogger sets the logger for unsupported elements and descriptor
// changes. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reader decodes clear text encoded metafiles (ISO/IEC 8632-4) one
// element at a time.
type Reader struct {
	lexer      *Lexer
	descriptor *core.Descriptor
	logger     *slog.Logger

	// parameters of the element being decoded
	tokens  []Token
	index   int
	offset  int64
	element string

	eof          bool
	defaultDepth int
	err          error
}

// NewReader creates a reader over r with a default Descriptor
func NewReader(r io.Reader, opts ...Option) *Reader {
	reader := &Reader{
		lexer:      NewLexer(r),
		descriptor: core.NewDescriptor(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Descriptor returns a copy of the current decode state
func (r *Reader) Descriptor() core.Descriptor {
	return *r.descriptor
}

// ReadCommand returns the next element, or nil and a nil error once the
// input is exhausted. After a failure every call returns the same error.
func (r *Reader) ReadCommand() (commands.Command, error) {
	if r.err != nil {
		return nil, r.err
	}
	cmd, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	return cmd, nil
}

// next decodes one element. It returns nil, nil at the end of the input.
func (r *Reader) next() (commands.Command, error) {
	for {
		if r.eof {
			return nil, nil
		}

		r.offset = r.lexer.Offset()
		tokens, err := r.readElement()
		if err != nil {
			return nil, &core.CommandError{Offset: r.offset, Err: err}
		}
		if len(tokens) == 0 {
			continue
		}

		r.element = strings.ToUpper(tokens[0].Value)
		r.tokens = tokens
		r.index = 1

		// outside a defaults block ENDMFDEFAULTS is not in the table and
		// ends up unsupported
		if r.element == "ENDMFDEFAULTS" && r.defaultDepth > 0 {
			return nil, errEndOfDefaults
		}

		decode, ok := commandTable[r.element]
		if !ok {
			r.logger.Debug("unsupported element", "element", tokens[0].Value, "offset", r.offset)
			return commands.NewUnsupportedText(tokens[0].Value, r.rawParameters()), nil
		}

		offset, element := r.offset, r.element
		cmd, err := decode(r)
		if err != nil {
			var cmdErr *core.CommandError
			if errors.As(err, &cmdErr) || errors.Is(err, errEndOfDefaults) {
				return nil, err
			}
			return nil, &core.CommandError{Offset: offset, Element: element, Err: err}
		}
		return cmd, nil
	}
}

// readElement collects the tokens of the next element. Empty unquoted
// tokens are dropped.
func (r *Reader) readElement() ([]Token, error) {
	var tokens []Token
	for {
		tok, state, err := r.lexer.NextToken()
		if err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}
		if tok.Value != "" || tok.Quoted {
			tokens = append(tokens, tok)
		}
		switch state {
		case EndOfElement:
			return tokens, nil
		case EndOfFile:
			r.eof = true
			return tokens, nil
		}
	}
}

// rawParameters joins the parameter tokens of the current element
func (r *Reader) rawParameters() string {
	if len(r.tokens) < 2 {
		return ""
	}
	values := make([]string, 0, len(r.tokens)-1)
	for _, tok := range r.tokens[1:] {
		values = append(values, tok.Value)
	}
	return strings.Join(values, " ")
}

// setDescriptor applies a descriptor change and logs it
func (r *Reader) setDescriptor(field string, value any, apply func(d *core.Descriptor)) {
	apply(r.descriptor)
	r.logger.Debug("descriptor changed", "field", field, "value", value)
}
