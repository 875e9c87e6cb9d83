package textencoding

import (
	"fmt"
	"strings"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Escape, external and application structure elements (ISO/IEC 8632-4
// 7.7, 7.8 and 7.10)

func readEscape(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	data, err := r.readString()
	if err != nil {
		return nil, err
	}
	record := core.OpaqueRecord(data)
	if _, ok := commands.KnownEscapeTypes[id]; ok {
		if record, err = ParseStructuredDataRecord(data); err != nil {
			return nil, err
		}
	}
	return &commands.Escape{Identifier: id, DataRecord: record}, nil
}

func readMessage(r *Reader) (commands.Command, error) {
	action, err := readEnumValue(r, messageActionKeywords, commands.NoAction)
	if err != nil {
		return nil, err
	}
	message, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.Message{Action: action, Message: message}, nil
}

func readApplicationData(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	data, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.ApplicationData{Identifier: id, DataRecord: core.OpaqueRecord(data)}, nil
}

func readApplicationStructureAttribute(r *Reader) (commands.Command, error) {
	typ, err := r.readString()
	if err != nil {
		return nil, err
	}
	data, err := r.readString()
	if err != nil {
		return nil, err
	}
	record, err := ParseStructuredDataRecord(data)
	if err != nil {
		return nil, err
	}
	return &commands.ApplicationStructureAttribute{AttributeType: typ, DataRecord: record}, nil
}

// ParseStructuredDataRecord parses the clear text form of a structured
// data record: a sequence of data type index, value count and values.
// Nested records (type 1) are themselves quoted records.
func ParseStructuredDataRecord(s string) (core.StructuredDataRecord, error) {
	var tokens []string
	lexer := NewLexer(strings.NewReader(s))
	for {
		tok, state, err := lexer.NextToken()
		if err != nil {
			return core.StructuredDataRecord{}, err
		}
		if tok.Value != "" || tok.Quoted {
			tokens = append(tokens, tok.Value)
		}
		if state == EndOfFile {
			break
		}
	}

	var record core.StructuredDataRecord
	next := func() (string, error) {
		if len(tokens) == 0 {
			return "", core.ErrUnexpectedEndOfData
		}
		tok := tokens[0]
		tokens = tokens[1:]
		return tok, nil
	}
	for len(tokens) > 0 {
		tok, _ := next()
		typ, err := ParseInteger(tok)
		if err != nil {
			return record, fmt.Errorf("data record type: %w", err)
		}
		tok, err = next()
		if err != nil {
			return record, err
		}
		count, err := ParseInteger(tok)
		if err != nil {
			return record, fmt.Errorf("data record count: %w", err)
		}
		el := core.StructuredDataElement{Type: core.DataTypeIndex(typ)}
		for i := 0; i < count; i++ {
			tok, err := next()
			if err != nil {
				return record, err
			}
			v, err := parseDataValue(el.Type, tok)
			if err != nil {
				return record, err
			}
			el.Values = append(el.Values, v)
		}
		record.Elements = append(record.Elements, el)
	}
	return record, nil
}

// parseDataValue converts one record value according to its type. Types
// whose values are not plain numbers or strings are kept as text.
func parseDataValue(typ core.DataTypeIndex, tok string) (any, error) {
	switch typ {
	case core.DataRecord:
		return ParseStructuredDataRecord(tok)
	case core.DataColorIndex, core.DataName, core.DataEnum, core.DataInteger,
		core.DataSignedInteger8, core.DataSignedInteger16, core.DataSignedInteger32,
		core.DataIndex, core.DataColorComponent, core.DataUnsignedInteger8,
		core.DataUnsignedInteger16, core.DataUnsignedInteger32:
		return ParseInteger(tok)
	case core.DataReal, core.DataVdc, core.DataViewportCoordinate:
		return ParseReal(tok)
	default:
		return tok, nil
	}
}
