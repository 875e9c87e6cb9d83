package binaryencoding

import (
	"fmt"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Escape, external and application structure elements (ISO/IEC 8632-3
// 8.8, 8.9 and 8.11)

func readEscape(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	data, err := r.optionalString()
	if err != nil {
		return nil, err
	}
	record := core.OpaqueRecord(data)
	if _, ok := commands.KnownEscapeTypes[id]; ok {
		if record, err = r.parseStructuredDataRecord(latin1Bytes(data)); err != nil {
			return nil, fmt.Errorf("escape %d data record: %w", id, err)
		}
	}
	return &commands.Escape{Identifier: id, DataRecord: record}, nil
}

func readMessage(r *Reader) (commands.Command, error) {
	action, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	message, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.Message{Action: commands.MessageAction(action), Message: message}, nil
}

func readApplicationData(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	data, err := r.optionalString()
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
	record, err := r.parseStructuredDataRecord(latin1Bytes(data))
	if err != nil {
		return nil, fmt.Errorf("attribute %q data record: %w", typ, err)
	}
	return &commands.ApplicationStructureAttribute{AttributeType: typ, DataRecord: record}, nil
}

// latin1Bytes reverses decodeLatin1
func latin1Bytes(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, c := range s {
		b = append(b, byte(c))
	}
	return b
}

// parseStructuredDataRecord decodes the binary form of a structured data
// record: a sequence of data type index (IX), value count (I) and values,
// all in the current precisions. Members of types that cannot be decoded
// keep the rest of the record as raw bytes.
func (r *Reader) parseStructuredDataRecord(data []byte) (core.StructuredDataRecord, error) {
	sub := &Reader{descriptor: r.descriptor, logger: r.logger, buf: data}
	var record core.StructuredDataRecord
	for sub.hasMoreData() {
		typ, err := sub.readIndex()
		if err != nil {
			return record, err
		}
		count, err := sub.readInteger()
		if err != nil {
			return record, err
		}
		if count < 0 || count > len(data) {
			return record, &core.RangeError{Kind: "Data record count", Input: fmt.Sprint(count), Reason: "exceeds record length"}
		}
		el := core.StructuredDataElement{Type: core.DataTypeIndex(typ)}
		if !decodableDataType(el.Type) {
			el.Values = []any{sub.buf[sub.pos:]}
			record.Elements = append(record.Elements, el)
			return record, nil
		}
		for i := 0; i < count; i++ {
			v, err := sub.readDataValue(el.Type)
			if err != nil {
				return record, err
			}
			el.Values = append(el.Values, v)
		}
		record.Elements = append(record.Elements, el)
	}
	return record, nil
}

func decodableDataType(t core.DataTypeIndex) bool {
	switch t {
	case core.DataReserved, core.DataBitStream, core.DataColorList:
		return false
	}
	return t >= core.DataRecord && t <= core.DataUnsignedInteger16
}

// readDataValue reads one record value of type t
func (r *Reader) readDataValue(t core.DataTypeIndex) (any, error) {
	switch t {
	case core.DataRecord:
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		return r.parseStructuredDataRecord(latin1Bytes(s))
	case core.DataColorIndex:
		return r.readColorIndex()
	case core.DataColorDirect:
		return r.readDirectColor()
	case core.DataName:
		return r.readName()
	case core.DataEnum:
		return r.readEnum()
	case core.DataInteger:
		return r.readInteger()
	case core.DataSignedInteger8:
		return r.readSigned(8)
	case core.DataSignedInteger16:
		return r.readSigned(16)
	case core.DataSignedInteger32:
		return r.readSigned(32)
	case core.DataIndex:
		return r.readIndex()
	case core.DataReal:
		return r.readReal()
	case core.DataString, core.DataStringFixed:
		return r.readString()
	case core.DataViewportCoordinate:
		return r.readViewportCoordinate()
	case core.DataVdc:
		return r.readVdc()
	case core.DataColorComponent:
		r.align()
		return r.readComponent(r.descriptor.ColorPrecision)
	case core.DataUnsignedInteger8:
		v, err := r.readUnsigned(8)
		return int(v), err
	case core.DataUnsignedInteger16:
		v, err := r.readUnsigned(16)
		return int(v), err
	case core.DataUnsignedInteger32:
		v, err := r.readUnsigned(32)
		return int(v), err
	default:
		return nil, &core.FormatError{Kind: "data record type", Input: t.String()}
	}
}
