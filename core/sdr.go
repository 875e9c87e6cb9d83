package core

import (
	"fmt"
	"strings"
)

// DataTypeIndex identifies the type of the values in one member of a
// structured data record (ISO/IEC 8632-1 Annex C).
type DataTypeIndex int

const (
	DataRecord             DataTypeIndex = 1
	DataColorIndex         DataTypeIndex = 2
	DataColorDirect        DataTypeIndex = 3
	DataName               DataTypeIndex = 4
	DataEnum               DataTypeIndex = 5
	DataInteger            DataTypeIndex = 6
	DataReserved           DataTypeIndex = 7
	DataSignedInteger8     DataTypeIndex = 8
	DataSignedInteger16    DataTypeIndex = 9
	DataSignedInteger32    DataTypeIndex = 10
	DataIndex              DataTypeIndex = 11
	DataReal               DataTypeIndex = 12
	DataString             DataTypeIndex = 13
	DataStringFixed        DataTypeIndex = 14
	DataViewportCoordinate DataTypeIndex = 15
	DataVdc                DataTypeIndex = 16
	DataColorComponent     DataTypeIndex = 17
	DataUnsignedInteger8   DataTypeIndex = 18
	DataUnsignedInteger32  DataTypeIndex = 19
	DataBitStream          DataTypeIndex = 20
	DataColorList          DataTypeIndex = 21
	DataUnsignedInteger16  DataTypeIndex = 22
)

var dataTypeNames = map[DataTypeIndex]string{
	DataRecord:             "SDR",
	DataColorIndex:         "CI",
	DataColorDirect:        "CD",
	DataName:               "N",
	DataEnum:               "E",
	DataInteger:            "I",
	DataReserved:           "Reserved",
	DataSignedInteger8:     "IF8",
	DataSignedInteger16:    "IF16",
	DataSignedInteger32:    "IF32",
	DataIndex:              "IX",
	DataReal:               "R",
	DataString:             "S",
	DataStringFixed:        "SF",
	DataViewportCoordinate: "VC",
	DataVdc:                "VDC",
	DataColorComponent:     "CCO",
	DataUnsignedInteger8:   "UI8",
	DataUnsignedInteger32:  "UI32",
	DataBitStream:          "BS",
	DataColorList:          "CL",
	DataUnsignedInteger16:  "UI16",
}

// String returns the short ISO name of the data type ("I", "R", "S", ...)
func (t DataTypeIndex) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// StructuredDataElement is one (type, values) member of a record. Values
// hold int, float64, string, Color, Point or a nested
// StructuredDataRecord depending on Type.
type StructuredDataElement struct {
	Type   DataTypeIndex
	Values []any
}

// StructuredDataRecord is the parsed form of a data record parameter
type StructuredDataRecord struct {
	Elements []StructuredDataElement
}

// OpaqueRecord wraps an unparsed data record as a single string member.
// Records of unknown escapes and application data use this form.
func OpaqueRecord(data string) StructuredDataRecord {
	return StructuredDataRecord{
		Elements: []StructuredDataElement{
			{Type: DataString, Values: []any{data}},
		},
	}
}

// String returns a compact rendering like "[I:1 2] [S:abc]"
func (r StructuredDataRecord) String() string {
	var parts []string
	for _, el := range r.Elements {
		vals := make([]string, len(el.Values))
		for i, v := range el.Values {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "["+el.Type.String()+":"+strings.Join(vals, " ")+"]")
	}
	return strings.Join(parts, " ")
}
