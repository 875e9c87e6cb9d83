package report

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/cgminfo/textencoding"
)

const sample = `BEGMF 'demo';
MFVERSION 2;
MFDESC 'sample drawing';
VDCTYPE REAL;
INTEGERPREC -128 127;
FONTLIST 'Helvetica' 'Courier';
FOOBAR 1 2;
BEGPIC 'first';
VDCEXT 0.0 0.0 10.0 5.0;
BEGPICBODY;
TEXT 1.0 1.0 FINAL 'hello';
ENDPIC;
ENDMF;`

// build walks sample into a report
func build(t *testing.T) *Report {
	t.Helper()
	r := textencoding.NewReader(strings.NewReader(sample))
	rep := New("demo.cgmt")
	for {
		cmd, err := r.ReadCommand()
		if err != nil {
			t.Fatalf("ReadCommand() unexpected error: %v", err)
		}
		if cmd == nil {
			return rep
		}
		cmd.Accept(PrintVisitor{}, rep)
	}
}

func TestPrintVisitor(t *testing.T) {
	got := build(t).Entries
	want := []Entry{
		{Level: 0, Label: "Metafile", Value: "demo.cgmt - demo"},
		{Level: 1, Label: "Metafile Version", Value: "2"},
		{Level: 1, Label: "Metafile Description", Value: "sample drawing"},
		{Level: 1, Label: "VDC Type", Value: "Real"},
		{Level: 1, Label: "Integer Precision", Value: "8 bit"},
		{Level: 1, Label: "Font List", Value: "Helvetica, Courier"},
		{Level: 1, Label: "Picture", Value: "first"},
		{Level: 2, Label: "VDC Extent", Value: "(0,0) (10,5)"},
		{Level: 2, Label: "Text", Value: "hello"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("entries mismatch\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestReportLevels(t *testing.T) {
	r := New("x")
	r.EndLevel()
	r.Add("a", "")
	r.BeginLevel()
	r.Add("b", "%d", 1)
	r.EndLevel()
	r.EndLevel()
	r.Add("c", "")

	levels := []int{r.Entries[0].Level, r.Entries[1].Level, r.Entries[2].Level}
	if !reflect.DeepEqual(levels, []int{0, 1, 0}) {
		t.Errorf("levels = %v, want [0 1 0]", levels)
	}
}

func TestWriteText(t *testing.T) {
	rep := build(t)
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, []*Report{rep}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(rep.Entries) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(rep.Entries), buf.String())
	}
	for i, e := range rep.Entries {
		prefix := strings.Repeat("  ", e.Level) + e.Label + ":"
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
		if !strings.HasSuffix(lines[i], e.Value) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], e.Value)
		}
	}
}

func TestWriteYAML(t *testing.T) {
	rep := build(t)
	var buf bytes.Buffer
	if err := Write(&buf, FormatYAML, []*Report{rep}); err != nil {
		t.Fatal(err)
	}

	var decoded []Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].FileName != "demo.cgmt" {
		t.Fatalf("decoded = %+v", decoded)
	}
	if !reflect.DeepEqual(decoded[0].Entries, rep.Entries) {
		t.Errorf("entries mismatch\ngot:  %+v\nwant: %+v", decoded[0].Entries, rep.Entries)
	}
	if !strings.Contains(buf.String(), "file: demo.cgmt") {
		t.Errorf("output missing file key:\n%s", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	rep := build(t)
	var buf bytes.Buffer
	if err := Write(&buf, FormatHTML, []*Report{rep}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h2>demo.cgmt</h2>",
		"<li><strong>Text</strong>: hello</li>",
		"<li><strong>Picture</strong>: first<ul>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	rep := New("a<b>.cgm")
	rep.Add("Text", "%s", "x & y")
	var buf bytes.Buffer
	if err := Write(&buf, FormatHTML, []*Report{rep}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "a&lt;b&gt;.cgm") || !strings.Contains(buf.String(), "x &amp; y") {
		t.Errorf("output not escaped:\n%s", buf.String())
	}
}

func TestWriteCBOR(t *testing.T) {
	rep := build(t)
	var first, second bytes.Buffer
	if err := Write(&first, FormatCBOR, []*Report{rep}); err != nil {
		t.Fatal(err)
	}
	if err := Write(&second, FormatCBOR, []*Report{rep}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("CBOR output is not deterministic")
	}

	var decoded []Report
	if err := cbor.Unmarshal(first.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || !reflect.DeepEqual(decoded[0].Entries, rep.Entries) {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"html", FormatHTML, false},
		{"cbor", FormatCBOR, false},
		{"json", FormatText, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.String() != strings.ToLower(tt.input) && tt.input != "yml" {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
