package commands

import (
	"testing"
)

func TestElementString(t *testing.T) {
	tests := []struct {
		e    Element
		want string
	}{
		{Element{0, 1}, "BEGIN METAFILE"},
		{Element{4, 1}, "POLYLINE"},
		{Element{4, 12}, "CIRCLE"},
		{Element{1, 1}, "METAFILE VERSION"},
		{Element{14, 3}, "Class 14 ID 3"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Element%v.String() = %q, want %q", [2]int{tt.e.Class, tt.e.ID}, got, tt.want)
		}
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		e      Element
		want   string
		wantOK bool
	}{
		{Element{0, 1}, "BEGMF", true},
		{Element{4, 1}, "LINE", true},
		{Element{4, 2}, "DISJTLINE", true},
		{Element{4, 11}, "RECT", true},
		{Element{6, 1}, "ESCAPE", true},
		{Element{14, 3}, "", false},
	}
	for _, tt := range tests {
		got, ok := Keyword(tt.e)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Keyword(%v) = %q, %v; want %q, %v", tt.e, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestUnsupportedCommand(t *testing.T) {
	bin := NewUnsupportedBinary(9, 5, []byte{1, 2})
	if bin.IsTextEncoding() {
		t.Error("binary command reports text encoding")
	}
	if bin.Element() != (Element{9, 5}) {
		t.Errorf("Element() = %v", bin.Element())
	}

	text := NewUnsupportedText("FOOBAR", "1 2")
	if !text.IsTextEncoding() {
		t.Error("text command does not report text encoding")
	}
	if text.ElementName != "FOOBAR" || text.RawParameters != "1 2" {
		t.Errorf("text command = %+v", text)
	}
}

func TestIndicatorNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"line cap", (&LineCap{LineCapIndicator: 3}).LineCapName(), "Round"},
		{"dash cap", (&LineCap{DashCapIndicator: 3}).DashCapName(), "Match"},
		{"reserved cap", (&LineCap{LineCapIndicator: 9}).LineCapName(), "Reserved"},
		{"join", (&LineJoin{Index: 2}).Name(), "Mitre"},
		{"edge join", (&EdgeJoin{Index: 4}).Name(), "Bevel"},
		{"continuation", (&LineTypeContinuation{Index: 4}).Name(), "Adaptive Continue"},
		{"reserved continuation", (&EdgeTypeContinuation{Index: 0}).Name(), "Reserved"},
		{"escape", (&Escape{Identifier: -1}).Name(), "Structured Escape"},
		{"unknown escape", (&Escape{Identifier: 99}).Name(), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnumFallback(t *testing.T) {
	if got := TextPathType(2).String(); got != "Up" {
		t.Errorf("TextPathType(2) = %q, want Up", got)
	}
	if got := TextPathType(9).String(); got != "Unknown(9)" {
		t.Errorf("TextPathType(9) = %q, want Unknown(9)", got)
	}
}

// recorder notes the visitor methods that were called
type recorder struct {
	NopVisitor
}

func (recorder) VisitPolyline(c *Polyline, ctx any) {
	*ctx.(*[]string) = append(*ctx.(*[]string), "polyline")
}

func (recorder) VisitCircle(c *Circle, ctx any) {
	*ctx.(*[]string) = append(*ctx.(*[]string), "circle")
}

func (recorder) VisitUnsupportedCommand(c *UnsupportedCommand, ctx any) {
	*ctx.(*[]string) = append(*ctx.(*[]string), "unsupported")
}

func TestAccept(t *testing.T) {
	cmds := []Command{
		&Polyline{},
		&Text{Text: "ignored"},
		&Circle{Radius: 1},
		NewUnsupportedBinary(15, 3, nil),
	}
	var got []string
	for _, cmd := range cmds {
		cmd.Accept(recorder{}, &got)
	}
	want := []string{"polyline", "circle", "unsupported"}
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestElementTablesAgree(t *testing.T) {
	for e := range elementKeywords {
		if _, ok := elementNames[e]; !ok {
			t.Errorf("keyword %q for %v has no element name", elementKeywords[e], [2]int{e.Class, e.ID})
		}
	}
}
