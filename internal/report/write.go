package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

// Format is an output format of Write.
type Format int

const (
	// FormatText writes indented "label: value" lines.
	FormatText Format = iota
	// FormatYAML writes a YAML sequence of reports.
	FormatYAML
	// FormatHTML writes a standalone HTML document.
	FormatHTML
	// FormatCBOR writes a CBOR array of reports.
	FormatCBOR
)

// String returns the flag name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatHTML:
		return "html"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "html":
		return FormatHTML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatText, fmt.Errorf("unknown report format %q", s)
	}
}

// encMode uses Core Deterministic Encoding (RFC 8949 4.2) so the same
// reports always produce identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
}

// Write writes reports to w in format f.
func Write(w io.Writer, f Format, reports []*Report) error {
	switch f {
	case FormatText:
		return writeText(w, reports)
	case FormatYAML:
		return writeYAML(w, reports)
	case FormatHTML:
		return writeHTML(w, reports)
	case FormatCBOR:
		return encMode.NewEncoder(w).Encode(reports)
	default:
		return fmt.Errorf("unsupported report format: %s", f)
	}
}

// writeText aligns the values of consecutive entries on one level
func writeText(w io.Writer, reports []*Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, r := range reports {
		for _, e := range r.Entries {
			indent := strings.Repeat("  ", e.Level)
			if _, err := fmt.Fprintf(tw, "%s%s:\t%s\n", indent, e.Label, e.Value); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

// element returns an element node with the given children
func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// writeHTML renders one section per report with a nested list that follows
// the entry levels
func writeHTML(w io.Writer, reports []*Report) error {
	body := element(atom.Body)
	for _, r := range reports {
		section := element(atom.Section, element(atom.H2, textNode(r.FileName)))
		section.AppendChild(entryList(r.Entries))
		body.AppendChild(section)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html,
		element(atom.Head, element(atom.Title, textNode("cgminfo report"))),
		body,
	))
	return html.Render(w, doc)
}

// entryList builds nested <ul> lists; an entry one level deeper than its
// predecessor starts a list inside the predecessor's item
func entryList(entries []Entry) *html.Node {
	root := element(atom.Ul)
	lists := []*html.Node{root}
	var last *html.Node
	base := 0
	if len(entries) > 0 {
		base = entries[0].Level
	}
	for _, e := range entries {
		depth := e.Level - base
		if depth < 0 {
			depth = 0
		}
		for depth > len(lists)-1 && last != nil {
			inner := element(atom.Ul)
			last.AppendChild(inner)
			lists = append(lists, inner)
		}
		if depth < len(lists)-1 {
			lists = lists[:depth+1]
		}
		item := element(atom.Li, element(atom.Strong, textNode(e.Label)))
		if e.Value != "" {
			item.AppendChild(textNode(": " + e.Value))
		}
		lists[len(lists)-1].AppendChild(item)
		last = item
	}
	return root
}
