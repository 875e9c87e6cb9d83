// Package report collects a readable summary of a metafile: its name,
// descriptor settings, picture boundaries and text. The summary is built
// by PrintVisitor and written as text, YAML, HTML or CBOR.
package report

import (
	"fmt"
)

// Entry is one line of a report.
type Entry struct {
	Level int    `yaml:"level" cbor:"1,keyasint"`
	Label string `yaml:"label" cbor:"2,keyasint"`
	Value string `yaml:"value,omitempty" cbor:"3,keyasint,omitempty"`
}

// Report is the summary of one file. It is the visitor context of
// PrintVisitor.
type Report struct {
	FileName string  `yaml:"file" cbor:"1,keyasint"`
	Entries  []Entry `yaml:"entries" cbor:"2,keyasint"`

	level int
}

// New returns an empty report for fileName.
func New(fileName string) *Report {
	return &Report{FileName: fileName}
}

// Add appends an entry at the current nesting level.
func (r *Report) Add(label string, format string, args ...any) {
	r.Entries = append(r.Entries, Entry{
		Level: r.level,
		Label: label,
		Value: fmt.Sprintf(format, args...),
	})
}

// BeginLevel nests the following entries one level deeper.
func (r *Report) BeginLevel() {
	r.level++
}

// EndLevel returns to the enclosing level. Unbalanced calls stop at the
// top level.
func (r *Report) EndLevel() {
	if r.level > 0 {
		r.level--
	}
}
