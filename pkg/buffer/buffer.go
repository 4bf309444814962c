// Package buffer implements the emitter's append-only output buffer: raw
// text appends plus a newline-with-indent primitive and an indent counter
// (spec §4.1).
package buffer

import "strings"

// indentWidth is the fixed number of spaces per indent level.
const indentWidth = 4

// CodeBuffer is an append-only character buffer with an indentation
// counter. It is the single sink that statement and expression emission
// write the primary output through.
type CodeBuffer struct {
	sb     strings.Builder
	indent int
}

// New returns an empty CodeBuffer.
func New() *CodeBuffer {
	return &CodeBuffer{}
}

// Append writes text verbatim.
func (b *CodeBuffer) Append(text string) {
	b.sb.WriteString(text)
}

// Newline writes "\n" followed by indent*indentWidth spaces.
func (b *CodeBuffer) Newline() {
	b.sb.WriteByte('\n')
	b.sb.WriteString(strings.Repeat(" ", b.indent*indentWidth))
}

// Indent increases the indent counter by one level.
func (b *CodeBuffer) Indent() {
	b.indent++
}

// Outdent decreases the indent counter by one level. Outdenting below zero
// is a programmer error in the caller and panics rather than silently
// clamping, so a mismatched indent/outdent pair in the emitter surfaces
// immediately instead of producing misleadingly-formatted output.
func (b *CodeBuffer) Outdent() {
	if b.indent == 0 {
		panic("buffer: outdent below zero")
	}
	b.indent--
}

// IndentLevel returns the current indent depth.
func (b *CodeBuffer) IndentLevel() int {
	return b.indent
}

// String returns the accumulated text.
func (b *CodeBuffer) String() string {
	return b.sb.String()
}

// Len returns the number of accumulated bytes.
func (b *CodeBuffer) Len() int {
	return b.sb.Len()
}

// StringSink is a minimal secondary buffer used when an expression must be
// rendered into a caller-provided string rather than the main CodeBuffer
// (spec §4.3). It implements the same two-method sink
// shape as CodeBuffer so expression emission needs only one code path
// regardless of which sink it is writing to (spec §9, "unify as a single
// function parameterised by a sink abstraction").
type StringSink struct {
	sb strings.Builder
}

// NewStringSink returns an empty StringSink.
func NewStringSink() *StringSink {
	return &StringSink{}
}

// Append writes text verbatim.
func (s *StringSink) Append(text string) {
	s.sb.WriteString(text)
}

// Newline writes a bare "\n". A StringSink has no indent state of its own:
// it exists to capture a fragment of expression text, not formatted
// statement-level code, so indentation is not meaningful here.
func (s *StringSink) Newline() {
	s.sb.WriteByte('\n')
}

// String returns the accumulated text.
func (s *StringSink) String() string {
	return s.sb.String()
}
