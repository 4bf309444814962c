package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeBufferIndentNewline(t *testing.T) {
	b := New()
	b.Append("func f() {")
	b.Indent()
	b.Newline()
	b.Append("x := 1")
	b.Outdent()
	b.Newline()
	b.Append("}")

	got := b.String()
	assert.True(t, strings.Contains(got, "func f() {\n    x := 1\n}"))
}

func TestCodeBufferOutdentBelowZeroPanics(t *testing.T) {
	b := New()
	assert.Panics(t, func() { b.Outdent() })
}

func TestCodeBufferIndentLevel(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.IndentLevel())
	b.Indent()
	b.Indent()
	assert.Equal(t, 2, b.IndentLevel())
	b.Outdent()
	assert.Equal(t, 1, b.IndentLevel())
}

func TestStringSinkNewlineIsBare(t *testing.T) {
	s := NewStringSink()
	s.Append("a")
	s.Newline()
	s.Append("b")
	assert.Equal(t, "a\nb", s.String())
}
