package comments

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anggasct/framegen/pkg/buffer"
)

func TestFlushToInOrderUpToLine(t *testing.T) {
	tokens := []Token{
		{Kind: SingleLine, Line: 2, Text: "first"},
		{Kind: SingleLine, Line: 5, Text: "second"},
		{Kind: SingleLine, Line: 9, Text: "third"},
	}
	ci := New(tokens)
	buf := buffer.New()

	ci.FlushTo(buf, 5)
	assert.Equal(t, 1, ci.Remaining())

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "third")

	ci.FlushTo(buf, 100)
	assert.True(t, ci.Done())
	assert.Contains(t, buf.String(), "third")
}

func TestFlushToNeverReemitsAComment(t *testing.T) {
	tokens := []Token{{Kind: SingleLine, Line: 1, Text: "once"}}
	ci := New(tokens)
	buf := buffer.New()

	ci.FlushTo(buf, 10)
	ci.FlushTo(buf, 20)

	count := 0
	out := buf.String()
	for i := 0; i+4 <= len(out); i++ {
		if out[i:i+4] == "once" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
