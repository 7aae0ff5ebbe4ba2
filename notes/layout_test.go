package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padgrove/padgrove/canvas/record"
	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/searchview"
)

// the synthetic metric: 8.8px per rune, 19.2px per line at size 16
const (
	charW = 8.8
	lineH = 19.2
)

func renderLayout(t *testing.T, markup string) (*Layout, *record.Canvas) {
	t.Helper()
	buf, err := Render(markup)
	require.NoError(t, err)
	cv := record.New()
	return NewLayout(cv, buf, 16), cv
}

func TestLayoutLines(t *testing.T) {
	l, _ := renderLayout(t, "ab\ncd\n\nef")
	// "ab\ncd\nef": the empty markup line is a block break, not a blank line
	require.Len(t, l.Lines(), 3)
	assert.Equal(t, Line{Start: 0, End: 2}, l.Lines()[0])
	assert.Equal(t, Line{Start: 3, End: 5}, l.Lines()[1])
	assert.Equal(t, Line{Start: 6, End: 8}, l.Lines()[2])
	assert.InDelta(t, 3*lineH, l.Height(), 0.01)
}

func TestOffsetAt(t *testing.T) {
	l, _ := renderLayout(t, "ab\ncd")

	off, ok := l.OffsetAt(charW*0.5, 1)
	require.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = l.OffsetAt(charW*1.5, 1)
	require.True(t, ok)
	assert.Equal(t, 1, off)

	// second line: offsets skip the newline rune
	off, ok = l.OffsetAt(charW*0.5, lineH+1)
	require.True(t, ok)
	assert.Equal(t, 3, off)

	// past the end of a line, below the text, or negative: no glyph
	_, ok = l.OffsetAt(charW*5, 1)
	assert.False(t, ok)
	_, ok = l.OffsetAt(1, lineH*7)
	assert.False(t, ok)
	_, ok = l.OffsetAt(-1, 1)
	assert.False(t, ok)
}

func TestClickOrTapDispatch(t *testing.T) {
	l, _ := renderLayout(t, "[abcde](pass://p1) abc [defg](https://x)")
	v := NewNoteView(l)

	// middle of the secret span
	got := v.ClickOrTap(charW*2.5, 5)
	assert.Equal(t, searchview.RevealSecret{Value: "p1"}, got)

	// middle of the plain-text gap
	assert.Nil(t, v.ClickOrTap(charW*7.5, 5))

	// middle of the external link span
	got = v.ClickOrTap(charW*11.5, 5)
	assert.Equal(t, searchview.OpenLink{URL: "https://x"}, got)

	// outside the text entirely
	assert.Nil(t, v.ClickOrTap(charW*20, 5))
	assert.Nil(t, v.ClickOrTap(5, lineH*4))
}

func TestNoteViewCursor(t *testing.T) {
	l, _ := renderLayout(t, "[abcde](pass://p1) abc")
	v := NewNoteView(l)

	c, changed := v.PointerMove(charW*2.5, 5)
	assert.Equal(t, searchview.CursorPointer, c)
	assert.True(t, changed)

	c, changed = v.PointerMove(charW*3, 5)
	assert.Equal(t, searchview.CursorPointer, c)
	assert.False(t, changed)

	c, changed = v.PointerMove(charW*8, 5)
	assert.Equal(t, searchview.CursorText, c)
	assert.True(t, changed)
}

func TestDrawStyles(t *testing.T) {
	l, _ := renderLayout(t, "a [bb](https://x) `c`")
	cv := record.New()
	l.Draw(cv, 0, 0)

	var linkColored, codeBg bool
	for _, op := range cv.Ops {
		if op.Kind == record.OpText && op.Text == "bb" && op.Color == colors.LinkBlue {
			linkColored = true
		}
		if op.Kind == record.OpFillRect {
			codeBg = true
		}
	}
	assert.True(t, linkColored)
	assert.True(t, codeBg)

	// x advances are cumulative, so the segments tile the line
	var lastRight float32
	for _, op := range cv.Ops {
		if op.Kind != record.OpText {
			continue
		}
		assert.InDelta(t, lastRight, op.X, 0.01)
		w, _ := cv.Measure(op.Text, 16)
		lastRight = op.X + w
	}
}
