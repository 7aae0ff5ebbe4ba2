package notes

import (
	"github.com/padgrove/padgrove/canvas"
	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/searchview"
)

// Line is a half-open rune-offset span of Buffer.Text, newline excluded.
type Line struct {
	Start, End int
}

// Layout positions a rendered buffer line by line. Lines break only at
// newlines; horizontal overflow is the scroll container's problem, not
// ours. One font size for every run keeps x advances uniform so offset
// lookup and drawing can never disagree.
type Layout struct {
	buf      *Buffer
	cv       canvas.Canvas
	runes    []rune
	lines    []Line
	fontSize float32
	lineH    float32
}

func NewLayout(cv canvas.Canvas, buf *Buffer, fontSize float32) *Layout {
	l := &Layout{buf: buf, cv: cv, runes: []rune(buf.Text), fontSize: fontSize}
	_, l.lineH = cv.Measure("M", fontSize)

	start := 0
	for i, r := range l.runes {
		if r == '\n' {
			l.lines = append(l.lines, Line{Start: start, End: i})
			start = i + 1
		}
	}
	if start < len(l.runes) {
		l.lines = append(l.lines, Line{Start: start, End: len(l.runes)})
	}
	return l
}

func (l *Layout) Lines() []Line       { return l.lines }
func (l *Layout) Height() float32     { return float32(len(l.lines)) * l.lineH }
func (l *Layout) LineHeight() float32 { return l.lineH }

// OffsetAt maps a point in layout space to the rune offset under it.
// Points outside any glyph (past line end, below the text) report false.
func (l *Layout) OffsetAt(x, y float32) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	li := int(y / l.lineH)
	if li >= len(l.lines) {
		return 0, false
	}
	line := l.lines[li]
	acc := float32(0)
	for i := line.Start; i < line.End; i++ {
		w, _ := l.cv.Measure(string(l.runes[i]), l.fontSize)
		if x < acc+w {
			return i, true
		}
		acc += w
	}
	return 0, false
}

// linkAt resolves a point to the link span under it, if any.
func (l *Layout) linkAt(x, y float32) (LinkInfo, bool) {
	off, ok := l.OffsetAt(x, y)
	if !ok {
		return LinkInfo{}, false
	}
	return l.buf.LinkAt(off)
}

type segment struct {
	start, end int
	style      StyleFlags
}

// segments splits a line at style boundaries.
func (l *Layout) segments(line Line) []segment {
	var out []segment
	i := line.Start
	for i < line.End {
		style := l.buf.StyleAt(i)
		j := i + 1
		for j < line.End && l.buf.StyleAt(j) == style {
			j++
		}
		out = append(out, segment{start: i, end: j, style: style})
		i = j
	}
	return out
}

// Draw paints the buffer at (x0, y0). Style runs select color and, for
// code, a backing fill; metrics stay uniform across styles.
func (l *Layout) Draw(cv canvas.Canvas, x0, y0 float32) {
	for li, line := range l.lines {
		y := y0 + float32(li)*l.lineH
		x := x0
		for _, seg := range l.segments(line) {
			s := string(l.runes[seg.start:seg.end])
			w, _ := cv.Measure(s, l.fontSize)
			fg := colors.Black
			switch {
			case seg.style&StyleLink != 0:
				fg = colors.LinkBlue
			case seg.style&StyleCode != 0:
				cv.FillRect(x, y, w, l.lineH, colors.Gray)
				fg = colors.DarkGray
			case seg.style&StyleHeading != 0:
				fg = colors.DarkGray
			}
			cv.DrawText(x, y, s, l.fontSize, fg)
			x += w
		}
	}
}

// NoteView owns the pointer interaction of one displayed note: cursor
// shape over links, click-on-release dispatch and scroll filtering.
type NoteView struct {
	layout *Layout
	cursor searchview.CursorKind

	Scroll searchview.ScrollTracker
}

func NewNoteView(layout *Layout) *NoteView {
	return &NoteView{layout: layout}
}

// PointerMove reports the cursor shape for the hovered point and whether
// it changed since the last move.
func (v *NoteView) PointerMove(x, y float32) (searchview.CursorKind, bool) {
	c := searchview.CursorText
	if _, ok := v.layout.linkAt(x, y); ok {
		c = searchview.CursorPointer
	}
	changed := c != v.cursor
	v.cursor = c
	return c, changed
}

// ClickOrTap dispatches the pointer-release position. It fires on
// release, never on press, and returns nil when no link span is hit.
func (v *NoteView) ClickOrTap(x, y float32) searchview.Action {
	link, ok := v.layout.linkAt(x, y)
	if !ok {
		return nil
	}
	return searchview.ActionForPayload(link.URL)
}
