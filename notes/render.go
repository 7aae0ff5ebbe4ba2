// Package notes turns note markup into a styled text buffer with link
// spans addressed by rune offset, and lays that buffer out for display
// and pointer interaction. Markup is parsed once; everything downstream
// works on the flattened buffer.
package notes

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

type StyleFlags uint8

const (
	StyleBold StyleFlags = 1 << iota
	StyleItalic
	StyleCode
	StyleHeading
	StyleLink
)

// Run is a contiguous styled span. Offsets are rune indices into
// Buffer.Text; unstyled text has no run.
type Run struct {
	Start, End int
	Style      StyleFlags
}

// LinkInfo records one clickable span and its raw payload URL. The
// payload keeps whatever scheme the markup carried, including the
// secret-reveal scheme; classification happens at click time.
type LinkInfo struct {
	Start, End int
	URL        string
}

// Buffer is the flattened result of rendering markup: plain text plus
// style runs plus link spans, all rune-offset addressed.
type Buffer struct {
	Text  string
	Runs  []Run
	Links []LinkInfo
}

var md = goldmark.New()

// Render parses markup and flattens it. Blocks are separated by a
// single newline; inline markup contributes style runs, never text.
func Render(markup string) (*Buffer, error) {
	src := []byte(markup)
	doc := md.Parser().Parse(gmtext.NewReader(src))
	b := &builder{src: src}
	if err := ast.Walk(doc, b.visit); err != nil {
		return nil, err
	}
	return &Buffer{Text: b.text.String(), Runs: b.runs, Links: b.links}, nil
}

type builder struct {
	src       []byte
	text      strings.Builder
	runeLen   int
	runs      []Run
	links     []LinkInfo
	style     StyleFlags
	needBreak bool

	linkStart []int
	linkURL   []string
}

// write appends s under the current style, inserting the pending block
// separator first. Adjacent same-style runs merge.
func (b *builder) write(s string) {
	if s == "" {
		return
	}
	b.flushBreak()
	b.emit(s, b.style)
}

// flushBreak writes the pending block separator, if any. Called before
// any text and before recording link start offsets, so a span never
// swallows the separator.
func (b *builder) flushBreak() {
	if b.needBreak {
		b.needBreak = false
		if b.runeLen > 0 {
			b.emit("\n", 0)
		}
	}
}

func (b *builder) emit(s string, style StyleFlags) {
	start := b.runeLen
	b.text.WriteString(s)
	b.runeLen += utf8.RuneCountInString(s)
	if style == 0 {
		return
	}
	if n := len(b.runs); n > 0 && b.runs[n-1].End == start && b.runs[n-1].Style == style {
		b.runs[n-1].End = b.runeLen
		return
	}
	b.runs = append(b.runs, Run{Start: start, End: b.runeLen, Style: style})
}

func (b *builder) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			b.style |= StyleHeading
		} else {
			b.style &^= StyleHeading
			b.needBreak = true
		}
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			b.needBreak = true
		}
	case *ast.ListItem:
		if entering {
			b.write("- ")
		} else {
			b.needBreak = true
		}
	case *ast.ThematicBreak:
		if entering {
			b.needBreak = true
		}
	case *ast.Emphasis:
		f := StyleItalic
		if node.Level >= 2 {
			f = StyleBold
		}
		if entering {
			b.style |= f
		} else {
			b.style &^= f
		}
	case *ast.CodeSpan:
		if entering {
			b.style |= StyleCode
		} else {
			b.style &^= StyleCode
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			b.style |= StyleCode
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				if i > 0 {
					b.write("\n")
				}
				seg := lines.At(i)
				b.write(strings.TrimRight(string(seg.Value(b.src)), "\n"))
			}
			b.style &^= StyleCode
			b.needBreak = true
			return ast.WalkSkipChildren, nil
		}
	case *ast.Link:
		if entering {
			b.flushBreak()
			b.style |= StyleLink
			b.linkStart = append(b.linkStart, b.runeLen)
			b.linkURL = append(b.linkURL, string(node.Destination))
		} else {
			b.style &^= StyleLink
			i := len(b.linkStart) - 1
			b.links = append(b.links, LinkInfo{
				Start: b.linkStart[i],
				End:   b.runeLen,
				URL:   b.linkURL[i],
			})
			b.linkStart = b.linkStart[:i]
			b.linkURL = b.linkURL[:i]
		}
	case *ast.AutoLink:
		if entering {
			b.flushBreak()
			url := string(node.URL(b.src))
			start := b.runeLen
			b.style |= StyleLink
			b.write(string(node.Label(b.src)))
			b.style &^= StyleLink
			b.links = append(b.links, LinkInfo{Start: start, End: b.runeLen, URL: url})
		}
	case *ast.Text:
		if entering {
			b.write(string(node.Segment.Value(b.src)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.write("\n")
			}
		}
	}
	return ast.WalkContinue, nil
}

// StyleAt resolves the effective style at a rune offset.
func (b *Buffer) StyleAt(offset int) StyleFlags {
	var f StyleFlags
	for _, r := range b.Runs {
		if offset >= r.Start && offset < r.End {
			f |= r.Style
		}
	}
	return f
}

// LinkAt returns the link span covering a rune offset, if any.
func (b *Buffer) LinkAt(offset int) (LinkInfo, bool) {
	for _, l := range b.Links {
		if offset >= l.Start && offset < l.End {
			return l, true
		}
	}
	return LinkInfo{}, false
}
