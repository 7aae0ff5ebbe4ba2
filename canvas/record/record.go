// Package record provides a Canvas that records paint calls instead of
// rasterizing them. Used by tests and headless tooling; the op log is a
// plain comparable slice so two paints can be diffed byte for byte.
package record

import (
	"fmt"

	"github.com/padgrove/padgrove/engine/colors"
)

type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillCircle
	OpText
	OpIcon
)

type Op struct {
	Kind       OpKind
	X, Y, W, H float32
	Text       string // text content or icon name
	Size       float32
	Color      colors.Color
}

// Canvas records every draw call and answers measurements from a fixed
// synthetic font metric, so output is deterministic across runs.
type Canvas struct {
	Ops []Op

	// MissingIcons simulates absent assets: DrawIcon fails for these names.
	MissingIcons map[string]bool

	// MeasureCalls counts Measure invocations per string, letting tests
	// observe memoization (the badge font cache keys on width only).
	MeasureCalls map[string]int
}

func New() *Canvas {
	return &Canvas{MeasureCalls: make(map[string]int)}
}

// Reset clears the op log but keeps counters and icon config.
func (c *Canvas) Reset() { c.Ops = c.Ops[:0] }

func (c *Canvas) FillRect(x, y, w, h float32, col colors.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: col})
}

func (c *Canvas) StrokeRect(x, y, w, h float32, col colors.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: col})
}

func (c *Canvas) FillCircle(cx, cy, r float32, col colors.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, W: r, Color: col})
}

func (c *Canvas) DrawText(x, y float32, s string, size float32, col colors.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Size: size, Color: col})
}

func (c *Canvas) DrawIcon(name string, x, y, size float32) error {
	if c.MissingIcons[name] {
		return fmt.Errorf("icon %q: not found", name)
	}
	c.Ops = append(c.Ops, Op{Kind: OpIcon, X: x, Y: y, W: size, H: size, Text: name})
	return nil
}

// Measure uses a flat per-rune advance of 0.55em and a line height of
// 1.2em, close enough to a real face for layout tests.
func (c *Canvas) Measure(s string, size float32) (w, h float32) {
	if c.MeasureCalls != nil {
		c.MeasureCalls[s]++
	}
	var lineW, maxW float32
	lines := 1
	for _, r := range s {
		if r == '\n' {
			lines++
			if lineW > maxW {
				maxW = lineW
			}
			lineW = 0
			continue
		}
		lineW += 0.55 * size
	}
	if lineW > maxW {
		maxW = lineW
	}
	return maxW, 1.2 * size * float32(lines)
}

// TextOps returns the drawn strings in order, a convenience for tests.
func (c *Canvas) TextOps() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
