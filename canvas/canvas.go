// Package canvas defines the 2D drawing surface the paint engine issues
// calls against. Implementations either rasterize (GL backend) or record
// the calls (tests, headless).
package canvas

import "github.com/padgrove/padgrove/engine/colors"

type Canvas interface {
	// FillRect fills the rectangle with top-left origin (x, y).
	FillRect(x, y, w, h float32, c colors.Color)
	// StrokeRect outlines the rectangle with a 1px border.
	StrokeRect(x, y, w, h float32, c colors.Color)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float32, c colors.Color)
	// DrawText draws s with top-left origin (x, y) at the given pixel size.
	DrawText(x, y float32, s string, size float32, c colors.Color)
	// DrawIcon blits the named icon at (x, y) scaled to size x size pixels.
	// A missing icon is an environment failure and is reported as an error.
	DrawIcon(name string, x, y, size float32) error
	// Measure returns the laid-out extents of s at the given pixel size.
	Measure(s string, size float32) (w, h float32)
}
