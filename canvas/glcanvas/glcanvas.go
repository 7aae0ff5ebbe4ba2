// Package glcanvas implements the paint surface on the batched 2D
// renderer: rects and circles become quads, text goes through the glyph
// atlas, icons are preloaded textures.
package glcanvas

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/padgrove/padgrove/engine/assets"
	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/engine/core"
	"github.com/padgrove/padgrove/engine/gfx/renderer2d"
	"github.com/padgrove/padgrove/engine/text"
)

const strokeWidth = 1

type Canvas struct {
	r2d   *renderer2d.Renderer2D
	font  *text.Font
	icons map[string]core.Texture
}

func New(r2d *renderer2d.Renderer2D, font *text.Font) *Canvas {
	return &Canvas{r2d: r2d, font: font, icons: map[string]core.Texture{}}
}

// LoadIcons uploads <dir>/<name>.png for every name. Icons must all be
// present; the search view treats a missing icon as fatal.
func (c *Canvas) LoadIcons(r core.Renderer, dir string, names []string) error {
	for _, name := range names {
		tex, err := assets.LoadTexture(r, filepath.Join(dir, name+".png"))
		if err != nil {
			return fmt.Errorf("icon %q: %w", name, err)
		}
		c.icons[name] = tex
	}
	return nil
}

func (c *Canvas) FillRect(x, y, w, h float32, col colors.Color) {
	c.r2d.DrawQuad(x+w*0.5, y+h*0.5, w, h, col, 0)
}

// StrokeRect outlines the rect with four 1px quads drawn inside the
// bounds, so strokes never bleed into neighboring rows.
func (c *Canvas) StrokeRect(x, y, w, h float32, col colors.Color) {
	c.FillRect(x, y, w, strokeWidth, col)
	c.FillRect(x, y+h-strokeWidth, w, strokeWidth, col)
	c.FillRect(x, y+strokeWidth, strokeWidth, h-2*strokeWidth, col)
	c.FillRect(x+w-strokeWidth, y+strokeWidth, strokeWidth, h-2*strokeWidth, col)
}

// FillCircle rasterizes as one quad per horizontal scanline. Badge-sized
// circles cost ~60 quads, well within the batch budget.
func (c *Canvas) FillCircle(cx, cy, r float32, col colors.Color) {
	top := int(math.Ceil(float64(cy - r)))
	bottom := int(math.Floor(float64(cy + r)))
	for y := top; y < bottom; y++ {
		dy := float64(float32(y) + 0.5 - cy)
		half := math.Sqrt(math.Max(0, float64(r)*float64(r)-dy*dy))
		if half <= 0 {
			continue
		}
		c.FillRect(cx-float32(half), float32(y), 2*float32(half), 1, col)
	}
}

func (c *Canvas) DrawText(x, y float32, s string, size float32, col colors.Color) {
	text.DrawText(c.r2d, c.font, x, y, s, size, col)
}

func (c *Canvas) DrawIcon(name string, x, y, size float32) error {
	tex, ok := c.icons[name]
	if !ok {
		return fmt.Errorf("icon %q: not loaded", name)
	}
	c.r2d.DrawTexturedQuad(x+size*0.5, y+size*0.5, size, size, tex, colors.White, 0)
	return nil
}

func (c *Canvas) Measure(s string, size float32) (w, h float32) {
	return text.MeasureText(c.font, s, size)
}
