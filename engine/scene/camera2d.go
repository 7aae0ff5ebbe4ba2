// Package scene provides the orthographic camera that maps canvas pixel
// space onto the viewport, offset by the scroll position.
package scene

// OrthoCamera2D uses a top-left origin with +Y down, 1 unit = 1 pixel,
// so painted coordinates and pointer coordinates agree without any
// per-event conversion.
type OrthoCamera2D struct {
	width, height    int
	scrollX, scrollY float32
	vp               [16]float32
	dirty            bool
}

func NewPixel2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{width: width, height: height}
	c.recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.width, c.height = w, h
	c.dirty = true
}

// SetScroll positions the top-left of the viewport inside the content.
func (c *OrthoCamera2D) SetScroll(x, y float32) {
	c.scrollX, c.scrollY = x, y
	c.dirty = true
}

// ToContent converts a window-space pointer position to content space.
func (c *OrthoCamera2D) ToContent(x, y float64) (float64, float64) {
	return x + float64(c.scrollX), y + float64(c.scrollY)
}

func (c *OrthoCamera2D) VP() [16]float32 {
	if c.dirty {
		c.recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) recalculate() {
	proj := ortho(0, float32(c.width), float32(c.height), 0, -1, 1)
	view := translate(-c.scrollX, -c.scrollY, 0)
	// mul(a, b) composes b·a, so the scroll translation must be the
	// first operand to apply before projection.
	c.vp = mul(view, proj)
	c.dirty = false
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i+4*j] = a[0+4*j]*b[i+0] + a[1+4*j]*b[i+4] + a[2+4*j]*b[i+8] + a[3+4*j]*b[i+12]
		}
	}
	return out
}
