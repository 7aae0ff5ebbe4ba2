package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// apply runs a point through a column-major matrix, v' = M·v.
func apply(m [16]float32, x, y float32) (float32, float32) {
	w := m[3]*x + m[7]*y + m[15]
	return (m[0]*x + m[4]*y + m[12]) / w, (m[1]*x + m[5]*y + m[13]) / w
}

func TestVPMapsViewportCorners(t *testing.T) {
	cam := NewPixel2D(800, 600)

	x, y := apply(cam.VP(), 0, 0)
	assert.InDelta(t, -1, x, 1e-5)
	assert.InDelta(t, 1, y, 1e-5)

	x, y = apply(cam.VP(), 800, 600)
	assert.InDelta(t, 1, x, 1e-5)
	assert.InDelta(t, -1, y, 1e-5)

	x, y = apply(cam.VP(), 400, 300)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
}

func TestVPAppliesScrollBeforeProjection(t *testing.T) {
	cam := NewPixel2D(800, 600)
	cam.SetScroll(0, 100)

	// the content point one scroll offset down sits at the top-left corner
	x, y := apply(cam.VP(), 0, 100)
	assert.InDelta(t, -1, x, 1e-5)
	assert.InDelta(t, 1, y, 1e-5)

	// scrolling is a pre-projection shift: a point mid-viewport in
	// content space stays mid-viewport on screen
	x, y = apply(cam.VP(), 400, 400)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
}

func TestVPTracksViewportResize(t *testing.T) {
	cam := NewPixel2D(800, 600)
	cam.SetViewportPixels(400, 400)

	x, y := apply(cam.VP(), 400, 400)
	assert.InDelta(t, 1, x, 1e-5)
	assert.InDelta(t, -1, y, 1e-5)
}

func TestToContentAddsScroll(t *testing.T) {
	cam := NewPixel2D(800, 600)
	cam.SetScroll(0, 100)

	x, y := cam.ToContent(10, 20)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 120.0, y)

	// round trip: the content point projects back to the window point
	px, py := apply(cam.VP(), float32(x), float32(y))
	assert.InDelta(t, 10.0/400-1, px, 1e-5)
	assert.InDelta(t, 1-20.0/300, py, 1e-5)
}
