package geom

// Area is an axis-aligned rectangle in canvas pixel space.
// Top-left is inclusive, bottom-right exclusive. Zero-area rectangles
// are legal and never contain any point.
type Area struct {
	X, Y, W, H int
}

func NewArea(x, y, w, h int) Area { return Area{X: x, Y: y, W: w, H: h} }

func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.W && y >= a.Y && y < a.Y+a.H
}

// Center returns the geometric center, rounded down.
func (a Area) Center() (int, int) { return a.X + a.W/2, a.Y + a.H/2 }

func (a Area) Empty() bool { return a.W <= 0 || a.H <= 0 }

// Translate returns a copy shifted by (dx, dy).
func (a Area) Translate(dx, dy int) Area {
	a.X += dx
	a.Y += dy
	return a
}
