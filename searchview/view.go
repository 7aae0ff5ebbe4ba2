package searchview

import (
	"github.com/padgrove/padgrove/canvas"
	"github.com/rs/zerolog"
)

// View ties the painter, the current region table and the pointer state
// together. One View corresponds to one scrollable result surface; all
// methods must be called from the surface's event thread.
type View struct {
	painter *Painter
	log     zerolog.Logger

	rows    []Row
	regions *Regions
	pressed Key
	cursor  CursorKind

	Scroll ScrollTracker

	// ContentHeight is the pixel height of the last painted content.
	ContentHeight int
}

func NewView(p *Painter, log zerolog.Logger) *View {
	return &View{painter: p, regions: &Regions{}, log: log}
}

// SetRows replaces the displayed rows. The region table stays the old
// one until the next Repaint, matching what is actually on screen.
func (v *View) SetRows(rows []Row) { v.rows = rows }

// Repaint runs one paint pass and atomically swaps in the new region
// table. On error the old table stays current.
func (v *View) Repaint(cv canvas.Canvas, width int) error {
	rg, height, err := v.painter.Paint(cv, v.rows, width, v.pressed)
	if err != nil {
		v.log.Error().Err(err).Msg("paint pass failed")
		return err
	}
	v.regions = rg
	v.ContentHeight = height
	return nil
}

// PointerDown records the action button under the pointer, if any, so
// the next paint can draw it depressed.
func (v *View) PointerDown(x, y int) {
	if it, ok := v.regions.actionAt(x, y); ok {
		v.pressed = it.Key()
	} else {
		v.pressed = Key{}
	}
}

// PointerUp resolves the release position to an action. The pressed
// state clears whether or not something was hit.
func (v *View) PointerUp(x, y int) Action {
	v.pressed = Key{}
	return v.regions.Resolve(x, y)
}

// PointerMove updates the cursor shape and reports whether it changed,
// so the host only swaps the platform cursor on transitions.
func (v *View) PointerMove(x, y int) (CursorKind, bool) {
	c := v.regions.CursorAt(x, y)
	changed := c != v.cursor
	v.cursor = c
	return c, changed
}

// Pressed exposes the currently depressed button key for the paint pass.
func (v *View) Pressed() Key { return v.pressed }
