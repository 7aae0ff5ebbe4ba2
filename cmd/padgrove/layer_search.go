package main

import (
	"github.com/rs/zerolog/log"

	"github.com/padgrove/padgrove/canvas/glcanvas"
	"github.com/padgrove/padgrove/engine/core"
	"github.com/padgrove/padgrove/engine/gfx/renderer2d"
	"github.com/padgrove/padgrove/engine/scene"
	"github.com/padgrove/padgrove/engine/text"
	"github.com/padgrove/padgrove/searchview"
	"github.com/padgrove/padgrove/theme"
)

// wheel notches to pixels
const scrollStep = 40

var iconNames = []string{
	"server", "http", "user", "point-of-interest",
	"database", "server-link", "note", "cog",
}

// SearchLayer renders the result list and routes pointer input to it.
type SearchLayer struct {
	theme    *theme.Theme
	iconDir  string
	fontPath string

	cam  *scene.OrthoCamera2D
	r2d  *renderer2d.Renderer2D
	font *text.Font
	cv   *glcanvas.Canvas
	view *searchview.View

	width, height  int
	mouseX, mouseY float64
	scrollY        float64
}

func (l *SearchLayer) OnAttach(e *core.Engine) {
	l.width, l.height = e.Window.FramebufferSize()
	l.cam = scene.NewPixel2D(l.width, l.height)

	var err error
	l.r2d, err = renderer2d.New(e.Renderer, 10000)
	if err != nil {
		panic(err)
	}

	if l.fontPath != "" {
		l.font, err = text.LoadTTF(e.Renderer, l.fontPath, 32)
	} else {
		l.font, err = text.LoadDefault(e.Renderer, 32)
	}
	if err != nil {
		panic(err)
	}

	l.cv = glcanvas.New(l.r2d, l.font)
	if err := l.cv.LoadIcons(e.Renderer, l.iconDir, iconNames); err != nil {
		panic(err)
	}

	l.view = searchview.NewView(
		searchview.NewPainter(l.theme),
		log.With().Str("layer", "search").Logger(),
	)
	l.view.SetRows(demoRows())
}

func (l *SearchLayer) OnDetach(e *core.Engine) { l.font.Close() }

func (l *SearchLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *SearchLayer) OnRender(e *core.Engine, alpha float64) {
	l.cam.SetScroll(0, float32(l.scrollY))
	l.r2d.BeginScene(l.cam.VP())
	if err := l.view.Repaint(l.cv, l.width); err != nil {
		e.Window.RequestClose()
	}
	l.r2d.EndScene()
}

func (l *SearchLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.width, l.height = v.W, v.H
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventMouseMove:
		l.mouseX, l.mouseY = v.X, v.Y
		cx, cy := l.contentPos()
		cursor, changed := l.view.PointerMove(cx, cy)
		if changed {
			if cursor == searchview.CursorPointer {
				e.Window.SetCursor(core.CursorHand)
			} else {
				e.Window.SetCursor(core.CursorArrow)
			}
		}
	case core.EventMouseButton:
		if v.Button != core.MouseLeft {
			return false
		}
		cx, cy := l.contentPos()
		if v.Down {
			l.view.PointerDown(cx, cy)
			return true
		}
		if act := l.view.PointerUp(cx, cy); act != nil {
			dispatch(act)
			return true
		}
	case core.EventScroll:
		target := l.scrollY - v.Yoff*scrollStep
		if max := float64(l.view.ContentHeight - l.height); target > max {
			target = max
		}
		if target < 0 {
			target = 0
		}
		l.scrollY = l.view.Scroll.Commit(target)
		// keep the camera current so pointer mapping never lags a frame
		l.cam.SetScroll(0, float32(l.scrollY))
		return true
	}
	return false
}

// contentPos maps the last pointer position into content space.
func (l *SearchLayer) contentPos() (int, int) {
	x, y := l.cam.ToContent(l.mouseX, l.mouseY)
	return int(x), int(y)
}
