package main

import (
	"os"

	"github.com/padgrove/padgrove/canvas/glcanvas"
	"github.com/padgrove/padgrove/engine/core"
	"github.com/padgrove/padgrove/engine/gfx/renderer2d"
	"github.com/padgrove/padgrove/engine/scene"
	"github.com/padgrove/padgrove/engine/text"
	"github.com/padgrove/padgrove/notes"
	"github.com/padgrove/padgrove/searchview"
)

const (
	noteMargin   = 20
	noteFontSize = 16
)

// NoteLayer displays one rendered note document.
type NoteLayer struct {
	path     string
	fontPath string

	cam    *scene.OrthoCamera2D
	r2d    *renderer2d.Renderer2D
	font   *text.Font
	cv     *glcanvas.Canvas
	layout *notes.Layout
	note   *notes.NoteView

	width, height  int
	mouseX, mouseY float64
	scrollY        float64
}

func (l *NoteLayer) OnAttach(e *core.Engine) {
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

	src, err := os.ReadFile(l.path)
	if err != nil {
		panic(err)
	}
	buf, err := notes.Render(string(src))
	if err != nil {
		panic(err)
	}
	l.layout = notes.NewLayout(l.cv, buf, noteFontSize)
	l.note = notes.NewNoteView(l.layout)
}

func (l *NoteLayer) OnDetach(e *core.Engine) { l.font.Close() }

func (l *NoteLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *NoteLayer) OnRender(e *core.Engine, alpha float64) {
	l.cam.SetScroll(0, float32(l.scrollY))
	l.r2d.BeginScene(l.cam.VP())
	l.layout.Draw(l.cv, noteMargin, noteMargin)
	l.r2d.EndScene()
}

func (l *NoteLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.width, l.height = v.W, v.H
		l.cam.SetViewportPixels(v.W, v.H)
	case core.EventMouseMove:
		l.mouseX, l.mouseY = v.X, v.Y
		cx, cy := l.contentPos()
		cursor, changed := l.note.PointerMove(cx, cy)
		if changed {
			if cursor == searchview.CursorPointer {
				e.Window.SetCursor(core.CursorHand)
			} else {
				e.Window.SetCursor(core.CursorIBeam)
			}
		}
	case core.EventMouseButton:
		// links fire on release, never on press
		if v.Button != core.MouseLeft || v.Down {
			return false
		}
		cx, cy := l.contentPos()
		if act := l.note.ClickOrTap(cx, cy); act != nil {
			dispatch(act)
			return true
		}
	case core.EventScroll:
		target := l.scrollY - v.Yoff*scrollStep
		if max := float64(l.layout.Height() + 2*noteMargin - float32(l.height)); target > max {
			target = max
		}
		if target < 0 {
			target = 0
		}
		l.scrollY = l.note.Scroll.Commit(target)
		// keep the camera current so pointer mapping never lags a frame
		l.cam.SetScroll(0, float32(l.scrollY))
		return true
	}
	return false
}

func (l *NoteLayer) contentPos() (float32, float32) {
	x, y := l.cam.ToContent(l.mouseX, l.mouseY)
	return float32(x) - noteMargin, float32(y) - noteMargin
}
