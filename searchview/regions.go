package searchview

import (
	"strings"

	"github.com/padgrove/padgrove/engine/geom"
)

// SecretScheme marks a link payload as "reveal this value inline" rather
// than "navigate externally". The resolver distinguishes the two from the
// payload string alone; there is no separate region kind.
const SecretScheme = "pass://"

// Action is the semantic result of resolving a pointer event. A nil
// Action means the pointer hit nothing interactive.
type Action interface{ isAction() }

type OpenLink struct{ URL string }
type RevealSecret struct{ Value string }
type InvokeItemAction struct{ Item Item }

func (OpenLink) isAction()         {}
func (RevealSecret) isAction()     {}
func (InvokeItemAction) isAction() {}

// ActionForPayload classifies a link payload. Shared with the note
// renderer, which uses the same payload convention for its spans.
func ActionForPayload(payload string) Action {
	if strings.HasPrefix(payload, SecretScheme) {
		return RevealSecret{Value: strings.TrimPrefix(payload, SecretScheme)}
	}
	return OpenLink{URL: payload}
}

type LinkRegion struct {
	Area    geom.Area
	Payload string
}

type ActionRegion struct {
	Area geom.Area
	Item Item
}

// Regions is the hit-test table produced by one paint pass. It is valid
// only against the canvas state of that same pass; a superseding paint
// replaces it wholesale, never patches it.
type Regions struct {
	Links   []LinkRegion
	Actions []ActionRegion
}

// Resolve maps a pointer position to at most one action. Links are
// tested before action buttons, and within each list the first region in
// insertion order wins; regions are never overlap-checked, so paint
// order is the tie-break.
func (r *Regions) Resolve(x, y int) Action {
	for _, l := range r.Links {
		if l.Area.Contains(x, y) {
			return ActionForPayload(l.Payload)
		}
	}
	for _, a := range r.Actions {
		if a.Area.Contains(x, y) {
			return InvokeItemAction{Item: a.Item}
		}
	}
	return nil
}

// actionAt reports the action-button item under the pointer, if any.
func (r *Regions) actionAt(x, y int) (Item, bool) {
	for _, a := range r.Actions {
		if a.Area.Contains(x, y) {
			return a.Item, true
		}
	}
	return nil, false
}

type CursorKind int

const (
	CursorText CursorKind = iota
	CursorPointer
)

// CursorAt is the degenerate hover resolve: it only consults link
// regions and only chooses a cursor shape. No side effects.
func (r *Regions) CursorAt(x, y int) CursorKind {
	for _, l := range r.Links {
		if l.Area.Contains(x, y) {
			return CursorPointer
		}
	}
	return CursorText
}
