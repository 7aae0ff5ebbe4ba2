package searchview

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padgrove/padgrove/canvas/record"
	"github.com/padgrove/padgrove/models"
	"github.com/padgrove/padgrove/theme"
)

func newTestView() *View {
	return NewView(NewPainter(theme.Default()), zerolog.Nop())
}

func TestViewRepaintDropsStaleRegions(t *testing.T) {
	v := newTestView()
	v.SetRows(demoRows())
	require.NoError(t, v.Repaint(record.New(), 800))

	link := v.regions.Links[0]
	cx, cy := link.Area.Center()
	require.NotNil(t, v.PointerUp(cx, cy))

	// new content without the website: the old link position must go dead
	v.SetRows([]Row{{Item: ServerNoteItem{Note: models.ServerNote{ID: 1, Title: "n"}}, Depth: DepthChild}})
	require.NoError(t, v.Repaint(record.New(), 800))
	assert.Nil(t, v.PointerUp(cx, cy))
}

func TestViewRepaintErrorKeepsOldTable(t *testing.T) {
	v := newTestView()
	v.SetRows(demoRows())
	require.NoError(t, v.Repaint(record.New(), 800))
	nLinks := len(v.regions.Links)
	require.Greater(t, nLinks, 0)

	cv := record.New()
	cv.MissingIcons = map[string]bool{iconHTTP: true}
	require.Error(t, v.Repaint(cv, 800))
	assert.Len(t, v.regions.Links, nLinks)
}

func TestViewPressedLifecycle(t *testing.T) {
	v := newTestView()
	v.SetRows(demoRows())
	require.NoError(t, v.Repaint(record.New(), 800))

	btn := v.regions.Actions[0]
	cx, cy := btn.Area.Center()

	v.PointerDown(cx, cy)
	assert.Equal(t, btn.Item.Key(), v.Pressed())

	got := v.PointerUp(cx, cy)
	require.IsType(t, InvokeItemAction{}, got)
	assert.Equal(t, Key{}, v.Pressed())

	// pressing empty space arms nothing, releasing clears regardless
	v.PointerDown(0, 0)
	assert.Equal(t, Key{}, v.Pressed())
	v.PointerDown(cx, cy)
	assert.Nil(t, v.PointerUp(0, 0))
	assert.Equal(t, Key{}, v.Pressed())
}

func TestViewCursorTransitions(t *testing.T) {
	v := newTestView()
	v.SetRows(demoRows())
	require.NoError(t, v.Repaint(record.New(), 800))

	link := v.regions.Links[0]
	cx, cy := link.Area.Center()

	c, changed := v.PointerMove(cx, cy)
	assert.Equal(t, CursorPointer, c)
	assert.True(t, changed)

	c, changed = v.PointerMove(cx, cy)
	assert.Equal(t, CursorPointer, c)
	assert.False(t, changed)

	c, changed = v.PointerMove(0, 0)
	assert.Equal(t, CursorText, c)
	assert.True(t, changed)
}

func TestViewContentHeight(t *testing.T) {
	v := newTestView()
	rows := demoRows()
	v.SetRows(rows)
	require.NoError(t, v.Repaint(record.New(), 800))
	assert.Equal(t, len(rows)*RowHeight, v.ContentHeight)
}
