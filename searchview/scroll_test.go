package searchview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollDiscardsSpuriousJumpToTop(t *testing.T) {
	var tr ScrollTracker
	assert.Equal(t, 300.0, tr.Commit(300))
	// content swap under the widget: big leap landing near the top
	assert.Equal(t, 300.0, tr.Commit(5))
	assert.Equal(t, 300.0, tr.Value())
}

func TestScrollCommitsGenuineMoves(t *testing.T) {
	var tr ScrollTracker
	tr.Commit(300)
	// backwards but not landing near the top
	assert.Equal(t, 280.0, tr.Commit(280))
	assert.Equal(t, 280.0, tr.Value())

	// forward jumps always commit
	assert.Equal(t, 900.0, tr.Commit(900))

	// lands near the top but the delta is too small to be the glitch
	tr2 := ScrollTracker{}
	tr2.Commit(100)
	assert.Equal(t, 5.0, tr2.Commit(5))

	// big delta but lands past the top band
	tr3 := ScrollTracker{}
	tr3.Commit(500)
	assert.Equal(t, 40.0, tr3.Commit(40))
}

func TestScrollBoundaryValues(t *testing.T) {
	var tr ScrollTracker
	tr.Commit(215)
	// delta exactly 200 is not strictly greater, so it commits
	assert.Equal(t, 15.0, tr.Commit(15))

	tr = ScrollTracker{}
	tr.Commit(300)
	// lands exactly at 15, not strictly below, so it commits
	assert.Equal(t, 15.0, tr.Commit(15))
}
