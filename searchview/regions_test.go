package searchview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padgrove/padgrove/engine/geom"
	"github.com/padgrove/padgrove/models"
)

func TestActionForPayload(t *testing.T) {
	assert.Equal(t, RevealSecret{Value: "p1"}, ActionForPayload("pass://p1"))
	assert.Equal(t, OpenLink{URL: "https://x"}, ActionForPayload("https://x"))
	assert.Equal(t, OpenLink{URL: "ftp://host"}, ActionForPayload("ftp://host"))
}

func TestResolveLinksBeforeActions(t *testing.T) {
	item := ServerItem{Server: models.Server{ID: 1}}
	rg := &Regions{
		Links:   []LinkRegion{{Area: geom.NewArea(10, 10, 100, 20), Payload: "https://x"}},
		Actions: []ActionRegion{{Area: geom.NewArea(10, 10, 100, 20), Item: item}},
	}
	// same rectangle, the link wins
	assert.Equal(t, OpenLink{URL: "https://x"}, rg.Resolve(50, 15))
}

func TestResolveInsertionOrderWins(t *testing.T) {
	rg := &Regions{
		Links: []LinkRegion{
			{Area: geom.NewArea(0, 0, 100, 100), Payload: "first"},
			{Area: geom.NewArea(0, 0, 100, 100), Payload: "second"},
		},
	}
	assert.Equal(t, OpenLink{URL: "first"}, rg.Resolve(50, 50))
}

func TestResolveMiss(t *testing.T) {
	rg := &Regions{
		Links:   []LinkRegion{{Area: geom.NewArea(10, 10, 20, 20), Payload: "https://x"}},
		Actions: []ActionRegion{{Area: geom.NewArea(50, 50, 20, 20), Item: ServerItem{}}},
	}
	assert.Nil(t, rg.Resolve(0, 0))
	assert.Nil(t, rg.Resolve(200, 200))

	var empty Regions
	assert.Nil(t, empty.Resolve(15, 15))
}

func TestResolveActionButton(t *testing.T) {
	item := ServerWebsiteItem{Website: models.ServerWebsite{ID: 7}}
	rg := &Regions{
		Actions: []ActionRegion{{Area: geom.NewArea(700, 20, 24, 24), Item: item}},
	}
	got := rg.Resolve(710, 30)
	require.IsType(t, InvokeItemAction{}, got)
	assert.Equal(t, item, got.(InvokeItemAction).Item)
}

func TestCursorAtOnlyConsultsLinks(t *testing.T) {
	rg := &Regions{
		Links:   []LinkRegion{{Area: geom.NewArea(10, 10, 20, 20), Payload: "https://x"}},
		Actions: []ActionRegion{{Area: geom.NewArea(50, 50, 20, 20), Item: ServerItem{}}},
	}
	assert.Equal(t, CursorPointer, rg.CursorAt(15, 15))
	// hovering an action button keeps the text cursor
	assert.Equal(t, CursorText, rg.CursorAt(55, 55))
	assert.Equal(t, CursorText, rg.CursorAt(0, 0))
}

func TestZeroKeyMatchesNoItem(t *testing.T) {
	for _, it := range []Item{
		ProjectItem{}, ServerItem{}, ServerWebsiteItem{}, ServerExtraUserAccountItem{},
		ServerPoiItem{}, ProjectPoiItem{}, ServerDatabaseItem{}, ServerLinkItem{},
		ServerNoteItem{}, ProjectNoteItem{},
	} {
		assert.NotEqual(t, Key{}, it.Key())
	}
}
