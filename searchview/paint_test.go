package searchview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padgrove/padgrove/canvas/record"
	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/models"
	"github.com/padgrove/padgrove/theme"
)

func demoRows() []Row {
	return []Row{
		{Item: ProjectItem{Project: models.Project{ID: 1, Name: "Hosting", Icon: []byte{1}}}, Depth: DepthParent},
		{Item: ServerItem{Server: models.Server{ID: 10, Desc: "Primary web", Environment: models.EnvProd}}, Depth: DepthChild},
		{Item: ServerWebsiteItem{Website: models.ServerWebsite{ID: 20, Desc: "Admin console", URL: "https://admin.example.com"}}, Depth: DepthChild},
		{Item: ServerDatabaseItem{Database: models.ServerDatabase{ID: 30, Desc: "Orders", Text: "orders_db", Username: "app"}}, Depth: DepthChild},
		{Item: ServerNoteItem{Note: models.ServerNote{ID: 40, Title: "Restart procedure"}}, Depth: DepthChild},
	}
}

func TestPaintDeterministic(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := demoRows()

	cv1 := record.New()
	rg1, h1, err := p.Paint(cv1, rows, 800, Key{})
	require.NoError(t, err)

	cv2 := record.New()
	rg2, h2, err := p.Paint(cv2, rows, 800, Key{})
	require.NoError(t, err)

	assert.Equal(t, cv1.Ops, cv2.Ops)
	assert.Equal(t, rg1, rg2)
	assert.Equal(t, h1, h2)
}

func TestPaintRowHeightInvariant(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := demoRows()
	cv := record.New()

	_, height, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	assert.Equal(t, len(rows)*RowHeight, height)

	// a row with every optional field empty occupies the same slot
	rows[3] = Row{Item: ServerDatabaseItem{Database: models.ServerDatabase{ID: 30, Desc: "Orders"}}, Depth: DepthChild}
	_, height2, err := p.Paint(record.New(), rows, 800, Key{})
	require.NoError(t, err)
	assert.Equal(t, height, height2)
}

func TestPaintRegionsLandInOwnRow(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := demoRows()
	cv := record.New()

	rg, _, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)

	rowOf := map[Key]int{}
	for i, r := range rows {
		rowOf[r.Item.Key()] = i
	}
	for _, a := range rg.Actions {
		i := rowOf[a.Item.Key()]
		_, cy := a.Area.Center()
		assert.GreaterOrEqual(t, cy, i*RowHeight)
		assert.Less(t, cy, (i+1)*RowHeight)
	}
}

func TestPaintHitSoundnessAtCenters(t *testing.T) {
	p := NewPainter(theme.Default())
	cv := record.New()

	rg, _, err := p.Paint(cv, demoRows(), 800, Key{})
	require.NoError(t, err)
	require.NotEmpty(t, rg.Links)
	require.NotEmpty(t, rg.Actions)

	for _, l := range rg.Links {
		cx, cy := l.Area.Center()
		assert.Equal(t, ActionForPayload(l.Payload), rg.Resolve(cx, cy))
	}
	for _, a := range rg.Actions {
		cx, cy := a.Area.Center()
		got := rg.Resolve(cx, cy)
		if inv, ok := got.(InvokeItemAction); ok {
			assert.Equal(t, a.Item.Key(), inv.Item.Key())
		}
		// a link overlapping the button legitimately shadows it; anything
		// else resolving here would be a table corruption
		require.NotNil(t, got)
	}
}

func TestPaintMissingIconAborts(t *testing.T) {
	p := NewPainter(theme.Default())
	cv := record.New()
	cv.MissingIcons = map[string]bool{iconServer: true}

	_, _, err := p.Paint(cv, demoRows(), 800, Key{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server")
}

func TestPaintEllipsizesLongTitles(t *testing.T) {
	p := NewPainter(theme.Default())
	cv := record.New()
	long := strings.Repeat("a", 120)
	rows := []Row{{Item: ServerItem{Server: models.Server{ID: 1, Desc: long}}, Depth: DepthChild}}

	_, _, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)

	var drawn string
	for _, s := range cv.TextOps() {
		if strings.HasPrefix(s, "aaa") {
			drawn = s
		}
	}
	require.NotEmpty(t, drawn)
	assert.True(t, strings.HasSuffix(drawn, "…"))
	w, _ := cv.Measure(drawn, 16)
	assert.LessOrEqual(t, w, float32(titleMaxWidth))
}

func TestPaintPressedButtonDrawsSunken(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := demoRows()
	serverKey := rows[1].Item.Key()

	cv := record.New()
	_, _, err := p.Paint(cv, rows, 800, serverKey)
	require.NoError(t, err)
	sunken := 0
	for _, op := range cv.Ops {
		if op.Kind == record.OpFillRect && op.Color == colors.ButtonSunken {
			sunken++
		}
	}
	assert.Equal(t, 1, sunken)

	cv.Reset()
	_, _, err = p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	for _, op := range cv.Ops {
		assert.NotEqual(t, colors.ButtonSunken, op.Color)
	}
}

func TestBadgeFontSizeCachedPerWidth(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := []Row{{Item: ProjectItem{Project: models.Project{ID: 1, Name: "P", Icon: []byte{1}}}, Depth: DepthParent}}

	cv := record.New()
	_, _, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	first := cv.MeasureCalls[badgeLabel]
	// the search loop probes several sizes before settling
	assert.Greater(t, first, 1)

	_, _, err = p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	// cache hit: only the centering measurement remains
	assert.Equal(t, first+1, cv.MeasureCalls[badgeLabel])
}

func TestPaintProjectHasNoBoxOrButton(t *testing.T) {
	p := NewPainter(theme.Default())
	rows := []Row{{Item: ProjectItem{Project: models.Project{ID: 1, Name: "P"}}, Depth: DepthParent}}

	cv := record.New()
	rg, _, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	assert.Empty(t, rg.Actions)
	assert.Empty(t, rg.Links)
	for _, op := range cv.Ops {
		assert.NotEqual(t, record.OpIcon, op.Kind)
	}
}

func TestPaintChildRowsIndent(t *testing.T) {
	p := NewPainter(theme.Default())
	server := models.Server{ID: 1, Desc: "web"}

	parentCv := record.New()
	_, _, err := p.Paint(parentCv, []Row{{Item: ServerItem{Server: server}, Depth: DepthParent}}, 800, Key{})
	require.NoError(t, err)
	childCv := record.New()
	_, _, err = p.Paint(childCv, []Row{{Item: ServerItem{Server: server}, Depth: DepthChild}}, 800, Key{})
	require.NoError(t, err)

	// first op is the background box in both passes
	require.Equal(t, record.OpFillRect, parentCv.Ops[0].Kind)
	require.Equal(t, record.OpFillRect, childCv.Ops[0].Kind)
	assert.Equal(t, parentCv.Ops[0].X+childIndent, childCv.Ops[0].X)
	assert.Equal(t, parentCv.Ops[0].W-2*childIndent, childCv.Ops[0].W)
}

func TestPaintEndToEnd(t *testing.T) {
	p := NewPainter(theme.Default())
	website := models.ServerWebsite{ID: 21, Desc: "Admin", URL: "https://admin.example.com"}
	rows := []Row{
		{Item: ProjectItem{Project: models.Project{ID: 1, Name: "P1"}}, Depth: DepthParent},
		{Item: ServerItem{Server: models.Server{ID: 11, Desc: "S1"}}, Depth: DepthChild},
		{Item: ServerWebsiteItem{Website: website}, Depth: DepthChild},
	}

	cv := record.New()
	rg, height, err := p.Paint(cv, rows, 800, Key{})
	require.NoError(t, err)
	assert.Equal(t, 3*RowHeight, height)

	require.Len(t, rg.Actions, 2)
	assert.Equal(t, Key{KindServer, 11}, rg.Actions[0].Item.Key())
	assert.Equal(t, Key{KindServerWebsite, 21}, rg.Actions[1].Item.Key())

	require.Len(t, rg.Links, 1)
	assert.Equal(t, website.URL, rg.Links[0].Payload)
	cx, cy := rg.Links[0].Area.Center()
	assert.Equal(t, OpenLink{URL: website.URL}, rg.Resolve(cx, cy))
	assert.Equal(t, CursorPointer, rg.CursorAt(cx, cy))
}
