package searchview

import (
	"strings"

	"github.com/padgrove/padgrove/canvas"
	"github.com/padgrove/padgrove/engine/colors"
	"github.com/padgrove/padgrove/engine/geom"
	"github.com/padgrove/padgrove/models"
	"github.com/padgrove/padgrove/theme"
)

const (
	// RowHeight is the fixed vertical slot of every result row. Row
	// origins are a pure function of row index, never of drawn content.
	RowHeight = 60

	sideMargin            = 150
	childIndent           = 50
	actionIconSize        = 16
	projectBadgeSize      = 56
	actionOffsetFromRight = 50

	// All titles/links/subtexts ellipsize at the same fixed width.
	titleMaxWidth = 350

	badgeLabel = "HU"
)

// Icon names per item kind. Asset availability is an environment
// precondition; a failed lookup aborts the paint pass.
const (
	iconServer   = "server"
	iconHTTP     = "http"
	iconUser     = "user"
	iconPoi      = "point-of-interest"
	iconDatabase = "database"
	iconSrvLink  = "server-link"
	iconNote     = "note"
	iconCog      = "cog"
)

// widthKeyed font size for the project badge. The badge label is the
// constant "HU", so the size depends only on the badge width; any other
// state is deliberately not part of the key.
type badgeFontCache struct {
	width int
	size  float32
}

// Painter lays out rows top-to-bottom at a fixed height and rebuilds the
// region table from scratch on every Paint call.
type Painter struct {
	styles *theme.Context
	badge  badgeFontCache
}

func NewPainter(t *theme.Theme) *Painter {
	return &Painter{styles: theme.NewContext(t)}
}

// Paint draws rows onto cv and returns the freshly built region table
// plus the total content height. pressed selects which action button is
// drawn depressed; the zero Key selects none.
func (p *Painter) Paint(cv canvas.Canvas, rows []Row, width int, pressed Key) (*Regions, int, error) {
	rg := &Regions{}
	for i, row := range rows {
		if err := p.paintRow(cv, rg, row, float32(i*RowHeight), width, pressed); err != nil {
			return nil, 0, err
		}
	}
	return rg, len(rows) * RowHeight, nil
}

func sideInset(d Depth) float32 {
	if d == DepthChild {
		return sideMargin + childIndent
	}
	return sideMargin
}

func boxClass(d Depth) string {
	if d == DepthChild {
		return "search_view_child"
	}
	return "search_view_parent"
}

func (p *Painter) paintRow(cv canvas.Canvas, rg *Regions, row Row, y float32, width int, pressed Key) error {
	release := p.styles.Push(boxClass(row.Depth))
	defer release()

	inset := sideInset(row.Depth)
	st := p.styles.Current()
	x := st.Padding.Left + inset

	switch it := row.Item.(type) {
	case ProjectItem:
		// projects have no box and no action button
		p.drawProject(cv, it.Project, x, y)
		return nil
	case ServerItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.Server.Desc, iconServer, pressed)
		if err != nil {
			return err
		}
		p.drawEnvironment(cv, it.Server.Environment,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ServerWebsiteItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.Website.Desc, iconHTTP, pressed)
		if err != nil {
			return err
		}
		p.drawLink(cv, rg, it.Website.URL,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ServerExtraUserAccountItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.User.Username, iconUser, pressed)
		if err != nil {
			return err
		}
		p.drawSubtext(cv, it.User.Desc,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ServerPoiItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.Poi.Desc, iconPoi, pressed)
		if err != nil {
			return err
		}
		p.drawSubtext(cv, it.Poi.Text,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ProjectPoiItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.Poi.Desc, iconPoi, pressed)
		if err != nil {
			return err
		}
		p.drawSubtext(cv, it.Poi.Text,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ServerDatabaseItem:
		titleH, err := p.drawItemCommon(cv, rg, row, y, width, it.Database.Desc, iconDatabase, pressed)
		if err != nil {
			return err
		}
		// databases show both fields on one subtext line; an empty field
		// still occupies its slot so the line never collapses
		p.drawSubtext(cv, it.Database.Text+" "+it.Database.Username,
			x+st.Padding.Left, y+st.Margin.Top+titleH+st.Padding.Top)
	case ServerLinkItem:
		if _, err := p.drawItemCommon(cv, rg, row, y, width, it.Link.Desc, iconSrvLink, pressed); err != nil {
			return err
		}
	case ServerNoteItem:
		if _, err := p.drawItemCommon(cv, rg, row, y, width, it.Note.Title, iconNote, pressed); err != nil {
			return err
		}
	case ProjectNoteItem:
		if _, err := p.drawItemCommon(cv, rg, row, y, width, it.Note.Title, iconNote, pressed); err != nil {
			return err
		}
	}
	return nil
}

// drawItemCommon paints the parts every non-project row shares: the
// background box, the leading icon, the ellipsized title and the action
// button. Returns the title line height so callers can stack their
// secondary content under it.
func (p *Painter) drawItemCommon(cv canvas.Canvas, rg *Regions, row Row, y float32, width int, title, icon string, pressed Key) (float32, error) {
	st := p.styles.Current()
	inset := sideInset(row.Depth)
	x := st.Padding.Left + inset

	p.drawBox(cv, inset, y, width)
	if err := cv.DrawIcon(icon, x+st.Padding.Left, y+st.Margin.Top+st.Padding.Top, actionIconSize); err != nil {
		return 0, err
	}
	_, titleH := p.drawTitle(cv, title, "",
		x+actionIconSize+st.Padding.Left/2, y+st.Margin.Top, actionIconSize)
	if err := p.drawAction(cv, rg, row, pressed,
		float32(width)-actionOffsetFromRight-inset, y+st.Padding.Top+st.Margin.Top); err != nil {
		return 0, err
	}
	return titleH, nil
}

func (p *Painter) drawBox(cv canvas.Canvas, inset, y float32, width int) {
	st := p.styles.Current()
	x := st.Margin.Left + inset
	w := float32(width) - st.Margin.Left - st.Margin.Right - inset*2
	h := float32(RowHeight) - st.Margin.Top
	cv.FillRect(x, y+st.Margin.Top, w, h, st.Bg)
	cv.StrokeRect(x, y+st.Margin.Top, w, h, st.Border)
}

// drawTitle draws an ellipsized single line. A non-zero centerIn
// vertically centers the line inside that height (used to align titles
// with the leading icon).
func (p *Painter) drawTitle(cv canvas.Canvas, text, class string, x, y, centerIn float32) (float32, float32) {
	if class == "" {
		class = "search_result_item_title"
	}
	release := p.styles.Push(class)
	defer release()

	st := p.styles.Current()
	line := ellipsize(cv, text, st.FontSize, titleMaxWidth)
	w, h := cv.Measure(line, st.FontSize)
	extraY := float32(0)
	if centerIn > 0 {
		extraY = (centerIn - h) / 2
	}
	cv.DrawText(x+st.Padding.Left, y+st.Padding.Top+extraY, line, st.FontSize, st.Fg)
	return w, h
}

// drawLink draws clickable text and records its measured rectangle in
// the region table with the raw text as payload.
func (p *Painter) drawLink(cv canvas.Canvas, rg *Regions, text string, x, y float32) {
	release := p.styles.Push("search_result_item_link")
	defer release()

	st := p.styles.Current()
	line := ellipsize(cv, text, st.FontSize, titleMaxWidth)
	w, h := cv.Measure(line, st.FontSize)
	left := x + st.Padding.Left
	top := y + st.Padding.Top
	cv.DrawText(left, top, line, st.FontSize, st.Fg)

	rg.Links = append(rg.Links, LinkRegion{
		Area:    geom.NewArea(int(left), int(top), int(w), int(h)),
		Payload: text,
	})
}

func (p *Painter) drawSubtext(cv canvas.Canvas, text string, x, y float32) {
	release := p.styles.Push("search_result_item_subtext")
	defer release()

	st := p.styles.Current()
	line := ellipsize(cv, text, st.FontSize, titleMaxWidth)
	cv.DrawText(x+st.Padding.Left, y+st.Padding.Top, line, st.FontSize, st.Fg)
}

func (p *Painter) drawEnvironment(cv canvas.Canvas, env models.EnvironmentType, x, y float32) {
	release := p.styles.Push("environment_label_" + env.String())
	defer release()

	st := p.styles.Current()
	label := strings.ToUpper(env.String())
	w, h := cv.Measure(label, st.FontSize)
	boxW := w + st.Padding.Left + st.Padding.Right
	boxH := h + st.Padding.Top + st.Padding.Bottom
	cv.FillRect(x, y, boxW, boxH, st.Bg)
	cv.StrokeRect(x, y, boxW, boxH, st.Border)
	cv.DrawText(x+st.Padding.Left, y+st.Padding.Top, label, st.FontSize, st.Fg)
}

// drawAction paints the per-row action affordance (cog button) and
// records its region. Parent-depth rows get the framed button visual;
// child rows use the flatter in-list variant unless depressed.
func (p *Painter) drawAction(cv canvas.Canvas, rg *Regions, row Row, pressed Key, x, y float32) error {
	release := p.styles.Push("search_result_action_btn")
	defer release()

	st := p.styles.Current()
	w := actionIconSize + st.Padding.Left + st.Padding.Right
	h := actionIconSize + st.Padding.Top + st.Padding.Bottom

	depressed := row.Item.Key() == pressed
	bg := st.Bg
	if depressed {
		bg = colors.ButtonSunken
	}
	if row.Depth == DepthParent || depressed {
		cv.FillRect(x, y, w, h, bg)
	}
	cv.StrokeRect(x, y, w, h, st.Border)
	if err := cv.DrawIcon(iconCog, x+st.Padding.Left, y+st.Padding.Top, actionIconSize); err != nil {
		return err
	}

	rg.Actions = append(rg.Actions, ActionRegion{
		Area: geom.NewArea(int(x), int(y), int(w), int(h)),
		Item: row.Item,
	})
	return nil
}

// drawProject paints a top-level project row: bottom-aligned title plus
// the circular badge, no box and no action button. Child rows carry
// margin above them, so the project title hugs the bottom of its slot.
func (p *Painter) drawProject(cv canvas.Canvas, project models.Project, x, y float32) {
	st := p.styles.Current()
	titleW, _ := p.drawTitle(cv, project.Name, "search_result_project_title",
		x, y+RowHeight-projectBadgeSize, projectBadgeSize)
	if len(project.Icon) > 0 {
		bx := x + titleW + st.Padding.Left
		by := y + st.Padding.Top + RowHeight - projectBadgeSize
		p.drawBadge(cv, bx, by, projectBadgeSize)
	}
}

func (p *Painter) drawBadge(cv canvas.Canvas, x, y float32, size int) {
	fontSize := p.badgeFontSize(cv, size)
	s := float32(size)
	half := s / 2
	cv.FillRect(x, y, s, s, colors.White)
	cv.FillCircle(x+half, y+half, half, colors.Black)
	w, h := cv.Measure(badgeLabel, fontSize)
	cv.DrawText(x+half-w/2, y+half-h/2, badgeLabel, fontSize, colors.White)
}

// badgeFontSize grows the font until the badge label fills three
// quarters of the badge width, memoized per integer width.
func (p *Painter) badgeFontSize(cv canvas.Canvas, width int) float32 {
	if p.badge.size > 0 && p.badge.width == width {
		return p.badge.size
	}
	target := float32(width) * 0.75
	size := float32(5)
	for {
		w, _ := cv.Measure(badgeLabel, size)
		if w >= target {
			break
		}
		size++
	}
	p.badge = badgeFontCache{width: width, size: size}
	return size
}

// ellipsize truncates s with a trailing ellipsis so it fits maxW.
func ellipsize(cv canvas.Canvas, s string, size, maxW float32) string {
	if w, _ := cv.Measure(s, size); w <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if w, _ := cv.Measure(string(r)+"…", size); w <= maxW {
			return string(r) + "…"
		}
	}
	return "…"
}
