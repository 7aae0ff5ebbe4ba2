// Package theme supplies the style metrics (padding, margin, colors,
// font sizes) the paint engine queries per draw block. Metrics are
// addressed by style class name; unknown classes fall back to the base
// style, which is non-fatal.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/padgrove/padgrove/engine/colors"
)

type Insets struct {
	Left   float32 `toml:"left"`
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
}

func (i Insets) zero() bool { return i == Insets{} }

// Style is one resolved set of metrics. Zero-valued fields inherit from
// the styles below them when classes are layered.
type Style struct {
	Padding  Insets       `toml:"padding"`
	Margin   Insets       `toml:"margin"`
	FontSize float32      `toml:"font_size"`
	Fg       colors.Color `toml:"fg"`
	Bg       colors.Color `toml:"bg"`
	Border   colors.Color `toml:"border"`
}

// apply layers o on top of s, overriding only the fields o sets.
func (s Style) apply(o Style) Style {
	if !o.Padding.zero() {
		s.Padding = o.Padding
	}
	if !o.Margin.zero() {
		s.Margin = o.Margin
	}
	if o.FontSize > 0 {
		s.FontSize = o.FontSize
	}
	if o.Fg[3] > 0 {
		s.Fg = o.Fg
	}
	if o.Bg[3] > 0 {
		s.Bg = o.Bg
	}
	if o.Border[3] > 0 {
		s.Border = o.Border
	}
	return s
}

type Theme struct {
	Base    Style            `toml:"base"`
	Classes map[string]Style `toml:"classes"`
}

// Default returns the compiled-in theme. Class names follow the ones the
// search view paints with.
func Default() *Theme {
	return &Theme{
		Base: Style{
			Padding:  Insets{Left: 5, Top: 5, Right: 5, Bottom: 5},
			Margin:   Insets{Left: 5, Top: 10, Right: 5, Bottom: 0},
			FontSize: 16,
			Fg:       colors.Black,
			Bg:       colors.White,
			Border:   colors.FrameGray,
		},
		Classes: map[string]Style{
			"search_view_parent": {Bg: colors.RowParentBg},
			"search_view_child":  {Bg: colors.RowChildBg},
			"search_result_item_title": {
				FontSize: 16,
			},
			"search_result_project_title": {
				FontSize: 22,
			},
			"search_result_item_link": {
				Fg: colors.LinkBlue,
			},
			"search_result_item_subtext": {
				Fg:       colors.SubtextGray,
				FontSize: 13,
			},
			"search_result_action_btn": {
				Padding: Insets{Left: 4, Top: 4, Right: 4, Bottom: 4},
				Bg:      colors.ButtonGray,
			},
			"environment_label_dev":  {Bg: colors.EnvDevGreen, Fg: colors.White, FontSize: 12, Padding: Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}},
			"environment_label_uat":  {Bg: colors.EnvUatYellow, Fg: colors.White, FontSize: 12, Padding: Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}},
			"environment_label_stg":  {Bg: colors.EnvStgOrange, Fg: colors.White, FontSize: 12, Padding: Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}},
			"environment_label_prod": {Bg: colors.EnvProdRed, Fg: colors.White, FontSize: 12, Padding: Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}},
		},
	}
}

// Load reads a theme file and layers it over the defaults, so a partial
// file only overrides what it names.
func Load(path string) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	t := Default()
	var file Theme
	if err := toml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t.Base = t.Base.apply(file.Base)
	for name, st := range file.Classes {
		t.Classes[name] = t.Classes[name].apply(st)
	}
	return t, nil
}

// Context resolves the style for the current drawing block. Classes are
// activated with Push and removed by the returned release func, so an
// override can never leak across sibling draws even on early return.
type Context struct {
	theme *Theme
	stack []string
}

func NewContext(t *Theme) *Context {
	if t == nil {
		t = Default()
	}
	return &Context{theme: t}
}

// Push activates class until release is called. Unknown classes are
// legal and contribute nothing.
func (c *Context) Push(class string) (release func()) {
	c.stack = append(c.stack, class)
	depth := len(c.stack)
	return func() {
		// Pops anything pushed after this token as well, which keeps
		// the stack consistent if an inner block returned early.
		if len(c.stack) >= depth {
			c.stack = c.stack[:depth-1]
		}
	}
}

// Current resolves base + active classes in push order.
func (c *Context) Current() Style {
	s := c.theme.Base
	for _, class := range c.stack {
		if o, ok := c.theme.Classes[class]; ok {
			s = s.apply(o)
		}
	}
	return s
}

// Style resolves a single class against base without touching the stack.
func (c *Context) Style(class string) Style {
	s := c.theme.Base
	if o, ok := c.theme.Classes[class]; ok {
		s = s.apply(o)
	}
	return s
}
