package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padgrove/padgrove/engine/colors"
)

func TestUnknownClassFallsBackToBase(t *testing.T) {
	ctx := NewContext(Default())
	got := ctx.Style("no_such_class")
	assert.Equal(t, Default().Base, got)
}

func TestPushReleaseDoesNotLeak(t *testing.T) {
	ctx := NewContext(Default())

	release := ctx.Push("search_result_item_link")
	assert.Equal(t, colors.LinkBlue, ctx.Current().Fg)
	release()

	assert.Equal(t, Default().Base.Fg, ctx.Current().Fg)
}

func TestReleaseUnwindsNestedPushes(t *testing.T) {
	ctx := NewContext(Default())

	outer := ctx.Push("search_view_child")
	ctx.Push("search_result_item_subtext") // inner block returned early
	outer()

	assert.Equal(t, Default().Base, ctx.Current())
}

func TestLayeredClassesResolveInPushOrder(t *testing.T) {
	ctx := NewContext(Default())
	defer ctx.Push("search_view_child")()
	defer ctx.Push("search_result_item_subtext")()

	cur := ctx.Current()
	assert.Equal(t, colors.RowChildBg, cur.Bg)
	assert.Equal(t, colors.SubtextGray, cur.Fg)
	assert.Equal(t, float32(13), cur.FontSize)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	data := `
[base]
font_size = 18.0

[classes.search_result_item_link]
font_size = 15.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	th, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(18), th.Base.FontSize)
	assert.Equal(t, float32(15), th.Classes["search_result_item_link"].FontSize)
	// untouched defaults survive
	assert.Equal(t, colors.LinkBlue, th.Classes["search_result_item_link"].Fg)
	assert.Equal(t, colors.RowParentBg, th.Classes["search_view_parent"].Bg)
}

func TestLoadMissingFileErrs(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
