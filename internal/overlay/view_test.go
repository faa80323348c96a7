package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/slidebar/internal/analyzer"
	"github.com/ivlev/slidebar/internal/bar"
	"github.com/ivlev/slidebar/internal/source"
)

func newTestDeck(t *testing.T, slides int) *source.Deck {
	t.Helper()
	dir := t.TempDir()
	for i := 1; i <= slides; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 120, 60))
		for y := 0; y < 60; y++ {
			for x := 0; x < 120; x++ {
				img.Set(x, y, color.White)
			}
		}
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("page-%02d.png", i)))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}
	src, err := source.NewImageSource(dir)
	require.NoError(t, err)
	return source.NewDeck(src, nil)
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func assertColor(t *testing.T, img image.Image, x, y int, want color.Color) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	w := color.RGBAModel.Convert(want).(color.RGBA)
	assert.Equal(t, w, got, "pixel %d,%d", x, y)
}

func setup(t *testing.T, slides int) (*bar.Controller, *View, string) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")
	view := NewView(newTestDeck(t, slides), Options{OutputDir: out, Workers: 2})
	model := bar.NewModel(bar.NewBuiltinCatalog())
	view.Register(model)
	return bar.NewController(model, nil), view, out
}

func TestView_MaterializesAndRemoves(t *testing.T) {
	c, view, out := setup(t, 3)
	require.NoError(t, c.ChangeSizeClicked(10))

	require.NoError(t, c.AddBarClicked("solid"))
	assert.True(t, view.HasBar())

	for n := 1; n <= 3; n++ {
		assert.FileExists(t, view.FramePath(n))
	}
	assert.Len(t, view.AddedShapes(), 6)

	// slide 1 of 3: the first third of the bottom strip is active
	img := readPNG(t, filepath.Join(out, "slide-001.png"))
	assertColor(t, img, 5, 55, bar.DefaultActiveColor)
	assertColor(t, img, 100, 55, bar.DefaultInactiveColor)
	assertColor(t, img, 60, 10, color.White)

	img = readPNG(t, filepath.Join(out, "slide-003.png"))
	assertColor(t, img, 115, 55, bar.DefaultActiveColor)

	require.NoError(t, c.RemoveBarClicked())
	assert.False(t, view.HasBar())
	assert.Empty(t, view.AddedShapes())
	for n := 1; n <= 3; n++ {
		assert.NoFileExists(t, view.FramePath(n))
	}
}

func TestView_ThemeChangeRedraws(t *testing.T) {
	c, view, _ := setup(t, 4)
	require.NoError(t, c.AddBarClicked("solid"))
	require.Len(t, view.AddedShapes(), 8)

	require.NoError(t, c.ChangeThemeClicked("striped"))
	// four stripes plus a zero-width inactive marker on the last slide
	assert.Len(t, view.AddedShapes(), 4*4+1)
	for _, h := range view.AddedShapes() {
		assert.True(t, DefaultNamer.Owns(h.Name), h.Name)
	}
}

func TestView_ColorsFollowRoles(t *testing.T) {
	c, _, out := setup(t, 2)
	red := bar.RGB{R: 255}
	blue := bar.RGB{B: 255}
	require.NoError(t, c.ColorsChanged(bar.Colors{Active: red, Inactive: blue}))
	require.NoError(t, c.ChangeSizeClicked(20))
	require.NoError(t, c.PositionOptionsChanged(true, false, false, false))
	require.NoError(t, c.AddBarClicked("dotted"))

	img := readPNG(t, filepath.Join(out, "slide-001.png"))
	// dots fill their cells: centers of the first and second cell on the top strip
	assertColor(t, img, 30, 10, red)
	assertColor(t, img, 90, 10, blue)
	assertColor(t, img, 60, 50, color.White)
}

func TestView_AdoptsExistingSlides(t *testing.T) {
	c, view, _ := setup(t, 2)
	require.NoError(t, c.AddBarClicked("striped"))
	tag, err := c.Model().Tag()
	require.NoError(t, err)

	reopened := bar.NewModel(bar.NewBuiltinCatalog())
	adopted := NewView(view.deck, view.opts)
	adopted.Register(reopened)

	info1, err := os.Stat(view.FramePath(1))
	require.NoError(t, err)

	require.NoError(t, bar.NewController(reopened, nil).BarDetected(tag))
	assert.True(t, adopted.HasBar())
	assert.Len(t, adopted.AddedShapes(), len(view.AddedShapes()))

	info2, err := os.Stat(view.FramePath(1))
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime(), "detected bar must not be redrawn")
}

func TestView_SlidesChanged(t *testing.T) {
	dir := t.TempDir()
	src, err := source.NewImageSource(dir)
	require.NoError(t, err)
	view := NewView(source.NewDeck(src, nil), Options{OutputDir: dir})
	model := bar.NewModel(bar.NewBuiltinCatalog())
	c := bar.NewController(model, nil)

	require.NoError(t, view.SlidesChanged(c))

	c.SetFrames(view.deck)
	assert.ErrorIs(t, c.AddBarClicked("solid"), bar.ErrNoFrames)
}

func TestView_SlidesChangedRemovesDetectedBarOnEmptyDeck(t *testing.T) {
	dir := t.TempDir()
	src, err := source.NewImageSource(dir)
	require.NoError(t, err)
	view := NewView(source.NewDeck(src, nil), Options{OutputDir: dir})
	model := bar.NewModel(bar.NewBuiltinCatalog())
	view.Register(model)
	c := bar.NewController(model, nil)

	tag := bar.Tag{
		Version:         bar.TagVersion,
		BarKey:          "striped",
		ActiveColor:     bar.DefaultActiveColor,
		InactiveColor:   bar.DefaultInactiveColor,
		Size:            8,
		PositionOptions: bar.DefaultPosition(bar.AllEdges),
	}
	err = c.BarDetected(tag)
	assert.ErrorIs(t, err, bar.ErrNoFrames)
	require.True(t, model.HasBar())
	assert.False(t, view.HasBar())

	require.NoError(t, view.SlidesChanged(c))
	assert.False(t, model.HasBar())
}

func TestView_AdoptWithoutFilesHasNoBar(t *testing.T) {
	c, view, _ := setup(t, 2)
	tag := bar.Tag{
		Version:         bar.TagVersion,
		BarKey:          "solid",
		ActiveColor:     bar.DefaultActiveColor,
		InactiveColor:   bar.DefaultInactiveColor,
		Size:            8,
		PositionOptions: bar.DefaultPosition(bar.AllEdges),
	}
	require.NoError(t, c.BarDetected(tag))
	assert.True(t, c.Model().HasBar())
	assert.False(t, view.HasBar())
	assert.Empty(t, view.AddedShapes())
}

func TestPixelBounds(t *testing.T) {
	shapes := []bar.Shape{
		{Left: 0, Top: 40, Width: 10.5, Height: 10, Role: bar.RoleActive},
		{Left: 10.5, Top: 40, Width: 89.5, Height: 10, Role: bar.RoleInactive},
	}
	assert.Equal(t, image.Rect(0, 80, 200, 100), pixelBounds(shapes, 2, 2))
}

func TestView_WarnsOnCoveredContent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	view := NewView(newTestDeck(t, 1), Options{OutputDir: out, Checker: analyzer.NewOcclusionChecker()})
	model := bar.NewModel(bar.NewBuiltinCatalog())
	view.Register(model)

	// blank slides: the check runs and drawing still succeeds
	require.NoError(t, model.Add("solid"))
	assert.FileExists(t, view.FramePath(1))
}

func TestShapeNamer(t *testing.T) {
	n := DefaultNamer
	active := n.Name(bar.RoleActive)
	inactive := n.Name(bar.RoleInactive)

	assert.True(t, n.IsActive(active))
	assert.False(t, n.IsInactive(active))
	assert.True(t, n.IsInactive(inactive))
	assert.NotEqual(t, active, n.Name(bar.RoleActive))
	assert.False(t, n.Owns("ProgressBar_Active_not-a-uuid"))
	assert.False(t, n.Owns("Rectangle 4"))
}
