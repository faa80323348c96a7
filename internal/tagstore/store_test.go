package tagstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/slidebar/internal/bar"
)

func sampleTag(t *testing.T) bar.Tag {
	t.Helper()
	pos, err := bar.ResolvePosition(bar.AllEdges, bar.Toggles{Bottom: true, Right: true})
	require.NoError(t, err)
	return bar.Tag{
		Version:             bar.TagVersion,
		BarKey:              "striped",
		ActiveColor:         bar.RGB{R: 0x12, G: 0x34, B: 0x56},
		InactiveColor:       bar.DefaultInactiveColor,
		Size:                12,
		SizeIndex:           11,
		ThemeIndex:          1,
		DisableOnFirstFrame: true,
		PositionOptions:     pos,
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(SidecarPath(filepath.Join(t.TempDir(), "out")))
	tag := sampleTag(t)

	require.NoError(t, store.Save(tag))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, tag, *loaded)

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#123456")
	assert.Contains(t, string(data), "bar_key: striped")
}

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), SidecarName))

	tag, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, tag)
	assert.NoError(t, store.Delete())
}

func TestFileStore_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, SidecarName))

	bad := sampleTag(t)
	bad.Size = 42
	assert.ErrorIs(t, store.Save(bad), bar.ErrInvalidSize)

	require.NoError(t, os.WriteFile(store.Path, []byte("active_color: nope\n"), 0644))
	_, err := store.Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(store.Path, []byte("version: 9\nbar_key: solid\n"), 0644))
	_, err = store.Load()
	assert.Error(t, err)
}

func TestFileStore_LegacyIndexOnlyTag(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, SidecarName))
	legacy := "version: 1\nactive_color: '#6a5acd'\ninactive_color: '#d3d3d3'\nsize_index: 7\ntheme_index: 0\n"
	require.NoError(t, os.WriteFile(store.Path, []byte(legacy), 0644))

	tag, err := store.Load()
	require.NoError(t, err)

	model := bar.NewModel(bar.NewBuiltinCatalog())
	require.NoError(t, model.Detect(*tag))
	ab, err := model.CurrentBar()
	require.NoError(t, err)
	assert.Equal(t, "dotted", ab.Theme.Key())
	assert.Equal(t, 8, ab.Size)
}
