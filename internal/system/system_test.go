package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, RecommendedWorkers(0), 1)
	assert.Equal(t, 1, RecommendedWorkers(1))
	assert.LessOrEqual(t, RecommendedWorkers(4), 4)
}

func TestFindLatestPDF(t *testing.T) {
	dir := t.TempDir()
	names := []string{"old.pdf", "new.PDF", "image.png"}
	for i, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte("%PDF"), 0644))
		mod := time.Now().Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}

	latest, err := FindLatestPDF(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "new.PDF"), latest)

	_, err = FindLatestPDF(t.TempDir())
	assert.Error(t, err)
}

func TestImagePool(t *testing.T) {
	pool := NewImagePool()
	rect := image.Rect(0, 0, 10, 20)

	img := pool.Get(rect)
	assert.Equal(t, rect, img.Rect)
	pool.Put(img)
	pool.Put(nil)

	again := pool.Get(rect)
	assert.Equal(t, rect, again.Rect)
}
