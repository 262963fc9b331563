package dedupe

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing_pipeline/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBestTitleMatch(t *testing.T) {
	d := New(85, discardLogger())

	candidates := []domain.Draft{
		{ID: "a", Title: "Nike Air Max 90 Sneakers"},
		{ID: "b", Title: "Vintage Levi's 501 Jeans W32"},
		{ID: "c", Title: "Wool Winter Coat"},
	}

	idx, score := d.BestTitleMatch("Vintage Levi's 501 Jeans W34", candidates)
	assert.Equal(t, 1, idx)
	assert.GreaterOrEqual(t, score, 85.0)

	idx, _ = d.BestTitleMatch("Porcelain Tea Set", candidates)
	assert.Equal(t, -1, idx)
}

func TestBestTitleMatch_EmptyCandidates(t *testing.T) {
	d := New(85, discardLogger())

	idx, score := d.BestTitleMatch("anything", nil)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0.0, score)
}

func TestMergePhotos_CollapsesEqualHashes(t *testing.T) {
	d := New(85, discardLogger())
	hashes := map[string]string{
		"a.jpg": "h1",
		"b.jpg": "h2",
		"c.jpg": "h1", // same picture as a.jpg
		"d.jpg": "h3",
	}
	d.hashFn = func(path string) (string, error) {
		return hashes[path], nil
	}

	merged := d.MergePhotos([]string{"a.jpg", "b.jpg"}, []string{"c.jpg", "d.jpg"})
	assert.Equal(t, []string{"a.jpg", "b.jpg", "d.jpg"}, merged)
}

func TestMergePhotos_SamePathOnce(t *testing.T) {
	d := New(85, discardLogger())
	d.hashFn = func(path string) (string, error) {
		return path, nil
	}

	merged := d.MergePhotos([]string{"a.jpg", "b.jpg"}, []string{"b.jpg", "a.jpg"})
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, merged)
}

func TestMergePhotos_KeepsUnreadable(t *testing.T) {
	d := New(85, discardLogger())
	d.hashFn = func(path string) (string, error) {
		if path == "broken.jpg" {
			return "", errors.New("file unreadable")
		}
		return "h-" + path, nil
	}

	merged := d.MergePhotos([]string{"a.jpg"}, []string{"broken.jpg"})
	assert.Equal(t, []string{"a.jpg", "broken.jpg"}, merged)
}

func TestPhotoHash_RealImages(t *testing.T) {
	dir := t.TempDir()

	// Two files with identical pixels must hash identically; a structurally
	// different image must not collide.
	left := filepath.Join(dir, "left.png")
	leftCopy := filepath.Join(dir, "left_copy.png")
	right := filepath.Join(dir, "right.png")
	writeHalfTone(t, left, true)
	writeHalfTone(t, leftCopy, true)
	writeHalfTone(t, right, false)

	h1, err := PhotoHash(left)
	require.NoError(t, err)
	h2, err := PhotoHash(leftCopy)
	require.NoError(t, err)
	h3, err := PhotoHash(right)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)

	_, err = PhotoHash(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

// writeHalfTone writes a 64x64 PNG that is black on one half and white on
// the other. darkLeft selects which half is dark.
func writeHalfTone(t *testing.T, path string, darkLeft bool) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			dark := x < 32
			if !darkLeft {
				dark = !dark
			}
			if dark {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
