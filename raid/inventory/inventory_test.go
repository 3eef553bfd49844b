package inventory

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path (and parents) with content of the given size.
func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xAB}, size), 0o644))
}

// writePNG creates a decodable image so dimensions can be extracted.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestScan_FiltersAndTotals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "clip.mp4"), 4096)
	writeFile(t, filepath.Join(root, "notes.txt"), 100)        // skipped: not media
	writeFile(t, filepath.Join(root, "sub", "photo.jpg"), 512) // nested media counts

	result, err := Scan(root)
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, int64(4096+512), result.TotalBytes)
	assert.Equal(t, map[string]int{".mp4": 1, ".jpg": 1}, result.ExtCounts)
}

func TestScan_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.mp4"), 10)
	writeFile(t, filepath.Join(root, "a.mp4"), 20)
	writeFile(t, filepath.Join(root, "sub", "c.mkv"), 30)

	first, err := Scan(root)
	require.NoError(t, err)
	second, err := Scan(root)
	require.NoError(t, err)

	// lexical walk order, stable across scans
	ids := func(r *ScanResult) []string {
		out := make([]string, len(r.Files))
		for i, f := range r.Files {
			out[i] = f.RelPath
		}
		return out
	}
	assert.Equal(t, []string{"a.mp4", "b.mp4", "sub/c.mkv"}, ids(first))
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("scan order changed between runs: %v vs %v", ids(first), ids(second))
	}
}

func TestScan_ItemsMatchFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.avi"), 111)
	writeFile(t, filepath.Join(root, "b.webm"), 222)

	result, err := Scan(root)
	require.NoError(t, err)

	items := result.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a.avi", items[0].ID)
	assert.Equal(t, int64(111), items[0].SizeBytes)
	assert.Equal(t, "b.webm", items[1].ID)
	assert.Equal(t, int64(222), items[1].SizeBytes)

	paths := result.SourcePaths()
	assert.Equal(t, filepath.Join(result.Root, "a.avi"), paths["a.avi"])
}

func TestScan_ImageDimensions(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "pic.png"), 32, 16)

	result, err := Scan(root)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, 32, result.Files[0].Width)
	assert.Equal(t, 16, result.Files[0].Height)
}

func TestScan_UndecodableImageKeepsZeroDimensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken.jpg"), 64) // not a real JPEG

	result, err := Scan(root)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, 0, result.Files[0].Width)
	assert.Equal(t, 0, result.Files[0].Height)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "file.mp4")
	writeFile(t, path, 10)

	_, err := Scan(path)
	assert.Error(t, err)
}
