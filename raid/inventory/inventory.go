// Package inventory scans folders for media files and produces the ordered,
// immutable item sequences the placement planner consumes. A scan result is
// an explicit value passed to callers; there is no process-wide scan state.
package inventory

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/raidsim/raidsim/raid"
)

// mediaExtensions filters the walk to the file types the simulator models.
var mediaExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true, ".gif": true,
	".mp4": true, ".mov": true, ".mkv": true, ".avi": true, ".webm": true,
}

// imageExtensions marks the subset we can extract pixel dimensions from.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
}

// FileInfo describes one scanned media file.
type FileInfo struct {
	Path      string // absolute path
	RelPath   string // path relative to the scan root, used as the item ID
	Ext       string // lowercase extension including the dot
	SizeBytes int64
	Width     int // 0 when dimensions are unavailable
	Height    int
}

// ScanResult is the immutable outcome of one folder scan. Files are ordered
// by lexical walk order, so the same tree always yields the same sequence.
type ScanResult struct {
	Root       string
	Files      []FileInfo
	TotalBytes int64
	ExtCounts  map[string]int
}

// Items converts the scan into the ordered item sequence the planner takes.
func (r *ScanResult) Items() []raid.Item {
	items := make([]raid.Item, len(r.Files))
	for i, f := range r.Files {
		items[i] = raid.Item{ID: f.RelPath, SizeBytes: f.SizeBytes}
	}
	return items
}

// SourcePaths maps item IDs back to absolute file paths, for the execute layer.
func (r *ScanResult) SourcePaths() map[string]string {
	paths := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		paths[f.RelPath] = f.Path
	}
	return paths
}

// Scan walks root and collects every media file. filepath.WalkDir visits
// entries in lexical order, which keeps the resulting item sequence (and
// therefore parity rotation downstream) deterministic.
func Scan(root string) (*ScanResult, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving scan root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", abs)
	}

	result := &ScanResult{Root: abs, ExtCounts: make(map[string]int)}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !mediaExtensions[ext] {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		file := FileInfo{
			Path:      path,
			RelPath:   filepath.ToSlash(rel),
			Ext:       ext,
			SizeBytes: fi.Size(),
		}
		if imageExtensions[ext] {
			file.Width, file.Height = imageDimensions(path)
		}
		result.Files = append(result.Files, file)
		result.TotalBytes += fi.Size()
		result.ExtCounts[ext]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", abs, err)
	}
	logrus.Infof("scanned %s: %d media files, %d bytes", abs, len(result.Files), result.TotalBytes)
	return result, nil
}

// imageDimensions reads just the image header. Undecodable files keep 0x0
// rather than failing the scan.
func imageDimensions(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
