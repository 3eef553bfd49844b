// Package execute materializes a finished placement plan on the filesystem:
// one directory per virtual disk, assigned files copied in, and parity
// placeholder markers written for parity-rotating arrays.
//
// Execution is the parallel second phase of the plan/execute split: the plan
// is computed sequentially and immutably by raid.PlaceItems, then this
// package fans out one worker per disk over the read-only plan. Nothing here
// mutates load counters or the plan.
package execute

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/raidsim/raidsim/raid"
)

// Materializer copies placed items into virtual disk directories under Root.
type Materializer struct {
	Root string
}

// diskWork is the per-disk slice of the plan, assembled before any copying
// starts so workers never consult shared state.
type diskWork struct {
	disk    int
	dir     string
	itemIDs []string
	parity  []raid.ParityMarker
}

// Materialize creates Root/<RAID_level>/disk_N directories and copies each
// assigned item from sources (item ID → source path) onto its disks.
// Parity markers become "<name>_PARITY.txt" placeholder files on the parity
// disk; they record placement only, not parity content.
//
// Disks are processed concurrently; ctx cancels between file copies. The
// returned path is the array's base directory.
func (m *Materializer) Materialize(ctx context.Context, plan *raid.Placement, sources map[string]string) (string, error) {
	base := filepath.Join(m.Root, strings.ReplaceAll(plan.Config.Scheme.String(), " ", "_"))

	work := make([]diskWork, len(plan.Disks))
	for d, ids := range plan.Disks {
		work[d] = diskWork{
			disk:    d,
			dir:     filepath.Join(base, fmt.Sprintf("disk_%d", d)),
			itemIDs: ids,
		}
	}
	for _, marker := range plan.Parity {
		w := &work[marker.ParityDisk]
		w.parity = append(w.parity, marker)
	}

	for _, w := range work {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", w.dir, err)
		}
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(work))
	for _, w := range work {
		wg.Add(1)
		go func(w diskWork) {
			defer wg.Done()
			if err := materializeDisk(ctx, w, sources); err != nil {
				errCh <- err
			}
		}(w)
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return "", err
	}

	logrus.Infof("materialized %s into %s", plan.Config, base)
	return base, nil
}

func materializeDisk(ctx context.Context, w diskWork, sources map[string]string) error {
	for _, id := range w.itemIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		src, ok := sources[id]
		if !ok {
			return fmt.Errorf("disk %d: no source path for item %q", w.disk, id)
		}
		dst := filepath.Join(w.dir, filepath.Base(src))
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("disk %d: copying %q: %w", w.disk, id, err)
		}
	}
	for _, marker := range w.parity {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := filepath.Base(marker.ItemID)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		content := fmt.Sprintf("Parity for %s\nData on disk %d\n", name, marker.DataDisk)
		path := filepath.Join(w.dir, stem+"_PARITY.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("disk %d: writing parity marker for %q: %w", w.disk, marker.ItemID, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
