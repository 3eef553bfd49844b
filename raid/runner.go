package raid

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PlacementSummary condenses a Placement into the figures the report sink
// tabulates; the full per-disk assignment stays with the caller that needs it.
type PlacementSummary struct {
	ItemCount   int
	TotalBytes  int64
	DiskLoads   []int64
	ParityCount int
	LoadSkew    int64
}

// SimulationRun is the immutable record of one simulated configuration.
// Runs are appended to an externally owned log and never mutated afterwards.
type SimulationRun struct {
	ID          string
	Config      ArrayConfig
	Workload    Workload
	Capacity    CapacityProfile
	Overhead    StorageOverhead
	Performance PerformanceProfile
	Placement   PlacementSummary
	Timestamp   time.Time
}

// Runner orchestrates the capacity model, performance model, and placement
// planner for one or more configurations. It persists and renders nothing;
// results go to the report sink.
type Runner struct {
	Disk DiskSpec
	Now  func() time.Time // stubbed in tests
}

// NewRunner returns a Runner evaluating arrays built from the given disks.
func NewRunner(disk DiskSpec) *Runner {
	return &Runner{Disk: disk, Now: time.Now}
}

// Run evaluates one configuration against a workload and item sequence.
// Capacity and performance are independent; placement consumes the items in
// order. Validation happens before any model runs.
func (r *Runner) Run(cfg ArrayConfig, wl Workload, items []Item) (*SimulationRun, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	wl = wl.WithDefaults()
	if err := wl.Validate(); err != nil {
		return nil, err
	}

	var totalBytes int64
	for _, it := range items {
		if it.SizeBytes > 0 {
			totalBytes += it.SizeBytes
		}
	}

	capacity, err := CapacityProfileFor(cfg)
	if err != nil {
		return nil, err
	}
	overhead, err := StorageOverheadFor(totalBytes, cfg.Scheme, cfg.DiskCount)
	if err != nil {
		return nil, err
	}
	performance, err := PerformanceProfileFor(cfg, r.Disk, wl)
	if err != nil {
		return nil, err
	}
	placement, err := PlaceItems(cfg, items)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("simulated %s: usable=%.1f%% load=%.0f IOPS skew=%d bytes",
		cfg, capacity.UsablePercent, performance.DiskLoadIOPS, placement.LoadSkew())

	return &SimulationRun{
		ID:          uuid.NewString(),
		Config:      cfg,
		Workload:    wl,
		Capacity:    capacity,
		Overhead:    overhead,
		Performance: performance,
		Placement: PlacementSummary{
			ItemCount:   len(items),
			TotalBytes:  totalBytes,
			DiskLoads:   placement.DiskLoads,
			ParityCount: len(placement.Parity),
			LoadSkew:    placement.LoadSkew(),
		},
		Timestamp: r.Now(),
	}, nil
}

// RunAll evaluates each configuration in turn. An invalid configuration is
// logged and skipped so a batch comparison across levels never aborts on one
// bad entry.
func (r *Runner) RunAll(cfgs []ArrayConfig, wl Workload, items []Item) []*SimulationRun {
	runs := make([]*SimulationRun, 0, len(cfgs))
	for _, cfg := range cfgs {
		run, err := r.Run(cfg, wl, items)
		if err != nil {
			logrus.Warnf("skipping %s: %v", cfg, err)
			continue
		}
		runs = append(runs, run)
	}
	return runs
}
