// Package report is the reporting sink for simulation runs: an append-only
// run log with CSV export, summary statistics, and an optional sqlite store.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/raidsim/raidsim/raid"
)

// RunLog is an ordered, append-only collection of simulation runs.
// Existing entries are never mutated; Append is the only writer.
type RunLog struct {
	runs []*raid.SimulationRun
}

// NewRunLog returns an empty run log.
func NewRunLog() *RunLog {
	return &RunLog{runs: make([]*raid.SimulationRun, 0)}
}

// Append records a run at the end of the log.
func (l *RunLog) Append(run *raid.SimulationRun) {
	l.runs = append(l.runs, run)
}

// Len returns the number of recorded runs.
func (l *RunLog) Len() int { return len(l.runs) }

// Runs returns the recorded runs in append order. The slice is a copy; the
// runs themselves are shared immutable records.
func (l *RunLog) Runs() []*raid.SimulationRun {
	out := make([]*raid.SimulationRun, len(l.runs))
	copy(out, l.runs)
	return out
}

// csvHeader matches the original report column layout, one row per run.
var csvHeader = []string{
	"run_id", "raid_level", "disk_count",
	"total_items", "total_size_bytes", "load_skew_bytes",
	"read_time_ms", "write_time_ms", "total_time_ms",
	"base_iops_per_disk", "read_iops", "write_iops", "total_iops",
	"write_penalty", "disk_load_iops",
	"usable_percent", "redundancy_percent", "efficiency_percent",
	"fault_tolerance", "timestamp",
}

// WriteCSV exports the log.
func (l *RunLog) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, run := range l.runs {
		p := run.Performance
		row := []string{
			run.ID,
			run.Config.Scheme.String(),
			fmt.Sprintf("%d", run.Config.DiskCount),
			fmt.Sprintf("%d", run.Placement.ItemCount),
			fmt.Sprintf("%d", run.Placement.TotalBytes),
			fmt.Sprintf("%d", run.Placement.LoadSkew),
			fmt.Sprintf("%.2f", p.ReadTimeMs),
			fmt.Sprintf("%.2f", p.WriteTimeMs),
			fmt.Sprintf("%.2f", p.ReadTimeMs+p.WriteTimeMs),
			fmt.Sprintf("%.0f", p.BaseIOPSPerDisk),
			fmt.Sprintf("%.0f", p.ReadIOPS),
			fmt.Sprintf("%.0f", p.WriteIOPS),
			fmt.Sprintf("%.0f", p.ReadIOPS+p.WriteIOPS),
			fmt.Sprintf("%.0f", p.WritePenalty),
			fmt.Sprintf("%.0f", p.DiskLoadIOPS),
			fmt.Sprintf("%.1f", run.Capacity.UsablePercent),
			fmt.Sprintf("%.1f", run.Capacity.RedundancyPercent),
			fmt.Sprintf("%.1f", run.Capacity.EfficiencyRatio*100),
			fmt.Sprintf("%d", p.FaultTolerance),
			run.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
