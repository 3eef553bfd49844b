package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidsim/raidsim/raid"
)

// fixedRun builds a run record with recognizable figures for export tests.
func fixedRun(id string, scheme raid.Scheme, diskCount int) *raid.SimulationRun {
	return &raid.SimulationRun{
		ID:       id,
		Config:   raid.ArrayConfig{Scheme: scheme, DiskCount: diskCount},
		Workload: raid.Workload{TotalIOPS: 400, ReadPercent: 75, WritePercent: 25}.WithDefaults(),
		Capacity: raid.CapacityProfile{UsablePercent: 75, RedundancyPercent: 25, EfficiencyRatio: 0.75},
		Overhead: raid.StorageOverhead{UsableBytes: 1000, ParityBytes: 333.33, TotalRequiredBytes: 1333.33, EfficiencyRatio: 0.75},
		Performance: raid.PerformanceProfile{
			ReadTimeMs:      1234.57,
			WriteTimeMs:     1388.89,
			BaseIOPSPerDisk: 98,
			ReadIOPS:        266,
			WriteIOPS:       295,
			WritePenalty:    4,
			DiskLoadIOPS:    700,
			FaultTolerance:  1,
		},
		Placement: raid.PlacementSummary{ItemCount: 4, TotalBytes: 1000, LoadSkew: 0},
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRunLog_AppendPreservesOrder(t *testing.T) {
	log := NewRunLog()
	log.Append(fixedRun("run-1", raid.Striped, 4))
	log.Append(fixedRun("run-2", raid.ParityRotating, 4))

	runs := log.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, "run-2", runs[1].ID)
	assert.Equal(t, 2, log.Len())
}

func TestRunLog_RunsReturnsCopy(t *testing.T) {
	log := NewRunLog()
	log.Append(fixedRun("run-1", raid.Striped, 4))

	runs := log.Runs()
	runs[0] = nil // mutating the copy must not affect the log

	assert.NotNil(t, log.Runs()[0])
}

func TestRunLog_WriteCSV(t *testing.T) {
	log := NewRunLog()
	log.Append(fixedRun("run-1", raid.ParityRotating, 4))

	var buf bytes.Buffer
	require.NoError(t, log.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + one run

	header, row := records[0], records[1]
	assert.Equal(t, csvHeader, header)
	assert.Equal(t, "run-1", row[0])
	assert.Equal(t, "RAID 5", row[1])
	assert.Equal(t, "4", row[2])
	assert.Equal(t, "700", row[14])
	assert.Equal(t, "75.0", row[15])
	assert.Equal(t, "2025-06-01T12:00:00Z", row[19])
}

func TestRunLog_WriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRunLog().WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
