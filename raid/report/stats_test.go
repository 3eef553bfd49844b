package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raidsim/raidsim/raid"
)

// runWithTimes builds a run carrying just the fields the summary reads.
func runWithTimes(readMs, writeMs, readIOPS, writeIOPS float64) *raid.SimulationRun {
	return &raid.SimulationRun{
		Config: raid.ArrayConfig{Scheme: raid.Striped, DiskCount: 4},
		Performance: raid.PerformanceProfile{
			ReadTimeMs:  readMs,
			WriteTimeMs: writeMs,
			ReadIOPS:    readIOPS,
			WriteIOPS:   writeIOPS,
		},
	}
}

func TestSummarize_KnownValues(t *testing.T) {
	// GIVEN three runs with read times 100, 120, 110
	log := NewRunLog()
	log.Append(runWithTimes(100, 200, 400, 400))
	log.Append(runWithTimes(120, 220, 500, 300))
	log.Append(runWithTimes(110, 210, 600, 200))

	// WHEN summarized
	summary := Summarize(log)

	// THEN read_time_ms gets mean 110, std 10, median 110, min 100, max 120, variance 100
	read := summary.Metrics[0]
	require.Equal(t, "read_time_ms", read.Metric)
	assert.Equal(t, 3, read.N)
	assert.InDelta(t, 110, read.Mean, 1e-9)
	assert.InDelta(t, 10, read.Std, 1e-9)
	assert.InDelta(t, 110, read.Median, 1e-9)
	assert.InDelta(t, 100, read.Min, 1e-9)
	assert.InDelta(t, 120, read.Max, 1e-9)
	assert.InDelta(t, 100, read.Variance, 1e-9)

	write := summary.Metrics[1]
	require.Equal(t, "write_time_ms", write.Metric)
	assert.InDelta(t, 210, write.Mean, 1e-9)
}

func TestSummarize_CoversAllFields(t *testing.T) {
	log := NewRunLog()
	log.Append(runWithTimes(1, 2, 3, 4))
	log.Append(runWithTimes(5, 6, 7, 8))

	summary := Summarize(log)

	names := make([]string, len(summary.Metrics))
	for i, m := range summary.Metrics {
		names[i] = m.Metric
	}
	assert.Equal(t, []string{"read_time_ms", "write_time_ms", "read_iops", "write_iops", "disk_load_iops"}, names)
}

func TestSummarize_EmptyAndNil(t *testing.T) {
	for _, log := range []*RunLog{nil, NewRunLog()} {
		summary := Summarize(log)
		require.Len(t, summary.Metrics, 5)
		for _, m := range summary.Metrics {
			assert.Equal(t, 0, m.N, m.Metric)
			assert.Equal(t, 0.0, m.Mean, m.Metric)
		}
	}
}

func TestSummary_WriteCSV(t *testing.T) {
	log := NewRunLog()
	log.Append(runWithTimes(100, 200, 400, 400))
	log.Append(runWithTimes(120, 220, 500, 300))
	log.Append(runWithTimes(110, 210, 600, 200))

	var buf bytes.Buffer
	require.NoError(t, Summarize(log).WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + five metrics

	assert.Equal(t, []string{"metric", "n", "mean", "std", "median", "min", "max", "variance"}, records[0])
	assert.Equal(t, "read_time_ms", records[1][0])
	assert.Equal(t, "110.0000", records[1][2])
	assert.Equal(t, "100.0000", records[1][7])
}
