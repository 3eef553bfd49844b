package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/raidsim/raidsim/raid"
)

// MetricSummary holds descriptive statistics for one performance field
// across all runs in a log.
type MetricSummary struct {
	Metric   string
	N        int
	Mean     float64
	Std      float64
	Median   float64
	Min      float64
	Max      float64
	Variance float64
}

// Summary aggregates per-metric statistics over a run log.
type Summary struct {
	Metrics []MetricSummary
}

// summaryFields are the performance fields summarized across runs, in the
// order they are reported.
var summaryFields = []struct {
	name    string
	extract func(*raid.SimulationRun) float64
}{
	{"read_time_ms", func(r *raid.SimulationRun) float64 { return r.Performance.ReadTimeMs }},
	{"write_time_ms", func(r *raid.SimulationRun) float64 { return r.Performance.WriteTimeMs }},
	{"read_iops", func(r *raid.SimulationRun) float64 { return r.Performance.ReadIOPS }},
	{"write_iops", func(r *raid.SimulationRun) float64 { return r.Performance.WriteIOPS }},
	{"disk_load_iops", func(r *raid.SimulationRun) float64 { return r.Performance.DiskLoadIOPS }},
}

// Summarize computes descriptive statistics for each performance field.
// Safe for nil or empty logs (returns zero-count metrics).
func Summarize(log *RunLog) *Summary {
	summary := &Summary{}
	var runs []*raid.SimulationRun
	if log != nil {
		runs = log.runs
	}
	for _, field := range summaryFields {
		values := make([]float64, 0, len(runs))
		for _, run := range runs {
			values = append(values, field.extract(run))
		}
		summary.Metrics = append(summary.Metrics, summarizeValues(field.name, values))
	}
	return summary
}

func summarizeValues(name string, values []float64) MetricSummary {
	ms := MetricSummary{Metric: name, N: len(values)}
	if len(values) == 0 {
		return ms
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	ms.Mean = stat.Mean(values, nil)
	ms.Variance = stat.Variance(values, nil)
	ms.Std = stat.StdDev(values, nil)
	ms.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	ms.Min = sorted[0]
	ms.Max = sorted[len(sorted)-1]
	return ms
}

// WriteCSV exports the summary, one row per metric.
func (s *Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"metric", "n", "mean", "std", "median", "min", "max", "variance"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for _, m := range s.Metrics {
		row := []string{
			m.Metric,
			fmt.Sprintf("%d", m.N),
			fmt.Sprintf("%.4f", m.Mean),
			fmt.Sprintf("%.4f", m.Std),
			fmt.Sprintf("%.4f", m.Median),
			fmt.Sprintf("%.4f", m.Min),
			fmt.Sprintf("%.4f", m.Max),
			fmt.Sprintf("%.4f", m.Variance),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
