package raid

// Item is one externally supplied data item to be placed on the array.
// The ordering of the input sequence is significant: it drives parity
// rotation and must be preserved by the caller.
type Item struct {
	ID        string
	SizeBytes int64
}

// Workload describes the I/O mix an array is evaluated against.
type Workload struct {
	TotalIOPS    float64 // application IOPS demand
	ReadPercent  float64 // share of reads, 0-100
	WritePercent float64 // share of writes, 0-100; must sum with reads to 100
	Utilization  float64 // per-disk utilization fraction in (0,1]; 0 means DefaultUtilization
	FileSizeMB   float64 // representative transfer size for time estimates; 0 means DefaultFileSizeMB
}

// DefaultUtilization is the recommended per-disk utilization factor.
const DefaultUtilization = 0.7

// DefaultFileSizeMB is the representative transfer size used when the
// workload does not specify one.
const DefaultFileSizeMB = 500.0

// WithDefaults returns a copy with zero-valued tunables replaced by defaults.
func (w Workload) WithDefaults() Workload {
	if w.Utilization == 0 {
		w.Utilization = DefaultUtilization
	}
	if w.FileSizeMB == 0 {
		w.FileSizeMB = DefaultFileSizeMB
	}
	return w
}

// Validate rejects malformed workloads with a WorkloadError. The read/write
// mix must sum to 100; this is enforced uniformly across the models.
func (w Workload) Validate() error {
	if w.TotalIOPS < 0 {
		return workloadErrorf("total IOPS must be non-negative, got %v", w.TotalIOPS)
	}
	if w.ReadPercent < 0 || w.ReadPercent > 100 {
		return workloadErrorf("read percent must be in [0,100], got %v", w.ReadPercent)
	}
	if w.WritePercent < 0 || w.WritePercent > 100 {
		return workloadErrorf("write percent must be in [0,100], got %v", w.WritePercent)
	}
	if sum := w.ReadPercent + w.WritePercent; sum != 100 {
		return workloadErrorf("read and write percent must sum to 100, got %v", sum)
	}
	if w.Utilization <= 0 || w.Utilization > 1 {
		return workloadErrorf("utilization must be in (0,1], got %v", w.Utilization)
	}
	if w.FileSizeMB <= 0 {
		return workloadErrorf("file size must be positive, got %v MB", w.FileSizeMB)
	}
	return nil
}
