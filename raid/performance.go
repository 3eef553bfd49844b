package raid

// Performance model: pure analytical functions estimating service time,
// IOPS capacity, transfer times, speedup, and fault tolerance for an array
// configuration under a read/write workload mix. Nothing here sleeps or
// measures; every value is a closed-form estimate.

// DiskSpec holds the physical characteristics of one member disk.
type DiskSpec struct {
	SeekTimeMs       float64 // average seek time
	RPM              float64 // spindle speed
	TransferRateMBps float64 // sustained transfer rate used in the service-time term
	CapacityGB       float64 // raw capacity per disk
	IOSizeKB         float64 // typical random I/O block size
	BaseReadMBps     float64 // base sequential read speed
	BaseWriteMBps    float64 // base sequential write speed
}

// DefaultDiskSpec returns the enterprise 15K RPM profile the simulator uses
// when no preset is selected.
func DefaultDiskSpec() DiskSpec {
	return DiskSpec{
		SeekTimeMs:       5.0,
		RPM:              15000,
		TransferRateMBps: 40,
		CapacityGB:       100,
		IOSizeKB:         4,
		BaseReadMBps:     150,
		BaseWriteMBps:    120,
	}
}

// WritePenalty returns the fixed physical-I/O multiplier per logical write:
// 1 for Striped, 2 for Mirrored, 4 for ParityRotating (read-modify-write).
// These are fixed constants, not derived quantities.
func WritePenalty(scheme Scheme) (float64, error) {
	switch scheme {
	case Striped:
		return 1, nil
	case Mirrored:
		return 2, nil
	case ParityRotating:
		return 4, nil
	}
	return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// ServiceTime returns the expected time in milliseconds for one I/O on a
// single disk: seek + rotational latency (half a revolution) + transfer.
func ServiceTime(seekTimeMs, rpm, blockSizeKB, transferRateMBps float64) (float64, error) {
	if seekTimeMs < 0 {
		return 0, workloadErrorf("seek time must be non-negative, got %v ms", seekTimeMs)
	}
	if rpm <= 0 {
		return 0, workloadErrorf("RPM must be positive, got %v", rpm)
	}
	if blockSizeKB < 0 {
		return 0, workloadErrorf("block size must be non-negative, got %v KB", blockSizeKB)
	}
	if transferRateMBps <= 0 {
		return 0, workloadErrorf("transfer rate must be positive, got %v MB/s", transferRateMBps)
	}
	rotationalMs := 0.5 / (rpm / 60.0) * 1000.0
	transferMs := (blockSizeKB / 1024.0) / transferRateMBps * 1000.0
	return seekTimeMs + rotationalMs + transferMs, nil
}

// DiskIOPS converts a service time into an IOPS capacity at the given
// utilization fraction in (0,1].
func DiskIOPS(serviceTimeMs, utilization float64) (float64, error) {
	if serviceTimeMs <= 0 {
		return 0, workloadErrorf("service time must be positive, got %v ms", serviceTimeMs)
	}
	if utilization <= 0 || utilization > 1 {
		return 0, workloadErrorf("utilization must be in (0,1], got %v", utilization)
	}
	return utilization * (1000.0 / serviceTimeMs), nil
}

// BaseDiskIOPS derives the IOPS capacity of a single disk from its physical
// specification.
func BaseDiskIOPS(spec DiskSpec, utilization float64) (float64, error) {
	st, err := ServiceTime(spec.SeekTimeMs, spec.RPM, spec.IOSizeKB, spec.TransferRateMBps)
	if err != nil {
		return 0, err
	}
	return DiskIOPS(st, utilization)
}

// EstimateAccessTime estimates the time in seconds to move fileSizeBytes
// through the array. Striped reads and writes in parallel across all disks;
// Mirrored averages a single-disk write against a parallel read; parity
// striping pays a 15% overhead on its n-1 data disks.
func EstimateAccessTime(fileSizeBytes int64, diskCount int, scheme Scheme, baseRateMBps float64) (float64, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	if fileSizeBytes < 0 {
		return 0, workloadErrorf("file size must be non-negative, got %d bytes", fileSizeBytes)
	}
	if baseRateMBps <= 0 {
		return 0, workloadErrorf("base transfer rate must be positive, got %v MB/s", baseRateMBps)
	}
	sizeMB := float64(fileSizeBytes) / (1024 * 1024)
	switch scheme {
	case Striped:
		return sizeMB / (baseRateMBps * float64(diskCount)), nil
	case Mirrored:
		writeTime := sizeMB / baseRateMBps
		readTime := sizeMB / (baseRateMBps * float64(diskCount))
		return (writeTime + readTime) / 2, nil
	case ParityRotating:
		dataDisks := float64(diskCount - 1)
		return sizeMB / (baseRateMBps * dataDisks * 0.85), nil
	}
	return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// ParallelSpeedup returns the theoretical throughput multiplier over a single
// disk: n for Striped, n/2 for Mirrored, (n-1)*0.85 for ParityRotating.
func ParallelSpeedup(diskCount int, scheme Scheme) (float64, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	switch scheme {
	case Striped:
		return float64(diskCount), nil
	case Mirrored:
		return float64(diskCount) * 0.5, nil
	case ParityRotating:
		return float64(diskCount-1) * 0.85, nil
	}
	return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// FaultTolerance returns how many simultaneous disk failures the array
// survives: 0 for Striped, n-1 for Mirrored, 1 for ParityRotating.
func FaultTolerance(scheme Scheme, diskCount int) (int, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	switch scheme {
	case Striped:
		return 0, nil
	case Mirrored:
		return diskCount - 1, nil
	case ParityRotating:
		return 1, nil
	}
	return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// DiskLoadIOPS converts an application workload into the physical load the
// disks actually see, charging writes their scheme's penalty:
//
//	load = total*read% + total*write%*penalty
//
// Example: 400 IOPS at 75/25 on RAID 5 yields 300 + 400 = 700.
func DiskLoadIOPS(totalIOPS, readPercent, writePercent float64, scheme Scheme) (float64, error) {
	penalty, err := WritePenalty(scheme)
	if err != nil {
		return 0, err
	}
	if totalIOPS < 0 {
		return 0, workloadErrorf("total IOPS must be non-negative, got %v", totalIOPS)
	}
	if readPercent < 0 || readPercent > 100 {
		return 0, workloadErrorf("read percent must be in [0,100], got %v", readPercent)
	}
	if writePercent < 0 || writePercent > 100 {
		return 0, workloadErrorf("write percent must be in [0,100], got %v", writePercent)
	}
	if sum := readPercent + writePercent; sum != 100 {
		return 0, workloadErrorf("read and write percent must sum to 100, got %v", sum)
	}
	return totalIOPS*(readPercent/100.0) + totalIOPS*(writePercent/100.0)*penalty, nil
}

// ArrayIOPS is the aggregate read and write IOPS capacity of an array.
type ArrayIOPS struct {
	Read  float64
	Write float64
}

// ArrayIOPSFor scales a single disk's IOPS capacity to the whole array.
// Mirrored reads run at 80% parallel efficiency and writes pay the mirror
// penalty; parity reads run at 90% efficiency over the n-1 data disks and
// writes are normalized against the RAID 5 baseline penalty.
func ArrayIOPSFor(scheme Scheme, diskCount int, perDiskIOPS float64) (ArrayIOPS, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return ArrayIOPS{}, err
	}
	if perDiskIOPS < 0 {
		return ArrayIOPS{}, workloadErrorf("per-disk IOPS must be non-negative, got %v", perDiskIOPS)
	}
	penalty, err := WritePenalty(scheme)
	if err != nil {
		return ArrayIOPS{}, err
	}
	switch scheme {
	case Striped:
		total := perDiskIOPS * float64(diskCount)
		return ArrayIOPS{Read: total, Write: total}, nil
	case Mirrored:
		return ArrayIOPS{
			Read:  perDiskIOPS * float64(diskCount) * 0.8,
			Write: perDiskIOPS * float64(diskCount) / penalty,
		}, nil
	case ParityRotating:
		dataDisks := float64(diskCount - 1)
		return ArrayIOPS{
			Read:  perDiskIOPS * dataDisks * 0.9,
			Write: perDiskIOPS * dataDisks / (penalty / 4.0),
		}, nil
	}
	return ArrayIOPS{}, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// EstimateReadTime estimates reading fileSizeMB from the array, in
// milliseconds. Effective speed: n disks for Striped, n at 80% for Mirrored,
// n-1 at 90% for ParityRotating.
func EstimateReadTime(scheme Scheme, diskCount int, spec DiskSpec, fileSizeMB float64) (float64, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	if fileSizeMB < 0 {
		return 0, workloadErrorf("file size must be non-negative, got %v MB", fileSizeMB)
	}
	if spec.BaseReadMBps <= 0 {
		return 0, workloadErrorf("base read speed must be positive, got %v MB/s", spec.BaseReadMBps)
	}
	var effective float64
	switch scheme {
	case Striped:
		effective = spec.BaseReadMBps * float64(diskCount)
	case Mirrored:
		effective = spec.BaseReadMBps * float64(diskCount) * 0.8
	case ParityRotating:
		effective = spec.BaseReadMBps * float64(diskCount-1) * 0.9
	}
	return fileSizeMB / effective * 1000.0, nil
}

// EstimateWriteTime estimates writing fileSizeMB to the array, in
// milliseconds, factoring in the scheme's write penalty. The parity penalty
// is normalized by the RAID 5 baseline of 4 so a parity stripe at full width
// pays no extra factor beyond its reduced disk count.
func EstimateWriteTime(scheme Scheme, diskCount int, spec DiskSpec, fileSizeMB float64) (float64, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	if fileSizeMB < 0 {
		return 0, workloadErrorf("file size must be non-negative, got %v MB", fileSizeMB)
	}
	if spec.BaseWriteMBps <= 0 {
		return 0, workloadErrorf("base write speed must be positive, got %v MB/s", spec.BaseWriteMBps)
	}
	penalty, err := WritePenalty(scheme)
	if err != nil {
		return 0, err
	}
	var effective, factor float64
	switch scheme {
	case Striped:
		effective = spec.BaseWriteMBps * float64(diskCount)
		factor = 1.0
	case Mirrored:
		effective = spec.BaseWriteMBps
		factor = penalty
	case ParityRotating:
		effective = spec.BaseWriteMBps * float64(diskCount-1)
		factor = penalty / 4.0
	}
	return fileSizeMB / effective * factor * 1000.0, nil
}

// EstimateRebuildTime gives the trivial re-copy estimate in seconds for
// restoring one failed disk: full capacity streamed at the sustained read
// rate. Striped has no redundancy to rebuild from and fails with ConfigError.
// Anything beyond this estimate (degraded-mode modeling, rebuild I/O
// contention) is out of scope.
func EstimateRebuildTime(scheme Scheme, spec DiskSpec) (float64, error) {
	if !scheme.valid() {
		return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
	}
	if scheme == Striped {
		return 0, configErrorf("%s has no redundancy to rebuild from", scheme)
	}
	if spec.BaseReadMBps <= 0 {
		return 0, workloadErrorf("base read speed must be positive, got %v MB/s", spec.BaseReadMBps)
	}
	if spec.CapacityGB < 0 {
		return 0, workloadErrorf("disk capacity must be non-negative, got %v GB", spec.CapacityGB)
	}
	return spec.CapacityGB * 1024.0 / spec.BaseReadMBps, nil
}

// PerformanceProfile aggregates every performance estimate for one
// configuration under one workload.
type PerformanceProfile struct {
	ServiceTimeMs   float64
	BaseIOPSPerDisk float64
	ReadIOPS        float64
	WriteIOPS       float64
	WritePenalty    float64
	ParallelSpeedup float64
	FaultTolerance  int
	DiskLoadIOPS    float64
	AccessTimeSec   float64
	ReadTimeMs      float64
	WriteTimeMs     float64
}

// PerformanceProfileFor assembles the full profile. The workload must already
// be validated (the runner does this once up front).
func PerformanceProfileFor(cfg ArrayConfig, spec DiskSpec, wl Workload) (PerformanceProfile, error) {
	if err := cfg.Validate(); err != nil {
		return PerformanceProfile{}, err
	}
	st, err := ServiceTime(spec.SeekTimeMs, spec.RPM, spec.IOSizeKB, spec.TransferRateMBps)
	if err != nil {
		return PerformanceProfile{}, err
	}
	baseIOPS, err := DiskIOPS(st, wl.Utilization)
	if err != nil {
		return PerformanceProfile{}, err
	}
	arrayIOPS, err := ArrayIOPSFor(cfg.Scheme, cfg.DiskCount, baseIOPS)
	if err != nil {
		return PerformanceProfile{}, err
	}
	penalty, err := WritePenalty(cfg.Scheme)
	if err != nil {
		return PerformanceProfile{}, err
	}
	speedup, err := ParallelSpeedup(cfg.DiskCount, cfg.Scheme)
	if err != nil {
		return PerformanceProfile{}, err
	}
	tolerance, err := FaultTolerance(cfg.Scheme, cfg.DiskCount)
	if err != nil {
		return PerformanceProfile{}, err
	}
	load, err := DiskLoadIOPS(wl.TotalIOPS, wl.ReadPercent, wl.WritePercent, cfg.Scheme)
	if err != nil {
		return PerformanceProfile{}, err
	}
	sizeBytes := int64(wl.FileSizeMB * 1024 * 1024)
	access, err := EstimateAccessTime(sizeBytes, cfg.DiskCount, cfg.Scheme, spec.BaseReadMBps)
	if err != nil {
		return PerformanceProfile{}, err
	}
	readMs, err := EstimateReadTime(cfg.Scheme, cfg.DiskCount, spec, wl.FileSizeMB)
	if err != nil {
		return PerformanceProfile{}, err
	}
	writeMs, err := EstimateWriteTime(cfg.Scheme, cfg.DiskCount, spec, wl.FileSizeMB)
	if err != nil {
		return PerformanceProfile{}, err
	}
	return PerformanceProfile{
		ServiceTimeMs:   st,
		BaseIOPSPerDisk: baseIOPS,
		ReadIOPS:        arrayIOPS.Read,
		WriteIOPS:       arrayIOPS.Write,
		WritePenalty:    penalty,
		ParallelSpeedup: speedup,
		FaultTolerance:  tolerance,
		DiskLoadIOPS:    load,
		AccessTimeSec:   access,
		ReadTimeMs:      readMs,
		WriteTimeMs:     writeMs,
	}, nil
}
