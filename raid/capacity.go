package raid

// Capacity model: pure closed-form functions deriving usable capacity,
// redundancy overhead, and byte-level storage requirements from an array
// configuration. All functions validate (diskCount, scheme) and return a
// ConfigError for invalid combinations.

// UsableCapacityPercent returns the percentage of raw capacity available for
// user data: 100 for Striped, 100/n for Mirrored, 100*(n-1)/n for
// ParityRotating.
func UsableCapacityPercent(diskCount int, scheme Scheme) (float64, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return 0, err
	}
	switch scheme {
	case Striped:
		return 100.0, nil
	case Mirrored:
		return 100.0 / float64(diskCount), nil
	case ParityRotating:
		return 100.0 * float64(diskCount-1) / float64(diskCount), nil
	}
	return 0, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// RedundancyPercent returns the complement of UsableCapacityPercent.
func RedundancyPercent(diskCount int, scheme Scheme) (float64, error) {
	usable, err := UsableCapacityPercent(diskCount, scheme)
	if err != nil {
		return 0, err
	}
	return 100.0 - usable, nil
}

// SpaceEfficiency returns usable capacity as a ratio in [0,1].
func SpaceEfficiency(diskCount int, scheme Scheme) (float64, error) {
	usable, err := UsableCapacityPercent(diskCount, scheme)
	if err != nil {
		return 0, err
	}
	return usable / 100.0, nil
}

// CapacityProfile summarizes the capacity characteristics of one array
// configuration. UsablePercent + RedundancyPercent == 100 and
// EfficiencyRatio == UsablePercent / 100 by construction.
type CapacityProfile struct {
	UsablePercent     float64
	RedundancyPercent float64
	EfficiencyRatio   float64
}

// CapacityProfileFor assembles the capacity profile for a configuration.
func CapacityProfileFor(cfg ArrayConfig) (CapacityProfile, error) {
	usable, err := UsableCapacityPercent(cfg.DiskCount, cfg.Scheme)
	if err != nil {
		return CapacityProfile{}, err
	}
	return CapacityProfile{
		UsablePercent:     usable,
		RedundancyPercent: 100.0 - usable,
		EfficiencyRatio:   usable / 100.0,
	}, nil
}

// StorageOverhead breaks down the raw storage a data size requires under a
// scheme. UsableBytes always equals the requested total (the model reports
// overhead, not loss); ParityBytes and MirrorBytes are mutually exclusive.
// Fields are float64 because RAID 5 parity is a fractional share of the data.
type StorageOverhead struct {
	UsableBytes        float64
	ParityBytes        float64
	MirrorBytes        float64
	TotalRequiredBytes float64
	EfficiencyRatio    float64
}

// StorageOverheadFor computes the storage breakdown for totalBytes of data.
func StorageOverheadFor(totalBytes int64, scheme Scheme, diskCount int) (StorageOverhead, error) {
	if totalBytes < 0 {
		return StorageOverhead{}, workloadErrorf("total bytes must be non-negative, got %d", totalBytes)
	}
	efficiency, err := SpaceEfficiency(diskCount, scheme)
	if err != nil {
		return StorageOverhead{}, err
	}
	total := float64(totalBytes)
	switch scheme {
	case Striped:
		return StorageOverhead{
			UsableBytes:        total,
			TotalRequiredBytes: total,
			EfficiencyRatio:    efficiency,
		}, nil
	case Mirrored:
		mirror := total * float64(diskCount-1)
		return StorageOverhead{
			UsableBytes:        total,
			MirrorBytes:        mirror,
			TotalRequiredBytes: total * float64(diskCount),
			EfficiencyRatio:    efficiency,
		}, nil
	case ParityRotating:
		parity := total / float64(diskCount-1)
		return StorageOverhead{
			UsableBytes:        total,
			ParityBytes:        parity,
			TotalRequiredBytes: total + parity,
			EfficiencyRatio:    efficiency,
		}, nil
	}
	return StorageOverhead{}, configErrorf("unsupported RAID scheme value %d", int(scheme))
}

// DiskBreakdown counts how many disks serve each role in the array.
type DiskBreakdown struct {
	UsableDisks int
	ParityDisks int
	MirrorDisks int
}

// CapacityBreakdown returns the disk-count breakdown by role:
// Striped (n,0,0), Mirrored (1,0,n-1), ParityRotating (n-1,1,0).
func CapacityBreakdown(diskCount int, scheme Scheme) (DiskBreakdown, error) {
	if err := (ArrayConfig{Scheme: scheme, DiskCount: diskCount}).Validate(); err != nil {
		return DiskBreakdown{}, err
	}
	switch scheme {
	case Striped:
		return DiskBreakdown{UsableDisks: diskCount}, nil
	case Mirrored:
		return DiskBreakdown{UsableDisks: 1, MirrorDisks: diskCount - 1}, nil
	case ParityRotating:
		return DiskBreakdown{UsableDisks: diskCount - 1, ParityDisks: 1}, nil
	}
	return DiskBreakdown{}, configErrorf("unsupported RAID scheme value %d", int(scheme))
}
