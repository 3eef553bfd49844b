package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raidsim/raidsim/raid"
)

// Define struct for YAML
type DiskSpecsConfig struct {
	Profiles map[string]DiskProfile `yaml:"profiles"`
}

type DiskProfile struct {
	SeekTimeMs       float64 `yaml:"seek_time_ms"`
	RPM              float64 `yaml:"rpm"`
	TransferRateMBps float64 `yaml:"transfer_rate_mbps"`
	CapacityGB       float64 `yaml:"capacity_gb"`
	IOSizeKB         float64 `yaml:"io_size_kb"`
	BaseReadMBps     float64 `yaml:"base_read_speed_mbps"`
	BaseWriteMBps    float64 `yaml:"base_write_speed_mbps"`
}

// GetDiskSpec resolves the disk specification for a run. Without a presets
// file it returns the built-in enterprise 15K profile; with one, the named
// profile must exist.
func GetDiskSpec(path, profile string) (raid.DiskSpec, error) {
	if path == "" {
		return raid.DefaultDiskSpec(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return raid.DiskSpec{}, fmt.Errorf("reading disk specs file: %w", err)
	}

	var cfg DiskSpecsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return raid.DiskSpec{}, fmt.Errorf("parsing disk specs file: %w", err)
	}

	p, ok := cfg.Profiles[profile]
	if !ok {
		return raid.DiskSpec{}, fmt.Errorf("disk profile %q not found in %s", profile, path)
	}
	return raid.DiskSpec{
		SeekTimeMs:       p.SeekTimeMs,
		RPM:              p.RPM,
		TransferRateMBps: p.TransferRateMBps,
		CapacityGB:       p.CapacityGB,
		IOSizeKB:         p.IOSizeKB,
		BaseReadMBps:     p.BaseReadMBps,
		BaseWriteMBps:    p.BaseWriteMBps,
	}, nil
}
