package raid

import (
	"fmt"
	"strings"
)

// Scheme is the closed enumeration of supported RAID levels.
// Every model function matches exhaustively on it; an unrecognized value is a
// ConfigError, never a silent fallback.
type Scheme int

const (
	// Striped is RAID 0: data distributed across all disks, no redundancy.
	Striped Scheme = iota
	// Mirrored is RAID 1: every item replicated onto every disk.
	Mirrored
	// ParityRotating is RAID 5: data striped across n-1 disks per item with a
	// parity role rotating among disks.
	ParityRotating
)

// String returns the conventional RAID level name.
func (s Scheme) String() string {
	switch s {
	case Striped:
		return "RAID 0"
	case Mirrored:
		return "RAID 1"
	case ParityRotating:
		return "RAID 5"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

func (s Scheme) valid() bool {
	return s == Striped || s == Mirrored || s == ParityRotating
}

// Schemes lists all supported schemes in RAID-level order.
// Useful for batch comparisons across every level.
func Schemes() []Scheme {
	return []Scheme{Striped, Mirrored, ParityRotating}
}

// ParseScheme converts a user-facing RAID level name into a Scheme.
// Accepted spellings per level: "RAID 0"/"raid0"/"0"/"striped", and the
// analogous forms for RAID 1 (mirrored) and RAID 5 (parity).
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raid 0", "raid0", "0", "striped":
		return Striped, nil
	case "raid 1", "raid1", "1", "mirrored":
		return Mirrored, nil
	case "raid 5", "raid5", "5", "parity":
		return ParityRotating, nil
	default:
		return 0, configErrorf("unsupported RAID level: %q", name)
	}
}

// ArrayConfig identifies one array under test: a scheme and a disk count.
// Construct through NewArrayConfig to guarantee validity; the zero value is
// not a valid configuration.
type ArrayConfig struct {
	Scheme    Scheme
	DiskCount int
}

// NewArrayConfig validates and returns an ArrayConfig.
func NewArrayConfig(scheme Scheme, diskCount int) (ArrayConfig, error) {
	cfg := ArrayConfig{Scheme: scheme, DiskCount: diskCount}
	if err := cfg.Validate(); err != nil {
		return ArrayConfig{}, err
	}
	return cfg, nil
}

// Validate checks the scheme is known, diskCount >= 2, and diskCount >= 3 for
// ParityRotating. Every model function applies these same rules.
func (c ArrayConfig) Validate() error {
	if !c.Scheme.valid() {
		return configErrorf("unsupported RAID scheme value %d", int(c.Scheme))
	}
	if c.DiskCount < 2 {
		return configErrorf("%s requires at least 2 disks, got %d", c.Scheme, c.DiskCount)
	}
	if c.Scheme == ParityRotating && c.DiskCount < 3 {
		return configErrorf("%s requires at least 3 disks, got %d", c.Scheme, c.DiskCount)
	}
	return nil
}

func (c ArrayConfig) String() string {
	return fmt.Sprintf("%s/%d disks", c.Scheme, c.DiskCount)
}
