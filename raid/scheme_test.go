package raid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheme_AcceptedSpellings(t *testing.T) {
	cases := map[string]Scheme{
		"RAID 0":   Striped,
		"raid0":    Striped,
		"striped":  Striped,
		"RAID 1":   Mirrored,
		"mirrored": Mirrored,
		"raid 5":   ParityRotating,
		"parity":   ParityRotating,
		" RAID 5 ": ParityRotating,
	}
	for input, want := range cases {
		got, err := ParseScheme(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseScheme_Unknown(t *testing.T) {
	_, err := ParseScheme("RAID 6")

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("ParseScheme(RAID 6) error = %v, want ConfigError", err)
	}
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "RAID 0", Striped.String())
	assert.Equal(t, "RAID 1", Mirrored.String())
	assert.Equal(t, "RAID 5", ParityRotating.String())
}

func TestNewArrayConfig_Valid(t *testing.T) {
	cfg, err := NewArrayConfig(ParityRotating, 3)
	assert.NoError(t, err)
	assert.Equal(t, ArrayConfig{Scheme: ParityRotating, DiskCount: 3}, cfg)
}

func TestNewArrayConfig_Rejections(t *testing.T) {
	cases := []struct {
		name      string
		scheme    Scheme
		diskCount int
	}{
		{"one disk striped", Striped, 1},
		{"zero disks mirrored", Mirrored, 0},
		{"two disks parity", ParityRotating, 2},
		{"unknown scheme", Scheme(42), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewArrayConfig(tc.scheme, tc.diskCount)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewArrayConfig(%v, %d) error = %v, want ConfigError", tc.scheme, tc.diskCount, err)
			}
		})
	}
}
