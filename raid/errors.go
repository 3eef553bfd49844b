package raid

import "fmt"

// ConfigError reports an unsupported scheme or an invalid disk count for a
// scheme. It is raised before any computation and never recovered internally.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// WorkloadError reports malformed workload input: negative sizes,
// percentages outside [0,100], a read/write mix not summing to 100,
// or non-positive disk physical parameters.
type WorkloadError struct {
	Msg string
}

func (e *WorkloadError) Error() string { return e.Msg }

func workloadErrorf(format string, args ...any) error {
	return &WorkloadError{Msg: fmt.Sprintf(format, args...)}
}
