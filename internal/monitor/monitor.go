package monitor

import (
	"errors"
	"time"
)

// ErrUnavailable marks a sampler whose kernel interface could not be opened.
// The collector omits that section from the snapshot.
var ErrUnavailable = errors.New("metric unavailable")

type Monitor interface {
	Name() string
	Collect() (any, error)
}

// CPUSnapshot holds utilization derived from two consecutive /proc/stat reads.
type CPUSnapshot struct {
	Model        string    `json:"model"`
	Cores        int       `json:"cores"`
	CoreUsage    []float64 `json:"core_usage"`
	UsagePercent float64   `json:"usage_percent"`
	// Temperature in Celsius, nil when no sensor could be read.
	Temperature *float64 `json:"temperature,omitempty"`
}

// MemorySnapshot values are in kilobytes, as exposed by /proc/meminfo.
type MemorySnapshot struct {
	TotalKB      uint64  `json:"total_kb"`
	FreeKB       uint64  `json:"free_kb"`
	AvailableKB  uint64  `json:"available_kb"`
	BuffersKB    uint64  `json:"buffers_kb"`
	CachedKB     uint64  `json:"cached_kb"`
	SwapTotalKB  uint64  `json:"swap_total_kb"`
	SwapFreeKB   uint64  `json:"swap_free_kb"`
	UsedKB       uint64  `json:"used_kb"`
	SwapUsedKB   uint64  `json:"swap_used_kb"`
	UsagePercent float64 `json:"usage_percent"`
	SwapPercent  float64 `json:"swap_percent"`
}

type DiskSnapshot struct {
	Mount          string  `json:"mount"`
	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

type UptimeSnapshot struct {
	Seconds   uint64 `json:"seconds"`
	Formatted string `json:"formatted"`
}

// ProcessEntry is one row of the top process table. CPUPercent is a coarse
// tick count scaled by 1/10000, not a rate over wall time.
type ProcessEntry struct {
	PID        int     `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryKB   uint64  `json:"memory_kb"`
}

type HostInfo struct {
	Hostname string `json:"hostname"`
	Platform string `json:"platform"`
	Kernel   string `json:"kernel"`
}

// SystemSnapshot is built fresh every cycle. A nil section was either not
// selected or its sampler failed.
type SystemSnapshot struct {
	Timestamp    time.Time       `json:"timestamp"`
	Host         *HostInfo       `json:"host,omitempty"`
	CPU          *CPUSnapshot    `json:"cpu,omitempty"`
	Memory       *MemorySnapshot `json:"memory,omitempty"`
	Uptime       *UptimeSnapshot `json:"uptime,omitempty"`
	Disk         *DiskSnapshot   `json:"disk,omitempty"`
	Processes    []ProcessEntry  `json:"processes,omitempty"`
	ProcessCount int             `json:"process_count"`
}
