package monitor

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

type MemoryMonitor struct {
	procRoot string
	logger   *slog.Logger
}

func NewMemoryMonitor(procRoot string, logger *slog.Logger) *MemoryMonitor {
	return &MemoryMonitor{procRoot: procRoot, logger: logger}
}

func (m *MemoryMonitor) Name() string {
	return "memory"
}

func (m *MemoryMonitor) Collect() (any, error) {
	return m.Sample()
}

func (m *MemoryMonitor) Sample() (*MemorySnapshot, error) {
	snap := &MemorySnapshot{}
	err := readSource(filepath.Join(m.procRoot, "meminfo"), func(line string) {
		applyMeminfoLine(snap, line)
	})
	if err != nil {
		return nil, err
	}

	snap.derive()
	return snap, nil
}

// ParseMeminfo reads "Key: value kB" lines and derives usage figures.
// Unknown keys and malformed lines are ignored.
func ParseMeminfo(r io.Reader) (*MemorySnapshot, error) {
	snap := &MemorySnapshot{}
	if err := scanLines(r, func(line string) { applyMeminfoLine(snap, line) }); err != nil {
		return nil, err
	}
	snap.derive()
	return snap, nil
}

func applyMeminfoLine(snap *MemorySnapshot, line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	value, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return
	}

	switch strings.TrimSuffix(fields[0], ":") {
	case "MemTotal":
		snap.TotalKB = value
	case "MemFree":
		snap.FreeKB = value
	case "MemAvailable":
		snap.AvailableKB = value
	case "Buffers":
		snap.BuffersKB = value
	case "Cached":
		snap.CachedKB = value
	case "SwapTotal":
		snap.SwapTotalKB = value
	case "SwapFree":
		snap.SwapFreeKB = value
	}
}

// derive fills the computed fields. Differences that would go below zero on
// inconsistent input saturate at zero.
func (s *MemorySnapshot) derive() {
	s.UsedKB = saturatingSub(s.TotalKB, s.FreeKB, s.BuffersKB, s.CachedKB)
	s.SwapUsedKB = saturatingSub(s.SwapTotalKB, s.SwapFreeKB)

	s.UsagePercent = 0
	if s.TotalKB > 0 {
		s.UsagePercent = 100 * float64(saturatingSub(s.TotalKB, s.AvailableKB)) / float64(s.TotalKB)
	}

	s.SwapPercent = 0
	if s.SwapTotalKB > 0 {
		s.SwapPercent = 100 * float64(s.SwapUsedKB) / float64(s.SwapTotalKB)
	}
}

func saturatingSub(v uint64, subtrahends ...uint64) uint64 {
	for _, sub := range subtrahends {
		if sub >= v {
			return 0
		}
		v -= sub
	}
	return v
}
