package monitor

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

type UptimeMonitor struct {
	procRoot string
}

func NewUptimeMonitor(procRoot string) *UptimeMonitor {
	return &UptimeMonitor{procRoot: procRoot}
}

func (m *UptimeMonitor) Name() string {
	return "uptime"
}

func (m *UptimeMonitor) Collect() (any, error) {
	return m.Sample()
}

func (m *UptimeMonitor) Sample() (*UptimeSnapshot, error) {
	path := filepath.Join(m.procRoot, "uptime")
	line, err := readFirstLine(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	seconds, err := parseUptime(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &UptimeSnapshot{
		Seconds:   seconds,
		Formatted: FormatUptime(seconds),
	}, nil
}

// parseUptime truncates the first field of /proc/uptime to whole seconds.
func parseUptime(line string) (uint64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid uptime %q", fields[0])
	}
	return uint64(v), nil
}

// FormatUptime renders the two largest units that apply: days with hours and
// minutes, hours with minutes, or minutes with seconds.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d hours, %d minutes", hours, minutes)
	default:
		return fmt.Sprintf("%d minutes, %d seconds", minutes, secs)
	}
}
