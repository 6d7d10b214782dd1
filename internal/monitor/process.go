package monitor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultTopProcesses is the size of the process table.
	DefaultTopProcesses = 10

	// MaxProcessNameLen bounds the stored process name, in runes.
	MaxProcessNameLen = 31

	// PageSizeKB is the assumed memory page size for RSS conversion.
	PageSizeKB = 4

	unknownProcessName = "unknown"
)

type ProcessMonitor struct {
	procRoot string
	max      int
	logger   *slog.Logger
}

func NewProcessMonitor(procRoot string, max int, logger *slog.Logger) *ProcessMonitor {
	if max <= 0 {
		max = DefaultTopProcesses
	}
	return &ProcessMonitor{
		procRoot: procRoot,
		max:      max,
		logger:   logger,
	}
}

func (m *ProcessMonitor) Name() string {
	return "process"
}

func (m *ProcessMonitor) Collect() (any, error) {
	return m.Sample()
}

// Sample walks the process table in ascending pid order, keeps the first
// max processes whose stat line parses, and ranks them by CPU ticks.
func (m *ProcessMonitor) Sample() ([]ProcessEntry, error) {
	pids, err := listPIDs(m.procRoot)
	if err != nil {
		return nil, err
	}

	entries := make([]ProcessEntry, 0, m.max)
	for _, pid := range pids {
		if len(entries) >= m.max {
			break
		}

		entry, err := m.readProcess(pid)
		if err != nil {
			// The process may have exited since the directory was listed.
			m.logger.Debug("skipping process", "pid", pid, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	RankProcesses(entries)
	return entries, nil
}

func (m *ProcessMonitor) readProcess(pid int) (ProcessEntry, error) {
	dir := filepath.Join(m.procRoot, strconv.Itoa(pid))

	name := unknownProcessName
	if comm, err := readFirstLine(filepath.Join(dir, "comm")); err == nil {
		name = truncateRunes(comm, MaxProcessNameLen)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stat"))
	if err != nil {
		return ProcessEntry{}, err
	}
	utime, stime, rss, err := parseProcStat(string(data))
	if err != nil {
		return ProcessEntry{}, err
	}

	return ProcessEntry{
		PID:        pid,
		Name:       name,
		CPUPercent: CPUTicksPercent(utime, stime),
		MemoryKB:   rss * PageSizeKB,
	}, nil
}

func listPIDs(procRoot string) ([]int, error) {
	dirEntries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	pids := make([]int, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if !entry.IsDir() || !isDigits(entry.Name()) {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseProcStat extracts utime, stime and rss from /proc/<pid>/stat. The
// command field may contain spaces and parentheses, so fields are counted
// from the last ')'. utime and stime are required; rss defaults to 0 when the
// line is cut short.
func parseProcStat(data string) (utime, stime, rss uint64, err error) {
	lastParen := strings.LastIndex(data, ")")
	if lastParen == -1 {
		return 0, 0, 0, fmt.Errorf("invalid stat format: no closing parenthesis")
	}

	fields := strings.Fields(data[lastParen+1:])
	if len(fields) < 13 {
		return 0, 0, 0, fmt.Errorf("invalid stat format: %d fields", len(fields))
	}

	if utime, err = strconv.ParseUint(fields[11], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid utime: %w", err)
	}
	if stime, err = strconv.ParseUint(fields[12], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid stime: %w", err)
	}

	if len(fields) > 21 {
		if v, err := strconv.ParseInt(fields[21], 10, 64); err == nil && v > 0 {
			rss = uint64(v)
		}
	}
	return utime, stime, rss, nil
}

// CPUTicksPercent is the process table's CPU figure: lifetime user+system
// ticks divided by 10000. It grows with process age and is not a rate.
func CPUTicksPercent(utime, stime uint64) float64 {
	return float64(utime+stime) / 10000.0
}

// RankProcesses orders entries by CPUPercent, highest first. Entries with
// equal CPUPercent keep their enumeration order.
func RankProcesses(entries []ProcessEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CPUPercent > entries[j].CPUPercent
	})
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
